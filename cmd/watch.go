package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	watchQuiet      bool
	watchCategories []string
)

var watchCmd = &cobra.Command{
	Use:   "watch [query]",
	Short: "Re-run a query whenever a library file changes",
	Long: `Watch the active library files and re-run a query on every change.

Edits to any active library.yaml (from another terminal, a sync job,
or a text editor) re-print the result set. Changes are debounced so a
burst of writes triggers one recomputation.

Use --quiet to print only the result tables.

Examples:
  pinlib watch
  pinlib watch chime [em]
  pinlib watch -c sound bell`,
	Args: cobra.ArbitraryArgs,
	RunE: runWatchCmd,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress change notifications")
	watchCmd.Flags().StringArrayVarP(&watchCategories, "category", "c", nil, "Restrict to a category (repeatable)")
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	raw := strings.Join(args, " ")

	paths, err := activePaths()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		return nil
	}

	// Create file watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch each library directory; the file itself may be replaced by
	// rename, which drops a file-level watch
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	if !watchQuiet {
		fmt.Println(ui.FormatInfo(ui.IconWatch + " Watching " + fmt.Sprintf("%d libraries", len(paths))))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	runQuery := func() {
		resp, err := queryService.Execute(ctx, services.QueryRequest{
			Raw:        raw,
			Categories: watchCategories,
			Paths:      paths,
		})
		if err != nil {
			fmt.Println(ui.FormatError("Query failed: " + err.Error()))
			return
		}
		printWatchResults(resp)
	}

	// Initial run
	runQuery()

	// Debounce timer to avoid recomputing on every write in a burst
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	changed := false

	recompute := func() {
		if !changed {
			return
		}
		changed = false

		if !watchQuiet {
			fmt.Println(ui.FormatInfo("Library changes detected, re-running query..."))
		}
		runQuery()
	}

	// Event loop
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only care about library files
			if filepath.Base(event.Name) != "library.yaml" {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				changed = true

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, recompute)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// printWatchResults prints a compact result table
func printWatchResults(resp *services.QueryResponse) {
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No assets found"))
		fmt.Println()
		return
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 36, Align: "left"},
		{Header: "Library", Width: 16, Align: "left"},
		{Header: "Category", Width: 14, Align: "left"},
	})

	for _, m := range resp.Results {
		table.AddRow([]string{
			ui.Truncate(m.Asset.Name, 36),
			ui.Truncate(m.Library, 16),
			ui.Truncate(m.Asset.Category, 14),
		})
	}

	fmt.Print(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d results  %s", resp.Total, time.Now().Format("15:04:05"))))
	fmt.Println()
}
