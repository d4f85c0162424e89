package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	listCategory string
	listSortBy   string
	listReverse  bool
)

// listed pairs an asset with its owning library for table rows
type listed struct {
	library string
	asset   *domain.Asset
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List assets across the active libraries",
	Aliases: []string{"ls"},
	Long: `List all assets in the active libraries in a table format.

Examples:
  pinlib list
  pinlib list --category sound
  pinlib list --sort date --reverse`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter assets by category")
	// Sort defaults to "name", but we handle config override in runList
	listCmd.Flags().StringVar(&listSortBy, "sort", "name", "Sort by field (name, date)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse sort order")
}

func runList(cmd *cobra.Command, args []string) error {
	// If the flag was NOT changed by the user, use the config default
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("reverse") {
		listReverse = appConfig.ReverseSort
	}

	ctx := getContext()
	paths, err := activePaths()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		fmt.Println(ui.FormatInfo("Register one with: pinlib lib add <name> <path>"))
		return nil
	}

	var rows []listed
	for _, path := range paths {
		lib, err := libraryRepo.Load(ctx, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.FormatWarning("Skipping unreadable library: "+path))
			continue
		}
		for _, a := range lib.SortedAssets() {
			if listCategory != "" && !listMatchesCategory(a, listCategory) {
				continue
			}
			rows = append(rows, listed{library: lib.Name, asset: a})
		}
	}

	sortListed(rows, listSortBy, listReverse)

	if len(rows) == 0 {
		if listCategory != "" {
			fmt.Println(ui.FormatWarning("No assets found in category: " + listCategory))
		} else {
			fmt.Println(ui.FormatWarning("No assets found"))
			fmt.Println(ui.FormatInfo("Create your first asset with: pinlib new \"My Asset\" -l <library>"))
		}
		return nil
	}

	if listCategory != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Assets (category: %s)", listCategory)))
	} else {
		fmt.Println(ui.FormatTitle("Assets"))
	}
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 36, Align: "left"},
		{Header: "Library", Width: 16, Align: "left"},
		{Header: "Category", Width: 14, Align: "left"},
		{Header: "Date", Width: 12, Align: "left"},
		{Header: "Tags", Width: 26, Align: "left"},
	})

	for _, row := range rows {
		table.AddRow([]string{
			ui.Truncate(row.asset.Name, 36),
			ui.Truncate(row.library, 16),
			ui.Truncate(row.asset.Category, 14),
			row.asset.GetDisplayDate(),
			ui.Truncate(row.asset.GetTagsString(), 26),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d assets", len(rows))))

	return nil
}

func listMatchesCategory(a *domain.Asset, category string) bool {
	return a.Category == category
}

// sortListed orders rows by the requested field. Name comparison is
// the default for unknown fields.
func sortListed(rows []listed, field string, reverse bool) {
	less := func(i, j int) bool {
		return rows[i].asset.Name < rows[j].asset.Name
	}
	if field == "date" {
		less = func(i, j int) bool {
			return rows[i].asset.CreatedAt.Before(rows[j].asset.CreatedAt)
		}
	}
	if reverse {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(rows, less)
}
