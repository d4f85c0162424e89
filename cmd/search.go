package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	searchCategories []string
	searchLimit      int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search assets across the active libraries",
	Long: `Search assets by keyword, attribute, and tag.

The query mixes free keywords with key:value attribute constraints
and [tag] requirements. Quotes carry spaces in keys and values.

Examples:
  pinlib search chime
  pinlib search "drop target" maker:gottlieb
  pinlib search [em] era:"1960s,1970s"
  pinlib search bell -c sound -c mechanism`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchCategories, "category", "c", nil, "Restrict to a category (repeatable)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to show (0 = config default)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")

	paths, err := activePaths()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		return nil
	}

	ctx := getContext()
	resp, err := queryService.Execute(ctx, services.QueryRequest{
		Raw:        raw,
		Categories: searchCategories,
		Paths:      paths,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Search failed"))
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No assets found"))
		if resp.Skipped > 0 {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("%d libraries were unreadable", resp.Skipped)))
		}
		return nil
	}

	limit := searchLimit
	if limit <= 0 {
		limit = appConfig.MaxSearchResults
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Results (%d)", resp.Total)))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 36, Align: "left"},
		{Header: "Library", Width: 16, Align: "left"},
		{Header: "Category", Width: 14, Align: "left"},
		{Header: "Tags", Width: 26, Align: "left"},
	})

	shown := 0
	for _, m := range resp.Results {
		if shown >= limit {
			break
		}
		table.AddRow([]string{
			ui.Truncate(m.Asset.Name, 36),
			ui.Truncate(m.Library, 16),
			ui.Truncate(m.Asset.Category, 14),
			ui.Truncate(m.Asset.GetTagsString(), 26),
		})
		shown++
	}

	fmt.Print(table.Render())
	fmt.Println()

	if shown < resp.Total {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Showing %d of %d results", shown, resp.Total)))
	} else {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d results", resp.Total)))
	}
	if resp.Skipped > 0 {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("%d libraries were unreadable", resp.Skipped)))
	}

	return nil
}
