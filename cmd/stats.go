package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var statsHTML bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics across the active libraries",
	Long: `Analyze the active libraries and display useful statistics.

Includes:
  - Asset counts per library
  - Category distribution
  - Top tags

With --html, an interactive chart page is written to the cache
directory and opened in the browser.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsHTML, "html", false, "Export interactive charts to an HTML page")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	paths, err := activePaths()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		return nil
	}

	resp, err := statsService.Execute(ctx, services.StatsRequest{Paths: paths})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle("Library Analytics"))
	fmt.Println()

	// --- General Stats (Tabular) ---
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Assets:"), resp.TotalAssets)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Libraries:"), len(resp.Libraries))
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Categories:"), len(resp.CategoryCounts))
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Tags:"), len(resp.TagCounts))
	w.Flush()
	fmt.Println()

	// --- Per-Library Breakdown ---
	fmt.Println(ui.StyleHeader.Render("Assets per Library"))
	for _, lc := range resp.Libraries {
		name := lc.Name
		if lc.Locked {
			name = name + " " + ui.IconLocked
		}
		fmt.Printf("  %-26s %s\n", name, renderCountBar(lc.Count, resp.TotalAssets))
	}
	fmt.Println()

	// --- Categories ---
	if len(resp.CategoryCounts) > 0 {
		fmt.Println(ui.StyleHeader.Render("Categories"))
		for _, cat := range sortedCountKeys(resp.CategoryCounts) {
			fmt.Printf("  %-26s %s\n", cat, renderCountBar(resp.CategoryCounts[cat], resp.TotalAssets))
		}
		fmt.Println()
	}

	// --- Top Tags ---
	top := resp.TopTags(appConfig.StatsTopTags)
	if len(top) > 0 {
		fmt.Println(ui.StyleHeader.Render(fmt.Sprintf("Top Tags (%d)", len(top))))
		for _, tag := range top {
			fmt.Printf("  %-26s %s\n", ui.StyleAccent.Render("["+tag+"]"), renderCountBar(resp.TagCounts[tag], resp.TotalAssets))
		}
		fmt.Println()
	}

	if resp.Skipped > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d libraries were unreadable", resp.Skipped)))
	}

	if statsHTML {
		return exportStatsHTML(resp)
	}

	return nil
}

// renderCountBar draws a proportional text bar with the count
func renderCountBar(count, total int) string {
	const maxWidth = 30
	width := 0
	if total > 0 {
		width = count * maxWidth / total
	}
	if width < 1 && count > 0 {
		width = 1
	}
	bar := ui.StyleSuccess.Render(strings.Repeat("█", width))
	return fmt.Sprintf("%s %d", bar, count)
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Descending by count, ties by name
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// exportStatsHTML writes an interactive chart page to the cache
// directory and opens it
func exportStatsHTML(resp *services.StatsResponse) error {
	// Library bar chart
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets per Library"}),
	)

	var libNames []string
	var libData []opts.BarData
	for _, lc := range resp.Libraries {
		libNames = append(libNames, lc.Name)
		libData = append(libData, opts.BarData{Value: lc.Count})
	}
	bar.SetXAxis(libNames).AddSeries("assets", libData)

	// Category pie chart
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Category Distribution"}),
	)

	var pieData []opts.PieData
	for _, cat := range sortedCountKeys(resp.CategoryCounts) {
		pieData = append(pieData, opts.PieData{Name: cat, Value: resp.CategoryCounts[cat]})
	}
	pie.AddSeries("categories", pieData)

	// Tag bar chart
	tagBar := charts.NewBar()
	tagBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Tags"}),
	)

	var tagNames []string
	var tagData []opts.BarData
	for _, tag := range resp.TopTags(appConfig.StatsTopTags) {
		tagNames = append(tagNames, tag)
		tagData = append(tagData, opts.BarData{Value: resp.TagCounts[tag]})
	}
	tagBar.SetXAxis(tagNames).AddSeries("tags", tagData)

	page := components.NewPage()
	page.AddCharts(bar, pie, tagBar)

	outPath := filepath.Join(appWorkspace.CachePath, "stats.html")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create stats page: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render stats page: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Charts written to: " + outPath))
	return OpenPath(outPath)
}
