package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/adapters/repository"
	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	openNoCopy   bool
	openLinkName string
)

// picked is one fuzzy-finder row: an asset with its owning library
type picked struct {
	library string
	path    string
	asset   *domain.Asset
}

var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Pick an asset and show its record",
	Long: `Pick an asset with a fuzzy finder and print its full record.

The asset's path reference (library file plus asset name) is copied
to the clipboard. With --link the named link (or the first one) opens
in the browser.

Examples:
  pinlib open
  pinlib open chime
  pinlib open --link ipdb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openNoCopy, "no-copy", false, "Skip copying the path reference to the clipboard")
	openCmd.Flags().StringVar(&openLinkName, "link", "", "Open the named link (or the first link) in the browser")
	openCmd.Flags().Lookup("link").NoOptDefVal = "first"
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	paths, err := activePaths()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println(ui.FormatWarning("No active libraries"))
		return nil
	}

	var candidates []picked
	for _, path := range paths {
		lib, err := libraryRepo.Load(ctx, path)
		if err != nil {
			continue
		}
		for _, a := range lib.SortedAssets() {
			candidates = append(candidates, picked{library: lib.Name, path: path, asset: a})
		}
	}

	if len(args) == 1 {
		filter := strings.ToLower(args[0])
		var kept []picked
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.asset.Name), filter) {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}

	if len(candidates) == 0 {
		fmt.Println(ui.FormatWarning("No assets found"))
		return nil
	}

	var selected picked
	if len(candidates) == 1 {
		selected = candidates[0]
	} else {
		idx, err := fuzzyfinder.Find(
			candidates,
			func(i int) string {
				return fmt.Sprintf("%s (%s)", candidates[i].asset.Name, candidates[i].library)
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return assetPreview(candidates[i].library, candidates[i].asset)
			}),
		)
		if err != nil {
			// User cancelled (Ctrl+C or ESC)
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
		selected = candidates[idx]
	}

	printAsset(selected.library, selected.asset)

	if !openNoCopy {
		ref := repository.FilePath(selected.path) + "#" + selected.asset.Name
		if err := clipboard.WriteAll(ref); err != nil {
			fmt.Println(ui.FormatWarning("Failed to copy path reference: " + err.Error()))
		} else {
			fmt.Println(ui.FormatInfo("Copied to clipboard: " + ref))
		}
	}

	if openLinkName != "" {
		return openAssetLink(selected.asset, openLinkName)
	}

	return nil
}

// printAsset renders the full asset record
func printAsset(library string, a *domain.Asset) {
	fmt.Println(ui.FormatTitle(ui.IconAsset + " " + a.Name))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Library", library))
	if a.Category != "" {
		fmt.Println(ui.RenderKeyValue("Category", a.Category))
	}
	if a.Description != "" {
		fmt.Println(ui.RenderKeyValue("Description", a.Description))
	}
	fmt.Println(ui.RenderKeyValue("Created", a.GetDisplayDate()))
	if len(a.Tags) > 0 {
		fmt.Println(ui.RenderKeyValue("Tags", a.GetTagsString()))
	}
	for k, v := range a.Attributes {
		fmt.Println(ui.RenderKeyValue(k, v))
	}
	for _, l := range a.Links {
		fmt.Println(ui.RenderKeyValue(l.Name, l.URL))
	}
}

func openAssetLink(a *domain.Asset, name string) error {
	if len(a.Links) == 0 {
		fmt.Println(ui.FormatWarning("Asset has no links"))
		return nil
	}

	link := a.Links[0]
	if name != "first" {
		found := false
		for _, l := range a.Links {
			if strings.EqualFold(l.Name, name) {
				link = l
				found = true
				break
			}
		}
		if !found {
			fmt.Println(ui.FormatWarning("No link named: " + name))
			return nil
		}
	}

	fmt.Println(ui.FormatInfo("Opening: " + link.URL))
	return OpenPath(link.URL)
}
