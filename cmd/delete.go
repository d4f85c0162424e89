package cmd

import (
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var deleteLibrary string

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an asset record",
	Long: `Delete an asset record from a library.

Without a name, a fuzzy finder picks the asset interactively.
Locked libraries reject the deletion.

Examples:
  pinlib delete "Chime Unit C" -l gottlieb
  pinlib delete -l gottlieb`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteLibrary, "library", "l", "", "Library holding the asset (required)")
	deleteCmd.MarkFlagRequired("library")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	lib, err := libraryService.Resolve(ctx, deleteLibrary)
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
		if _, ok := lib.Asset(name); !ok {
			fmt.Println(ui.FormatWarning("No asset found matching: " + name))
			return nil
		}
	} else {
		assets := lib.SortedAssets()
		if len(assets) == 0 {
			fmt.Println(ui.FormatWarning("Library is empty"))
			return nil
		}

		idx, err := fuzzyfinder.Find(
			assets,
			func(i int) string {
				return assets[i].Name
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return assetPreview(lib.Name, assets[i])
			}),
		)
		if err != nil {
			// User cancelled (Ctrl+C or ESC)
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
		name = assets[idx].Name
	}

	fmt.Println(ui.FormatWarning("You are about to delete:"))
	fmt.Printf("  %s %s\n", ui.StyleBold.Render(name), ui.StyleMuted.Render("("+lib.Name+")"))
	fmt.Println()

	if !confirm(ui.StyleError.Render("Delete asset? (y/n): ")) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := assetService.Delete(ctx, deleteLibrary, name); err != nil {
		if errors.Is(err, domain.ErrLibraryLocked) {
			fmt.Println(ui.FormatError(ui.IconLocked + " Library is locked"))
			fmt.Println(ui.FormatInfo("Unlock it with: pinlib lib unlock " + deleteLibrary))
			return nil
		}
		return err
	}

	fmt.Println(ui.FormatSuccess("Asset deleted."))
	return nil
}

// assetPreview renders the finder preview pane for an asset
func assetPreview(library string, a *domain.Asset) string {
	preview := fmt.Sprintf("Name: %s\nLibrary: %s\nCategory: %s\nDate: %s",
		a.Name,
		library,
		a.Category,
		a.GetDisplayDate())
	if a.Description != "" {
		preview += fmt.Sprintf("\nDescription: %s", a.Description)
	}
	if len(a.Tags) > 0 {
		preview += fmt.Sprintf("\nTags: %s", a.GetTagsString())
	}
	for k, v := range a.Attributes {
		preview += fmt.Sprintf("\n%s: %s", k, v)
	}
	return preview
}
