package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	newLibrary     string
	newCategory    string
	newDescription string
	newTags        []string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new asset record",
	Long: `Create a new asset record in a library.

Examples:
  pinlib new "Drop Target Bank" -l gottlieb -c mechanism
  pinlib new "Chime Unit C" -l gottlieb -c sound --tags em,chime
  pinlib new "Backglass Scan" -l williams -c artwork -d "1962 original"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newLibrary, "library", "l", "", "Library to create the asset in (required)")
	newCmd.Flags().StringVarP(&newCategory, "category", "c", "", "Asset category (e.g., artwork, sound, mechanism)")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "Asset description")
	newCmd.Flags().StringSliceVar(&newTags, "tags", []string{}, "Tags for the asset (comma-separated)")
	newCmd.MarkFlagRequired("library")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	req := services.CreateAssetRequest{
		Library:     newLibrary,
		Name:        name,
		Category:    newCategory,
		Description: newDescription,
		Tags:        newTags,
	}

	ctx := getContext()
	resp, err := assetService.Create(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to create asset"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Asset created successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Name", resp.Asset.Name))
	fmt.Println(ui.RenderKeyValue("Library", resp.Library.Name))
	if resp.Asset.Category != "" {
		fmt.Println(ui.RenderKeyValue("Category", resp.Asset.Category))
	}
	if len(resp.Asset.Tags) > 0 {
		fmt.Println(ui.RenderKeyValue("Tags", strings.Join(resp.Asset.Tags, ", ")))
	}

	return nil
}
