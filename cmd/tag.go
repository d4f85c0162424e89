package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var tagLibrary string

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage asset tags",
	Long: `Add or remove tags on an asset.

Examples:
  pinlib tag add "Chime Unit C" em -l gottlieb
  pinlib tag rm "Chime Unit C" em -l gottlieb`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add [asset] [tag]",
	Short: "Add a tag to an asset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := assetService.AddTag(getContext(), tagLibrary, args[0], args[1])
		return reportMutation(err, tagLibrary, ui.IconTag+" Tag added: "+args[1])
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:     "rm [asset] [tag]",
	Short:   "Remove a tag from an asset",
	Aliases: []string{"remove"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := assetService.RemoveTag(getContext(), tagLibrary, args[0], args[1])
		return reportMutation(err, tagLibrary, "Tag removed: "+args[1])
	},
}

func init() {
	tagCmd.PersistentFlags().StringVarP(&tagLibrary, "library", "l", "", "Library holding the asset (required)")
	tagCmd.MarkPersistentFlagRequired("library")
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
}

// reportMutation prints the outcome of an asset mutation, turning the
// locked-library error into guidance instead of a failure trace
func reportMutation(err error, library, success string) error {
	if err == nil {
		fmt.Println(ui.FormatSuccess(success))
		return nil
	}
	if errors.Is(err, domain.ErrLibraryLocked) {
		fmt.Println(ui.FormatError(ui.IconLocked + " Library is locked"))
		fmt.Println(ui.FormatInfo("Unlock it with: pinlib lib unlock " + library))
		return nil
	}
	return err
}
