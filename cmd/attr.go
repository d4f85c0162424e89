package cmd

import (
	"github.com/spf13/cobra"
)

var attrLibrary string

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Manage asset attributes",
	Long: `Set or remove key/value attributes on an asset.

Attribute values are free text. A comma-separated value acts as a
set: a search constraint matches when any element equals it.

Examples:
  pinlib attr set "Chime Unit C" maker gottlieb -l gottlieb
  pinlib attr set "Backglass Scan" era "1960s,1970s" -l williams
  pinlib attr rm "Chime Unit C" maker -l gottlieb`,
}

var attrSetCmd = &cobra.Command{
	Use:   "set [asset] [key] [value]",
	Short: "Set an attribute on an asset",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := assetService.SetAttribute(getContext(), attrLibrary, args[0], args[1], args[2])
		return reportMutation(err, attrLibrary, "Attribute set: "+args[1])
	},
}

var attrRemoveCmd = &cobra.Command{
	Use:     "rm [asset] [key]",
	Short:   "Remove an attribute from an asset",
	Aliases: []string{"remove"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := assetService.RemoveAttribute(getContext(), attrLibrary, args[0], args[1])
		return reportMutation(err, attrLibrary, "Attribute removed: "+args[1])
	},
}

func init() {
	attrCmd.PersistentFlags().StringVarP(&attrLibrary, "library", "l", "", "Library holding the asset (required)")
	attrCmd.MarkPersistentFlagRequired("library")
	attrCmd.AddCommand(attrSetCmd)
	attrCmd.AddCommand(attrRemoveCmd)
}
