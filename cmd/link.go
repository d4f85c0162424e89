package cmd

import (
	"github.com/spf13/cobra"
)

var linkLibrary string

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage asset links",
	Long: `Attach named external links to an asset.

Examples:
  pinlib link add "Drop Target Bank" ipdb https://www.ipdb.org/machine.cgi?id=1234 -l gottlieb`,
}

var linkAddCmd = &cobra.Command{
	Use:   "add [asset] [name] [url]",
	Short: "Attach a link to an asset",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := assetService.AddLink(getContext(), linkLibrary, args[0], args[1], args[2])
		return reportMutation(err, linkLibrary, "Link added: "+args[1])
	},
}

func init() {
	linkCmd.PersistentFlags().StringVarP(&linkLibrary, "library", "l", "", "Library holding the asset (required)")
	linkCmd.MarkPersistentFlagRequired("library")
	linkCmd.AddCommand(linkAddCmd)
}
