package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/pkg/config"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
	"github.com/Tom-Neverwinter/pinlib/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the pinlib workspace",
	Long: `Initialize the pinlib workspace directory structure.

This creates the managed workspace at ~/.local/share/pinlib/ with:
  - libraries.yaml : Registry of asset libraries
  - cache/         : Export artifacts (charts, reports)
  - config.yaml    : Global configuration (in the XDG config dir)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	w, err := workspace.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine workspace location"))
		return err
	}

	// Check if already initialized
	if w.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + w.RootPath))
		return nil
	}

	fmt.Println(ui.FormatInfo("Initializing pinlib workspace..."))
	fmt.Println()

	if err := w.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	// Create default config
	cfg := config.DefaultConfig()
	if err := cfg.Save(w.ConfigPath); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		// Don't fail - config is optional
	} else {
		fmt.Println(ui.FormatSuccess("Default config created"))
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Workspace", w.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", w.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Register a library with: pinlib lib add <name> <path>"))

	return nil
}
