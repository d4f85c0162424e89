package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/adapters/repository"
	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/config"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
	"github.com/Tom-Neverwinter/pinlib/pkg/workspace"
)

var (
	// Global workspace instance
	appWorkspace *workspace.Workspace

	// Global configuration
	appConfig *config.Config

	// Services
	queryService   *services.QueryService
	libraryService *services.LibraryService
	assetService   *services.AssetService
	statsService   *services.StatsService

	// Repositories
	libraryRepo *repository.LibraryRepository
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinlib",
	Short: "PINLIB - Pinball asset library manager",
	Long: ui.StyleTitle.Render("PINLIB") + " - Pinball Asset Library Manager\n\n" +
		"Index, query, and tag table assets across libraries, and drive\n" +
		"simulated score-reel displays from the terminal.",
	PersistentPreRunE: initializeApp,
	RunE:              runDefaultAction,
}

// runDefaultAction dispatches a bare `pinlib` to the configured
// default command
func runDefaultAction(cmd *cobra.Command, args []string) error {
	switch appConfig.DefaultAction {
	case "search":
		return runSearch(cmd, args)
	case "browse":
		return runBrowse(cmd, args)
	default:
		return runList(cmd, args)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(libCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(attrCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(reelCmd)
	rootCmd.AddCommand(wheelCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" {
		return nil
	}

	// Create workspace instance
	w, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = w

	// Check if workspace exists
	if !appWorkspace.Exists() {
		fmt.Println(ui.FormatError("Workspace not initialized"))
		fmt.Println(ui.FormatInfo("Run 'pinlib init' to initialize the workspace"))
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	// Initialize repositories
	libraryRepo = repository.NewLibraryRepository()

	// Initialize services
	queryService = services.NewQueryService(libraryRepo, os.Stderr)
	libraryService = services.NewLibraryService(appWorkspace, libraryRepo)
	assetService = services.NewAssetService(libraryService, libraryRepo)
	statsService = services.NewStatsService(libraryRepo)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

// activePaths returns the active library roots, in enumeration order
func activePaths() ([]string, error) {
	return libraryService.ActivePaths(getContext())
}
