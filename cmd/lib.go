package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage asset libraries",
	Long: `Manage the registry of asset libraries.

A library is a directory holding a library.yaml file. Registered
libraries can be toggled in and out of the active set that list,
search, and browse operate on.

Examples:
  pinlib lib add gottlieb ~/tables/gottlieb
  pinlib lib list
  pinlib lib disable gottlieb
  pinlib lib lock gottlieb`,
}

var libAddCmd = &cobra.Command{
	Use:   "add [name] [path]",
	Short: "Register a library, creating its file if needed",
	Args:  cobra.ExactArgs(2),
	RunE:  runLibAdd,
}

var libListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List registered libraries",
	Aliases: []string{"ls"},
	RunE:    runLibList,
}

var libRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Unregister a library (the file on disk is kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibRemove,
}

var libEnableCmd = &cobra.Command{
	Use:   "enable [name]",
	Short: "Add a library to the active query set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibSetActive(args[0], true)
	},
}

var libDisableCmd = &cobra.Command{
	Use:   "disable [name]",
	Short: "Remove a library from the active query set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibSetActive(args[0], false)
	},
}

var libLockCmd = &cobra.Command{
	Use:   "lock [name]",
	Short: "Lock a library against mutations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibSetLocked(args[0], true)
	},
}

var libUnlockCmd = &cobra.Command{
	Use:   "unlock [name]",
	Short: "Unlock a library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibSetLocked(args[0], false)
	},
}

func init() {
	libCmd.AddCommand(libAddCmd)
	libCmd.AddCommand(libListCmd)
	libCmd.AddCommand(libRemoveCmd)
	libCmd.AddCommand(libEnableCmd)
	libCmd.AddCommand(libDisableCmd)
	libCmd.AddCommand(libLockCmd)
	libCmd.AddCommand(libUnlockCmd)
}

func runLibAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	path, err := filepath.Abs(args[1])
	if err != nil {
		return err
	}

	ctx := getContext()
	resp, err := libraryService.Register(ctx, services.RegisterRequest{
		Name: name,
		Path: path,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to register library"))
		return err
	}

	if resp.Created {
		fmt.Println(ui.FormatSuccess("Library created and registered"))
	} else {
		fmt.Println(ui.FormatSuccess("Existing library adopted"))
	}
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Name", name))
	fmt.Println(ui.RenderKeyValue("Path", path))
	fmt.Println(ui.RenderKeyValue("Assets", fmt.Sprintf("%d", resp.Library.Count())))

	return nil
}

func runLibList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	entries, err := libraryService.Entries(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load registry"))
		return err
	}

	if len(entries) == 0 {
		fmt.Println(ui.FormatWarning("No libraries registered"))
		fmt.Println(ui.FormatInfo("Register one with: pinlib lib add <name> <path>"))
		return nil
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("%s Libraries", ui.IconLibrary)))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 24, Align: "left"},
		{Header: "Active", Width: 8, Align: "left"},
		{Header: "Assets", Width: 8, Align: "right"},
		{Header: "Path", Width: 48, Align: "left"},
	})

	for _, entry := range entries {
		active := "no"
		if entry.Active {
			active = "yes"
		}

		assets := "-"
		name := entry.Name
		if lib, err := libraryRepo.Load(ctx, entry.Path); err == nil {
			assets = fmt.Sprintf("%d", lib.Count())
			if lib.Locked {
				name = name + " " + ui.IconLocked
			}
		} else {
			fmt.Fprintln(os.Stderr, ui.FormatWarning("Unreadable library: "+entry.Path))
		}

		table.AddRow([]string{
			ui.Truncate(name, 24),
			active,
			assets,
			ui.Truncate(entry.Path, 48),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d libraries", len(entries))))

	return nil
}

func runLibRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !confirm(ui.StyleWarning.Render(fmt.Sprintf("Unregister library '%s'? The file on disk is kept. (y/n): ", name))) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := libraryService.Unregister(getContext(), name); err != nil {
		fmt.Println(ui.FormatError("Failed to unregister library"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Library unregistered."))
	return nil
}

func runLibSetActive(name string, active bool) error {
	if err := libraryService.SetActive(getContext(), name, active); err != nil {
		return err
	}
	if active {
		fmt.Println(ui.FormatSuccess("Library enabled: " + name))
	} else {
		fmt.Println(ui.FormatSuccess("Library disabled: " + name))
	}
	return nil
}

func runLibSetLocked(name string, locked bool) error {
	if err := libraryService.SetLocked(getContext(), name, locked); err != nil {
		return err
	}
	if locked {
		fmt.Println(ui.FormatSuccess(ui.IconLocked + " Library locked: " + name))
	} else {
		fmt.Println(ui.FormatSuccess("Library unlocked: " + name))
	}
	return nil
}
