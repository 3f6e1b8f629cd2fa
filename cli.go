package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gfxmanager/models"
	"gfxmanager/registry"
	"gfxmanager/session"
	"gfxmanager/storage"

	"gopkg.in/yaml.v3"
)

// handleCommandLineArgs processes command-line arguments and returns the exit code
func handleCommandLineArgs(sess *session.Session, args []string, out io.Writer) int {
	if len(args) == 0 {
		showUsage(out)
		return 0
	}

	if args[0] == "-help" || args[0] == "--help" || args[0] == "-h" || args[0] == "--h" {
		showUsage(out)
		return 0
	}

	if err := sess.Open(); err != nil {
		fmt.Fprintf(out, "Error loading applications: %v\n", err)
		return 1
	}

	needPath := func() (string, bool) {
		if len(args) < 2 {
			fmt.Fprintln(out, "Error: Executable path required")
			showUsage(out)
			return "", false
		}
		return args[1], true
	}

	var err error
	switch args[0] {
	case "-list", "--list":
		listApplications(sess, out)
	case "-add", "--add":
		path, ok := needPath()
		if !ok {
			return 2
		}
		err = addApplication(sess, path, out)
	case "-show", "--show":
		path, ok := needPath()
		if !ok {
			return 2
		}
		err = showSettings(sess, path, out)
	case "-emit", "--emit":
		path, ok := needPath()
		if !ok {
			return 2
		}
		err = emitConfig(sess, path, out)
	case "-delete", "--delete":
		path, ok := needPath()
		if !ok {
			return 2
		}
		err = deleteApplication(sess, path, out)
	default:
		fmt.Fprintf(out, "Unknown option: %s\n", args[0])
		showUsage(out)
		return 2
	}

	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	return 0
}

// listApplications lists all registered applications
func listApplications(sess *session.Session, out io.Writer) {
	apps := sess.Applications()
	if len(apps) == 0 {
		fmt.Fprintln(out, "No applications found.")
		return
	}

	fmt.Fprintln(out, "Registered applications:")
	fmt.Fprintln(out, "========================")
	for i, a := range apps {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, a.AppName, a.AppGAPI)
		fmt.Fprintf(out, "   Executable: %s\n", a.AppPath)
		if a.Record().SettingsSet {
			fmt.Fprintln(out, "   Settings: saved")
		} else {
			fmt.Fprintln(out, "   Settings: none")
		}
		fmt.Fprintln(out)
	}
}

func addApplication(sess *session.Session, path string, out io.Writer) error {
	a, err := sess.AddApplication(path)
	if errors.Is(err, registry.ErrDuplicateEntry) {
		fmt.Fprintf(out, "%s is already registered.\n", path)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added %s [%s]\n", a.AppName, a.AppGAPI)
	return nil
}

// showSettings prints the stored settings of an application as YAML
func showSettings(sess *session.Session, path string, out io.Writer) error {
	a, err := sess.Settings(path)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(a)
}

func emitConfig(sess *session.Session, path string, out io.Writer) error {
	files, err := sess.Emit(path)
	if storage.IsNotFound(err) {
		return fmt.Errorf("%s has no saved settings", path)
	}
	if err != nil {
		return err
	}
	printWritten(out, files.DXVK, files.VkBasalt)
	return nil
}

func deleteApplication(sess *session.Session, path string, out io.Writer) error {
	if err := sess.Select(path); err != nil {
		return err
	}
	var app models.Application
	deleted, err := sess.DeleteSelected(func(a models.Application) bool {
		app = a
		return true
	})
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(out, "Deleted %s\n", app.AppName)
	}
	return nil
}

func printWritten(out io.Writer, paths ...string) {
	for _, p := range paths {
		if p != "" {
			fmt.Fprintf(out, "Wrote %s\n", p)
		}
	}
}

// showUsage displays command-line usage information
func showUsage(out io.Writer) {
	name := "gfxmanager"
	if len(os.Args) > 0 && os.Args[0] != "" {
		name = os.Args[0]
	}

	fmt.Fprintln(out, "Graphics Settings Manager - Command Line Usage")
	fmt.Fprintln(out, "==============================================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "GUI Mode (default):")
	fmt.Fprintf(out, "  %s\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Command Line Options:")
	fmt.Fprintln(out, "  -list              List all registered applications")
	fmt.Fprintln(out, "  -add <exe>         Register an executable")
	fmt.Fprintln(out, "  -show <exe>        Print the saved settings of an executable as YAML")
	fmt.Fprintln(out, "  -emit <exe>        Rewrite dxvk.conf and vkBasalt.conf from the saved settings")
	fmt.Fprintln(out, "  -delete <exe>      Remove an executable and its settings")
	fmt.Fprintln(out, "  -help              Show this help message")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  GFXMANAGER_CONFIG  Path of the configuration file (default ~/.gfxmanager/config.toml)")
}
