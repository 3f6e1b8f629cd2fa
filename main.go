//go:build !console

package main

import (
	"os"

	"gfxmanager/ui"
)

func main() {
	sess, logger := setup()

	// Check for command-line arguments
	if len(os.Args) > 1 {
		os.Exit(handleCommandLineArgs(sess, os.Args[1:], os.Stdout))
	}

	// Normal GUI mode
	logger.Println("Starting Graphics Settings Manager...")
	app := ui.NewMainWindow(sess, logger)
	app.ShowAndRun()
}
