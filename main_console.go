//go:build console

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gfxmanager/catalog"
	"gfxmanager/models"
	"gfxmanager/session"
	"gfxmanager/storage"
)

// ConsoleApp represents the console-based settings manager
type ConsoleApp struct {
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
	// done is set once input is exhausted
	done bool
}

// NewConsoleApp creates a new console application
func NewConsoleApp(sess *session.Session, in io.Reader, out io.Writer) *ConsoleApp {
	return &ConsoleApp{
		session: sess,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run starts the console application
func (app *ConsoleApp) Run() {
	if err := app.session.Open(); err != nil {
		fmt.Fprintf(app.out, "Error loading applications: %v\n", err)
		if storage.IsMalformed(err) {
			fmt.Fprintln(app.out, "Fix or move the file, then restart. It will not be overwritten.")
			return
		}
	}

	for {
		app.showMenu()
		choice := app.getUserChoice()
		if app.done && choice == 0 {
			fmt.Fprintln(app.out)
			return
		}
		if !app.handleChoice(choice) || app.done {
			return
		}
	}
}

// showMenu displays the main menu
func (app *ConsoleApp) showMenu() {
	fmt.Fprintln(app.out, "\n=== Graphics Settings Manager ===")
	if a, err := app.session.Selected(); err == nil {
		fmt.Fprintf(app.out, "Selected: %s [%s]\n", a.AppName, a.AppGAPI)
	}
	fmt.Fprintln(app.out, "1. List Applications")
	fmt.Fprintln(app.out, "2. Add Application")
	fmt.Fprintln(app.out, "3. Import Applications from Folder")
	fmt.Fprintln(app.out, "4. Select Application")
	fmt.Fprintln(app.out, "5. Rename Application")
	fmt.Fprintln(app.out, "6. Edit Settings")
	fmt.Fprintln(app.out, "7. Load Settings")
	fmt.Fprintln(app.out, "8. Save Settings")
	fmt.Fprintln(app.out, "9. Delete Application")
	fmt.Fprintln(app.out, "10. Exit")
	fmt.Fprint(app.out, "Choose an option: ")
}

func (app *ConsoleApp) readLine() string {
	input, err := app.reader.ReadString('\n')
	if err != nil {
		app.done = true
	}
	return strings.TrimSpace(input)
}

// getUserChoice gets user input for menu selection
func (app *ConsoleApp) getUserChoice() int {
	choice, err := strconv.Atoi(app.readLine())
	if err != nil {
		return 0
	}
	return choice
}

// handleChoice processes the user's menu choice. It returns false on exit.
func (app *ConsoleApp) handleChoice(choice int) bool {
	switch choice {
	case 1:
		listApplications(app.session, app.out)
	case 2:
		app.addApplication()
	case 3:
		app.importFolder()
	case 4:
		app.selectApplication()
	case 5:
		app.renameApplication()
	case 6:
		app.editSettings()
	case 7:
		app.loadSettings()
	case 8:
		app.saveSettings()
	case 9:
		app.deleteApplication()
	case 10:
		fmt.Fprintln(app.out, "Goodbye!")
		return false
	default:
		fmt.Fprintln(app.out, "Invalid choice. Please try again.")
	}
	return true
}

func (app *ConsoleApp) addApplication() {
	fmt.Fprint(app.out, "Enter executable path: ")
	path := strings.Trim(app.readLine(), `"'`)
	if path == "" {
		fmt.Fprintln(app.out, "Executable path is required.")
		return
	}
	if err := addApplication(app.session, path, app.out); err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
	}
}

func (app *ConsoleApp) importFolder() {
	fmt.Fprint(app.out, "Enter folder path to scan: ")
	dir := strings.Trim(app.readLine(), `"'`)

	added, err := app.session.AddFolder(dir)
	for _, a := range added {
		fmt.Fprintf(app.out, "Added %s [%s]\n", a.AppName, a.AppGAPI)
	}
	if err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}
	if len(added) == 0 {
		fmt.Fprintln(app.out, "No new executables found in the folder.")
	}
}

// chooseApplication asks for an application by list number
func (app *ConsoleApp) chooseApplication() (models.Application, bool) {
	apps := app.session.Applications()
	if len(apps) == 0 {
		fmt.Fprintln(app.out, "No applications available.")
		return models.Application{}, false
	}

	listApplications(app.session, app.out)
	fmt.Fprint(app.out, "Enter application number: ")
	choice := app.getUserChoice()
	if choice < 1 || choice > len(apps) {
		fmt.Fprintln(app.out, "Invalid application number.")
		return models.Application{}, false
	}
	return apps[choice-1], true
}

func (app *ConsoleApp) selectApplication() {
	a, ok := app.chooseApplication()
	if !ok {
		return
	}
	if err := app.session.Select(a.AppPath); err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(app.out, "Selected %s\n", a.AppName)
}

func (app *ConsoleApp) selected() (models.Application, bool) {
	a, err := app.session.Selected()
	if err != nil {
		fmt.Fprintln(app.out, "Select an application first.")
		return models.Application{}, false
	}
	return a, true
}

func (app *ConsoleApp) renameApplication() {
	a, ok := app.selected()
	if !ok {
		return
	}
	fmt.Fprintf(app.out, "Enter new name [%s]: ", a.AppName)
	name := app.readLine()
	if name == "" {
		return
	}
	if err := app.session.RenameApplication(a.AppPath, name); err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(app.out, "Renamed to %s\n", name)
}

// editSettings lets the user pick a setting and one of its options
func (app *ConsoleApp) editSettings() {
	if _, ok := app.selected(); !ok {
		return
	}

	p := app.session.Panel()
	descs := p.Catalog().AllOrderedByGroup()
	for {
		var group catalog.Group = -1
		for i, d := range descs {
			if d.Group != group {
				group = d.Group
				fmt.Fprintf(app.out, "\n--- %s ---\n", group)
			}
			state := p.Text(d.ID)
			if !p.Active(d.ID) {
				state += " (inactive)"
			}
			fmt.Fprintf(app.out, "%2d. %-32s %s\n", i+1, d.Label, state)
		}

		fmt.Fprint(app.out, "\nEnter setting number (or press Enter to finish): ")
		choice := app.getUserChoice()
		if choice < 1 || choice > len(descs) {
			return
		}
		d := descs[choice-1]
		if !p.Active(d.ID) {
			fmt.Fprintf(app.out, "%s is inactive.\n", d.Label)
			continue
		}

		fmt.Fprintln(app.out, d.Help())
		for i, opt := range d.Options {
			fmt.Fprintf(app.out, "  %d. %s\n", i, opt)
		}
		fmt.Fprint(app.out, "Enter option number: ")
		idx, err := strconv.Atoi(app.readLine())
		if err != nil {
			fmt.Fprintln(app.out, "Invalid option.")
			continue
		}
		if _, err := p.Select(d.ID, idx); err != nil {
			fmt.Fprintf(app.out, "Error: %v\n", err)
		}
	}
}

func (app *ConsoleApp) loadSettings() {
	if _, ok := app.selected(); !ok {
		return
	}
	warnings, err := app.session.LoadSettings()
	if storage.IsNotFound(err) {
		fmt.Fprintln(app.out, "No saved settings for this application.")
		return
	}
	if err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(app.out, "Warning: %s\n", w)
	}
	fmt.Fprintln(app.out, "Settings loaded.")
}

func (app *ConsoleApp) saveSettings() {
	if _, ok := app.selected(); !ok {
		return
	}
	result, err := app.session.SaveSettings()
	if err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(app.out, "Settings saved for %s.\n", result.App.AppName)
	printWritten(app.out, result.Files.DXVK, result.Files.VkBasalt)
	switch {
	case result.SteamURL != "":
		fmt.Fprintf(app.out, "Added to Steam as a non-Steam game: %s\nRestart Steam to see it.\n", result.SteamURL)
	case result.SteamUpdated:
		fmt.Fprintln(app.out, "Steam launch options updated. Restart Steam to apply them.")
	case result.SteamErr != nil:
		fmt.Fprintf(app.out, "Steam could not be updated: %v\n", result.SteamErr)
		fallthrough
	default:
		fmt.Fprintf(app.out, "Add this to the game's launch options:\n  %s\n", result.LaunchHint)
	}
}

func (app *ConsoleApp) deleteApplication() {
	if _, ok := app.selected(); !ok {
		return
	}
	deleted, err := app.session.DeleteSelected(func(a models.Application) bool {
		fmt.Fprintf(app.out, "Delete '%s' and its saved settings? (y/N): ", a.AppName)
		response := strings.ToLower(app.readLine())
		return response == "y" || response == "yes"
	})
	if err != nil {
		fmt.Fprintf(app.out, "Error: %v\n", err)
		return
	}
	if deleted {
		fmt.Fprintln(app.out, "Application deleted.")
	}
}

func main() {
	sess, _ := setup()

	if len(os.Args) > 1 {
		os.Exit(handleCommandLineArgs(sess, os.Args[1:], os.Stdout))
	}

	NewConsoleApp(sess, os.Stdin, os.Stdout).Run()
}
