package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gfxmanager/models"
	"gfxmanager/session"
	"gfxmanager/storage"
)

// AppID identifies the application for stored preferences
const AppID = "io.github.gfxmanager"

// MainWindow represents the main application window
type MainWindow struct {
	app      fyne.App
	window   fyne.Window
	session  *session.Session
	logger   *log.Logger
	apps     []models.Application
	appList  *widget.List
	settings *settingsView
	status   *widget.Label
}

// NewMainWindow creates a new main window
func NewMainWindow(sess *session.Session, logger *log.Logger) *MainWindow {
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.ComputerIcon())

	window := myApp.NewWindow("Graphics Settings Manager")
	window.Resize(fyne.NewSize(1000, 640))

	mw := &MainWindow{
		app:     myApp,
		window:  window,
		session: sess,
		logger:  logger,
	}

	loadErr := mw.loadData()
	mw.setupUI()
	if loadErr != nil {
		dialog.ShowError(loadErr, mw.window)
	}

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// loadData loads the registered applications from storage
func (mw *MainWindow) loadData() error {
	mw.apps = nil
	if err := mw.session.Open(); err != nil {
		mw.logger.Printf("Error loading applications: %v", err)
		return loadError(err)
	}
	mw.apps = mw.session.Applications()
	return nil
}

func loadError(err error) error {
	if storage.IsMalformed(err) {
		return fmt.Errorf("%w\n\nFix or move the file, then restart. It will not be overwritten.", err)
	}
	return err
}

// setupUI sets up the user interface
func (mw *MainWindow) setupUI() {
	toolbar := mw.createToolbar()

	mw.appList = widget.NewList(
		func() int {
			return len(mw.apps)
		},
		func() fyne.CanvasObject {
			nameLabel := widget.NewLabel("Application Name")
			nameLabel.TextStyle = fyne.TextStyle{Bold: true}
			pathLabel := widget.NewLabel("Path")
			pathLabel.Truncation = fyne.TextTruncateEllipsis
			badge := NewGAPIBadge(models.GAPIUnknown)
			return container.NewBorder(nil, nil, nil, container.NewCenter(badge),
				container.NewVBox(nameLabel, pathLabel))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(mw.apps) {
				return
			}
			a := mw.apps[id]
			border := obj.(*fyne.Container)

			// Border structure: [center, right]
			if len(border.Objects) < 2 {
				return
			}
			if texts, ok := border.Objects[0].(*fyne.Container); ok && len(texts.Objects) >= 2 {
				texts.Objects[0].(*widget.Label).SetText(a.AppName)
				texts.Objects[1].(*widget.Label).SetText(a.AppPath)
			}
			if center, ok := border.Objects[1].(*fyne.Container); ok && len(center.Objects) > 0 {
				if badge, ok := center.Objects[0].(*ColoredLabel); ok {
					badge.SetGAPI(a.AppGAPI)
				}
			}
		},
	)

	mw.appList.OnSelected = func(id widget.ListItemID) {
		if id >= len(mw.apps) {
			return
		}
		a := mw.apps[id]
		if err := mw.session.Select(a.AppPath); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.settings.sync()
		mw.setStatus(fmt.Sprintf("%s  [%s]", a.AppName, a.AppGAPI))
	}

	mw.settings = newSettingsView(mw.session.Panel(), mw.window, func(err error) {
		dialog.ShowError(err, mw.window)
	})
	tabs := mw.settings.build()

	mw.status = widget.NewLabel("No application selected")

	split := container.NewHSplit(mw.appList, tabs)
	split.Offset = 0.4

	content := container.NewBorder(toolbar, mw.status, nil, nil, split)
	mw.window.SetContent(content)
}

// createToolbar creates the main toolbar
func (mw *MainWindow) createToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			mw.addApplication()
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			mw.importFolder()
		}),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			mw.renameSelected()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			mw.deleteSelected()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			mw.loadSettings()
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			mw.saveSettings()
		}),
	)
}

// addApplication asks for an executable and registers it
func (mw *MainWindow) addApplication() {
	mw.pickExecutable(func(path string) {
		a, err := mw.session.AddApplication(path)
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.refreshList()
		mw.selectPath(a.AppPath)
		mw.setStatus(fmt.Sprintf("Added %s [%s]", a.AppName, a.AppGAPI))
	})
}

// importFolder adds every executable found below a folder
func (mw *MainWindow) importFolder() {
	mw.pickFolder(func(dir string) {
		added, err := mw.session.AddFolder(dir)
		mw.refreshList()
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if len(added) == 0 {
			dialog.ShowInformation("Import Complete",
				"No new executables were found in the selected folder.", mw.window)
			return
		}

		names := make([]string, 0, len(added))
		for _, a := range added {
			names = append(names, fmt.Sprintf("%s [%s]", a.AppName, a.AppGAPI))
		}
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Added %d applications:\n\n%s", len(added), strings.Join(names, "\n")),
			mw.window)
	})
}

// renameSelected shows a form to change the display name
func (mw *MainWindow) renameSelected() {
	a, ok := mw.requireSelection("rename")
	if !ok {
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.AppName)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
	}

	form := dialog.NewForm("Rename Application", "Save", "Cancel", items, func(confirm bool) {
		if !confirm {
			return
		}
		if err := mw.session.RenameApplication(a.AppPath, nameEntry.Text); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.refreshList()
	}, mw.window)

	form.Resize(fyne.NewSize(420, 160))
	form.Show()
}

// deleteSelected deletes the currently selected application after confirmation
func (mw *MainWindow) deleteSelected() {
	a, ok := mw.requireSelection("delete")
	if !ok {
		return
	}

	dialog.ShowConfirm("Delete Application",
		fmt.Sprintf("Are you sure you want to delete '%s' and its saved settings?\n\nThis action cannot be undone.", a.AppName),
		func(confirm bool) {
			if !confirm {
				return
			}
			deleted, err := mw.session.DeleteSelected(nil)
			if err != nil {
				dialog.ShowError(err, mw.window)
				return
			}
			if !deleted {
				return
			}

			mw.appList.UnselectAll()
			mw.refreshList()
			mw.settings.sync()
			mw.setStatus(fmt.Sprintf("Deleted %s", a.AppName))
		}, mw.window)
}

// saveSettings stores the panel and writes the config files
func (mw *MainWindow) saveSettings() {
	if _, ok := mw.requireSelection("save settings for"); !ok {
		return
	}

	result, err := mw.session.SaveSettings()
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "Settings saved for %s.\n", result.App.AppName)
	for _, path := range []string{result.Files.DXVK, result.Files.VkBasalt} {
		if path != "" {
			fmt.Fprintf(&msg, "\nWrote %s", path)
		}
	}

	switch {
	case result.SteamURL != "":
		fmt.Fprintf(&msg, "\n\nAdded to Steam as a non-Steam game with vkBasalt enabled.\nRestart Steam, then launch it from the library or %s", result.SteamURL)
	case result.SteamUpdated:
		msg.WriteString("\n\nSteam launch options were updated. Restart Steam to apply them.")
	case result.SteamErr != nil:
		fmt.Fprintf(&msg, "\n\nSteam could not be updated: %v\nAdd this to the game's launch options:\n%s",
			result.SteamErr, result.LaunchHint)
	default:
		fmt.Fprintf(&msg, "\n\nAdd this to the game's launch options:\n%s", result.LaunchHint)
	}

	dialog.ShowInformation("Settings Saved", msg.String(), mw.window)
	mw.setStatus(fmt.Sprintf("Saved %s", result.App.AppName))
}

// loadSettings restores the stored settings into the panel
func (mw *MainWindow) loadSettings() {
	a, ok := mw.requireSelection("load settings for")
	if !ok {
		return
	}

	warnings, err := mw.session.LoadSettings()
	mw.settings.sync()
	if storage.IsNotFound(err) {
		dialog.ShowInformation("No Saved Settings",
			fmt.Sprintf("'%s' has no saved settings yet.", a.AppName), mw.window)
		return
	}
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	if len(warnings) > 0 {
		dialog.ShowInformation("Settings Loaded",
			"Some stored values are no longer offered and were reset:\n\n"+strings.Join(warnings, "\n"),
			mw.window)
	}
	mw.setStatus(fmt.Sprintf("Loaded settings for %s", a.AppName))
}

// requireSelection returns the selected application or tells the user to pick one
func (mw *MainWindow) requireSelection(action string) (models.Application, bool) {
	a, err := mw.session.Selected()
	if err != nil {
		dialog.ShowInformation("No Application Selected",
			fmt.Sprintf("Please select an application to %s.", action), mw.window)
		return models.Application{}, false
	}
	return a, true
}

func (mw *MainWindow) refreshList() {
	mw.apps = mw.session.Applications()
	mw.appList.Refresh()
}

func (mw *MainWindow) selectPath(path string) {
	for i, a := range mw.apps {
		if a.AppPath == path {
			mw.appList.Select(i)
			return
		}
	}
}

func (mw *MainWindow) setStatus(text string) {
	mw.status.SetText(text)
}
