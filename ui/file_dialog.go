package ui

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"github.com/ncruces/zenity"
)

const lastUsedPathKey = "lastUsedPath"

// getLastUsedPath returns the last used path or user's home directory
func (mw *MainWindow) getLastUsedPath() string {
	if path := mw.app.Preferences().String(lastUsedPathKey); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// saveLastUsedPath remembers the directory of path for the next dialog
func (mw *MainWindow) saveLastUsedPath(path string) {
	if path == "" {
		return
	}
	if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
		path = filepath.Dir(path)
	}
	mw.app.Preferences().SetString(lastUsedPathKey, path)
}

// pickExecutable asks for an executable and passes it to onPicked.
// Priority order: 1) kdialog (KDE), 2) Zenity (GTK), 3) Fyne (fallback)
func (mw *MainWindow) pickExecutable(onPicked func(string)) {
	startPath := mw.getLastUsedPath()
	done := func(filename string) {
		if filename == "" {
			return
		}
		mw.saveLastUsedPath(filename)
		onPicked(filename)
	}

	if isKDialogAvailable() {
		filename, err := openKDialog(startPath)
		if err == nil {
			done(filename)
			return
		}
		mw.logger.Printf("DEBUG: kdialog failed, trying next picker: %v", err)
	}

	if zenity.IsAvailable() {
		filename, err := zenity.SelectFile(
			zenity.Title("Select Executable"),
			zenity.Filename(startPath+string(filepath.Separator)),
			zenity.FileFilters{
				{Name: "Windows executables", Patterns: []string{"*.exe", "*.EXE"}, CaseFold: true},
				{Name: "All files", Patterns: []string{"*"}},
			},
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		if err == nil {
			done(filename)
			return
		}
		mw.logger.Printf("DEBUG: zenity failed, using built-in dialog: %v", err)
	}

	mw.openFyneFileDialog(startPath, done)
}

// openFyneFileDialog is a fallback that uses the Fyne file dialog
func (mw *MainWindow) openFyneFileDialog(startPath string, done func(string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		done(reader.URI().Path())
	}, mw.window)

	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter([]string{".exe", ".EXE"}))
	setDialogLocation(fileDialog, startPath)
	fileDialog.Show()
}

// pickFolder asks for a directory and passes it to onPicked
func (mw *MainWindow) pickFolder(onPicked func(string)) {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if uri == nil {
			return
		}
		mw.saveLastUsedPath(uri.Path())
		onPicked(uri.Path())
	}, mw.window)

	setDialogLocation(folderDialog, mw.getLastUsedPath())
	folderDialog.Show()
}

type locatable interface {
	SetLocation(fyne.ListableURI)
}

func setDialogLocation(d locatable, path string) {
	if path == "" {
		return
	}
	listable, err := fynestorage.ListerForURI(fynestorage.NewFileURI(path))
	if err != nil {
		return
	}
	d.SetLocation(listable)
}

// isKDialogAvailable checks if the KDE dialog tool is installed
func isKDialogAvailable() bool {
	_, err := exec.LookPath("kdialog")
	return err == nil
}

// openKDialog opens a file dialog using kdialog. An empty result means the user cancelled.
func openKDialog(startPath string) (string, error) {
	args := []string{
		"--getopenfilename",
		startPath,
		"*.exe *.EXE|Windows executables",
		"--title", "Select Executable",
	}

	output, err := exec.Command("kdialog", args...).Output()
	if err != nil {
		// exit code 1 means the user cancelled
		var exitError *exec.ExitError
		if errors.As(err, &exitError) && exitError.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
