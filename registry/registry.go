// Package registry keeps the session's list of managed executables and the current selection.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gfxmanager/models"
	"gfxmanager/probe"
)

// Prober reads metadata from an executable
type Prober interface {
	Probe(path string) probe.Info
}

// Registry holds the applications of one session
type Registry struct {
	prober   Prober
	apps     []models.Application
	selected int
}

// New creates an empty registry
func New(prober Prober) *Registry {
	return &Registry{
		prober:   prober,
		selected: -1,
	}
}

// Load replaces the registry contents with stored applications and clears the selection
func (r *Registry) Load(apps []models.Application) {
	r.apps = make([]models.Application, 0, len(apps))
	for _, app := range apps {
		app.AppPath = models.CleanPath(app.AppPath)
		r.apps = append(r.apps, app)
	}
	r.selected = -1
}

// Applications returns a copy of the registered applications
func (r *Registry) Applications() []models.Application {
	return append([]models.Application(nil), r.apps...)
}

// Len returns the number of registered applications
func (r *Registry) Len() int {
	return len(r.apps)
}

// Get returns the application registered under path
func (r *Registry) Get(path string) (models.Application, bool) {
	i := r.index(path)
	if i < 0 {
		return models.Application{}, false
	}
	return r.apps[i], true
}

// Add registers the executable at path, naming it from its metadata
func (r *Registry) Add(path string) (models.Application, error) {
	path = models.CleanPath(path)
	if path == "" || path == "." {
		return models.Application{}, fmt.Errorf("empty executable path")
	}
	if i := r.index(path); i >= 0 {
		return models.Application{}, &DuplicateError{Path: path, Name: r.apps[i].AppName}
	}

	info := r.prober.Probe(path)
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = models.DefaultName(path)
	}
	gapi := info.GAPI
	if gapi == "" {
		gapi = models.GAPIUnknown
	}

	app := models.NewApplication(name, path, gapi)
	r.apps = append(r.apps, app)
	return app, nil
}

// Remove unregisters path and reports whether it was present
func (r *Registry) Remove(path string) bool {
	i := r.index(path)
	if i < 0 {
		return false
	}

	r.apps = append(r.apps[:i], r.apps[i+1:]...)
	switch {
	case r.selected == i:
		r.selected = -1
	case r.selected > i:
		r.selected--
	}
	return true
}

// Select marks path as the current application
func (r *Registry) Select(path string) error {
	i := r.index(path)
	if i < 0 {
		return fmt.Errorf("%s: %w", path, ErrNotRegistered)
	}
	r.selected = i
	return nil
}

// ClearSelection unmarks the current application
func (r *Registry) ClearSelection() {
	r.selected = -1
}

// Selected returns the current application
func (r *Registry) Selected() (models.Application, error) {
	if r.selected < 0 || r.selected >= len(r.apps) {
		return models.Application{}, ErrNoSelection
	}
	return r.apps[r.selected], nil
}

// Rename changes the display name of path
func (r *Registry) Rename(path, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i := r.index(path)
	if i < 0 {
		return fmt.Errorf("%s: %w", path, ErrNotRegistered)
	}
	r.apps[i].AppName = name
	return nil
}

// SetRecord replaces the session copy of path's settings
func (r *Registry) SetRecord(path string, rec models.SettingsRecord) error {
	i := r.index(path)
	if i < 0 {
		return fmt.Errorf("%s: %w", path, ErrNotRegistered)
	}
	r.apps[i].SetRecord(rec)
	return nil
}

// ScanFolder lists the Windows executables below folderPath
func (r *Registry) ScanFolder(folderPath string) ([]string, error) {
	var executables []string

	err := filepath.Walk(models.CleanPath(folderPath), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && isExecutable(path) {
			executables = append(executables, path)
		}

		return nil
	})

	return executables, err
}

// index finds path by exact, case-sensitive comparison of the cleaned full path
func (r *Registry) index(path string) int {
	path = models.CleanPath(path)
	for i, app := range r.apps {
		if app.AppPath == path {
			return i
		}
	}
	return -1
}

// isExecutable checks if a file is a Windows executable
func isExecutable(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".exe")
}
