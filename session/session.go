// Package session runs the user actions of the settings manager against the registry,
// the settings panel, the store and the config file writer.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gfxmanager/catalog"
	"gfxmanager/conffile"
	"gfxmanager/gate"
	"gfxmanager/models"
	"gfxmanager/panel"
	"gfxmanager/registry"
	"gfxmanager/steam"
	"gfxmanager/storage"
)

// LaunchOptionsUpdater changes a game's Steam launch options
type LaunchOptionsUpdater interface {
	ApplyLaunchOptions(app models.Application) (bool, error)
	// AddShortcut adds app as a non-Steam game and returns its shortcut id
	AddShortcut(app models.Application) (uint32, error)
}

// Deps are the collaborators of a session
type Deps struct {
	Store    *storage.Manager
	Registry *registry.Registry
	Catalog  *catalog.Catalog
	Gates    *gate.Machine
	Writer   *conffile.Writer
	// Steam is optional. When set, saving also updates Steam launch options
	// and adds a shortcut for games Steam does not know yet.
	Steam  LaunchOptionsUpdater
	Logger *log.Logger
}

// SaveResult describes what a save produced
type SaveResult struct {
	App   models.Application
	Files conffile.Paths
	// SteamUpdated is true when a Steam shortcut gained the launch variable
	SteamUpdated bool
	// SteamURL launches the shortcut added by this save, empty when none was added
	SteamURL string
	// SteamErr is set when Steam could not be updated. The save itself succeeded.
	SteamErr error
	// LaunchHint is the launch option line users add when Steam was not updated
	LaunchHint string
}

// Session holds the state of one run of the tool
type Session struct {
	store    *storage.Manager
	registry *registry.Registry
	panel    *panel.Panel
	writer   *conffile.Writer
	steam    LaunchOptionsUpdater
	logger   *log.Logger
}

// New creates a session
func New(deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	writer := deps.Writer
	if writer == nil {
		writer = conffile.NewWriter()
	}
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	gates := deps.Gates
	if gates == nil {
		gates = gate.New()
	}

	return &Session{
		store:    deps.Store,
		registry: deps.Registry,
		panel:    panel.New(cat, gates),
		writer:   writer,
		steam:    deps.Steam,
		logger:   logger,
	}
}

// Open loads the stored applications into the registry
func (s *Session) Open() error {
	apps, err := s.store.Applications()
	if err != nil {
		return err
	}
	s.registry.Load(apps)
	s.panel.Reset()
	s.logger.Printf("Loaded %d applications from %s", len(apps), s.store.Path())
	return nil
}

// Panel returns the settings panel state
func (s *Session) Panel() *panel.Panel {
	return s.panel
}

// Applications returns the registered applications
func (s *Session) Applications() []models.Application {
	return s.registry.Applications()
}

// Selected returns the current application
func (s *Session) Selected() (models.Application, error) {
	return s.registry.Selected()
}

// AddApplication registers and stores the executable at path
func (s *Session) AddApplication(path string) (models.Application, error) {
	app, err := s.registry.Add(path)
	if err != nil {
		return models.Application{}, err
	}

	if _, err := s.store.AddApplication(app.AppName, app.AppPath, app.AppGAPI); err != nil {
		s.registry.Remove(app.AppPath)
		return models.Application{}, fmt.Errorf("failed to store %s: %w", app.AppPath, err)
	}

	s.logger.Printf("Added %s (%s) at %s", app.AppName, app.AppGAPI, app.AppPath)
	return app, nil
}

// AddFolder adds every executable below dir that is not registered yet
func (s *Session) AddFolder(dir string) ([]models.Application, error) {
	paths, err := s.registry.ScanFolder(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var added []models.Application
	for _, path := range paths {
		app, err := s.AddApplication(path)
		if errors.Is(err, registry.ErrDuplicateEntry) {
			continue
		}
		if err != nil {
			return added, err
		}
		added = append(added, app)
	}
	return added, nil
}

// Select makes path the current application and clears the panel
func (s *Session) Select(path string) error {
	if err := s.registry.Select(path); err != nil {
		return err
	}
	s.panel.Reset()
	return nil
}

// RenameApplication stores a new display name for path, then shows it in the registry
func (s *Session) RenameApplication(path, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return registry.ErrEmptyName
	}
	app, ok := s.registry.Get(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, registry.ErrNotRegistered)
	}

	if err := s.store.RenameApplication(app.AppPath, name); err != nil {
		return err
	}
	return s.registry.Rename(app.AppPath, name)
}

// DeleteSelected removes the current application after confirm agrees.
// It reports whether anything was deleted.
func (s *Session) DeleteSelected(confirm func(models.Application) bool) (bool, error) {
	app, err := s.registry.Selected()
	if err != nil {
		return false, err
	}
	if confirm != nil && !confirm(app) {
		return false, nil
	}

	if _, err := s.store.RemoveApplication(app.AppPath); err != nil {
		return false, err
	}
	s.registry.Remove(app.AppPath)
	s.panel.Reset()

	s.logger.Printf("Deleted %s", app.AppPath)
	return true, nil
}

// SaveSettings stores the panel selections for the current application and
// writes its config files
func (s *Session) SaveSettings() (SaveResult, error) {
	app, err := s.registry.Selected()
	if err != nil {
		return SaveResult{}, err
	}

	rec := s.panel.Resolve()
	if err := s.store.UpsertSettings(storage.KeyOf(app), rec); err != nil {
		return SaveResult{}, err
	}
	if err := s.registry.SetRecord(app.AppPath, rec); err != nil {
		return SaveResult{}, err
	}
	app.SetRecord(rec)

	files, err := s.writer.Write(app.AppPath, rec)
	if err != nil {
		return SaveResult{App: app}, fmt.Errorf("settings saved but config files failed: %w", err)
	}

	result := SaveResult{App: app, Files: files, LaunchHint: steam.LaunchHint()}
	if s.steam != nil {
		result.SteamUpdated, result.SteamErr = s.steam.ApplyLaunchOptions(app)
		if errors.Is(result.SteamErr, steam.ErrShortcutNotFound) {
			if id, err := s.steam.AddShortcut(app); err == nil {
				result.SteamUpdated, result.SteamErr = true, nil
				result.SteamURL = steam.ShortcutURL(id)
				s.logger.Printf("Added %s to Steam: %s", app.AppName, result.SteamURL)
			} else {
				result.SteamErr = fmt.Errorf("failed to add Steam shortcut: %w", err)
			}
		}
		if result.SteamErr != nil {
			s.logger.Printf("Warning: Could not update Steam launch options: %v", result.SteamErr)
		}
	}

	s.logger.Printf("Saved settings for %s", app.AppPath)
	return result, nil
}

// LoadSettings restores the stored settings of the current application into the panel.
// It returns warnings for stored values that are no longer offered.
func (s *Session) LoadSettings() ([]string, error) {
	app, err := s.registry.Selected()
	if err != nil {
		return nil, err
	}

	rec, err := s.store.GetSettings(storage.KeyOf(app))
	if err != nil {
		return nil, err
	}

	warnings := s.panel.Replay(rec)
	for _, w := range warnings {
		s.logger.Printf("Warning: %s: %s", app.AppName, w)
	}
	return warnings, nil
}

// Emit rewrites the config files of path from its stored settings
func (s *Session) Emit(path string) (conffile.Paths, error) {
	app, ok := s.registry.Get(path)
	if !ok {
		return conffile.Paths{}, fmt.Errorf("%s: %w", path, registry.ErrNotRegistered)
	}
	rec, err := s.store.GetSettings(storage.KeyOf(app))
	if err != nil {
		return conffile.Paths{}, err
	}
	return s.writer.Write(app.AppPath, rec)
}

// Settings returns the stored settings of path
func (s *Session) Settings(path string) (models.Application, error) {
	app, ok := s.registry.Get(path)
	if !ok {
		return models.Application{}, fmt.Errorf("%s: %w", path, registry.ErrNotRegistered)
	}
	rec, err := s.store.GetSettings(storage.KeyOf(app))
	if err != nil && !storage.IsNotFound(err) {
		return models.Application{}, err
	}
	if err == nil {
		app.SetRecord(rec)
	}
	return app, nil
}
