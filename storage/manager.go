package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gfxmanager/models"

	"github.com/google/uuid"
)

// FileName is the name of the settings document
const FileName = "user_apps.json"

// Key identifies an application's settings
type Key struct {
	Path string
	Name string
	GAPI string
}

// KeyOf returns the storage key of an application
func KeyOf(app models.Application) Key {
	return Key{Path: app.AppPath, Name: app.AppName, GAPI: app.AppGAPI}
}

// Manager handles persistence of the settings document
type Manager struct {
	path   string
	logger *log.Logger
}

// NewManager creates a storage manager for the document at path.
// An empty path uses user_apps.json in ~/.gfxmanager.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{
		path:   models.CleanPath(path),
		logger: log.New(io.Discard, "", 0),
	}
}

// DefaultPath returns the default location of the settings document
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".gfxmanager", FileName)
}

// SetLogger sets where debug output goes
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Path returns the location of the settings document
func (m *Manager) Path() string {
	return m.path
}

// Load reads the document. A missing file yields an empty document.
func (m *Manager) Load() (*models.Document, error) {
	m.logger.Printf("DEBUG: Loading settings from %s", m.path)

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Printf("DEBUG: Settings file does not exist, returning empty document")
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Path: m.path, Err: err}
	}
	if doc.Applications == nil {
		doc.Applications = []models.Application{}
	}
	for i := range doc.Applications {
		if len(doc.Applications[i].Settings) == 0 {
			doc.Applications[i].Settings = []models.SettingsRecord{models.NewSettingsRecord()}
		}
	}

	m.logger.Printf("DEBUG: Loaded %d applications", len(doc.Applications))
	return &doc, nil
}

// Save writes the document, replacing the previous file in one rename
func (m *Manager) Save(doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(m.path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", m.path, err)
	}

	m.logger.Printf("DEBUG: Saved %d applications to %s", len(doc.Applications), m.path)
	return nil
}

// Encode renders a document the way it is stored on disk
func Encode(doc *models.Document) ([]byte, error) {
	if doc == nil {
		doc = models.NewDocument()
	}
	if doc.Applications == nil {
		doc = &models.Document{Applications: []models.Application{}}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode settings document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Applications returns every stored application
func (m *Manager) Applications() ([]models.Application, error) {
	doc, err := m.Load()
	if err != nil {
		return nil, err
	}
	return doc.Applications, nil
}

// AddApplication stores a new application with an empty settings record.
// It returns false when the path is already stored.
func (m *Manager) AddApplication(name, path, gapi string) (bool, error) {
	doc, err := m.Load()
	if err != nil {
		return false, err
	}

	path = models.CleanPath(path)
	if find(doc, path) >= 0 {
		return false, nil
	}

	doc.Applications = append(doc.Applications, models.NewApplication(name, path, gapi))
	return true, m.Save(doc)
}

// UpsertSettings replaces the settings of the application identified by key.
// An application stored under the same path but an older name or graphics API is
// updated to match key. A missing application is inserted.
func (m *Manager) UpsertSettings(key Key, rec models.SettingsRecord) error {
	doc, err := m.Load()
	if err != nil {
		return err
	}

	key.Path = models.CleanPath(key.Path)
	i := match(doc, key)
	if i < 0 {
		i = find(doc, key.Path)
	}
	if i < 0 {
		doc.Applications = append(doc.Applications, models.NewApplication(key.Name, key.Path, key.GAPI))
		i = len(doc.Applications) - 1
		m.logger.Printf("DEBUG: Inserted %s while saving its settings", key.Path)
	}

	app := &doc.Applications[i]
	app.AppName = key.Name
	app.AppGAPI = key.GAPI
	app.SetRecord(rec)

	return m.Save(doc)
}

// GetSettings returns the saved settings of the application identified by key
func (m *Manager) GetSettings(key Key) (models.SettingsRecord, error) {
	doc, err := m.Load()
	if err != nil {
		return models.SettingsRecord{}, err
	}

	key.Path = models.CleanPath(key.Path)
	i := match(doc, key)
	if i < 0 {
		return models.SettingsRecord{}, fmt.Errorf("%s: %w", key.Path, ErrRecordNotFound)
	}
	rec := doc.Applications[i].Record()
	if !rec.SettingsSet {
		return models.SettingsRecord{}, fmt.Errorf("%s has no saved settings: %w", key.Path, ErrRecordNotFound)
	}
	return rec, nil
}

// RemoveApplication deletes every application stored under path and returns how many were removed
func (m *Manager) RemoveApplication(path string) (int, error) {
	doc, err := m.Load()
	if err != nil {
		return 0, err
	}

	path = models.CleanPath(path)
	kept := doc.Applications[:0]
	removed := 0
	for _, app := range doc.Applications {
		if models.CleanPath(app.AppPath) == path {
			removed++
			continue
		}
		kept = append(kept, app)
	}
	if removed == 0 {
		return 0, nil
	}

	doc.Applications = kept
	return removed, m.Save(doc)
}

// RenameApplication changes the display name of the application stored under path
func (m *Manager) RenameApplication(path, name string) error {
	doc, err := m.Load()
	if err != nil {
		return err
	}

	i := find(doc, models.CleanPath(path))
	if i < 0 {
		return fmt.Errorf("%s: %w", path, ErrRecordNotFound)
	}
	doc.Applications[i].AppName = name
	return m.Save(doc)
}

// match finds the application stored under the full key
func match(doc *models.Document, key Key) int {
	for i, app := range doc.Applications {
		if models.CleanPath(app.AppPath) == key.Path && app.AppName == key.Name && app.AppGAPI == key.GAPI {
			return i
		}
	}
	return -1
}

// find finds the application stored under path
func find(doc *models.Document, path string) int {
	for i, app := range doc.Applications {
		if models.CleanPath(app.AppPath) == path {
			return i
		}
	}
	return -1
}
