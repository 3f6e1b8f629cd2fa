package models

import (
	"path/filepath"
	"strings"
)

// Graphics API labels reported for an executable
const (
	GAPIUnknown   = "Unknown"
	GAPINone      = "N/A"
	GAPIOpenGL    = "OpenGL"
	GAPIDirectX9  = "DirectX 9"
	GAPIDirectX10 = "DirectX 10"
	GAPIDirectX11 = "DirectX 11"
	GAPIDirectX12 = "DirectX 12"
)

// Application represents a managed executable and its graphics settings
type Application struct {
	AppName  string           `json:"app_name" yaml:"app_name"`
	AppPath  string           `json:"app_path" yaml:"app_path"`
	AppGAPI  string           `json:"app_gapi" yaml:"app_gapi"`
	Settings []SettingsRecord `json:"settings" yaml:"settings"`
}

// NewApplication creates an application with a single empty settings record
func NewApplication(name, path, gapi string) Application {
	return Application{
		AppName:  name,
		AppPath:  path,
		AppGAPI:  gapi,
		Settings: []SettingsRecord{NewSettingsRecord()},
	}
}

// Record returns the application's settings record, or an empty one
func (a Application) Record() SettingsRecord {
	if len(a.Settings) == 0 {
		return NewSettingsRecord()
	}
	return a.Settings[0]
}

// SetRecord replaces the application's settings record
func (a *Application) SetRecord(rec SettingsRecord) {
	a.Settings = []SettingsRecord{rec}
}

// Dir returns the folder holding the executable
func (a Application) Dir() string {
	return filepath.Dir(a.AppPath)
}

// DefaultName derives a display name from an executable path
func DefaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CleanPath normalizes an executable path for storage and comparison.
// Quotes and padding are dropped and relative paths are made absolute.
func CleanPath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return path
	}

	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			path = absPath
		}
	}
	return path
}

// Document is the root of the persisted settings file
type Document struct {
	Applications []Application `json:"applications" yaml:"applications"`
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{Applications: []Application{}}
}
