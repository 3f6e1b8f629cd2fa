// Package config loads gfxmanager's own settings from a TOML file and the environment.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gfxmanager/storage"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "GFXMANAGER_"

// Config holds the tool configuration
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Emit    EmitConfig    `toml:"emit"`
	Steam   SteamConfig   `toml:"steam"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig says where the settings document lives
type StorageConfig struct {
	Path string `toml:"path"`
}

// EmitConfig selects which config files are written on save
type EmitConfig struct {
	DXVK     bool `toml:"dxvk"`
	VkBasalt bool `toml:"vkbasalt"`
}

// SteamConfig controls updating Steam shortcut launch options on save
type SteamConfig struct {
	LaunchOptions bool   `toml:"launch_options"`
	Root          string `toml:"root"`
}

// LogConfig controls log output
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// ParseError represents an error while parsing the configuration file
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("config parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EnvError reports an environment override with an unusable value
type EnvError struct {
	Name  string
	Value string
	Err   error
}

// Error implements the error interface
func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Name, e.Err)
}

// Unwrap returns the underlying error
func (e *EnvError) Unwrap() error {
	return e.Err
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: storage.DefaultPath()},
		Emit:    EmitConfig{DXVK: true, VkBasalt: true},
	}
}

// DefaultPath returns the default location of the configuration file
func DefaultPath() string {
	return filepath.Join(filepath.Dir(storage.DefaultPath()), "config.toml")
}

// Load reads the configuration at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
			}
		case os.IsNotExist(err):
			// File doesn't exist, keep defaults
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// envMapping maps environment variables to the field they override
func envMapping(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		EnvPrefix + "DATA_FILE":            &cfg.Storage.Path,
		EnvPrefix + "EMIT_DXVK":            &cfg.Emit.DXVK,
		EnvPrefix + "EMIT_VKBASALT":        &cfg.Emit.VkBasalt,
		EnvPrefix + "STEAM_LAUNCH_OPTIONS": &cfg.Steam.LaunchOptions,
		EnvPrefix + "STEAM_ROOT":           &cfg.Steam.Root,
		EnvPrefix + "DEBUG":                &cfg.Log.Debug,
	}
}

func applyEnv(cfg *Config) error {
	for name, field := range envMapping(cfg) {
		val, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		switch f := field.(type) {
		case *string:
			*f = val
		case *bool:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return &EnvError{Name: name, Value: val, Err: err}
			}
			*f = b
		}
	}
	return nil
}
