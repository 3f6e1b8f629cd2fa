package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Emit.DXVK)
	assert.True(t, cfg.Emit.VkBasalt)
	assert.False(t, cfg.Steam.LaunchOptions)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
path = "/data/user_apps.json"

[emit]
dxvk = false

[steam]
launch_options = true
root = "/home/user/.steam/steam"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/user_apps.json", cfg.Storage.Path)
	assert.False(t, cfg.Emit.DXVK)
	assert.True(t, cfg.Emit.VkBasalt, "keys absent from the file keep their defaults")
	assert.True(t, cfg.Steam.LaunchOptions)
	assert.Equal(t, "/home/user/.steam/steam", cfg.Steam.Root)
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\npath = "), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.Path)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GFXMANAGER_DATA_FILE", "/env/user_apps.json")
	t.Setenv("GFXMANAGER_DEBUG", "true")
	t.Setenv("GFXMANAGER_EMIT_VKBASALT", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/user_apps.json", cfg.Storage.Path)
	assert.True(t, cfg.Log.Debug)
	assert.False(t, cfg.Emit.VkBasalt)
}

func TestEnvOverrideInvalidBool(t *testing.T) {
	t.Setenv("GFXMANAGER_STEAM_LAUNCH_OPTIONS", "sometimes")

	_, err := Load("")
	var envErr *EnvError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, "GFXMANAGER_STEAM_LAUNCH_OPTIONS", envErr.Name)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Storage.Path = "/tmp/apps.json"
	cfg.Steam.LaunchOptions = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
}
