package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gfxmanager/models"
	"gfxmanager/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber map[string]probe.Info

func (f fakeProber) Probe(path string) probe.Info {
	if info, ok := f[path]; ok {
		return info
	}
	return probe.Info{GAPI: models.GAPIUnknown}
}

func TestAddUsesProbedMetadata(t *testing.T) {
	r := New(fakeProber{
		"/games/a/game.exe": {Name: "Space Game", GAPI: models.GAPIDirectX11},
	})

	app, err := r.Add("/games/a/game.exe")
	require.NoError(t, err)
	assert.Equal(t, "Space Game", app.AppName)
	assert.Equal(t, models.GAPIDirectX11, app.AppGAPI)
	require.Len(t, app.Settings, 1)
	assert.False(t, app.Settings[0].SettingsSet)

	app, err = r.Add("/games/b/Other.exe")
	require.NoError(t, err)
	assert.Equal(t, "Other", app.AppName, "falls back to the file name")
	assert.Equal(t, models.GAPIUnknown, app.AppGAPI)
}

func TestAddDuplicateFails(t *testing.T) {
	r := New(fakeProber{})

	_, err := r.Add("/games/game.exe")
	require.NoError(t, err)

	_, err = r.Add(`"/games/./game.exe"`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateEntry))

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "/games/game.exe", dup.Path)
	assert.Equal(t, 1, r.Len())

	_, err = r.Add("/games/GAME.exe")
	assert.NoError(t, err, "comparison is case-sensitive")
}

func TestAddEmptyPath(t *testing.T) {
	r := New(fakeProber{})
	_, err := r.Add("  ")
	assert.Error(t, err)
}

func TestRemoveComparesFullPath(t *testing.T) {
	r := New(fakeProber{})
	_, err := r.Add("/games/a/game.exe")
	require.NoError(t, err)
	_, err = r.Add("/games/b/game.exe")
	require.NoError(t, err)

	assert.True(t, r.Remove("/games/a/game.exe"))
	assert.False(t, r.Remove("/games/a/game.exe"))

	_, ok := r.Get("/games/b/game.exe")
	assert.True(t, ok, "same file name in another folder is untouched")
}

func TestSelection(t *testing.T) {
	r := New(fakeProber{})

	_, err := r.Selected()
	assert.ErrorIs(t, err, ErrNoSelection)

	for _, p := range []string{"/a.exe", "/b.exe", "/c.exe"} {
		_, err := r.Add(p)
		require.NoError(t, err)
	}

	require.NoError(t, r.Select("/b.exe"))
	require.NoError(t, r.Select("/c.exe"))
	app, err := r.Selected()
	require.NoError(t, err)
	assert.Equal(t, "/c.exe", app.AppPath, "only one application is current")

	assert.ErrorIs(t, r.Select("/missing.exe"), ErrNotRegistered)

	r.Remove("/a.exe")
	app, err = r.Selected()
	require.NoError(t, err)
	assert.Equal(t, "/c.exe", app.AppPath, "selection follows the record")

	r.Remove("/c.exe")
	_, err = r.Selected()
	assert.ErrorIs(t, err, ErrNoSelection)

	require.NoError(t, r.Select("/b.exe"))
	r.ClearSelection()
	_, err = r.Selected()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestRenameAndSetRecord(t *testing.T) {
	r := New(fakeProber{})
	_, err := r.Add("/a.exe")
	require.NoError(t, err)

	require.NoError(t, r.Rename("/a.exe", "  Alpha  "))
	app, _ := r.Get("/a.exe")
	assert.Equal(t, "Alpha", app.AppName)

	assert.ErrorIs(t, r.Rename("/a.exe", " "), ErrEmptyName)
	assert.ErrorIs(t, r.Rename("/b.exe", "Beta"), ErrNotRegistered)

	rec := models.NewSettingsRecord()
	rec.SettingsSet = true
	require.NoError(t, r.SetRecord("/a.exe", rec))
	app, _ = r.Get("/a.exe")
	assert.True(t, app.Record().SettingsSet)
	assert.ErrorIs(t, r.SetRecord("/b.exe", rec), ErrNotRegistered)
}

func TestLoadReplacesContents(t *testing.T) {
	r := New(fakeProber{})
	_, err := r.Add("/old.exe")
	require.NoError(t, err)
	require.NoError(t, r.Select("/old.exe"))

	r.Load([]models.Application{
		models.NewApplication("One", "/one.exe", models.GAPIOpenGL),
		models.NewApplication("Two", "/two.exe", models.GAPIDirectX9),
	})

	assert.Equal(t, 2, r.Len())
	_, err = r.Selected()
	assert.ErrorIs(t, err, ErrNoSelection)

	apps := r.Applications()
	apps[0].AppName = "changed"
	app, _ := r.Get("/one.exe")
	assert.Equal(t, "One", app.AppName, "Applications returns a copy")
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0755))
	for _, name := range []string{"bin/game.exe", "launcher.EXE", "readme.txt", "bin/data.pak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	found, err := New(fakeProber{}).ScanFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "bin", "game.exe"),
		filepath.Join(dir, "launcher.EXE"),
	}, found)
}
