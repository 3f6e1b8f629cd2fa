package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"gfxmanager/catalog"
	"gfxmanager/config"
	"gfxmanager/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*session.Session, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(dir, "user_apps.json")
	quiet := log.New(io.Discard, "", 0)

	exe := filepath.Join(dir, "game.exe")
	require.NoError(t, os.WriteFile(exe, []byte("not a real executable"), 0644))

	return newSession(cfg, quiet, quiet), exe
}

func run(t *testing.T, sess *session.Session, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := handleCommandLineArgs(sess, args, &out)
	return code, out.String()
}

func TestCommandLineLifecycle(t *testing.T) {
	sess, exe := newTestSession(t)

	code, out := run(t, sess, "-add", exe)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Added game [Unknown]")

	code, out = run(t, sess, "-add", exe)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "already registered")

	code, out = run(t, sess, "-list")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "1. game [Unknown]")
	assert.Contains(t, out, "Settings: none")

	code, out = run(t, sess, "-show", exe)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "app_name: game")
	assert.Contains(t, out, "settings_set: false")
	assert.Contains(t, out, "fxaa_enable: null")

	code, out = run(t, sess, "-emit", exe)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "has no saved settings")

	code, out = run(t, sess, "-delete", exe)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Deleted game")

	code, out = run(t, sess, "-list")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No applications found.")
}

func TestCommandLineEmitAfterSave(t *testing.T) {
	sess, exe := newTestSession(t)

	code, out := run(t, sess, "-add", exe)
	require.Equal(t, 0, code, out)

	require.NoError(t, sess.Select(exe))
	_, err := sess.Panel().SelectText(catalog.FXAAEnable, "Enabled")
	require.NoError(t, err)
	_, err = sess.SaveSettings()
	require.NoError(t, err)

	code, out = run(t, sess, "-emit", exe)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, filepath.Join(filepath.Dir(exe), "dxvk.conf"))
	assert.Contains(t, out, filepath.Join(filepath.Dir(exe), "vkBasalt.conf"))
}

func TestCommandLineErrors(t *testing.T) {
	sess, exe := newTestSession(t)

	code, out := run(t, sess, "-bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Unknown option: -bogus")

	code, out = run(t, sess, "-add")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Executable path required")

	code, out = run(t, sess, "-show", exe)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "not registered")

	code, out = run(t, sess, "-help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "-emit <exe>")
}

func TestCommandLineMalformedDocument(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "user_apps.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{not json"), 0644))

	cfg := config.Default()
	cfg.Storage.Path = cfgPath
	quiet := log.New(io.Discard, "", 0)
	sess := newSession(cfg, quiet, quiet)

	code, out := run(t, sess, "-list")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Error loading applications")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}
