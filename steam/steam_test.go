package steam

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"gfxmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLaunchOptions(t *testing.T) {
	tests := []struct {
		existing string
		want     string
	}{
		{"", "ENABLE_VKBASALT=1 %command%"},
		{"  ", "ENABLE_VKBASALT=1 %command%"},
		{"-dx11", "ENABLE_VKBASALT=1 -dx11 %command%"},
		{"gamemoderun %command% -dx11", "ENABLE_VKBASALT=1 gamemoderun %command% -dx11"},
		{"ENABLE_VKBASALT=1 %command%", "ENABLE_VKBASALT=1 %command%"},
		{"gamemoderun ENABLE_VKBASALT=1 %command%", "gamemoderun ENABLE_VKBASALT=1 %command%"},
		{"ENABLE_VKBASALT=0 %command%", "ENABLE_VKBASALT=1 %command%"},
		{"ENABLE_VKBASALT=", "ENABLE_VKBASALT=1 %command%"},
		{"-dx11 ENABLE_VKBASALT=0", "ENABLE_VKBASALT=1 -dx11 %command%"},
		{"ENABLE_VKBASALT=10 mangohud %command%", "ENABLE_VKBASALT=1 mangohud %command%"},
		{"ENABLE_VKBASALT=1 ENABLE_VKBASALT=0 %command%", "ENABLE_VKBASALT=1 %command%"},
	}

	for _, tt := range tests {
		t.Run(tt.existing, func(t *testing.T) {
			got := MergeLaunchOptions(tt.existing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, MergeLaunchOptions(got), "merging twice changes nothing")
		})
	}
}

func TestShortcutsRoundTrip(t *testing.T) {
	in := []*Shortcut{
		{
			AppID:              AppID("Space Game", "/games/space/game.exe"),
			AppName:            "Space Game",
			Exe:                `"/games/space/game.exe"`,
			StartDir:           `"/games/space"`,
			LaunchOptions:      "-dx11",
			AllowDesktopConfig: true,
			AllowOverlay:       true,
			LastPlayTime:       1700000000,
			Tags:               []string{"favorite", "rpg"},
		},
		{AppID: 42, AppName: "Other", Exe: "/other.exe", IsHidden: true},
	}

	out, err := DecodeShortcuts(EncodeShortcuts(in))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, "Other", out[1].AppName)
	assert.True(t, out[1].IsHidden)
	assert.Empty(t, out[1].Tags)
}

func TestDecodeShortcutsErrors(t *testing.T) {
	_, err := DecodeShortcuts([]byte("\x00notshortcuts\x00\x08\x08"))
	assert.ErrorIs(t, err, ErrInvalidShortcuts)

	_, err = DecodeShortcuts(nil)
	assert.Error(t, err)

	data := EncodeShortcuts([]*Shortcut{{AppName: "Cut"}})
	_, err = DecodeShortcuts(data[:30])
	assert.Error(t, err)

	empty, err := DecodeShortcuts(EncodeShortcuts(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// shortcutsWithUnknownFields encodes one shortcut carrying fields Steam added
// after this package was written
func shortcutsWithUnknownFields() []byte {
	e := &encoder{}
	e.putKey(typeMap, "shortcuts")
	e.putKey(typeMap, "0")
	e.putInt("appid", 7)
	e.putString("AppName", "Game")
	e.putString("Exe", `"/games/Game.exe"`)
	e.putString("sortas", "game, the")
	e.putKey(typeMap, "collections")
	e.putString("0", "favorite")
	e.putInt("1", 3)
	e.buf.WriteByte(typeEnd)
	e.putString("LaunchOptions", "-windowed")
	e.putKey(typeUint64, "LastUpdated")
	e.buf.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	e.putKey(typeMap, "tags")
	e.putString("0", "rpg")
	e.buf.WriteByte(typeEnd)
	e.buf.WriteByte(typeEnd)
	e.buf.WriteByte(typeEnd)
	e.buf.WriteByte(typeEnd)
	return e.buf.Bytes()
}

func TestShortcutsKeepUnknownFields(t *testing.T) {
	shortcuts, err := DecodeShortcuts(shortcutsWithUnknownFields())
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)

	sc := shortcuts[0]
	assert.Equal(t, "Game", sc.AppName)
	assert.Equal(t, "-windowed", sc.LaunchOptions)
	assert.Equal(t, []string{"rpg"}, sc.Tags)
	require.Len(t, sc.Extra, 3)
	assert.Equal(t, Field{Kind: typeString, Name: "sortas", Raw: []byte("game, the\x00")}, sc.Extra[0])
	assert.Equal(t, typeMap, sc.Extra[1].Kind)
	assert.Equal(t, "collections", sc.Extra[1].Name)
	assert.Equal(t, typeUint64, sc.Extra[2].Kind)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, sc.Extra[2].Raw)

	again, err := DecodeShortcuts(EncodeShortcuts(shortcuts))
	require.NoError(t, err)
	assert.Equal(t, shortcuts, again)
}

func TestApplyLaunchOptionsKeepsUnknownFields(t *testing.T) {
	root, path := newSteamRoot(t, nil)
	require.NoError(t, os.WriteFile(path, shortcutsWithUnknownFields(), 0644))
	before, err := DecodeShortcuts(shortcutsWithUnknownFields())
	require.NoError(t, err)

	changed, err := NewManager(root).ApplyLaunchOptions(models.NewApplication("Game", "/games/Game.exe", models.GAPIDirectX11))
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	after, err := DecodeShortcuts(data)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "ENABLE_VKBASALT=1 -windowed %command%", after[0].LaunchOptions)
	assert.Equal(t, before[0].Extra, after[0].Extra)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func newSteamRoot(t *testing.T, shortcuts []*Shortcut) (string, string) {
	t.Helper()
	root := t.TempDir()
	config := filepath.Join(root, "userdata", "12345", "config")
	require.NoError(t, os.MkdirAll(config, 0755))

	path := filepath.Join(config, "shortcuts.vdf")
	if shortcuts != nil {
		require.NoError(t, os.WriteFile(path, EncodeShortcuts(shortcuts), 0644))
	}
	return root, path
}

func TestApplyLaunchOptions(t *testing.T) {
	root, path := newSteamRoot(t, []*Shortcut{
		{AppName: "Game", Exe: `"/games/Game.exe"`, LaunchOptions: "-windowed"},
		{AppName: "Other", Exe: `"/games/Other.exe"`},
	})
	m := NewManager(root)
	app := models.NewApplication("Game", "/games/Game.exe", models.GAPIDirectX11)

	changed, err := m.ApplyLaunchOptions(app)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	shortcuts, err := DecodeShortcuts(data)
	require.NoError(t, err)
	assert.Equal(t, "ENABLE_VKBASALT=1 -windowed %command%", shortcuts[0].LaunchOptions)
	assert.Empty(t, shortcuts[1].LaunchOptions)

	changed, err = m.ApplyLaunchOptions(app)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestApplyLaunchOptionsNoShortcut(t *testing.T) {
	root, _ := newSteamRoot(t, []*Shortcut{{AppName: "Other", Exe: "/games/Other.exe"}})

	_, err := NewManager(root).ApplyLaunchOptions(models.NewApplication("Game", "/games/Game.exe", models.GAPINone))
	assert.True(t, errors.Is(err, ErrShortcutNotFound))
}

func TestApplyLaunchOptionsNoShortcutsFile(t *testing.T) {
	root, _ := newSteamRoot(t, nil)

	_, err := NewManager(root).ApplyLaunchOptions(models.NewApplication("Game", "/games/Game.exe", models.GAPINone))
	assert.ErrorIs(t, err, ErrShortcutNotFound)
}

func TestApplyLaunchOptionsNoSteam(t *testing.T) {
	_, err := NewManager(t.TempDir()).ApplyLaunchOptions(models.NewApplication("Game", "/g.exe", models.GAPINone))
	assert.ErrorIs(t, err, ErrSteamNotFound)
}

func TestAddShortcut(t *testing.T) {
	root, path := newSteamRoot(t, nil)
	m := NewManager(root)
	app := models.NewApplication("Game", "/games/Game.exe", models.GAPIDirectX11)

	id, err := m.AddShortcut(app)
	require.NoError(t, err)
	assert.Equal(t, AppID("Game", "/games/Game.exe"), id)
	assert.NotZero(t, id&0x80000000)

	again, err := m.AddShortcut(app)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	shortcuts, err := DecodeShortcuts(data)
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, `"/games/Game.exe"`, shortcuts[0].Exe)
	assert.Equal(t, "ENABLE_VKBASALT=1 %command%", shortcuts[0].LaunchOptions)
	assert.Equal(t, "steam://rungameid/"+strconv.FormatUint(uint64(id), 10), ShortcutURL(id))
}
