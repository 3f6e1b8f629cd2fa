package models

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsRecordIsAllNull(t *testing.T) {
	rec := NewSettingsRecord()

	assert.False(t, rec.SettingsSet)
	assert.True(t, rec.IsEmpty())
	for _, key := range SettingKeys {
		assert.True(t, rec.Get(key).IsNull(), key)
	}
}

func TestSettingsRecordKeyOrder(t *testing.T) {
	data, err := json.Marshal(NewSettingsRecord())
	require.NoError(t, err)

	out := string(data)
	last := strings.Index(out, `"settings_set"`)
	require.GreaterOrEqual(t, last, 0)
	for _, key := range SettingKeys {
		idx := strings.Index(out, `"`+key+`":null`)
		require.Greater(t, idx, last, key)
		last = idx
	}
	assert.Len(t, SettingKeys, 31)
}

func TestSettingsRecordGetSet(t *testing.T) {
	rec := NewSettingsRecord()

	require.True(t, rec.Set(KeyAFEnable, String("Enable (D3D9)")))
	require.True(t, rec.Set(KeyCASEnable, Bool(true)))
	assert.False(t, rec.Set("not_a_key", Bool(true)))

	s, ok := rec.AFEnable.AsString()
	require.True(t, ok)
	assert.Equal(t, "Enable (D3D9)", s)

	b, ok := rec.Get(KeyCASEnable).AsBool()
	require.True(t, ok)
	assert.True(t, b)
	assert.True(t, rec.Get("not_a_key").IsNull())
	assert.False(t, rec.IsEmpty())
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		json  string
	}{
		{"null", Null(), `null`},
		{"true", Bool(true), `true`},
		{"false", Bool(false), `false`},
		{"string", String("x16"), `"x16"`},
		{"no html escaping", String("<b>"), `"<b>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.value.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))

			var back Value
			require.NoError(t, json.Unmarshal([]byte(tt.json), &back))
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestValueRejectsNumbers(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`16`), &v))
}

func TestApplicationRecordDefaults(t *testing.T) {
	app := NewApplication("Game", "/games/game.exe", GAPIDirectX11)

	require.Len(t, app.Settings, 1)
	assert.False(t, app.Record().SettingsSet)
	assert.Equal(t, "/games", app.Dir())

	empty := Application{}
	assert.True(t, empty.Record().IsEmpty())
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Game", DefaultName("/games/Game.exe"))
	assert.Equal(t, "launcher", DefaultName("launcher"))
}

func TestCleanPath(t *testing.T) {
	wd, err := filepath.Abs(".")
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/games/game.exe", "/games/game.exe"},
		{`  "/games/game.exe"  `, "/games/game.exe"},
		{"'/games/../games/./game.exe'", "/games/game.exe"},
		{"games/game.exe", filepath.Join(wd, "games", "game.exe")},
		{" games/game.exe ", filepath.Join(wd, "games", "game.exe")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CleanPath(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanPath(got))
		})
	}
}
