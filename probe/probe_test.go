package probe

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"gfxmanager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf16Bytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*2:], u)
	}
	return out
}

// versionString builds a String block starting 8 bytes into the buffer
func versionString(value string) []byte {
	buf := make([]byte, 8)
	key := utf16Bytes("FileDescription\x00")
	val := utf16Bytes(value + "\x00")

	block := make([]byte, 6)
	binary.LittleEndian.PutUint16(block[2:], uint16(len(val)/2))
	binary.LittleEndian.PutUint16(block[4:], 1)
	block = append(block, key...)
	// 6 + 32 bytes of header and key need 2 bytes of padding
	block = append(block, 0, 0)
	block = append(block, val...)
	binary.LittleEndian.PutUint16(block[0:], uint16(len(block)))

	buf = append(buf, block...)
	return append(buf, 0, 0, 0, 0)
}

func TestFileDescription(t *testing.T) {
	assert.Equal(t, "Space Game", FileDescription(versionString("Space Game")))
	assert.Equal(t, "", FileDescription([]byte("no resource here")))
	assert.Equal(t, "", FileDescription(nil))
}

func TestFileDescriptionTruncated(t *testing.T) {
	data := versionString("Space Game")
	assert.Equal(t, "", FileDescription(data[:len(data)-16]))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		libs []string
		want string
	}{
		{"no imports", nil, models.GAPINone},
		{"opengl", []string{"KERNEL32.dll", "OPENGL32.dll"}, models.GAPIOpenGL},
		{"d3d12", []string{"d3d12.dll", "dxgi.dll"}, models.GAPIDirectX12},
		{"d3d11 versioned", []string{"kernel32.dll", "d3d11_1.dll"}, models.GAPIDirectX11},
		{"d3d10", []string{"d3d10.dll"}, models.GAPIDirectX10},
		{"d3d9", []string{"D3D9.DLL"}, models.GAPIDirectX9},
		{"newest wins", []string{"d3d9.dll", "d3d11.dll"}, models.GAPIDirectX11},
		{"opengl first", []string{"d3d11.dll", "opengl32.dll"}, models.GAPIOpenGL},
		{"nothing known", []string{"kernel32.dll", "user32.dll"}, models.GAPINone},
		{"lookalike", []string{"d3d9x.dll"}, models.GAPINone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.libs))
		})
	}
}

func TestProbeNonExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	info := New().Probe(path)
	assert.Equal(t, Info{GAPI: models.GAPINone}, info)
}

func TestProbeCorruptExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.exe")
	require.NoError(t, os.WriteFile(path, []byte("MZ not really"), 0644))

	info := New().Probe(path)
	assert.Equal(t, Info{GAPI: models.GAPIUnknown}, info)
}

func TestProbeMissingFile(t *testing.T) {
	info := New().Probe(filepath.Join(t.TempDir(), "missing.exe"))
	assert.Equal(t, models.GAPIUnknown, info.GAPI)
	assert.Empty(t, info.Name)
}
