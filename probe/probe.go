// Package probe reads the display name and graphics API of a Windows executable.
package probe

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"path/filepath"
	"regexp"
	"strings"

	"gfxmanager/models"

	"golang.org/x/text/encoding/unicode"
)

// Info is what the probe could learn about an executable. Name is empty when unknown.
type Info struct {
	Name string
	GAPI string
}

// apiImports maps import name patterns to graphics APIs, newest first
var apiImports = []struct {
	pattern *regexp.Regexp
	gapi    string
}{
	{regexp.MustCompile(`^d3d12(_\d+)?\.dll$`), models.GAPIDirectX12},
	{regexp.MustCompile(`^d3d11(_\d+)?\.dll$`), models.GAPIDirectX11},
	{regexp.MustCompile(`^d3d10(_\d+)?\.dll$`), models.GAPIDirectX10},
	{regexp.MustCompile(`^d3d9(_\d+)?\.dll$`), models.GAPIDirectX9},
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Prober inspects PE files
type Prober struct{}

// New creates a prober
func New() *Prober {
	return &Prober{}
}

// Probe inspects the executable at path. It never fails: files that are not
// executables report N/A and files that cannot be parsed report Unknown.
func (p *Prober) Probe(path string) Info {
	if !strings.EqualFold(filepath.Ext(path), ".exe") {
		return Info{GAPI: models.GAPINone}
	}

	f, err := pe.Open(path)
	if err != nil {
		return Info{GAPI: models.GAPIUnknown}
	}
	defer f.Close()

	info := Info{GAPI: models.GAPIUnknown}
	if libs, err := f.ImportedLibraries(); err == nil {
		info.GAPI = Classify(libs)
	}

	if sec := f.Section(".rsrc"); sec != nil {
		if data, err := sec.Data(); err == nil {
			info.Name = FileDescription(data)
		}
	}
	return info
}

// Classify names the graphics API implied by a list of imported DLLs
func Classify(libs []string) string {
	if len(libs) == 0 {
		return models.GAPINone
	}

	lower := make([]string, len(libs))
	for i, lib := range libs {
		lower[i] = strings.ToLower(lib)
	}

	for _, lib := range lower {
		if lib == "opengl32.dll" {
			return models.GAPIOpenGL
		}
	}
	for _, api := range apiImports {
		for _, lib := range lower {
			if api.pattern.MatchString(lib) {
				return api.gapi
			}
		}
	}
	return models.GAPINone
}

// FileDescription extracts the FileDescription string from raw version resource data
func FileDescription(rsrc []byte) string {
	key, err := utf16le.NewEncoder().Bytes([]byte("FileDescription\x00"))
	if err != nil {
		return ""
	}

	// a String block is wLength, wValueLength, wType, then the key
	start := bytes.Index(rsrc, key)
	for start >= 0 {
		if start >= 6 && start%2 == 0 {
			if name, ok := stringValue(rsrc, start, len(key)); ok {
				return name
			}
		}
		next := bytes.Index(rsrc[start+1:], key)
		if next < 0 {
			break
		}
		start += next + 1
	}
	return ""
}

func stringValue(rsrc []byte, keyStart, keyLen int) (string, bool) {
	valueLen := int(binary.LittleEndian.Uint16(rsrc[keyStart-4:]))
	if valueLen == 0 {
		return "", false
	}

	// the value is aligned to 32 bits from the block start
	blockStart := keyStart - 6
	off := keyStart + keyLen
	if pad := (off - blockStart) % 4; pad != 0 {
		off += 4 - pad
	}
	end := off + valueLen*2
	if end > len(rsrc) {
		return "", false
	}

	decoded, err := utf16le.NewDecoder().Bytes(rsrc[off:end])
	if err != nil {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimRight(string(decoded), "\x00"))
	return name, name != ""
}
