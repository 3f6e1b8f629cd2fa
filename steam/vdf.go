package steam

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Binary VDF field types
const (
	typeMap    byte = 0x00
	typeString byte = 0x01
	typeInt    byte = 0x02
	typeFloat  byte = 0x03
	typeUint64 byte = 0x07
	typeEnd    byte = 0x08
)

// ErrInvalidShortcuts indicates a shortcuts.vdf that does not start with the shortcuts map
var ErrInvalidShortcuts = errors.New("invalid shortcuts file format")

// Field is a shortcut entry this package does not interpret.
// Raw holds the encoded value, including the end marker of a map.
type Field struct {
	Kind byte
	Name string
	Raw  []byte
}

// Shortcut is one non-Steam game entry of shortcuts.vdf
type Shortcut struct {
	AppID               uint32
	AppName             string
	Exe                 string
	StartDir            string
	Icon                string
	ShortcutPath        string
	LaunchOptions       string
	IsHidden            bool
	AllowDesktopConfig  bool
	AllowOverlay        bool
	OpenVR              bool
	Devkit              bool
	DevkitGameID        string
	DevkitOverrideAppID uint32
	LastPlayTime        uint32
	FlatpakAppID        string
	Tags                []string
	// Extra keeps unknown entries in file order so they survive a rewrite
	Extra []Field
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readString() (string, error) {
	end := bytes.IndexByte(d.data[d.pos:], 0x00)
	if end < 0 {
		return "", io.ErrUnexpectedEOF
	}
	s := string(d.data[d.pos : d.pos+end])
	d.pos += end + 1
	return s, nil
}

func (d *decoder) readFixed(n int) ([]byte, error) {
	if d.pos+n > len(d.data) {
		return nil, io.ErrUnexpectedEOF
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) readUint32() (uint32, error) {
	b, err := d.readFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// skipValue consumes a value of kind and returns its encoded bytes
func (d *decoder) skipValue(kind byte) ([]byte, error) {
	start := d.pos
	var err error
	switch kind {
	case typeMap:
		err = d.skipMap()
	case typeString:
		_, err = d.readString()
	case typeInt, typeFloat:
		_, err = d.readFixed(4)
	case typeUint64:
		_, err = d.readFixed(8)
	default:
		return nil, fmt.Errorf("unknown field type %#x", kind)
	}
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), d.data[start:d.pos]...), nil
}

func (d *decoder) skipMap() error {
	for {
		kind, err := d.readByte()
		if err != nil {
			return err
		}
		if kind == typeEnd {
			return nil
		}
		if _, err := d.readString(); err != nil {
			return err
		}
		if _, err := d.skipValue(kind); err != nil {
			return err
		}
	}
}

// DecodeShortcuts parses the binary shortcuts.vdf format
func DecodeShortcuts(data []byte) ([]*Shortcut, error) {
	d := &decoder{data: data}

	kind, err := d.readByte()
	if err != nil {
		return nil, err
	}
	root, err := d.readString()
	if err != nil {
		return nil, err
	}
	if kind != typeMap || root != "shortcuts" {
		return nil, ErrInvalidShortcuts
	}

	var shortcuts []*Shortcut
	for {
		kind, err := d.readByte()
		if err != nil {
			// some writers omit the closing markers
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return shortcuts, nil
			}
			return nil, err
		}
		if kind == typeEnd {
			return shortcuts, nil
		}
		if kind != typeMap {
			return nil, fmt.Errorf("expected shortcut entry, got type %#x", kind)
		}
		if _, err := d.readString(); err != nil {
			return nil, err
		}

		sc, err := d.readShortcut()
		if err != nil {
			return nil, err
		}
		shortcuts = append(shortcuts, sc)
	}
}

func (d *decoder) readShortcut() (*Shortcut, error) {
	sc := &Shortcut{}
	for {
		kind, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if kind == typeEnd {
			return sc, nil
		}

		name, err := d.readString()
		if err != nil {
			return nil, err
		}

		start := d.pos
		known := false
		switch kind {
		case typeMap:
			if name == "tags" {
				if sc.Tags, err = d.readStrings(); err != nil {
					return nil, err
				}
				known = true
			}
		case typeString:
			value, err := d.readString()
			if err != nil {
				return nil, err
			}
			known = sc.setString(name, value)
		case typeInt:
			value, err := d.readUint32()
			if err != nil {
				return nil, err
			}
			known = sc.setInt(name, value)
		}
		if known {
			continue
		}

		d.pos = start
		raw, err := d.skipValue(kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		sc.Extra = append(sc.Extra, Field{Kind: kind, Name: name, Raw: raw})
	}
}

// readStrings reads a map and returns its string values, skipping anything else
func (d *decoder) readStrings() ([]string, error) {
	out := []string{}
	for {
		kind, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if kind == typeEnd {
			return out, nil
		}
		if _, err := d.readString(); err != nil {
			return nil, err
		}

		if kind == typeString {
			s, err := d.readString()
			if err != nil {
				return nil, err
			}
			out = append(out, s)
			continue
		}
		if _, err := d.skipValue(kind); err != nil {
			return nil, err
		}
	}
}

func (sc *Shortcut) setString(name, value string) bool {
	switch name {
	case "appname", "AppName":
		sc.AppName = value
	case "exe", "Exe":
		sc.Exe = value
	case "StartDir":
		sc.StartDir = value
	case "icon":
		sc.Icon = value
	case "ShortcutPath":
		sc.ShortcutPath = value
	case "LaunchOptions":
		sc.LaunchOptions = value
	case "DevkitGameID":
		sc.DevkitGameID = value
	case "FlatpakAppID":
		sc.FlatpakAppID = value
	default:
		return false
	}
	return true
}

func (sc *Shortcut) setInt(name string, value uint32) bool {
	switch name {
	case "appid":
		sc.AppID = value
	case "IsHidden":
		sc.IsHidden = value != 0
	case "AllowDesktopConfig":
		sc.AllowDesktopConfig = value != 0
	case "AllowOverlay":
		sc.AllowOverlay = value != 0
	case "OpenVR":
		sc.OpenVR = value != 0
	case "Devkit":
		sc.Devkit = value != 0
	case "DevkitOverrideAppID":
		sc.DevkitOverrideAppID = value
	case "LastPlayTime":
		sc.LastPlayTime = value
	default:
		return false
	}
	return true
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) putKey(kind byte, name string) {
	e.buf.WriteByte(kind)
	e.buf.WriteString(name)
	e.buf.WriteByte(0x00)
}

func (e *encoder) putString(name, value string) {
	e.putKey(typeString, name)
	e.buf.WriteString(value)
	e.buf.WriteByte(0x00)
}

func (e *encoder) putInt(name string, value uint32) {
	e.putKey(typeInt, name)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	e.buf.Write(b[:])
}

func (e *encoder) putBool(name string, value bool) {
	if value {
		e.putInt(name, 1)
	} else {
		e.putInt(name, 0)
	}
}

// EncodeShortcuts builds the binary shortcuts.vdf format
func EncodeShortcuts(shortcuts []*Shortcut) []byte {
	e := &encoder{}
	e.putKey(typeMap, "shortcuts")

	for i, sc := range shortcuts {
		e.putKey(typeMap, strconv.Itoa(i))

		e.putInt("appid", sc.AppID)
		e.putString("appname", sc.AppName)
		e.putString("exe", sc.Exe)
		e.putString("StartDir", sc.StartDir)
		e.putString("icon", sc.Icon)
		e.putString("ShortcutPath", sc.ShortcutPath)
		e.putString("LaunchOptions", sc.LaunchOptions)
		e.putBool("IsHidden", sc.IsHidden)
		e.putBool("AllowDesktopConfig", sc.AllowDesktopConfig)
		e.putBool("AllowOverlay", sc.AllowOverlay)
		e.putBool("OpenVR", sc.OpenVR)
		e.putBool("Devkit", sc.Devkit)
		e.putString("DevkitGameID", sc.DevkitGameID)
		e.putInt("DevkitOverrideAppID", sc.DevkitOverrideAppID)
		e.putInt("LastPlayTime", sc.LastPlayTime)
		e.putString("FlatpakAppID", sc.FlatpakAppID)

		e.putKey(typeMap, "tags")
		for j, tag := range sc.Tags {
			e.putString(strconv.Itoa(j), tag)
		}
		e.buf.WriteByte(typeEnd)

		for _, f := range sc.Extra {
			e.putKey(f.Kind, f.Name)
			e.buf.Write(f.Raw)
		}

		e.buf.WriteByte(typeEnd)
	}

	e.buf.WriteByte(typeEnd)
	e.buf.WriteByte(typeEnd)
	return e.buf.Bytes()
}
