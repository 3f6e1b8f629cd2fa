package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind identifies what a persisted setting value holds
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindString
)

// Value is a single persisted setting: null, a boolean or a string
type Value struct {
	kind ValueKind
	b    bool
	s    string
}

// Null returns the "not configured" value
func Null() Value {
	return Value{}
}

// Bool wraps a boolean setting value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String wraps a string setting value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind reports which variant the value holds
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is unset
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean and whether the value is a boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string and whether the value is a string
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// String renders the value for display
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.s
	default:
		return "null"
	}
}

// Interface returns the value as nil, bool or string
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindString:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.s); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML renders the value as a plain YAML scalar
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = Null()
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case bool:
		*v = Bool(t)
	case string:
		*v = String(t)
	default:
		return fmt.Errorf("setting value must be null, boolean or string, got %s", string(trimmed))
	}
	return nil
}
