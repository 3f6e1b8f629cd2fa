package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound indicates no saved settings exist for an application
	ErrRecordNotFound = errors.New("settings record not found")

	// ErrMalformedDocument indicates the settings file could not be parsed
	ErrMalformedDocument = errors.New("malformed settings document")
)

// MalformedDocumentError reports a settings file that exists but cannot be parsed.
// The file is left untouched.
type MalformedDocumentError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMalformedDocument, e.Path, e.Err)
}

// Unwrap returns the parse error
func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformedDocument
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// IsNotFound reports whether err means no settings were saved
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// IsMalformed reports whether err comes from an unreadable settings file
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}
