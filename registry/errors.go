package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntry indicates the executable is already registered
	ErrDuplicateEntry = errors.New("application already added")

	// ErrNoSelection indicates no application is selected
	ErrNoSelection = errors.New("no application selected")

	// ErrNotRegistered indicates the path is not in the registry
	ErrNotRegistered = errors.New("application not registered")

	// ErrEmptyName indicates a rename to a blank name
	ErrEmptyName = errors.New("application name cannot be empty")
)

// DuplicateError reports an executable that was added twice
type DuplicateError struct {
	Path string
	Name string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrDuplicateEntry, e.Name, e.Path)
}

// Unwrap returns ErrDuplicateEntry
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateEntry
}
