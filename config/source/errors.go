package source

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotFound matches every NotFoundError.
var ErrNotFound = errors.New("configuration file not found")

// NotFoundError occurs when no candidate file exists for a base path.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("configuration file %q not found", e.Path)
}

// Is reports whether target is ErrNotFound or fs.ErrNotExist.
func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound || target == fs.ErrNotExist
}

// IOError occurs when a candidate file exists but cannot be inspected or read.
type IOError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e IOError) Error() string {
	return fmt.Sprintf("reading configuration file %q: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e IOError) Unwrap() error {
	return e.Cause
}
