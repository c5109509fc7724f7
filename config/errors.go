package config

import (
	"errors"
	"fmt"
)

// ErrFormatUnresolved is returned when neither the caller nor the resolver provided a format.
var ErrFormatUnresolved = errors.New("configuration format could not be resolved")

// ErrEmptyName is returned when a module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNilSource is returned when a nil Source is registered.
var ErrNilSource = errors.New("source must not be nil")

// ForeignError occurs when a configuration source cannot be resolved.
type ForeignError struct {
	Cause error
}

// Error implements the error interface.
func (e ForeignError) Error() string {
	return fmt.Sprintf("resolving configuration source: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ForeignError) Unwrap() error {
	return e.Cause
}

// FileParseError occurs when a resolved document cannot be decoded.
type FileParseError struct {
	URI   string
	Cause error
}

// Error implements the error interface.
func (e FileParseError) Error() string {
	return fmt.Sprintf("parsing configuration %s: %s", e.URI, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FileParseError) Unwrap() error {
	return e.Cause
}
