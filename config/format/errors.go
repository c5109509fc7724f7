package format

import "fmt"

// ParseError occurs when a document cannot be decoded by its format.
type ParseError struct {
	Format Format
	URI    string
	Cause  error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("invalid %s in %s: %s", e.Format, e.URI, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}
