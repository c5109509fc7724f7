package source

import (
	"github.com/0xalexb/hjarta-config/config/format"
)

// StringURI identifies documents resolved from in-memory text.
const StringURI = "<string>"

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	// URI identifies the document, typically its path.
	URI string
	// Contents holds the raw document text.
	Contents string
	// Format is the requested format, or the discovered one when none was requested.
	Format format.Format
}

// Resolver turns a logical reference into document text.
// A zero forced format asks the resolver to discover the format.
type Resolver interface {
	Resolve(forced format.Format) (Resolved, error)
}

// String resolves to in-memory text.
type String struct {
	text string
}

// NewString creates a String resolver holding text.
func NewString(text string) String {
	return String{text: text}
}

// Resolve implements the Resolver interface. It never fails and cannot
// discover a format, so the forced format is returned as is.
func (s String) Resolve(forced format.Format) (Resolved, error) {
	return Resolved{
		URI:      StringURI,
		Contents: s.text,
		Format:   forced,
	}, nil
}
