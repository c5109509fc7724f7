package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config/format"
	"github.com/0xalexb/hjarta-config/config/source"
	"github.com/0xalexb/hjarta-config/config/value"
)

// File collects configuration from a single document.
// Configure it before the first Collect call; Collect itself does not
// mutate the File and may run concurrently.
type File struct {
	resolver source.Resolver

	// namespace nests the document under a single key when not empty.
	namespace string

	// format selects the decoder; Unknown asks the resolver to discover it.
	format format.Format

	// required makes a missing document an error.
	required bool

	logger *slog.Logger
}

// FromString creates a required File holding the document text.
func FromString(text string, f format.Format) *File {
	return FromResolver(source.NewString(text), f)
}

// NewFile creates a required File searching the filesystem for name.
// Pass format.Unknown to discover the format from the file extension.
func NewFile(name string, f format.Format, opts ...source.FileOption) *File {
	return FromResolver(source.NewFile(name, opts...), f)
}

// FromResolver creates a required File backed by an arbitrary resolver.
func FromResolver(resolver source.Resolver, f format.Format) *File {
	return &File{
		resolver: resolver,
		format:   f,
		required: true,
	}
}

// Required sets whether a missing document is an error.
func (f *File) Required(required bool) *File {
	f.required = required

	return f
}

// Namespace nests the collected document under key.
func (f *File) Namespace(key string) *File {
	f.namespace = key

	return f
}

// Logger sets the logger used for collection debug output. Defaults to slog.Default().
func (f *File) Logger(logger *slog.Logger) *File {
	f.logger = logger

	return f
}

// Collect implements the Source interface. Every call resolves and decodes
// the document again.
func (f *File) Collect() (value.Map, error) {
	logger := f.logger
	if logger == nil {
		logger = slog.Default()
	}

	if f.format != format.Unknown && !f.format.Registered() {
		return nil, ForeignError{Cause: fmt.Errorf("%w: %s", format.ErrUnknownFormat, f.format)}
	}

	res, err := f.resolver.Resolve(f.format)
	if err != nil {
		if !f.required && errors.Is(err, source.ErrNotFound) {
			logger.Debug("optional configuration not found", slog.String("error", err.Error()))

			return value.Map{}, nil
		}

		return nil, ForeignError{Cause: err}
	}

	if res.Format == format.Unknown {
		return nil, ForeignError{Cause: ErrFormatUnresolved}
	}

	m, err := res.Format.Parse(res.URI, res.Contents, f.namespace)
	if err != nil {
		return nil, FileParseError{URI: res.URI, Cause: err}
	}

	logger.Debug("configuration collected",
		slog.String("uri", res.URI),
		slog.String("format", res.Format.String()),
		slog.Int("keys", len(m)),
	)

	return m, nil
}
