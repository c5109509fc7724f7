package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/0xalexb/hjarta-config/config/value"
)

// ErrUnknownFormat is returned when a Format is not registered.
var ErrUnknownFormat = errors.New("unknown format")

// ErrNotMapping is returned when a document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// ErrEmptyName is returned when registering a format without a name.
var ErrEmptyName = errors.New("format name must not be empty")

// ErrNoExtensions is returned when registering a format without extensions.
var ErrNoExtensions = errors.New("format must declare at least one extension")

// ErrNilDecoder is returned when registering a format without a decoder.
var ErrNilDecoder = errors.New("decoder must not be nil")

// ErrDuplicate is returned when a format name or extension is already registered.
var ErrDuplicate = errors.New("already registered")

// Format identifies a configuration file format.
// The zero value is Unknown and means the format has not been given.
type Format int

// Built-in formats in declaration order.
const (
	Unknown Format = iota
	TOML
	JSON
	YAML
	HCL
	INI
)

// Decoder turns document text into a mapping.
type Decoder interface {
	Decode(text string) (value.Map, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(text string) (value.Map, error)

// Decode implements the Decoder interface.
func (f DecoderFunc) Decode(text string) (value.Map, error) {
	return f(text)
}

type entry struct {
	name       string
	extensions []string
	decoder    Decoder
}

type registry struct {
	mu      sync.RWMutex
	entries []entry
}

//nolint:gochecknoglobals // process wide format table, extended through Register.
var formats = &registry{
	entries: []entry{
		{name: "toml", extensions: []string{"toml"}, decoder: DecoderFunc(decodeTOML)},
		{name: "json", extensions: []string{"json"}, decoder: DecoderFunc(decodeJSON)},
		{name: "yaml", extensions: []string{"yaml", "yml"}, decoder: DecoderFunc(decodeYAML)},
		{name: "hcl", extensions: []string{"hcl"}, decoder: DecoderFunc(decodeHCL)},
		{name: "ini", extensions: []string{"ini"}, decoder: DecoderFunc(decodeINI)},
	},
}

func (r *registry) lookup(f Format) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := int(f) - 1
	if idx < 0 || idx >= len(r.entries) {
		return entry{}, false
	}

	return r.entries[idx], true
}

// All returns every registered format in declaration order.
func All() []Format {
	formats.mu.RLock()
	defer formats.mu.RUnlock()

	all := make([]Format, len(formats.entries))
	for i := range all {
		all[i] = Format(i + 1)
	}

	return all
}

// Register appends a new format after the existing ones and returns its identifier.
// Extensions are matched case-insensitively and may be given with or without a leading dot.
func Register(name string, extensions []string, decoder Decoder) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Unknown, ErrEmptyName
	}

	if len(extensions) == 0 {
		return Unknown, ErrNoExtensions
	}

	if decoder == nil {
		return Unknown, ErrNilDecoder
	}

	exts := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = normalizeExtension(ext)
		if ext == "" {
			return Unknown, ErrNoExtensions
		}

		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}

	formats.mu.Lock()
	defer formats.mu.Unlock()

	for _, e := range formats.entries {
		if e.name == name {
			return Unknown, fmt.Errorf("format %q: %w", name, ErrDuplicate)
		}

		for _, ext := range exts {
			if slices.Contains(e.extensions, ext) {
				return Unknown, fmt.Errorf("extension %q claimed by %s: %w", ext, e.name, ErrDuplicate)
			}
		}
	}

	formats.entries = append(formats.entries, entry{name: name, extensions: exts, decoder: decoder})

	return Format(len(formats.entries)), nil
}

// ParseFormat returns the format registered under name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	formats.mu.RLock()
	defer formats.mu.RUnlock()

	for i, e := range formats.entries {
		if e.name == name {
			return Format(i + 1), nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Guess returns the format owning the extension of path.
func Guess(path string) (Format, bool) {
	ext := normalizeExtension(filepath.Ext(path))
	if ext == "" {
		return Unknown, false
	}

	formats.mu.RLock()
	defer formats.mu.RUnlock()

	for i, e := range formats.entries {
		if slices.Contains(e.extensions, ext) {
			return Format(i + 1), true
		}
	}

	return Unknown, false
}

// String returns the lowercase format name.
func (f Format) String() string {
	e, ok := formats.lookup(f)
	if !ok {
		if f == Unknown {
			return "unknown"
		}

		return "format(" + strconv.Itoa(int(f)) + ")"
	}

	return e.name
}

// Registered reports whether f names a registered format.
func (f Format) Registered() bool {
	_, ok := formats.lookup(f)

	return ok
}

// Extensions returns the file extensions of f in priority order, without leading dots.
func (f Format) Extensions() []string {
	e, ok := formats.lookup(f)
	if !ok {
		return nil
	}

	return slices.Clone(e.extensions)
}

// Has reports whether ext is one of the extensions of f.
func (f Format) Has(ext string) bool {
	e, ok := formats.lookup(f)
	if !ok {
		return false
	}

	return slices.Contains(e.extensions, normalizeExtension(ext))
}

// Parse decodes text and nests the result under namespace when it is not empty.
// The uri only identifies the document in errors.
func (f Format) Parse(uri, text, namespace string) (value.Map, error) {
	e, ok := formats.lookup(f)
	if !ok {
		return nil, ParseError{Format: f, URI: uri, Cause: ErrUnknownFormat}
	}

	m, err := e.decoder.Decode(text)
	if err != nil {
		return nil, ParseError{Format: f, URI: uri, Cause: err}
	}

	if m == nil {
		m = value.Map{}
	}

	return Wrap(m, namespace), nil
}

// Wrap nests m under namespace. An empty namespace returns m unchanged.
func Wrap(m value.Map, namespace string) value.Map {
	if namespace == "" {
		return m
	}

	return value.Map{namespace: value.Mapping(m)}
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// rootMap converts a decoded document root into a mapping.
func rootMap(doc any) (value.Map, error) {
	if doc == nil {
		return value.Map{}, nil
	}

	v, err := value.FromAny(doc)
	if err != nil {
		return nil, err
	}

	m, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, v.Kind())
	}

	return m, nil
}
