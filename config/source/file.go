package source

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"syscall"

	"github.com/0xalexb/hjarta-config/config/format"

	"github.com/spf13/afero"
)

// File resolves a base name against a filesystem.
type File struct {
	name   string
	fs     afero.Fs
	logger *slog.Logger
}

// FileOption configures a File resolver.
type FileOption func(*File)

// WithFs sets the filesystem searched by the resolver. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) FileOption {
	return func(f *File) {
		f.fs = fsys
	}
}

// WithLogger sets the logger used for resolution debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		f.logger = logger
	}
}

// NewFile creates a File resolver for the base name.
func NewFile(name string, opts ...FileOption) *File {
	f := &File{
		name: name,
	}

	for _, apply := range opts {
		apply(f)
	}

	if f.fs == nil {
		f.fs = afero.NewOsFs()
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// Name returns the base name given at construction.
func (f *File) Name() string {
	return f.name
}

type candidate struct {
	path   string
	format format.Format
}

// Candidates returns the paths tried by Resolve in order, paired with the
// format each one would resolve to.
func (f *File) Candidates(forced format.Format) []Resolved {
	cands := f.candidates(forced)
	out := make([]Resolved, len(cands))

	for i, c := range cands {
		out[i] = Resolved{URI: c.path, Format: c.format}
	}

	return out
}

func (f *File) candidates(forced format.Format) []candidate {
	var cands []candidate

	if forced != format.Unknown {
		if forced.Has(filepath.Ext(f.name)) {
			cands = append(cands, candidate{path: f.name, format: forced})
		}

		for _, ext := range forced.Extensions() {
			cands = append(cands, candidate{path: f.name + "." + ext, format: forced})
		}

		return cands
	}

	if guessed, ok := format.Guess(f.name); ok {
		cands = append(cands, candidate{path: f.name, format: guessed})
	}

	for _, known := range format.All() {
		for _, ext := range known.Extensions() {
			cands = append(cands, candidate{path: f.name + "." + ext, format: known})
		}
	}

	return cands
}

// Resolve implements the Resolver interface.
// A path whose parent is not a directory counts as missing.
func (f *File) Resolve(forced format.Format) (Resolved, error) {
	if forced != format.Unknown && !forced.Registered() {
		return Resolved{}, fmt.Errorf("resolving %q: %w: %s", f.name, format.ErrUnknownFormat, forced)
	}

	for _, c := range f.candidates(forced) {
		info, err := f.fs.Stat(c.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}

			return Resolved{}, IOError{Path: c.path, Cause: err}
		}

		if info.IsDir() {
			f.logger.Debug("skipping directory candidate", slog.String("path", c.path))

			continue
		}

		data, err := afero.ReadFile(f.fs, c.path)
		if err != nil {
			return Resolved{}, IOError{Path: c.path, Cause: err}
		}

		f.logger.Debug("resolved configuration file",
			slog.String("name", f.name),
			slog.String("path", c.path),
			slog.String("format", c.format.String()),
		)

		return Resolved{
			URI:      c.path,
			Contents: string(data),
			Format:   c.format,
		}, nil
	}

	return Resolved{}, NotFoundError{Path: f.name}
}
