package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config/value"

	"github.com/mitchellh/mapstructure"
)

// ErrPathNotFound is returned when the requested section does not exist.
var ErrPathNotFound = errors.New("path not found")

// ErrNotSection is returned when the requested path points to a non-mapping value.
var ErrNotSection = errors.New("path does not point to a section")

// Source defines an interface for collecting configuration data as a mapping.
type Source interface {
	Collect() (value.Map, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (value.Map, error)

// Collect implements the Source interface.
func (f SourceFunc) Collect() (value.Map, error) {
	return f()
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that collects, decodes, sets defaults, and validates configuration data.
//
// The path selects a section of the collected mapping using colon (:) as the
// separator for nested keys. An empty path decodes the entire mapping.
// Struct fields are matched by the `config` tag or, without one, by
// case-insensitive field name.
func Provider[T any](target *T, path string) func(Source) (*T, error) {
	return func(src Source) (*T, error) {
		collected, err := src.Collect()
		if err != nil {
			return nil, fmt.Errorf("collecting data error: %w", err)
		}

		section, err := Section(collected, path)
		if err != nil {
			return nil, fmt.Errorf("selecting section error: %w", err)
		}

		err = Decode(section, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Section returns the mapping found at the colon separated path.
func Section(m value.Map, path string) (value.Map, error) {
	if path == "" {
		return m, nil
	}

	v, ok := m.Lookup(strings.Split(path, ":")...)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	section, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotSection, path, v.Kind())
	}

	return section, nil
}

// Decode decodes m into target, which must be a non-nil pointer.
// Strings are weakly converted to the field type, durations may be given
// as strings, and encoding.TextUnmarshaler fields are supported.
func Decode(m value.Map, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	return dec.Decode(m.Interface())
}
