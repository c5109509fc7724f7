// Package config provides the configuration source abstraction and the
// file-backed collector.
//
// Every configuration provider implements Source:
//
//	type Source interface {
//	    Collect() (value.Map, error)
//	}
//
// File is the concrete collector composing a source.Resolver (string or
// filesystem backed) with the format registry:
//
//	File.Collect -> Resolver.Resolve(format) -> (uri, text, format)
//	             -> format.Parse(uri, text, namespace) -> value.Map
//
// # Required and optional files
//
// Files are required by default. An optional file whose resolver reports
// source.ErrNotFound collects to an empty mapping. Any other resolution
// failure (permissions, I/O) is always returned, wrapped in ForeignError.
// Decode failures are returned as FileParseError naming the document.
//
// # Namespaces
//
// A namespace nests the whole decoded document under a single key:
//
//	m, err := config.NewFile("config/db", format.Unknown).
//	    Required(false).
//	    Namespace("database").
//	    Collect()
//	// m == {"database": {...document...}}
//
// # Typed configuration
//
// Provider decodes a collected mapping, or a colon separated section of it,
// into a struct, then applies Defaulter and Validator when implemented:
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(config.NewFile("config", format.YAML))
//
// # Dependency injection
//
// NewModule registers a Source with an Fx container and supplies the
// collected value.Map under a named tag.
package config
