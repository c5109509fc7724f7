// Package value provides the Value type produced by configuration decoders.
//
// A Value is an immutable tagged union over the kinds a configuration
// document can express: null, booleans, integers, floats, strings,
// sequences and string-keyed mappings. Decoders build Values through
// FromAny, which accepts the plain Go trees produced by common
// serialization libraries.
//
// Usage:
//
//	v, err := value.FromAny(map[string]any{"port": 8080})
//	if err != nil {
//	    // Handle unsupported types
//	}
//	port, ok := v.AsMap()["port"].AsInt()
package value
