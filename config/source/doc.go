// Package source provides resolvers that turn a logical configuration
// reference into document text.
//
// Two resolvers are available:
//   - String holds the document text directly and never fails
//   - File searches a filesystem for a base name combined with the
//     extensions of the known formats
//
// File resolution order is deterministic. The literal name is tried first
// when its extension belongs to the requested format (or to any format when
// discovering). Then name + "." + extension is tried for each extension of
// the requested format, or for every registered format in declaration order
// when no format is given. The first regular file found wins and its format
// is reported in Resolved.Format.
//
// Usage:
//
//	res, err := source.NewFile("config/app").Resolve(format.Unknown)
//	if errors.Is(err, source.ErrNotFound) {
//	    // no candidate exists
//	}
//
// Error Handling:
//   - NotFoundError when no candidate exists (matches ErrNotFound and fs.ErrNotExist)
//   - IOError when a candidate exists but cannot be inspected or read
package source
