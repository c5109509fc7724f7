// Package logging builds the structured slog loggers used by the config
// collectors, the Fx application and the hjconfig command.
// JSON output is the default; a text handler is available for terminals.
package logging
