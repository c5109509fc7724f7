// Package hjarta wires configuration sources into an Fx application.
//
// App configures structured logging, routes Fx events through slog and
// registers each configuration source added with WithConfigSource as a
// named module, so components can depend on the collected value.Map or
// decode it with config.Provider.
package hjarta
