// Package server provides the HTTP surface of the seedmap directory.
//
// The package is layered the same way as the CLI that drives it:
//
//   - Server: core server struct with lifecycle management
//   - Config: server configuration with sensible defaults
//   - Router: route registration and middleware chain
//   - Handlers: pages, fragments, icon proxy and JSON API
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 8080
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx, constants.ShutdownTimeout)
package server

//go:generate gomarkdoc --output README.md .
