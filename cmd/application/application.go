// Package application provides the application interface for seedmap
// commands and the HTTP server.
//
// The Application interface defines the contract between the application
// layer and its consumers, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            records, err := app.Dataset().Load(cmd.Context())
//	            if err != nil {
//	                return err
//	            }
//	            // ... use records
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    DatasetFunc: func() dataset.Source {
//	        return dataset.Static(testRecords)
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/internal/favicon"
)

// Application provides the dependencies that commands and the server need.
// The App struct from cmd/seedmap/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Dataset returns the configured startup data source. Every call to
	// Load reads the source again; nothing is cached between loads.
	Dataset() dataset.Source

	// Sorter returns the locale-aware sorter used for name ordering.
	Sorter() *browse.Sorter

	// Favicons returns the icon resolver.
	Favicons() *favicon.Resolver

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, ...).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
