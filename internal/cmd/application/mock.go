// Package application provides a mock of the application interface for
// command and server tests.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/internal/favicon"
)

// Application is re-exported so tests only import this package.
type Application = application.Application

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    DatasetFunc: func() dataset.Source {
//	        return dataset.Static(records)
//	    },
//	}
//	cmd := list.NewCommand(mock)
type Mock struct {
	DatasetFunc      func() dataset.Source
	SorterFunc       func() *browse.Sorter
	FaviconsFunc     func() *favicon.Resolver
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Dataset returns the source from the mock function or an empty one.
func (m *Mock) Dataset() dataset.Source {
	if m.DatasetFunc != nil {
		return m.DatasetFunc()
	}
	return dataset.Static(nil)
}

// Sorter returns the sorter from the mock function or an English sorter.
func (m *Mock) Sorter() *browse.Sorter {
	if m.SorterFunc != nil {
		return m.SorterFunc()
	}
	return browse.NewSorter("")
}

// Favicons returns the resolver from the mock function or a default one.
func (m *Mock) Favicons() *favicon.Resolver {
	if m.FaviconsFunc != nil {
		return m.FaviconsFunc()
	}
	return favicon.NewResolver()
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
