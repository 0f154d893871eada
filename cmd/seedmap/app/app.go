// Package app provides the application context and dependency management
// for the seedmap CLI. It centralizes configuration, the logger and the
// dataset, icon and sorting components that commands and the server share.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/browse"
	"github.com/agentstation/seedmap/internal/cmd/output"
	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/internal/embedded"
	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/internal/server"
	"github.com/agentstation/seedmap/internal/transport"
	"github.com/agentstation/seedmap/pkg/errors"
)

// App represents the seedmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Components are built on first use from the configuration in effect
	// after flags were parsed.
	mu       sync.Mutex
	source   dataset.Source
	sorter   *browse.Sorter
	favicons *favicon.Resolver
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized from LoadConfig; options can replace any part.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the format selected by --format, or the one
// detected from the terminal.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Dataset returns the configured source: the embedded sample, a local
// file, or a remote URL fetched with the configured token.
func (a *App) Dataset() dataset.Source {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.source == nil {
		if a.config.IsEmbedded() {
			a.source = embedded.Sample()
		} else {
			client := transport.New(
				transport.ForToken(a.config.DatasetToken),
				transport.WithTimeout(0),
			)
			a.source = dataset.NewLoader(a.config.Dataset, dataset.WithClient(client))
		}
	}
	return a.source
}

// Sorter returns the sorter for the configured locale.
func (a *App) Sorter() *browse.Sorter {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sorter == nil {
		a.sorter = browse.NewSorter(a.config.Locale)
	}
	return a.sorter
}

// Favicons returns the icon resolver.
func (a *App) Favicons() *favicon.Resolver {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.favicons == nil {
		a.favicons = favicon.NewResolver(
			favicon.WithEndpoint(a.config.Favicon.Endpoint),
			favicon.WithTimeout(a.config.Favicon.Timeout),
			favicon.WithConcurrency(a.config.Favicon.Concurrency),
		)
	}
	return a.favicons
}

// ServerConfig returns the server settings from the configuration, used
// as defaults by the serve command's flags.
func (a *App) ServerConfig() server.Config {
	sc := a.config.Server
	cfg := server.DefaultConfig()
	cfg.Host = sc.Host
	cfg.Port = sc.Port
	if sc.PathPrefix != "" {
		cfg.PathPrefix = sc.PathPrefix
	}
	cfg.RateLimit = sc.RateLimit
	cfg.CORSEnabled = sc.CORS || len(sc.CORSOrigins) > 0
	cfg.CORSOrigins = sc.CORSOrigins
	cfg.AuthEnabled = sc.Auth
	if sc.AuthHeader != "" {
		cfg.AuthHeader = sc.AuthHeader
	}
	cfg.APIKey = sc.APIKey
	cfg.Theme = sc.Theme
	cfg.SecureCookies = sc.SecureCookies
	cfg.RestoreURLState = sc.RestoreURLState
	if sc.ReadTimeout > 0 {
		cfg.ReadTimeout = sc.ReadTimeout
	}
	if sc.WriteTimeout > 0 {
		cfg.WriteTimeout = sc.WriteTimeout
	}
	if sc.IdleTimeout > 0 {
		cfg.IdleTimeout = sc.IdleTimeout
	}
	return cfg
}

// reset drops the built components so the next access uses the current
// configuration.
func (a *App) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.source = nil
	a.sorter = nil
	a.favicons = nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
