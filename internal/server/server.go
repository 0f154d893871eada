package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/render"
	"github.com/agentstation/seedmap/internal/theme"
	pkgerrors "github.com/agentstation/seedmap/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	renderer  *render.Renderer
	themes    *theme.Controller
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	logger.Debug().Msg("Creating new server instance")

	if cfg.PathPrefix == "" {
		cfg.PathPrefix = DefaultConfig().PathPrefix
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = DefaultConfig().AuthHeader
	}
	if cfg.AuthEnabled && cfg.APIKey == "" {
		return nil, pkgerrors.NewConfigError("server", "authentication enabled without an API key", nil)
	}
	if _, ok := theme.Parse(cfg.Theme); cfg.Theme != "" && !ok {
		return nil, pkgerrors.NewConfigError("server", "unknown theme "+cfg.Theme, nil)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	server := &Server{
		app:       app,
		renderer:  renderer,
		themes:    theme.NewController(cfg.Theme, cfg.SecureCookies),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}

	logger.Debug().Msg("Server instance created successfully")
	return server, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// HTTPServer returns an http.Server for the configured address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.Handler(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
}

// Run serves until ctx is canceled, then drains connections for at most
// shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	httpServer := s.HTTPServer()
	serverErr := make(chan error, 1)

	go func() {
		s.logger.Info().
			Str("addr", httpServer.Addr).
			Msg("HTTP server listening")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return pkgerrors.WrapResource("start", "server", httpServer.Addr, err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received via context")

		// The parent context is already canceled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return pkgerrors.WrapResource("shutdown", "server", httpServer.Addr, err)
		}

		s.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
