package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/seedmap/internal/render"
	"github.com/agentstation/seedmap/internal/server/handlers"
	"github.com/agentstation/seedmap/internal/server/middleware"
	"github.com/agentstation/seedmap/internal/server/response"
	"github.com/agentstation/seedmap/pkg/constants"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(
		s.app,
		s.renderer,
		s.themes,
		handlers.Options{
			RestoreURLState: s.config.RestoreURLState,
			StartTime:       s.startTime,
		},
		s.logger,
	)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Browsers ask for this on every page; the brand has no icon
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Pages; "/" also renders the 404 page for unknown paths
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/startups", h.HandleFragment)
	mux.HandleFunc(constants.DetailPath, h.HandleDetail)
	mux.HandleFunc(constants.FaviconPath, h.HandleFavicon)
	mux.HandleFunc("/theme", h.HandleTheme)
	mux.Handle("/assets/", assets())

	// Public health endpoints (no auth required)
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/ready", h.HandleReady)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Startups endpoints
	mux.HandleFunc(prefix+"/startups", getOnly(h.HandleListStartups))

	mux.HandleFunc(prefix+"/startups/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		name := extractPathParam(r.URL.Path, prefix+"/startups/")
		if name == "" {
			response.BadRequest(w, "No startup ID provided", "")
			return
		}
		h.HandleGetStartup(w, r, name)
	}))

	mux.HandleFunc(prefix+"/sectors", getOnly(h.HandleListSectors))

	// Admin endpoints
	mux.HandleFunc(prefix+"/stats", getOnly(h.HandleStats))

	// OpenAPI specification endpoints
	mux.HandleFunc(prefix+"/openapi.json", getOnly(h.HandleOpenAPIJSON))
	mux.HandleFunc(prefix+"/openapi.yaml", getOnly(h.HandleOpenAPIYAML))
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled), JSON API only
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter, cfg.PathPrefix)(handler)
	}

	// Authentication (if enabled)
	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.APIKey = cfg.APIKey
		authConfig.HeaderName = cfg.AuthHeader
		authConfig.Prefix = cfg.PathPrefix
		authConfig.PublicPaths = []string{
			cfg.PathPrefix + "/health",
			cfg.PathPrefix + "/ready",
			cfg.PathPrefix + "/openapi.json",
			cfg.PathPrefix + "/openapi.yaml",
		}
		handler = middleware.Auth(authConfig, s.logger)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// assets serves the embedded stylesheet and script.
func assets() http.Handler {
	files := http.StripPrefix("/assets/", http.FileServerFS(render.Assets()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// getOnly rejects everything but GET and HEAD with a JSON 405.
func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			response.MethodNotAllowed(w, r.Method)
			return
		}
		next(w, r)
	}
}

// extractPathParam extracts the first path segment after prefix.
func extractPathParam(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	first, _, _ := strings.Cut(trimmed, "/")
	return first
}
