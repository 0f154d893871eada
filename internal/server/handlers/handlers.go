package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/seedmap/cmd/application"
	"github.com/agentstation/seedmap/internal/render"
	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/logging"
)

// Options are the handler settings taken from the server configuration.
type Options struct {
	// RestoreURLState makes the grid page read filter, q and sort from
	// its query string.
	RestoreURLState bool

	// StartTime is used for uptime reporting.
	StartTime time.Time
}

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app      application.Application
	renderer *render.Renderer
	themes   *theme.Controller
	opts     Options
	logger   *zerolog.Logger
}

// New creates a new Handlers instance.
func New(
	app application.Application,
	renderer *render.Renderer,
	themes *theme.Controller,
	opts Options,
	logger *zerolog.Logger,
) *Handlers {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}
	return &Handlers{
		app:      app,
		renderer: renderer,
		themes:   themes,
		opts:     opts,
		logger:   logger,
	}
}

// writeHTML renders a page into memory and only then commits the status,
// so a template failure becomes a plain 500 instead of a torn page.
func (h *Handlers) writeHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// HandleNotFound renders the HTML 404 page.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, r, http.StatusNotFound, func(out io.Writer) error {
		return h.renderer.ErrorPage(out, render.ErrorPage{
			Theme:   h.themes.Resolve(r),
			Status:  http.StatusNotFound,
			Title:   "Page not found",
			Message: "There is nothing at " + r.URL.Path + ".",
		})
	})
}

// HandleMethodNotAllowed answers a page route called with the wrong method.
func (h *Handlers) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	h.writeHTML(w, r, http.StatusMethodNotAllowed, func(out io.Writer) error {
		return h.renderer.ErrorPage(out, render.ErrorPage{
			Theme:   h.themes.Resolve(r),
			Status:  http.StatusMethodNotAllowed,
			Title:   "Method not allowed",
			Message: "Method " + r.Method + " is not supported here.",
		})
	})
}

// logLoadFailure records a dataset failure. A load abandoned because the
// client went away is not a server fault and only shows at debug level.
func logLoadFailure(ctx context.Context, err error) {
	logger := logging.FromContext(ctx)
	if errors.IsCanceled(err) {
		logger.Debug().Err(err).Msg("Startups load canceled by client")
		return
	}
	logger.Error().Err(err).Bool("timeout", errors.IsTimeout(err)).Msg("Failed to load startups")
}
