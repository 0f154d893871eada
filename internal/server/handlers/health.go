package handlers

import (
	"context"
	"net/http"

	"github.com/agentstation/seedmap/internal/server/response"
	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/logging"
)

// HandleHealth handles GET /health.
// @Summary Health check
// @Description Health check endpoint (liveness probe)
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "seedmap",
		"version": h.app.Version(),
	})
}

// HandleReady handles GET /ready.
// @Summary Readiness check
// @Description Readiness check; loads the dataset once
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.ReadyTimeout)
	defer cancel()

	records, err := h.app.Dataset().Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Dataset not ready")
		response.ServiceUnavailable(w, "Dataset not available: "+err.Error())
		return
	}

	response.OK(w, map[string]any{
		"status":   "ready",
		"startups": len(records),
	})
}
