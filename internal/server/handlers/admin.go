package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/agentstation/seedmap/internal/server/response"
	"github.com/agentstation/seedmap/pkg/startups"
)

// HandleStats handles GET /api/v1/stats.
// @Summary Directory statistics
// @Description Server runtime figures plus a summary of the current dataset
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 502 {object} response.Response{error=response.Error}
// @Security ApiKeyAuth
// @Router /api/v1/stats [get].
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	records, err := h.app.Dataset().Load(r.Context())
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	var (
		funded int
		total  float64
		stages = make(map[string]int)
	)
	for _, rec := range records {
		if rec.Funding > 0 {
			funded++
			total += rec.Funding
		}
		stages[rec.Stage()]++
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response.OK(w, map[string]any{
		"runtime": map[string]any{
			"uptime_seconds": int64(time.Since(h.opts.StartTime).Seconds()),
			"goroutines":     runtime.NumGoroutine(),
			"memory_mb":      memStats.Alloc / 1024 / 1024,
			"memory_sys_mb":  memStats.Sys / 1024 / 1024,
		},
		"dataset": map[string]any{
			"startups_total": len(records),
			"sectors_total":  len(startups.Sectors(records)),
			"funded_total":   funded,
			"funding_total":  total,
			"funding_label":  startups.FormatFunding(total),
			"stages":         stages,
		},
	})
}
