package handlers

import (
	"net/http"
	"strings"

	"github.com/agentstation/seedmap/internal/favicon"
	"github.com/agentstation/seedmap/pkg/logging"
)

// HandleFavicon handles GET /favicon?domain=. It answers with the icon
// bytes or 404; a failing icon service is never reported as a server
// error because cards keep their initials avatar without it.
func (h *Handlers) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	host := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("domain")))
	if !favicon.ValidHost(host) {
		http.NotFound(w, r)
		return
	}

	icon, ok := h.app.Favicons().ResolveHost(r.Context(), host)
	if !ok {
		logging.FromContext(r.Context()).Debug().Str("host", host).Msg("No favicon")
		w.Header().Set("Cache-Control", "no-store")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", icon.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(icon.Data)
}
