package handlers

import (
	"net/http"
	"net/url"

	"github.com/agentstation/seedmap/internal/theme"
	"github.com/agentstation/seedmap/pkg/logging"
)

// maxThemeForm bounds the body of the theme form.
const maxThemeForm = 1 << 10

// HandleTheme handles POST /theme. A theme field of light or dark stores
// that theme; anything else flips the current one. Script requests
// (X-Requested-With set) get 204, plain form posts are redirected back.
func (h *Handlers) HandleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.HandleMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxThemeForm)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	next, ok := theme.Parse(r.PostFormValue("theme"))
	if !ok {
		next = theme.Toggle(h.themes.Resolve(r))
	}
	h.themes.Persist(w, next)

	logging.FromContext(r.Context()).Debug().Str("theme", string(next)).Msg("Theme saved")

	if r.Header.Get("X-Requested-With") != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo returns the same-origin page the form was posted from, or /.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
