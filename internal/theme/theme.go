// Package theme resolves and persists the light/dark preference. The
// preference lives in a cookie; without one the browser's color scheme
// client hint decides, and without that the configured default.
package theme

import (
	"net/http"
	"strings"

	"github.com/agentstation/seedmap/pkg/constants"
)

// Theme is a color scheme applied as the document's data-theme attribute.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse returns the theme named by s, case-insensitively.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the other theme.
func Toggle(t Theme) Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Checked reports whether the toggle control is checked. The control is
// checked in light mode.
func (t Theme) Checked() bool {
	return t == Light
}

// Controller reads and writes the preference for a request.
type Controller struct {
	fallback Theme
	secure   bool
}

// NewController creates a controller. An unknown fallback means light.
func NewController(fallback string, secure bool) *Controller {
	t, ok := Parse(fallback)
	if !ok {
		t = Light
	}
	return &Controller{fallback: t, secure: secure}
}

// Default returns the theme used when the request carries no signal.
func (c *Controller) Default() Theme {
	return c.fallback
}

// Resolve picks the theme for r: the saved preference, else the color
// scheme hint, else the default.
func (c *Controller) Resolve(r *http.Request) Theme {
	if t, ok := Saved(r); ok {
		return t
	}
	if t, ok := Parse(strings.Trim(r.Header.Get(constants.ColorSchemeHint), `"`)); ok {
		return t
	}
	return c.fallback
}

// Saved returns the persisted preference, if any.
func Saved(r *http.Request) (Theme, bool) {
	cookie, err := r.Cookie(constants.ThemeCookie)
	if err != nil {
		return "", false
	}
	return Parse(cookie.Value)
}

// Persist stores t for a year, scoped to the whole origin.
func (c *Controller) Persist(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.ThemeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(constants.ThemeCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}

// AdvertiseHints asks the browser to send the color scheme hint on
// subsequent requests.
func AdvertiseHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", constants.ColorSchemeHint)
	w.Header().Add("Vary", constants.ColorSchemeHint)
	w.Header().Add("Vary", "Cookie")
}
