package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// AuthConfig holds authentication configuration. Only paths under
// Prefix are protected; the HTML directory itself is always public.
type AuthConfig struct {
	Enabled     bool
	APIKey      string
	HeaderName  string
	Prefix      string
	PublicPaths []string
}

// DefaultAuthConfig returns default authentication configuration.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		Enabled:     false,
		APIKey:      os.Getenv("SEEDMAP_API_KEY"),
		HeaderName:  "X-API-Key",
		Prefix:      "/api/v1",
		PublicPaths: []string{"/api/v1/openapi.json", "/api/v1/openapi.yaml"},
	}
}

// Auth middleware validates API keys for protected endpoints.
func Auth(config AuthConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled || !isProtected(r.URL.Path, config) {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := extractAPIKey(r, config)

			if !validKey(apiKey, config.APIKey) {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("key_provided", apiKey != "").
					Msg("Authentication failed")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"data":null,"error":{"code":"UNAUTHORIZED","message":"Invalid or missing API key","details":"Provide a valid API key in the ` + config.HeaderName + ` header"}}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isProtected reports whether path needs a key.
func isProtected(path string, config AuthConfig) bool {
	if !underPrefix(path, config.Prefix) {
		return false
	}
	for _, p := range config.PublicPaths {
		if path == p {
			return false
		}
	}
	return true
}

// validKey compares in constant time. An empty configured key rejects
// every request.
func validKey(provided, expected string) bool {
	if provided == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// extractAPIKey extracts the API key from the request.
func extractAPIKey(r *http.Request, config AuthConfig) string {
	if apiKey := r.Header.Get(config.HeaderName); apiKey != "" {
		return apiKey
	}

	// Support both "Bearer <key>" and raw key
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return auth
}
