package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCORSConfig(t *testing.T) {
	config := DefaultCORSConfig()

	assert.False(t, config.AllowAll)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, config.AllowedMethods)
	assert.Contains(t, config.AllowedHeaders, "X-Requested-With")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		config     CORSConfig
		origin     string
		wantOrigin string
		wantVary   bool
	}{
		{
			name:       "allow all",
			config:     CORSConfig{AllowAll: true},
			origin:     "https://example.com",
			wantOrigin: "*",
		},
		{
			name:       "no origins configured",
			config:     CORSConfig{},
			origin:     "https://example.com",
			wantOrigin: "*",
		},
		{
			name:       "specific origin allowed",
			config:     CORSConfig{AllowedOrigins: []string{"https://example.com", "https://app.example.com"}},
			origin:     "https://app.example.com",
			wantOrigin: "https://app.example.com",
			wantVary:   true,
		},
		{
			name:       "origin rejected",
			config:     CORSConfig{AllowedOrigins: []string{"https://example.com"}},
			origin:     "https://evil.example",
			wantOrigin: "",
		},
		{
			name:       "wildcard in list",
			config:     CORSConfig{AllowedOrigins: []string{"https://example.com", "*"}},
			origin:     "https://other.example",
			wantOrigin: "https://other.example",
			wantVary:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/startups", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, w.Header().Get("Vary") == "Origin")
			assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
		})
	}
}

func TestCORS_PreflightShortCircuit(t *testing.T) {
	called := false
	handler := CORS(DefaultCORSConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/theme", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
