package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/agentstation/seedmap/pkg/errors"
)

// TestFail tests the Fail helper function.
func TestFail(t *testing.T) {
	resp := Fail("TEST_ERROR", "Test error message", "Additional details")

	if resp.Data != nil {
		t.Error("expected Data to be nil")
	}
	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Code != "TEST_ERROR" {
		t.Errorf("expected Code=TEST_ERROR, got %s", resp.Error.Code)
	}
	if resp.Error.Details != "Additional details" {
		t.Errorf("expected Details=Additional details, got %s", resp.Error.Details)
	}
}

// TestOK tests the envelope written for successful responses.
func TestOK(t *testing.T) {
	w := httptest.NewRecorder()

	OK(w, map[string]int{"count": 42})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	var decoded struct {
		Data  map[string]int `json:"data"`
		Error *Error         `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Data["count"] != 42 {
		t.Errorf("expected count=42, got %v", decoded.Data)
	}
	if decoded.Error != nil {
		t.Error("expected no error in response")
	}
}

// TestErrorHelpers tests all error response helpers.
func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		fn             func(w http.ResponseWriter)
		expectedStatus int
		expectedCode   string
	}{
		{"BadRequest", func(w http.ResponseWriter) { BadRequest(w, "bad", "") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"Unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "no key", "") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"NotFound", func(w http.ResponseWriter) { NotFound(w, "missing", "") }, http.StatusNotFound, "NOT_FOUND"},
		{"MethodNotAllowed", func(w http.ResponseWriter) { MethodNotAllowed(w, http.MethodPut) }, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"Unprocessable", func(w http.ResponseWriter) { Unprocessable(w, "invalid", "") }, http.StatusUnprocessableEntity, "INVALID_RECORD"},
		{"RateLimited", func(w http.ResponseWriter) { RateLimited(w, "slow down") }, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"InternalError", func(w http.ResponseWriter) { InternalError(w, errors.New("boom")) }, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"BadGateway", func(w http.ResponseWriter) { BadGateway(w, "upstream", "") }, http.StatusBadGateway, "DATASET_UNAVAILABLE"},
		{"ServiceUnavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, "loading") }, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.fn(w)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("expected error in response")
			}
			if resp.Error.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, resp.Error.Code)
			}
		})
	}
}

// TestInternalErrorHidesDetails makes sure internal errors never leak.
func TestInternalErrorHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, errors.New("secret database password"))

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Details != "An unexpected error occurred" {
		t.Errorf("unexpected details %q", resp.Error.Details)
	}
}

// TestStatus tests the mapping from typed errors to status codes.
func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", pkgerrors.NewNotFoundError("Startup", "acme"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", pkgerrors.NewNotFoundError("Startup", "acme")), http.StatusNotFound},
		{"validation", pkgerrors.NewValidationError("", nil, "missing required fields"), http.StatusUnprocessableEntity},
		{"fetch", pkgerrors.NewFetchError("data/seeds.json", 500), http.StatusBadGateway},
		{"client fetch", pkgerrors.NewFetchError("data/seeds.json", 404), http.StatusBadGateway},
		{"no data", pkgerrors.ErrNoData, http.StatusBadGateway},
		{"timeout", pkgerrors.WrapFetch("https://example.test/seeds.json", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"canceled", pkgerrors.WrapFetch("data/seeds.json", context.Canceled), http.StatusBadGateway},
		{"parse", pkgerrors.WrapParse("json", "data/seeds.json", errors.New("eof")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestErrorFromType tests typed error responses.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"not found", pkgerrors.NewNotFoundError("Startup", "acme"), http.StatusNotFound, "Startup not found: acme"},
		{"fetch", pkgerrors.NewFetchError("data/seeds.json", 500), http.StatusBadGateway, "Failed to load startups"},
		{"timeout", pkgerrors.WrapFetch("data/seeds.json", context.DeadlineExceeded), http.StatusGatewayTimeout, "Timed out loading startups"},
		{"generic", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Error.Message)
			}
		})
	}
}

// TestBadGatewayCarriesCause checks the fetch status reaches the client.
func TestBadGatewayCarriesCause(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorFromType(w, pkgerrors.NewFetchError("data/seeds.json", 500))

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Details != "HTTP error! status: 500" {
		t.Errorf("unexpected details %q", resp.Error.Details)
	}
}
