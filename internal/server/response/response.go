// Package response provides standardized HTTP response structures and helpers
// for the seedmap JSON API. All API responses follow a consistent format
// with a data field for successful responses and an error field for failures.
package response

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/agentstation/seedmap/pkg/errors"
)

// Response represents the standardized API response structure.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error represents an API error with code, message, and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success creates a successful response with data.
func Success(data any) Response {
	return Response{Data: data}
}

// Fail creates an error response.
func Fail(code, message, details string) Response {
	return Response{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnauthorized, Fail("UNAUTHORIZED", message, details))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	JSON(w, http.StatusMethodNotAllowed, Fail(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"Method "+method+" is not supported for this endpoint",
	))
}

// Unprocessable writes a 422 error response for records that exist but
// cannot be shown.
func Unprocessable(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnprocessableEntity, Fail("INVALID_RECORD", message, details))
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter, message string) {
	JSON(w, http.StatusTooManyRequests, Fail(
		"RATE_LIMITED",
		"Rate limit exceeded",
		message,
	))
}

// InternalError writes a 500 error response. The error itself is not
// exposed to the client.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// BadGateway writes a 502 error response for a failing dataset source.
func BadGateway(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadGateway, Fail("DATASET_UNAVAILABLE", message, details))
}

// GatewayTimeout writes a 504 error response for a dataset source that
// did not answer in time.
func GatewayTimeout(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusGatewayTimeout, Fail("DATASET_TIMEOUT", message, details))
}

// ServiceUnavailable writes a 503 error response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail(
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		message,
	))
}

// Status maps a typed error to the HTTP status used for it by both the
// JSON API and the HTML pages.
func Status(err error) int {
	var (
		fetchErr *errors.FetchError
		parseErr *errors.ParseError
		ioErr    *errors.IOError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.IsTimeout(err):
		return http.StatusGatewayTimeout
	case errors.IsNoData(err),
		errors.As(err, &fetchErr),
		errors.As(err, &parseErr),
		errors.As(err, &ioErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorFromType maps typed errors to appropriate HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	switch Status(err) {
	case http.StatusNotFound:
		NotFound(w, err.Error(), "")
	case http.StatusUnprocessableEntity:
		Unprocessable(w, err.Error(), "")
	case http.StatusBadGateway:
		BadGateway(w, "Failed to load startups", err.Error())
	case http.StatusGatewayTimeout:
		GatewayTimeout(w, "Timed out loading startups", err.Error())
	default:
		InternalError(w, err)
	}
}
