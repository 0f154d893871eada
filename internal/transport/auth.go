package transport

import (
	"net/http"
	"strings"
)

// Authenticator applies credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request)
}

// NoAuth sends requests unchanged.
type NoAuth struct{}

// Apply implements Authenticator.
func (a *NoAuth) Apply(_ *http.Request) {}

// BearerAuth sends an Authorization: Bearer token.
type BearerAuth struct {
	Token string
}

// Apply implements Authenticator.
func (a *BearerAuth) Apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
}

// HeaderAuth sends the token in a custom header.
type HeaderAuth struct {
	Header string
	Token  string
}

// Apply implements Authenticator.
func (a *HeaderAuth) Apply(req *http.Request) {
	if a.Header != "" && a.Token != "" {
		req.Header.Set(a.Header, a.Token)
	}
}

// ForToken returns bearer auth for a non-empty token and NoAuth otherwise.
// A token of the form "Header-Name: value" is sent in that header instead.
func ForToken(token string) Authenticator {
	if token == "" {
		return &NoAuth{}
	}
	name, value, ok := strings.Cut(token, ":")
	value = strings.TrimSpace(value)
	if ok && name != "" && !strings.Contains(name, " ") && value != "" {
		return &HeaderAuth{Header: name, Token: value}
	}
	return &BearerAuth{Token: token}
}
