// Package handlers provides HTTP request handlers for the seedmap server.
//
// Handlers are organized by surface:
//
//   - pages.go: the grid page, grid fragments and the detail page
//   - favicon.go: best-effort icon proxy used by the cards
//   - theme.go: theme preference form
//   - startups.go: JSON listing, lookup and sectors
//   - admin.go: runtime and dataset statistics
//   - health.go: health and readiness checks
//   - openapi.go: OpenAPI specification endpoints
//
// Every handler loads the dataset afresh through the application's
// source; no handler keeps records between requests.
package handlers

//go:generate gomarkdoc --output README.md .
