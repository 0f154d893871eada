// Package constants provides shared constants used throughout the seedmap codebase.
// This includes paging, timeouts, paths and other values that must stay
// consistent between the web surface and the CLI.
package constants

import "time"

// Browse constants
const (
	// PageSize is the number of cards revealed per page of the grid
	PageSize = 12

	// FilterAll is the filter value that disables category filtering
	FilterAll = "all"

	// SearchDebounce is the delay between the last keystroke and a search request
	SearchDebounce = 300 * time.Millisecond

	// SentinelRootMargin is the look-ahead margin of the incremental loader in pixels
	SentinelRootMargin = 100

	// SentinelThreshold is the visible fraction that triggers the next page
	SentinelThreshold = 0.1

	// DefaultLocale is the collation locale for name sorting
	DefaultLocale = "en"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout bounds requests for remote datasets
	DefaultHTTPTimeout = 30 * time.Second

	// FaviconTimeout is the hard limit on a single icon lookup
	FaviconTimeout = 1 * time.Second

	// ShutdownTimeout is how long the server drains connections on exit
	ShutdownTimeout = 5 * time.Second

	// ReadyTimeout bounds the dataset load performed by the readiness probe
	ReadyTimeout = 10 * time.Second
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentFavicons is the number of icon lookups run at once
	MaxConcurrentFavicons = 8

	// MaxFaviconBytes caps the body read from the icon service
	MaxFaviconBytes = 256 * 1024

	// MaxDatasetBytes caps the body read from a remote dataset
	MaxDatasetBytes = 32 * 1024 * 1024
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path and endpoint constants
const (
	// DefaultDatasetPath is the relative location of the startup dataset
	DefaultDatasetPath = "data/seeds.json"

	// DefaultFaviconEndpoint is the icon service; {host} is replaced by the website hostname
	DefaultFaviconEndpoint = "https://www.google.com/s2/favicons?domain={host}&sz=128"

	// DetailPath is the route of the detail page
	DetailPath = "/startup"

	// FaviconPath is the route of the icon proxy
	FaviconPath = "/favicon"
)

// Theme constants
const (
	// ThemeCookie is the name of the persisted theme preference
	ThemeCookie = "theme"

	// ThemeCookieMaxAge keeps the preference for a year
	ThemeCookieMaxAge = 365 * 24 * time.Hour

	// ColorSchemeHint is the client hint carrying the OS light/dark signal
	ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per minute per IP
	DefaultRateLimit = 120

	// VisitorTTL is how long an idle visitor stays in the rate limiter
	VisitorTTL = 10 * time.Minute

	// VisitorCleanupInterval is how often idle visitors are purged
	VisitorCleanupInterval = 5 * time.Minute
)
