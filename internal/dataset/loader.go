// Package dataset loads the startup dataset from a local file or a remote
// URL. Every call to Load performs exactly one read with no retry and no
// caching between calls.
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/agentstation/seedmap/internal/transport"
	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/logging"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Source produces the full record set.
type Source interface {
	Load(ctx context.Context) ([]startups.Record, error)
}

// Loader reads the dataset from Path, which is either a filesystem path
// or an http(s) URL.
type Loader struct {
	Path     string
	client   *transport.Client
	maxBytes int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithClient sets the HTTP client used for remote datasets.
func WithClient(c *transport.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithMaxBytes caps the size of a remote dataset.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// NewLoader creates a loader for path. An empty path means the default
// data/seeds.json.
func NewLoader(path string, opts ...Option) *Loader {
	if path == "" {
		path = constants.DefaultDatasetPath
	}
	l := &Loader{
		Path: path,
		// Only the caller's context bounds a dataset fetch.
		client:   transport.New(nil, transport.WithTimeout(0)),
		maxBytes: constants.MaxDatasetBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsRemote reports whether the loader fetches over HTTP.
func (l *Loader) IsRemote() bool {
	return isURL(l.Path)
}

// Load reads and decodes the dataset. Transport failures and non-2xx
// statuses return a FetchError, malformed JSON a ParseError, and anything
// that is not a non-empty array ErrNoData.
func (l *Loader) Load(ctx context.Context) ([]startups.Record, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	var (
		body []byte
		err  error
	)
	if l.IsRemote() {
		body, err = l.fetch(ctx)
	} else {
		body, err = l.read(ctx)
	}
	if err != nil {
		logger.Debug().Err(err).Str("dataset", l.Path).Msg("dataset load failed")
		return nil, err
	}

	records, err := Decode(body, l.Path)
	if err != nil {
		logger.Debug().Err(err).Str("dataset", l.Path).Msg("dataset decode failed")
		return nil, err
	}

	logger.Debug().
		Str("dataset", l.Path).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("dataset loaded")
	return records, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	resp, err := l.client.Get(ctx, l.Path, "application/json")
	if err != nil {
		return nil, errors.WrapFetch(l.Path, err)
	}
	return transport.ReadBody(resp, l.Path, l.maxBytes)
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapFetch(l.Path, err)
	}
	body, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, &errors.FetchError{Source: l.Path, Message: err.Error(), Err: errors.WrapIO("read", l.Path, err)}
	}
	return body, nil
}

// Decode parses a dataset body. source only labels errors.
func Decode(body []byte, source string) (records []startups.Record, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if len(trimmed) > 0 && !json.Valid(trimmed) {
			return nil, errors.NewParseError("json", source, "invalid JSON", nil)
		}
		return nil, errors.ErrNoData
	}

	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = errors.NewParseError("json", source, fmt.Sprint(r), nil)
		}
	}()

	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.WrapParse("json", source, err)
	}
	if len(records) == 0 {
		return nil, errors.ErrNoData
	}
	return records, nil
}

func isURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
