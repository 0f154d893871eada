// Package favicon looks up small site icons from a remote icon service.
// Lookups are decorative: they are bounded by a short timeout and report
// failure as a missing icon, never as an error.
package favicon

import (
	"context"
	"mime"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/seedmap/internal/transport"
	"github.com/agentstation/seedmap/pkg/constants"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/logging"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Icon is a resolved site icon.
type Icon struct {
	Host        string `json:"host" yaml:"host"`
	URL         string `json:"url" yaml:"url"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Data        []byte `json:"-" yaml:"-"`
}

// Resolver fetches icons through an endpoint template in which {host} is
// replaced by the website hostname.
type Resolver struct {
	endpoint    string
	timeout     time.Duration
	concurrency int
	maxBytes    int64
	client      *transport.Client
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEndpoint sets the endpoint template.
func WithEndpoint(tmpl string) Option {
	return func(r *Resolver) {
		if tmpl != "" {
			r.endpoint = tmpl
		}
	}
}

// WithTimeout sets the per-lookup deadline.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithConcurrency limits parallel lookups in ResolveAll.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithClient sets the HTTP client.
func WithClient(c *transport.Client) Option {
	return func(r *Resolver) {
		if c != nil {
			r.client = c
		}
	}
}

// NewResolver creates a resolver with a one second timeout against the
// default icon service.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		endpoint:    constants.DefaultFaviconEndpoint,
		timeout:     constants.FaviconTimeout,
		concurrency: constants.MaxConcurrentFavicons,
		maxBytes:    constants.MaxFaviconBytes,
		client:      transport.New(nil, transport.WithTimeout(0)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timeout returns the per-lookup deadline.
func (r *Resolver) Timeout() time.Duration {
	return r.timeout
}

// Endpoint returns the icon service URL for host.
func (r *Resolver) Endpoint(host string) string {
	return strings.ReplaceAll(r.endpoint, "{host}", url.QueryEscape(host))
}

// Resolve looks up the icon for a website URL. It reports false when the
// URL has no host or the lookup fails for any reason.
func (r *Resolver) Resolve(ctx context.Context, websiteURL string) (Icon, bool) {
	host, ok := startups.Hostname(websiteURL)
	if !ok {
		return Icon{}, false
	}
	return r.ResolveHost(ctx, host)
}

// ResolveHost looks up the icon for a bare hostname.
func (r *Resolver) ResolveHost(ctx context.Context, host string) (Icon, bool) {
	if !ValidHost(host) {
		return Icon{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	logger := logging.FromContext(ctx)
	endpoint := r.Endpoint(host)

	resp, err := r.client.Get(ctx, endpoint, "image/*")
	if err != nil {
		err = errors.WrapFetch(endpoint, err)
		logger.Debug().Err(err).Str("host", host).Bool("timeout", errors.IsTimeout(err)).Msg("favicon lookup failed")
		return Icon{}, false
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := transport.ReadBody(resp, endpoint, r.maxBytes)
	if err != nil {
		logger.Debug().Err(err).Str("host", host).Msg("favicon lookup failed")
		return Icon{}, false
	}
	if !isImage(contentType) || len(body) == 0 {
		logger.Debug().Str("host", host).Str("content_type", contentType).Msg("favicon response is not an image")
		return Icon{}, false
	}

	return Icon{Host: host, URL: endpoint, ContentType: contentType, Data: body}, true
}

// ResolveAll looks up icons for every record with a website, a bounded
// number at a time. The result is keyed by company name; records whose
// lookup failed are absent.
func (r *Resolver) ResolveAll(ctx context.Context, records []startups.Record) map[string]Icon {
	var (
		mu    sync.Mutex
		icons = make(map[string]Icon)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, rec := range records {
		if rec.WebsiteURL == "" {
			continue
		}
		g.Go(func() error {
			icon, ok := r.Resolve(ctx, rec.WebsiteURL)
			if !ok {
				return nil
			}
			mu.Lock()
			icons[rec.CompanyName] = icon
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return icons
}

// ValidHost reports whether host looks like a DNS name or IP literal.
func ValidHost(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	for _, c := range host {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.' || c == '-' || c == ':' || c == '[' || c == ']':
		default:
			return false
		}
	}
	return true
}

func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && strings.HasPrefix(mediaType, "image/")
}
