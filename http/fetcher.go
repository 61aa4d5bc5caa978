// Package http provides an HTTP-based implementation of bbref.Fetcher.
//
// A Fetcher plays the role of a long-lived browsing session: it pools
// connections, rate limits requests to stay inside the site's crawl policy,
// and retries transport failures. One Fetcher should be shared by every
// caller in a process.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/bbref"
	"golang.org/x/time/rate"
)

// DefaultUserAgent identifies the scraper to the site.
const DefaultUserAgent = "bbref/1.0 (github.com/fwojciec/bbref)"

// Ensure Fetcher implements bbref.Fetcher at compile time.
var _ bbref.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client      *http.Client
	limiter     *rate.Limiter
	userAgent   string
	timeout     time.Duration
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// No timeout is applied by default.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit sets the sustained request rate. Use rate.Inf to disable
// rate limiting.
func WithRateLimit(limit rate.Limit) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(limit, 1)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays sets the waits between attempts after a transport error.
// A nil or empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		limiter:     rate.NewLimiter(rate.Every(time.Minute/bbref.RequestsPerMinute), 1),
		userAgent:   DefaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at url. The body is returned whatever the HTTP
// status; only transport errors are reported.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return fetchWithRetry(ctx, f.retryDelays, func() (string, error) {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
		return f.get(ctx, url)
	})
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections held by the session.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
