package bbref

import "context"

// RequestsPerMinute is the default request budget of every Fetcher. It
// stays under baseball-reference.com's limit for automated clients.
const RequestsPerMinute = 10

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The HTTP status code is not interpreted; transport errors are
	// returned unmodified.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
