package http

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry calls fetch until it succeeds, making one attempt plus one
// per delay. The last error is returned unchanged.
func fetchWithRetry(ctx context.Context, delays []time.Duration, fetch func() (string, error)) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch()
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		// A canceled request is not worth retrying.
		if ctx.Err() != nil {
			return "", lastErr
		}

		select {
		case <-ctx.Done():
			return "", lastErr
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
