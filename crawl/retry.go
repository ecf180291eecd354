package crawl

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (body string, status int, err error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// retryable reports whether a response status is worth another attempt.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// FetchWithRetry fetches url, retrying transport errors, 429 and 5xx
// responses once per entry in delays. The last response is returned when
// every attempt fails; err is only set when no response was received.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, int, error) {
	var (
		body   string
		status int
		err    error
	)
	for attempt := 0; ; attempt++ {
		body, status, err = fetch(ctx, url)
		if err == nil && !retryable(status) {
			return body, status, nil
		}
		if attempt >= len(delays) {
			return body, status, err
		}

		if logger != nil {
			reason := fmt.Sprint(err)
			if err == nil {
				reason = fmt.Sprintf("HTTP %d", status)
			}
			logger("retry %s (attempt %d): %s", url, attempt+2, reason)
		}

		select {
		case <-ctx.Done():
			return "", 0, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
