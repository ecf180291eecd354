package pagecache

import "context"

// Fetcher retrieves raw page bodies from URLs.
type Fetcher interface {
	// Fetch returns the body and status code of the response for url.
	// Non-2xx responses are not errors; err is reserved for requests that
	// could not complete.
	Fetch(ctx context.Context, url string) (body string, status int, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
