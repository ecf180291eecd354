package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/pagecache"
	"golang.org/x/time/rate"
)

var _ pagecache.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets, so
// pages on different hosts are fetched concurrently while each host sees at
// most rps requests per second.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per domain with no bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	l := &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   1,
	}
	if rps <= 0 {
		l.limit = rate.Inf
	}
	return l
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.bucket(domain).Wait(ctx)
}

func (l *DomainLimiter) bucket(domain string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[domain]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets[domain] = b
	}
	return b
}
