// Package pagecache provides a local, size-bounded store for crawled web
// pages. Pages are keyed by URL, grouped by domain, and evicted oldest-first
// when the total content size would exceed a storage budget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, slog/).
package pagecache

import "context"

// DefaultBudget is the default maximum total content size held by a cache.
const DefaultBudget int64 = 50 << 20

// PageCache represents a persistent, domain-indexed store of page snapshots.
//
// Every mutating method runs as one atomic unit against the underlying
// storage. Failures leave the prior state intact.
type PageCache interface {
	// Put stores a batch of crawled pages. Entries without a URL are skipped.
	// All stored entries share one timestamp. If the batch would push the
	// total size over budget, the oldest pages are evicted first within the
	// same transaction.
	Put(ctx context.Context, pages []PageInput) error

	// Evict deletes the oldest pages across all domains until at least
	// needed bytes are freed or the cache is empty. Returns bytes freed.
	Evict(ctx context.Context, needed int64) (int64, error)

	// FindPageByURL retrieves a single page.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// PagesForDomain returns every page stored for domain.
	PagesForDomain(ctx context.Context, domain string) ([]*Page, error)

	// SearchPages returns pages whose URL contains query, ignoring case.
	SearchPages(ctx context.Context, query string) ([]*Page, error)

	// ListDomains aggregates stored pages per domain, most recently
	// crawled first.
	ListDomains(ctx context.Context) ([]*DomainInfo, error)

	// Stats reports totals for the whole cache.
	Stats(ctx context.Context) (*Stats, error)

	// ClearDomain deletes every page stored for domain.
	ClearDomain(ctx context.Context, domain string) error

	// ClearAll deletes every page.
	ClearAll(ctx context.Context) error
}
