package pagecache

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// PageInput is a single record produced by a crawl client.
type PageInput struct {
	URL     string  `json:"url"`
	Content string  `json:"content,omitempty"`
	Error   *string `json:"error,omitempty"`
	Status  *int    `json:"status,omitempty"`
}

// Page is a cached page snapshot.
type Page struct {
	URL         string  `json:"url"`
	Content     string  `json:"content"`
	Error       *string `json:"error,omitempty"`
	Status      *int    `json:"status,omitempty"`
	Domain      string  `json:"domain"`
	Timestamp   int64   `json:"timestamp"` // epoch milliseconds
	ContentSize int64   `json:"contentSize"`
	ContentHash string  `json:"contentHash"`
}

// CrawledAt returns the page timestamp as a time.Time.
func (p *Page) CrawledAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// DomainInfo summarizes the pages stored for one domain.
type DomainInfo struct {
	Domain      string `json:"domain"`
	PageCount   int    `json:"pageCount"`
	TotalSize   int64  `json:"totalSize"`
	LastCrawled int64  `json:"lastCrawled"` // epoch milliseconds
}

// Stats summarizes the whole cache.
type Stats struct {
	PageCount int   `json:"pageCount"`
	TotalSize int64 `json:"totalSize"`
	Budget    int64 `json:"budget"`
}

// OverBudget reports whether the cache holds more than its budget.
// This only happens after a single batch larger than the budget was stored.
func (s *Stats) OverBudget() bool {
	return s.TotalSize > s.Budget
}

// DomainOf returns the host component of rawURL, used to group pages.
// URLs without a scheme are treated as https. When the URL cannot be parsed
// the part before the first slash is returned instead.
func DomainOf(rawURL string) string {
	s := rawURL
	if !strings.HasPrefix(s, "http") {
		s = "https://" + s
	}
	if u, err := url.Parse(s); err == nil && u.Hostname() != "" {
		return strings.ToLower(u.Hostname())
	}
	host, _, _ := strings.Cut(rawURL, "/")
	return host
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
