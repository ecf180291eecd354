package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pagecache"
)

// Compile-time interface verification.
var _ pagecache.PageCache = (*PageCache)(nil)

// PageCache implements pagecache.PageCache using SQLite.
type PageCache struct {
	db     *DB
	budget int64

	// Now returns the current time used to stamp batches. Defaults to time.Now.
	Now func() time.Time
}

// Option configures a PageCache.
type Option func(*PageCache)

// WithBudget sets the maximum total content size in bytes.
// Non-positive values keep pagecache.DefaultBudget.
func WithBudget(n int64) Option {
	return func(c *PageCache) {
		if n > 0 {
			c.budget = n
		}
	}
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB, opts ...Option) *PageCache {
	c := &PageCache{
		db:     db,
		budget: pagecache.DefaultBudget,
		Now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Budget returns the maximum total content size in bytes.
func (c *PageCache) Budget() int64 {
	return c.budget
}

// Put stores a batch of pages, evicting the oldest pages first when the
// batch would exceed the budget. Eviction and inserts share one transaction.
//
// A batch larger than the whole budget still evicts everything else and is
// stored in full.
func (c *PageCache) Put(ctx context.Context, inputs []pagecache.PageInput) error {
	pages := c.preparePages(inputs)
	if len(pages) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := totalSize(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to compute cache size: %w", err)
	}

	var incoming int64
	for _, p := range pages {
		incoming += p.ContentSize
	}

	if needed := current + incoming - c.budget; needed > 0 {
		if _, err := evict(ctx, tx, needed); err != nil {
			return err
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pages (url, content, error, status, domain, timestamp, content_size, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			error = excluded.error,
			status = excluded.status,
			domain = excluded.domain,
			timestamp = excluded.timestamp,
			content_size = excluded.content_size,
			content_hash = excluded.content_hash
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pages {
		if _, err := stmt.ExecContext(ctx, p.URL, p.Content, nullString(p.Error), nullInt(p.Status),
			p.Domain, p.Timestamp, p.ContentSize, p.ContentHash); err != nil {
			return fmt.Errorf("failed to store %s: %w", p.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// preparePages turns crawl records into pages sharing one timestamp.
// Records without a URL are dropped; a URL repeated within the batch keeps
// its first position and its last value.
func (c *PageCache) preparePages(inputs []pagecache.PageInput) []*pagecache.Page {
	now := c.Now().UnixMilli()
	index := make(map[string]int, len(inputs))
	pages := make([]*pagecache.Page, 0, len(inputs))

	for _, in := range inputs {
		if in.URL == "" {
			continue
		}
		p := &pagecache.Page{
			URL:         in.URL,
			Content:     in.Content,
			Error:       in.Error,
			Status:      in.Status,
			Domain:      pagecache.DomainOf(in.URL),
			Timestamp:   now,
			ContentSize: int64(len(in.Content)),
			ContentHash: hashContent(in.Content),
		}
		if i, ok := index[in.URL]; ok {
			pages[i] = p
			continue
		}
		index[in.URL] = len(pages)
		pages = append(pages, p)
	}

	return pages
}

// Evict deletes the oldest pages until at least needed bytes are freed.
func (c *PageCache) Evict(ctx context.Context, needed int64) (int64, error) {
	if needed <= 0 {
		return 0, nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	freed, err := evict(ctx, tx, needed)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit eviction: %w", err)
	}
	return freed, nil
}

// evict walks pages oldest first, ties broken by URL, and deletes them
// until freed reaches needed or no pages remain.
func evict(ctx context.Context, tx *sql.Tx, needed int64) (int64, error) {
	rows, err := tx.QueryContext(ctx, "SELECT url, content_size FROM pages ORDER BY timestamp ASC, url ASC")
	if err != nil {
		return 0, fmt.Errorf("failed to scan pages for eviction: %w", err)
	}

	var victims []string
	var freed int64
	for freed < needed && rows.Next() {
		var url string
		var size int64
		if err := rows.Scan(&url, &size); err != nil {
			rows.Close()
			return 0, err
		}
		victims = append(victims, url)
		freed += size
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	if len(victims) == 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, "DELETE FROM pages WHERE url = ?")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare eviction: %w", err)
	}
	defer stmt.Close()

	for _, url := range victims {
		if _, err := stmt.ExecContext(ctx, url); err != nil {
			return 0, fmt.Errorf("failed to evict %s: %w", url, err)
		}
	}

	return freed, nil
}

// totalSize sums content_size over every stored page.
func totalSize(ctx context.Context, tx *sql.Tx) (int64, error) {
	var n int64
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(SUM(content_size), 0) FROM pages").Scan(&n)
	return n, err
}

// FindPageByURL retrieves a page by URL.
func (c *PageCache) FindPageByURL(ctx context.Context, url string) (*pagecache.Page, error) {
	row := c.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE url = ?", url)

	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, pagecache.Errorf(pagecache.ENOTFOUND, "page %q not found", url)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PagesForDomain returns all pages stored for domain, ordered by URL.
func (c *PageCache) PagesForDomain(ctx context.Context, domain string) ([]*pagecache.Page, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE domain = ? ORDER BY url", domain)
	if err != nil {
		return nil, err
	}
	return collectPages(rows, nil)
}

// SearchPages returns pages whose URL contains query, ignoring case.
// The match is done in Go over a full scan so query is taken literally.
func (c *PageCache) SearchPages(ctx context.Context, query string) ([]*pagecache.Page, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages ORDER BY url")
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	return collectPages(rows, func(p *pagecache.Page) bool {
		return strings.Contains(strings.ToLower(p.URL), q)
	})
}

// ListDomains aggregates pages per domain, most recently crawled first.
func (c *PageCache) ListDomains(ctx context.Context) ([]*pagecache.DomainInfo, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT domain, COUNT(*), COALESCE(SUM(content_size), 0), MAX(timestamp)
		FROM pages
		GROUP BY domain
		ORDER BY MAX(timestamp) DESC, domain ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []*pagecache.DomainInfo
	for rows.Next() {
		var d pagecache.DomainInfo
		if err := rows.Scan(&d.Domain, &d.PageCount, &d.TotalSize, &d.LastCrawled); err != nil {
			return nil, err
		}
		domains = append(domains, &d)
	}

	return domains, rows.Err()
}

// Stats reports the page count and total size of the cache.
func (c *PageCache) Stats(ctx context.Context) (*pagecache.Stats, error) {
	s := pagecache.Stats{Budget: c.budget}
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(content_size), 0) FROM pages").
		Scan(&s.PageCount, &s.TotalSize)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ClearDomain deletes every page stored for domain.
func (c *PageCache) ClearDomain(ctx context.Context, domain string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM pages WHERE domain = ?", domain)
	return err
}

// ClearAll deletes every page.
func (c *PageCache) ClearAll(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM pages")
	return err
}
