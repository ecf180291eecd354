// Package slog provides log/slog decorators for pagecache services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecache"
)

// Ensure LoggingPageCache implements pagecache.PageCache.
var _ pagecache.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with logging of every operation.
type LoggingPageCache struct {
	next   pagecache.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next pagecache.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// Put delegates to the wrapped cache, logs the batch, and warns when the
// cache is left holding more than its budget.
func (c *LoggingPageCache) Put(ctx context.Context, pages []pagecache.PageInput) (err error) {
	defer func(begin time.Time) {
		var bytes int
		for _, p := range pages {
			bytes += len(p.Content)
		}
		c.logger.Info("put",
			"count", len(pages),
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
		if err != nil {
			return
		}
		if stats, serr := c.next.Stats(ctx); serr == nil && stats.OverBudget() {
			c.logger.Warn("cache over budget",
				"size", stats.TotalSize,
				"budget", stats.Budget,
			)
		}
	}(time.Now())
	return c.next.Put(ctx, pages)
}

// Evict delegates to the wrapped cache and logs the bytes freed.
func (c *LoggingPageCache) Evict(ctx context.Context, needed int64) (freed int64, err error) {
	defer func(begin time.Time) {
		c.logger.Info("evict",
			"needed", needed,
			"freed", freed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Evict(ctx, needed)
}

// FindPageByURL delegates to the wrapped cache.
func (c *LoggingPageCache) FindPageByURL(ctx context.Context, url string) (page *pagecache.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Info("find page",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.FindPageByURL(ctx, url)
}

// PagesForDomain delegates to the wrapped cache and logs the result count.
func (c *LoggingPageCache) PagesForDomain(ctx context.Context, domain string) (pages []*pagecache.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Info("pages for domain",
			"domain", domain,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.PagesForDomain(ctx, domain)
}

// SearchPages delegates to the wrapped cache and logs the result count.
func (c *LoggingPageCache) SearchPages(ctx context.Context, query string) (pages []*pagecache.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Info("search pages",
			"query", query,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SearchPages(ctx, query)
}

// ListDomains delegates to the wrapped cache and logs the domain count.
func (c *LoggingPageCache) ListDomains(ctx context.Context) (domains []*pagecache.DomainInfo, err error) {
	defer func(begin time.Time) {
		c.logger.Info("list domains",
			"count", len(domains),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListDomains(ctx)
}

// Stats delegates to the wrapped cache.
func (c *LoggingPageCache) Stats(ctx context.Context) (*pagecache.Stats, error) {
	return c.next.Stats(ctx)
}

// ClearDomain delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) ClearDomain(ctx context.Context, domain string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clear domain",
			"domain", domain,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ClearDomain(ctx, domain)
}

// ClearAll delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) ClearAll(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clear all",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ClearAll(ctx)
}
