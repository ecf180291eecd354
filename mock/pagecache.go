package mock

import (
	"context"

	"github.com/fwojciec/pagecache"
)

var _ pagecache.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of pagecache.PageCache.
type PageCache struct {
	PutFn            func(ctx context.Context, pages []pagecache.PageInput) error
	EvictFn          func(ctx context.Context, needed int64) (int64, error)
	FindPageByURLFn  func(ctx context.Context, url string) (*pagecache.Page, error)
	PagesForDomainFn func(ctx context.Context, domain string) ([]*pagecache.Page, error)
	SearchPagesFn    func(ctx context.Context, query string) ([]*pagecache.Page, error)
	ListDomainsFn    func(ctx context.Context) ([]*pagecache.DomainInfo, error)
	StatsFn          func(ctx context.Context) (*pagecache.Stats, error)
	ClearDomainFn    func(ctx context.Context, domain string) error
	ClearAllFn       func(ctx context.Context) error
}

func (c *PageCache) Put(ctx context.Context, pages []pagecache.PageInput) error {
	return c.PutFn(ctx, pages)
}

func (c *PageCache) Evict(ctx context.Context, needed int64) (int64, error) {
	return c.EvictFn(ctx, needed)
}

func (c *PageCache) FindPageByURL(ctx context.Context, url string) (*pagecache.Page, error) {
	return c.FindPageByURLFn(ctx, url)
}

func (c *PageCache) PagesForDomain(ctx context.Context, domain string) ([]*pagecache.Page, error) {
	return c.PagesForDomainFn(ctx, domain)
}

func (c *PageCache) SearchPages(ctx context.Context, query string) ([]*pagecache.Page, error) {
	return c.SearchPagesFn(ctx, query)
}

func (c *PageCache) ListDomains(ctx context.Context) ([]*pagecache.DomainInfo, error) {
	return c.ListDomainsFn(ctx)
}

func (c *PageCache) Stats(ctx context.Context) (*pagecache.Stats, error) {
	return c.StatsFn(ctx)
}

func (c *PageCache) ClearDomain(ctx context.Context, domain string) error {
	return c.ClearDomainFn(ctx, domain)
}

func (c *PageCache) ClearAll(ctx context.Context) error {
	return c.ClearAllFn(ctx)
}
