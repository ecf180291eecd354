// Package crawl fetches a list of URLs and turns the responses into a batch
// of page records ready to be stored in a pagecache.PageCache.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagecache"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Crawler.Concurrency is not positive.
const DefaultConcurrency = 4

// Crawler fetches pages concurrently with per-domain rate limiting.
type Crawler struct {
	Fetcher     pagecache.Fetcher
	RateLimiter pagecache.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration

	// Logf receives retry messages. Optional.
	Logf LogFunc
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl fetches every URL and returns one record per distinct, non-empty URL
// in input order. Fetch failures and non-2xx responses are recorded on the
// page rather than returned. The error is only set when ctx ends first, in
// which case no batch is returned. Progress callbacks never run concurrently.
func (c *Crawler) Crawl(ctx context.Context, urls []string, progress ProgressFunc) ([]pagecache.PageInput, error) {
	urls = dedupe(urls)
	total := len(urls)
	pages := make([]pagecache.PageInput, total)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var completed atomic.Int64
	var progressMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			page, err := c.fetchPage(gctx, u)
			if err != nil {
				return err
			}
			pages[i] = page

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       u,
				}
				if page.Error != nil {
					event.Type = ProgressFailed
					event.Error = errors.New(*page.Error)
				}
				progressMu.Lock()
				progress(event)
				progressMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return pages, nil
}

// fetchPage fetches a single URL. The returned error is non-nil only when
// the crawl itself should stop.
func (c *Crawler) fetchPage(ctx context.Context, url string) (pagecache.PageInput, error) {
	page := pagecache.PageInput{URL: url}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, pagecache.DomainOf(url)); err != nil {
			return page, err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	body, status, err := FetchWithRetry(ctx, url, c.Fetcher.Fetch, c.Logf, delays)
	if ctx.Err() != nil {
		return page, ctx.Err()
	}

	page.Content = body
	if status != 0 {
		page.Status = &status
	}

	switch {
	case err != nil:
		msg := err.Error()
		page.Error = &msg
	case status < 200 || status > 299:
		msg := fmt.Sprintf("HTTP %d %s", status, http.StatusText(status))
		page.Error = &msg
	}

	return page, nil
}

// dedupe drops empty and repeated URLs, keeping first occurrences in order.
func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
