package main

import (
	"fmt"

	"github.com/fwojciec/pagecache"
	"github.com/fwojciec/pagecache/crawl"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	pages, err := deps.Crawler.Crawl(deps.Ctx, c.URLs, func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, pagecache.TruncateURL(e.URL, 70))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %v\n", e.Completed, e.Total, pagecache.TruncateURL(e.URL, 70), e.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: crawl interrupted: %v\n", err)
		return err
	}

	if err := deps.Cache.Put(deps.Ctx, pages); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	var failed int
	var bytes int64
	for _, p := range pages {
		if p.Error != nil {
			failed++
		}
		bytes += int64(len(p.Content))
	}

	fmt.Fprintf(deps.Stdout, "Stored %d pages (%s, %d failed)\n", len(pages), pagecache.FormatBytes(bytes), failed)
	return nil
}
