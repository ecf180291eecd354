package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/pagecache"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Cache.PagesForDomain(deps.Ctx, c.Domain)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no cached pages for %q. Use 'pagecache domains' to see cached domains.\n", c.Domain)
		return pagecache.Errorf(pagecache.ENOTFOUND, "no cached pages for %q", c.Domain)
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s (%d total):\n\n", c.Domain, len(pages))
	printPages(deps.Stdout, pages, deps.now())
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	pages, err := deps.Cache.SearchPages(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages match %q\n", c.Query)
		return nil
	}

	printPages(deps.Stdout, pages, deps.now())
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := deps.Cache.FindPageByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	var summary *pagecache.PageSummary
	if deps.Summarizer != nil && page.Content != "" {
		if summary, err = deps.Summarizer.Summarize(page.URL, page.Content); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", pagecache.ErrorMessage(err))
		}
	}

	if c.Links {
		if summary != nil {
			for _, link := range summary.Links {
				fmt.Fprintln(deps.Stdout, link)
			}
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "URL:     %s\n", page.URL)
	fmt.Fprintf(deps.Stdout, "Domain:  %s\n", page.Domain)
	if page.Status != nil {
		fmt.Fprintf(deps.Stdout, "Status:  %d\n", *page.Status)
	}
	if page.Error != nil {
		fmt.Fprintf(deps.Stdout, "Error:   %s\n", *page.Error)
	}
	fmt.Fprintf(deps.Stdout, "Size:    %s\n", pagecache.FormatBytes(page.ContentSize))
	fmt.Fprintf(deps.Stdout, "Hash:    %s\n", page.ContentHash)
	fmt.Fprintf(deps.Stdout, "Crawled: %s\n", pagecache.TimeAgoAt(page.Timestamp, deps.now()))
	if summary != nil {
		if summary.Title != "" {
			fmt.Fprintf(deps.Stdout, "Title:   %s\n", summary.Title)
		}
		if summary.Description != "" {
			fmt.Fprintf(deps.Stdout, "About:   %s\n", summary.Description)
		}
		fmt.Fprintf(deps.Stdout, "Links:   %d\n", len(summary.Links))
	}

	if !c.Meta {
		fmt.Fprintf(deps.Stdout, "\n%s\n", page.Content)
	}
	return nil
}

func printPages(w io.Writer, pages []*pagecache.Page, now time.Time) {
	for i, p := range pages {
		fmt.Fprintf(w, "  %d. %s\n     %s  %s", i+1, p.URL, pagecache.FormatBytes(p.ContentSize), pagecache.TimeAgoAt(p.Timestamp, now))
		if p.Error != nil {
			fmt.Fprintf(w, "  error: %s", *p.Error)
		}
		fmt.Fprintln(w)
	}
}
