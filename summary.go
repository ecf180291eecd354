package pagecache

// PageSummary describes the HTML document stored in a page.
type PageSummary struct {
	Title       string
	Description string

	// Links holds same-host links in document order, resolved against the
	// page URL with fragments removed.
	Links []string
}

// Summarizer extracts a PageSummary from a page's HTML content.
type Summarizer interface {
	Summarize(pageURL, html string) (*PageSummary, error)
}
