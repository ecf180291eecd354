package mock

import "github.com/fwojciec/pagecache"

var _ pagecache.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagecache.Summarizer.
type Summarizer struct {
	SummarizeFn func(pageURL, html string) (*pagecache.PageSummary, error)
}

func (s *Summarizer) Summarize(pageURL, html string) (*pagecache.PageSummary, error) {
	return s.SummarizeFn(pageURL, html)
}
