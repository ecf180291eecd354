// Package goquery summarizes cached HTML using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecache"
)

// Ensure Summarizer implements pagecache.Summarizer at compile time.
var _ pagecache.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagecache.Summarizer.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize extracts the document title, meta description and same-host
// links. External, non-HTTP and self-referential links are dropped.
func (s *Summarizer) Summarize(pageURL, html string) (*pagecache.PageSummary, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagecache.Errorf(pagecache.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagecache.Errorf(pagecache.EINVALID, "failed to parse HTML: %v", err)
	}

	summary := &pagecache.PageSummary{
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
	}
	if summary.Title == "" {
		summary.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		summary.Description = strings.TrimSpace(desc)
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		summary.Links = append(summary.Links, resolved)
	})

	return summary, nil
}

// resolveURL resolves href against base and strips the fragment.
// Returns empty string if href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isSameHost uses exact host matching; subdomains are different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
