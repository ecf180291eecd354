package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagecache"
	"github.com/fwojciec/pagecache/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("extracts title description and links", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title> Getting Started </title>
	<meta name="description" content="How to begin.">
</head>
<body>
<nav>
	<a href="/docs/intro">Introduction</a>
	<a href="guide#install">Guide</a>
	<a href="/docs/intro#top">Introduction again</a>
</nav>
</body>
</html>`

		s := goquery.NewSummarizer()
		summary, err := s.Summarize("https://example.com/docs/", html)

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", summary.Title)
		assert.Equal(t, "How to begin.", summary.Description)
		assert.Equal(t, []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/guide",
		}, summary.Links)
	})

	t.Run("falls back to first heading for title", func(t *testing.T) {
		t.Parallel()

		summary, err := goquery.NewSummarizer().Summarize("https://example.com/", `<body><h1>Welcome</h1><h1>Other</h1></body>`)

		require.NoError(t, err)
		assert.Equal(t, "Welcome", summary.Title)
		assert.Empty(t, summary.Description)
	})

	t.Run("drops external non-http and self links", func(t *testing.T) {
		t.Parallel()

		html := `<body>
	<a href="https://other.com/page">External</a>
	<a href="https://docs.example.com/page">Subdomain</a>
	<a href="mailto:a@example.com">Mail</a>
	<a href="javascript:void(0)">JS</a>
	<a href="#section">Anchor</a>
	<a href="">Empty</a>
	<a href="/kept">Kept</a>
</body>`

		summary, err := goquery.NewSummarizer().Summarize("https://example.com/page", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/kept"}, summary.Links)
	})

	t.Run("rejects unparseable page URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSummarizer().Summarize("://bad", "<p>x</p>")

		require.Error(t, err)
		assert.Equal(t, pagecache.EINVALID, pagecache.ErrorCode(err))
	})

	t.Run("handles plain text content", func(t *testing.T) {
		t.Parallel()

		summary, err := goquery.NewSummarizer().Summarize("https://example.com/", "just some text")

		require.NoError(t, err)
		assert.Empty(t, summary.Title)
		assert.Empty(t, summary.Links)
	})
}
