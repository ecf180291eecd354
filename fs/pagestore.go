// Package fs exports cached pages to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/pagecache"
)

// Ensure FileStore implements pagecache.PageStore at compile time.
var _ pagecache.PageStore = (*FileStore)(nil)

// FileStore implements pagecache.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api → docs/api.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	p := path.Clean("/" + u.Path)
	if p == "/" {
		return "index.html", nil
	}

	rel := strings.TrimPrefix(p, "/")
	if strings.HasSuffix(u.Path, "/") {
		return rel + "/index.html", nil
	}
	if path.Ext(rel) == "" {
		return rel + ".html", nil
	}
	return rel, nil
}

// Save writes page into the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *pagecache.Page) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return pagecache.Errorf(pagecache.EINVALID, "cannot map %q to a file: %v", page.URL, err)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPage(page)), 0644)
}

// FormatPage prefixes page content with an HTML comment describing its origin.
func FormatPage(page *pagecache.Page) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ncrawled: ")
	b.WriteString(page.CrawledAt().UTC().Format("2006-01-02"))
	if page.Status != nil {
		b.WriteString("\nstatus: ")
		b.WriteString(strconv.Itoa(*page.Status))
	}
	b.WriteString("\nhash: ")
	b.WriteString(page.ContentHash)
	b.WriteString("\n-->\n")
	b.WriteString(page.Content)
	return b.String()
}

// Commit replaces the final directory with the temporary one.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return fmt.Errorf("failed to move export into place: %w", err)
	}

	return nil
}

// Abort discards the temporary directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
