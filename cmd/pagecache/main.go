package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecache"
	"github.com/fwojciec/pagecache/crawl"
	"github.com/fwojciec/pagecache/fs"
	"github.com/fwojciec/pagecache/goquery"
	pchttp "github.com/fwojciec/pagecache/http"
	pcslog "github.com/fwojciec/pagecache/slog"
	"github.com/fwojciec/pagecache/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, used when neither --db nor PAGECACHE_DB is set.
	DBPath string

	// SQLite database used by the cache.
	DB *sqlite.DB

	// Cache is the wired page cache, exposed for end-to-end testing.
	Cache pagecache.PageCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagecache"),
		kong.Description("Inspect and manage the local crawled page cache"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"db_path": m.DBPath,
			"budget":  strconv.FormatInt(pagecache.DefaultBudget, 10),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagecache --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGECACHE_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	m.Cache = sqlite.NewPageCache(m.DB, sqlite.WithBudget(cli.Budget))
	if logger != nil {
		m.Cache = pcslog.NewLoggingPageCache(m.Cache, logger)
	}
	deps.Cache = m.Cache
	deps.Summarizer = goquery.NewSummarizer()
	deps.NewStore = func(dir, name string) pagecache.PageStore {
		return fs.NewFileStore(dir, name)
	}

	if strings.HasPrefix(kongCtx.Command(), "fetch") {
		var fetcher pagecache.Fetcher = pchttp.NewFetcher(pchttp.WithTimeout(cli.Fetch.Timeout))
		if logger != nil {
			fetcher = pcslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			RateLimiter: crawl.NewDomainLimiter(cli.Fetch.RPS),
			Concurrency: cli.Fetch.Concurrency,
		}
		if logger != nil {
			deps.Crawler.Logf = func(format string, args ...any) {
				logger.Info(fmt.Sprintf(format, args...))
			}
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagecache.db"
	}
	dir := filepath.Join(home, ".pagecache")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagecache.db")
}
