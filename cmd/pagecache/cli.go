package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagecache"
	"github.com/fwojciec/pagecache/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Cache    pagecache.PageCache
	Crawler  *crawl.Crawler
	NewStore func(dir, name string) pagecache.PageStore

	// Summarizer describes HTML content for show. Optional.
	Summarizer pagecache.Summarizer

	// Now is used to render relative times. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB     string `help:"Path to the cache database" env:"PAGECACHE_DB" default:"${db_path}"`
	Budget int64  `help:"Maximum total content size in bytes" env:"PAGECACHE_BUDGET" default:"${budget}"`
	Debug  bool   `help:"Log cache operations to stderr"`

	Put      PutCmd      `cmd:"" help:"Store a batch of crawled pages read from JSON"`
	Fetch    FetchCmd    `cmd:"" help:"Fetch URLs over HTTP and store them as one batch"`
	Domains  DomainsCmd  `cmd:"" help:"List cached domains, most recently crawled first"`
	Pages    PagesCmd    `cmd:"" help:"List cached pages for a domain"`
	Search   SearchCmd   `cmd:"" help:"Find cached pages whose URL contains a query"`
	Show     ShowCmd     `cmd:"" help:"Print a cached page"`
	Stats    StatsCmd    `cmd:"" help:"Show cache size and budget"`
	Evict    EvictCmd    `cmd:"" help:"Evict the oldest pages to free space"`
	Clear    ClearCmd    `cmd:"" help:"Delete all cached pages for a domain"`
	ClearAll ClearAllCmd `cmd:"" name:"clear-all" help:"Delete every cached page"`
	Export   ExportCmd   `cmd:"" help:"Write a domain's cached pages to a directory"`
}

// PutCmd is the "put" subcommand.
type PutCmd struct {
	File string `arg:"" optional:"" default:"-" help:"JSON file with page records (- for stdin)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs        []string      `arg:"" name:"urls" help:"URLs to fetch"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per domain (0 disables)"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
}

// DomainsCmd is the "domains" subcommand.
type DomainsCmd struct{}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Domain string `arg:"" help:"Domain name, e.g. example.com"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Case-insensitive URL substring"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Meta  bool   `help:"Print metadata only"`
	Links bool   `help:"Print only same-host links found in the page, one per line"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// EvictCmd is the "evict" subcommand.
type EvictCmd struct {
	Bytes int64 `arg:"" help:"Bytes to free"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Domain string `arg:"" help:"Domain name"`
	Force  bool   `help:"Confirm deletion"`
}

// ClearAllCmd is the "clear-all" subcommand.
type ClearAllCmd struct {
	Force bool `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Domain string `arg:"" help:"Domain name"`
	Dir    string `short:"o" default:"." help:"Parent directory for the export"`
}
