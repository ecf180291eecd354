package main

import (
	"fmt"

	"github.com/fwojciec/pagecache"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Cache.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pages:  %d\n", stats.PageCount)
	fmt.Fprintf(deps.Stdout, "Size:   %s of %s\n", pagecache.FormatBytes(stats.TotalSize), pagecache.FormatBytes(stats.Budget))
	if stats.OverBudget() {
		fmt.Fprintln(deps.Stdout, "Warning: cache exceeds its budget; the next put will evict older pages.")
	}
	return nil
}

// Run executes the evict command.
func (c *EvictCmd) Run(deps *Dependencies) error {
	if c.Bytes <= 0 {
		fmt.Fprintf(deps.Stderr, "error: bytes to free must be positive\n")
		return pagecache.Errorf(pagecache.EINVALID, "bytes to free must be positive")
	}

	freed, err := deps.Cache.Evict(deps.Ctx, c.Bytes)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Freed %s\n", pagecache.FormatBytes(freed))
	return nil
}
