package main

import (
	"fmt"

	"github.com/fwojciec/pagecache"
)

// Run executes the domains command.
func (c *DomainsCmd) Run(deps *Dependencies) error {
	domains, err := deps.Cache.ListDomains(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	if len(domains) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached pages. Use 'pagecache put' or 'pagecache fetch' to add some.")
		return nil
	}

	now := deps.now()
	for _, d := range domains {
		fmt.Fprintf(deps.Stdout, "%s  %d pages  %s  %s\n",
			d.Domain, d.PageCount, pagecache.FormatBytes(d.TotalSize), pagecache.TimeAgoAt(d.LastCrawled, now))
	}

	return nil
}
