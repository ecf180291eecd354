package main

import (
	"fmt"

	"github.com/fwojciec/pagecache"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagecache.Errorf(pagecache.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Cache.ClearDomain(deps.Ctx, c.Domain); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared %s\n", c.Domain)
	return nil
}

// Run executes the clear-all command.
func (c *ClearAllCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagecache.Errorf(pagecache.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Cache.ClearAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Cleared all cached pages")
	return nil
}
