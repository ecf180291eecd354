package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pagecache"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	pages, err := deps.Cache.PagesForDomain(deps.Ctx, c.Domain)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	store := deps.NewStore(c.Dir, c.Domain)

	var saved int
	for _, p := range pages {
		if p.Content == "" {
			continue
		}
		if err := store.Save(deps.Ctx, p); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
			return err
		}
		saved++
	}

	if saved == 0 {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: no cached content for %q\n", c.Domain)
		return pagecache.Errorf(pagecache.ENOTFOUND, "no cached content for %q", c.Domain)
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", saved, filepath.Join(c.Dir, c.Domain))
	return nil
}
