package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagecache"
)

// Run executes the put command.
func (c *PutCmd) Run(deps *Dependencies) error {
	r := deps.Stdin
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		defer f.Close()
		r = f
	}

	pages, err := decodePages(r)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	if err := deps.Cache.Put(deps.Ctx, pages); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecache.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stored %d pages\n", countStorable(pages))
	return nil
}

// decodePages reads either a JSON array of page records or a stream of
// newline-delimited records.
func decodePages(r io.Reader) ([]pagecache.PageInput, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var pages []pagecache.PageInput
		if err := dec.Decode(&pages); err != nil {
			return nil, pagecache.Errorf(pagecache.EINVALID, "invalid page records: %v", err)
		}
		return pages, nil
	}

	var pages []pagecache.PageInput
	for {
		var p pagecache.PageInput
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			return pages, nil
		}
		if err != nil {
			return nil, pagecache.Errorf(pagecache.EINVALID, "invalid page record %d: %v", len(pages)+1, err)
		}
		pages = append(pages, p)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b, br.UnreadByte()
	}
}

// countStorable counts the records Put will keep.
func countStorable(pages []pagecache.PageInput) int {
	seen := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		if p.URL != "" {
			seen[p.URL] = struct{}{}
		}
	}
	return len(seen)
}
