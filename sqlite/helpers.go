package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagecache"
)

// pageColumns lists the pages columns in the order scanPage expects.
const pageColumns = "url, content, error, status, domain, timestamp, content_size, content_hash"

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPage reads one row selected with pageColumns.
func scanPage(s scanner) (*pagecache.Page, error) {
	var p pagecache.Page
	var errMsg sql.NullString
	var status sql.NullInt64

	if err := s.Scan(&p.URL, &p.Content, &errMsg, &status, &p.Domain,
		&p.Timestamp, &p.ContentSize, &p.ContentHash); err != nil {
		return nil, err
	}

	if errMsg.Valid {
		p.Error = &errMsg.String
	}
	if status.Valid {
		code := int(status.Int64)
		p.Status = &code
	}

	return &p, nil
}

// collectPages drains rows into a slice, keeping those accepted by keep.
// A nil keep accepts every row.
func collectPages(rows *sql.Rows, keep func(*pagecache.Page) bool) ([]*pagecache.Page, error) {
	defer rows.Close()

	var pages []*pagecache.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(p) {
			pages = append(pages, p)
		}
	}

	return pages, rows.Err()
}

// hashContent computes the xxHash of content as a 16-digit hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
