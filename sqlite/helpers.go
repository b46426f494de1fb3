package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseTimestamp parses a stored RFC3339 timestamp, naming the column on failure.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses for positive values.
// SQLite only accepts OFFSET after a LIMIT, so an offset without a limit
// is written as LIMIT -1 (no limit).
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
