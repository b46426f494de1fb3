package aocexample

import (
	"context"
	"time"
)

// Record is an example saved by the host together with its provenance.
type Record struct {
	Year       int
	Day        int
	Text       string
	Heuristic  Heuristic
	Candidates int

	// PageHash identifies the page HTML the example was extracted from.
	PageHash string

	ExtractedAt time.Time
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Year *int

	Offset int
	Limit  int
}

// RecordService represents a service for reading saved examples.
type RecordService interface {
	// FindRecord returns the saved example for a puzzle.
	// Returns ENOTFOUND if none was saved.
	FindRecord(ctx context.Context, year, day int) (*Record, error)

	// FindRecords returns saved examples ordered by year and day.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}
