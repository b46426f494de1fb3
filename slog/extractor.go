package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/aocexample"
)

// Ensure LoggingExtractor implements aocexample.ExampleExtractor.
var _ aocexample.ExampleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ExampleExtractor with logging.
type LoggingExtractor struct {
	next   aocexample.ExampleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next aocexample.ExampleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(page *aocexample.Page) (example *aocexample.Example, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract example",
			"year", page.Year,
			"day", page.Day,
			"found", example != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}
