package slog

import (
	"log/slog"

	"github.com/fwojciec/aocexample"
)

// Ensure LoggingReporter implements aocexample.Reporter.
var _ aocexample.Reporter = (*LoggingReporter)(nil)

// LoggingReporter reports extraction outcomes to a logger.
type LoggingReporter struct {
	logger *slog.Logger
}

// NewLoggingReporter creates a new LoggingReporter.
func NewLoggingReporter(logger *slog.Logger) *LoggingReporter {
	return &LoggingReporter{logger: logger}
}

// Selected logs which heuristic picked the example.
func (r *LoggingReporter) Selected(page *aocexample.Page, example *aocexample.Example) {
	r.logger.Debug("example selected",
		"year", page.Year,
		"day", page.Day,
		"heuristic", string(example.Heuristic),
		"candidates", example.Candidates,
	)
}

// NotFound logs a failed extraction. A page without any code block points
// at an unusual layout; a page whose blocks were all rejected points at a
// missing heuristic.
func (r *LoggingReporter) NotFound(page *aocexample.Page, candidates int) {
	if candidates == 0 {
		r.logger.Error("no example found: no code blocks on page",
			"year", page.Year,
			"day", page.Day,
		)
		return
	}
	r.logger.Error("no example found: no code block matched any heuristic",
		"year", page.Year,
		"day", page.Day,
		"candidates", candidates,
	)
}
