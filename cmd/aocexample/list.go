package main

import (
	"fmt"

	"github.com/fwojciec/aocexample"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter aocexample.RecordFilter
	if c.Year != 0 {
		filter.Year = &c.Year
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aocexample.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No examples saved. Use 'aocexample batch --db' to save examples.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%d day %2d  %-16s %d candidates  %s\n",
			r.Year, r.Day, r.Heuristic, r.Candidates, r.ExtractedAt.Format("2006-01-02"))
	}
	return nil
}
