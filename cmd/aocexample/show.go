package main

import (
	"fmt"

	"github.com/fwojciec/aocexample"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecord(deps.Ctx, c.Year, c.Day)
	if err != nil {
		if aocexample.ErrorCode(err) == aocexample.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no example saved for %d day %d. Use 'aocexample batch --db' to save examples.\n", c.Year, c.Day)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", aocexample.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, record.Text)
	return nil
}
