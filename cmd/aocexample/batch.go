package main

import (
	"fmt"

	"github.com/fwojciec/aocexample"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) (err error) {
	pages, err := deps.Pages.Pages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no YYYY-DD.html pages in %s\n", c.Dir)
		return aocexample.Errorf(aocexample.ENOTFOUND, "no pages in %s", c.Dir)
	}

	defer func() {
		if err != nil {
			_ = deps.Store.Abort()
		}
	}()

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Pages are independent; each extraction parses its own tree.
	examples := make([]*aocexample.Example, len(pages))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			example, err := deps.Extractor.Extract(page)
			if err != nil {
				return fmt.Errorf("%d day %d: %w", page.Year, page.Day, err)
			}
			if example == nil {
				return nil
			}
			examples[i] = example
			return deps.Store.Save(gctx, page, example)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to commit examples: %v\n", err)
		return err
	}

	var found int
	for i, example := range examples {
		if example == nil {
			fmt.Fprintf(deps.Stdout, "  missing: %d day %d\n", pages[i].Year, pages[i].Day)
			continue
		}
		found++
	}
	fmt.Fprintf(deps.Stdout, "Extracted %d of %d examples to %s\n", found, len(pages), c.destination())
	return nil
}

// destination describes where examples were saved.
func (c *BatchCmd) destination() string {
	if c.DB {
		return "database"
	}
	return c.Out
}
