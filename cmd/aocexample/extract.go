package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/aocexample"
	"github.com/fwojciec/aocexample/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	page, err := c.readPage(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aocexample.ErrorMessage(err))
		return err
	}

	example, err := deps.Extractor.Extract(page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aocexample.ErrorMessage(err))
		return err
	}
	if example == nil {
		fmt.Fprintf(deps.Stderr, "error: no example found for %d day %d. Run with --log-level=debug for details.\n", page.Year, page.Day)
		return aocexample.Errorf(aocexample.ENOTFOUND, "no example found for %d day %d", page.Year, page.Day)
	}

	fmt.Fprintln(deps.Stdout, example.Text)
	return nil
}

// readPage loads the page, taking year and day from flags or the file name.
func (c *ExtractCmd) readPage(stdin io.Reader) (*aocexample.Page, error) {
	stdinPage := c.File == "" || c.File == "-"

	year, day := c.Year, c.Day
	if (year == 0 || day == 0) && !stdinPage {
		y, d, err := fs.ParsePageName(c.File)
		if err != nil {
			return nil, aocexample.Errorf(aocexample.EINVALID, "%s; pass --year and --day", aocexample.ErrorMessage(err))
		}
		if year == 0 {
			year = y
		}
		if day == 0 {
			day = d
		}
	}

	var content []byte
	var err error
	if stdinPage {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(c.File)
	}
	if err != nil {
		return nil, aocexample.Errorf(aocexample.EINVALID, "failed to read page: %v", err)
	}

	page := &aocexample.Page{Year: year, Day: day, HTML: string(content)}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
