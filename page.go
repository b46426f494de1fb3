package aocexample

import "context"

// FirstYear is the first year puzzles were published.
const FirstYear = 2015

// Page is a fetched puzzle description.
type Page struct {
	Year int
	Day  int
	HTML string
}

// Validate returns an error if the page is not a usable puzzle page.
func (p *Page) Validate() error {
	if p.Year < FirstYear {
		return Errorf(EINVALID, "year %d is before %d", p.Year, FirstYear)
	}
	if p.Day < 1 || p.Day > 25 {
		return Errorf(EINVALID, "day %d is out of range 1-25", p.Day)
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "page %d/%d has no HTML", p.Year, p.Day)
	}
	return nil
}

// PageSource lists puzzle pages available to the host.
type PageSource interface {
	Pages(ctx context.Context) ([]*Page, error)
}

// ExampleStore persists extracted examples with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ExampleStore interface {
	Save(ctx context.Context, page *Page, example *Example) error
	Commit() error
	Abort() error
}
