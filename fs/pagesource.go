package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/aocexample"
)

// Ensure PageSource implements aocexample.PageSource at compile time.
var _ aocexample.PageSource = (*PageSource)(nil)

// PageSource reads puzzle pages saved as YYYY-DD.html files in a directory.
type PageSource struct {
	dir string
}

// NewPageSource creates a new PageSource reading from dir.
func NewPageSource(dir string) *PageSource {
	return &PageSource{dir: dir}
}

// Pages returns every valid page in the directory ordered by year and day.
// Files with other extensions are ignored; misnamed .html files are errors.
func (s *PageSource) Pages(ctx context.Context) ([]*aocexample.Page, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read page directory: %w", err)
	}

	var pages []*aocexample.Page
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != PageExt {
			continue
		}

		page, err := ReadPage(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Year != pages[j].Year {
			return pages[i].Year < pages[j].Year
		}
		return pages[i].Day < pages[j].Day
	})
	return pages, nil
}

// ReadPage reads a single page file, taking year and day from its name.
func ReadPage(path string) (*aocexample.Page, error) {
	year, day, err := ParsePageName(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	page := &aocexample.Page{Year: year, Day: day, HTML: string(content)}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
