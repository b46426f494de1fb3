// Package fs provides file-based page input and example output.
package fs

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/aocexample"
)

// PageExt is the extension of saved puzzle pages.
const PageExt = ".html"

// PageName returns the file name of a page: 2022-07.html.
func PageName(year, day int) string {
	return fmt.Sprintf("%04d-%02d%s", year, day, PageExt)
}

// ParsePageName extracts the year and day from a page file name.
// Example: 2022-07.html → 2022, 7
func ParsePageName(name string) (year, day int, err error) {
	base := filepath.Base(name)
	stem, ok := strings.CutSuffix(base, PageExt)
	if !ok {
		return 0, 0, aocexample.Errorf(aocexample.EINVALID, "page %q does not end in %s", base, PageExt)
	}

	y, d, ok := strings.Cut(stem, "-")
	if !ok {
		return 0, 0, aocexample.Errorf(aocexample.EINVALID, "page %q is not named YYYY-DD%s", base, PageExt)
	}

	if year, err = strconv.Atoi(y); err != nil {
		return 0, 0, aocexample.Errorf(aocexample.EINVALID, "page %q has invalid year: %v", base, err)
	}
	if day, err = strconv.Atoi(d); err != nil {
		return 0, 0, aocexample.Errorf(aocexample.EINVALID, "page %q has invalid day: %v", base, err)
	}
	return year, day, nil
}

// ExamplePath returns the path of an example relative to the output
// directory.
// Example: 2022, 7 → 2022/07.txt
func ExamplePath(year, day int) string {
	return filepath.Join(fmt.Sprintf("%04d", year), fmt.Sprintf("%02d.txt", day))
}
