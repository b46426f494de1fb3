package mock

import "github.com/fwojciec/aocexample"

var _ aocexample.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of aocexample.Reporter.
type Reporter struct {
	SelectedFn func(page *aocexample.Page, example *aocexample.Example)
	NotFoundFn func(page *aocexample.Page, candidates int)
}

func (r *Reporter) Selected(page *aocexample.Page, example *aocexample.Example) {
	r.SelectedFn(page, example)
}

func (r *Reporter) NotFound(page *aocexample.Page, candidates int) {
	r.NotFoundFn(page, candidates)
}
