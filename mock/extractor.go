package mock

import "github.com/fwojciec/aocexample"

var _ aocexample.ExampleExtractor = (*ExampleExtractor)(nil)

// ExampleExtractor is a mock implementation of aocexample.ExampleExtractor.
type ExampleExtractor struct {
	ExtractFn func(page *aocexample.Page) (*aocexample.Example, error)
}

func (e *ExampleExtractor) Extract(page *aocexample.Page) (*aocexample.Example, error) {
	return e.ExtractFn(page)
}
