package mock

import (
	"context"

	"github.com/fwojciec/aocexample"
)

// Compile-time interface verification.
var (
	_ aocexample.PageSource   = (*PageSource)(nil)
	_ aocexample.ExampleStore = (*ExampleStore)(nil)
)

// PageSource is a mock implementation of aocexample.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context) ([]*aocexample.Page, error)
}

func (s *PageSource) Pages(ctx context.Context) ([]*aocexample.Page, error) {
	return s.PagesFn(ctx)
}

// ExampleStore is a mock implementation of aocexample.ExampleStore.
type ExampleStore struct {
	SaveFn   func(ctx context.Context, page *aocexample.Page, example *aocexample.Example) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExampleStore) Save(ctx context.Context, page *aocexample.Page, example *aocexample.Example) error {
	return s.SaveFn(ctx, page, example)
}

func (s *ExampleStore) Commit() error {
	return s.CommitFn()
}

func (s *ExampleStore) Abort() error {
	return s.AbortFn()
}
