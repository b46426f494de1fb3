package mock

import (
	"context"

	"github.com/fwojciec/aocexample"
)

var _ aocexample.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of aocexample.RecordService.
type RecordService struct {
	FindRecordFn  func(ctx context.Context, year, day int) (*aocexample.Record, error)
	FindRecordsFn func(ctx context.Context, filter aocexample.RecordFilter) ([]*aocexample.Record, error)
}

func (s *RecordService) FindRecord(ctx context.Context, year, day int) (*aocexample.Record, error) {
	return s.FindRecordFn(ctx, year, day)
}

func (s *RecordService) FindRecords(ctx context.Context, filter aocexample.RecordFilter) ([]*aocexample.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
