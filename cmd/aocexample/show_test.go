package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/aocexample"
	main "github.com/fwojciec/aocexample/cmd/aocexample"
	"github.com/fwojciec/aocexample/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the saved example", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordFn: func(_ context.Context, year, day int) (*aocexample.Record, error) {
				require.Equal(t, 2022, year)
				require.Equal(t, 7, day)
				return &aocexample.Record{Year: year, Day: day, Text: "$ cd /"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ShowCmd{Year: 2022, Day: 7}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "$ cd /\n", stdout.String())
	})

	t.Run("hints when nothing was saved", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordFn: func(_ context.Context, year, day int) (*aocexample.Record, error) {
				return nil, aocexample.Errorf(aocexample.ENOTFOUND, "no example saved")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ShowCmd{Year: 2022, Day: 7}
		err := cmd.Run(deps)

		assert.Equal(t, aocexample.ENOTFOUND, aocexample.ErrorCode(err))
		assert.Contains(t, stderr.String(), "batch --db")
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists saved examples", func(t *testing.T) {
		t.Parallel()

		var gotFilter aocexample.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter aocexample.RecordFilter) ([]*aocexample.Record, error) {
				gotFilter = filter
				return []*aocexample.Record{
					{Year: 2022, Day: 7, Heuristic: aocexample.HeuristicAnchor, Candidates: 2, ExtractedAt: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
					{Year: 2022, Day: 8, Heuristic: aocexample.HeuristicSingleCandidate, Candidates: 1, ExtractedAt: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ListCmd{Year: 2022}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Year)
		assert.Equal(t, 2022, *gotFilter.Year)
		assert.Contains(t, stdout.String(), "2022 day  7  anchor")
		assert.Contains(t, stdout.String(), "single-candidate")
		assert.Contains(t, stdout.String(), "2026-10-15")
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter aocexample.RecordFilter) ([]*aocexample.Record, error) {
				assert.Nil(t, filter.Year)
				return []*aocexample.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No examples saved")
	})
}
