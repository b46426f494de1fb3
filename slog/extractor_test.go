package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/aocexample"
	"github.com/fwojciec/aocexample/mock"
	aocslog "github.com/fwojciec/aocexample/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs a found example with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &aocexample.Example{Text: "1,2", Heuristic: aocexample.HeuristicSingleCandidate, Candidates: 1}
		inner := &mock.ExampleExtractor{
			ExtractFn: func(page *aocexample.Page) (*aocexample.Example, error) {
				return want, nil
			},
		}

		e := aocslog.NewLoggingExtractor(inner, logger)
		got, err := e.Extract(&aocexample.Page{Year: 2022, Day: 1, HTML: "<p></p>"})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "extract example")
		assert.Contains(t, output, "year=2022")
		assert.Contains(t, output, "day=1")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs a miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExampleExtractor{
			ExtractFn: func(page *aocexample.Page) (*aocexample.Example, error) {
				return nil, nil
			},
		}

		e := aocslog.NewLoggingExtractor(inner, logger)
		got, err := e.Extract(&aocexample.Page{Year: 2022, Day: 1})

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Contains(t, buf.String(), "found=false")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExampleExtractor{
			ExtractFn: func(page *aocexample.Page) (*aocexample.Example, error) {
				return nil, aocexample.Errorf(aocexample.EINVALID, "failed to parse HTML")
			},
		}

		e := aocslog.NewLoggingExtractor(inner, logger)
		_, err := e.Extract(&aocexample.Page{Year: 2022, Day: 1})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "failed to parse HTML")
	})
}
