package aocexample_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/aocexample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := aocexample.Errorf(aocexample.ENOTFOUND, "no example for %d/%d", 2022, 7)

	assert.Equal(t, aocexample.ENOTFOUND, aocexample.ErrorCode(err))
	assert.Equal(t, "no example for 2022/7", aocexample.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", aocexample.Errorf(aocexample.EINVALID, "bad page"))

	assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
	assert.Equal(t, "bad page", aocexample.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, aocexample.EINTERNAL, aocexample.ErrorCode(err))
	assert.Equal(t, "Internal error", aocexample.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, aocexample.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, aocexample.ErrorMessage(nil))
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid page", func(t *testing.T) {
		t.Parallel()

		page := &aocexample.Page{Year: 2022, Day: 7, HTML: "<main></main>"}

		require.NoError(t, page.Validate())
	})

	t.Run("rejects year before first event", func(t *testing.T) {
		t.Parallel()

		page := &aocexample.Page{Year: 2014, Day: 1, HTML: "<main></main>"}

		err := page.Validate()

		assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		t.Parallel()

		for _, day := range []int{0, 26} {
			page := &aocexample.Page{Year: 2022, Day: day, HTML: "<main></main>"}

			err := page.Validate()

			assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
			assert.True(t, strings.Contains(aocexample.ErrorMessage(err), "out of range"))
		}
	})

	t.Run("rejects empty HTML", func(t *testing.T) {
		t.Parallel()

		page := &aocexample.Page{Year: 2022, Day: 7}

		err := page.Validate()

		assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
	})
}
