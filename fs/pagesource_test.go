package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/aocexample"
	"github.com/fwojciec/aocexample/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestPageSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("reads pages ordered by year and day", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "2022-10.html", "<p>ten</p>")
		writeFile(t, dir, "2021-25.html", "<p>last</p>")
		writeFile(t, dir, "2022-02.html", "<p>two</p>")
		writeFile(t, dir, "notes.txt", "ignored")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), 0755))

		pages, err := fs.NewPageSource(dir).Pages(context.Background())

		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, &aocexample.Page{Year: 2021, Day: 25, HTML: "<p>last</p>"}, pages[0])
		assert.Equal(t, 2022, pages[1].Year)
		assert.Equal(t, 2, pages[1].Day)
		assert.Equal(t, 10, pages[2].Day)
	})

	t.Run("rejects misnamed pages", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "day7.html", "<p></p>")

		_, err := fs.NewPageSource(dir).Pages(context.Background())

		assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
	})

	t.Run("rejects out of range days", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "2022-26.html", "<p></p>")

		_, err := fs.NewPageSource(dir).Pages(context.Background())

		assert.Equal(t, aocexample.EINVALID, aocexample.ErrorCode(err))
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewPageSource(filepath.Join(t.TempDir(), "missing")).Pages(context.Background())

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "2022-01.html", "<p></p>")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewPageSource(dir).Pages(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "2020-01.html", "<pre><code>1721\n979</code></pre>")

	page, err := fs.ReadPage(filepath.Join(dir, "2020-01.html"))

	require.NoError(t, err)
	assert.Equal(t, 2020, page.Year)
	assert.Equal(t, 1, page.Day)
	assert.Equal(t, "<pre><code>1721\n979</code></pre>", page.HTML)
}
