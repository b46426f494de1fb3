package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/aocexample"
)

// Ensure ExampleStore implements aocexample.ExampleStore at compile time.
var _ aocexample.ExampleStore = (*ExampleStore)(nil)

// ExampleStore implements aocexample.ExampleStore with atomic update
// semantics. Examples are saved to a temporary directory, then moved
// atomically on Commit.
type ExampleStore struct {
	baseDir string
	name    string
}

// NewExampleStore creates a new ExampleStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExampleStore(baseDir, name string) *ExampleStore {
	return &ExampleStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExampleStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExampleStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the example text to baseDir/name.tmp/YYYY/DD.txt.
func (s *ExampleStore) Save(ctx context.Context, page *aocexample.Page, example *aocexample.Example) error {
	if example == nil {
		return aocexample.Errorf(aocexample.EINVALID, "no example for %d day %d", page.Year, page.Day)
	}

	fullPath := filepath.Join(s.tempDir(), ExamplePath(page.Year, page.Day))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(example.Text+"\n"), 0644)
}

func (s *ExampleStore) Commit() error {
	// Nothing saved; keep any existing output.
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return nil
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *ExampleStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
