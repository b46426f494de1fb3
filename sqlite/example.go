package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/aocexample"
)

// Compile-time interface verification.
var (
	_ aocexample.ExampleStore  = (*ExampleStore)(nil)
	_ aocexample.RecordService = (*RecordService)(nil)
)

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// ExampleStore implements aocexample.ExampleStore on a single transaction.
// Saves replace any example already stored for the same puzzle; nothing is
// visible to readers until Commit.
type ExampleStore struct {
	db *DB

	mu sync.Mutex
	tx *sql.Tx
}

// NewExampleStore creates a new ExampleStore.
func NewExampleStore(db *DB) *ExampleStore {
	return &ExampleStore{db: db}
}

// Save upserts the example inside the store's transaction, starting it on
// first use.
func (s *ExampleStore) Save(ctx context.Context, page *aocexample.Page, example *aocexample.Example) error {
	if example == nil {
		return aocexample.Errorf(aocexample.EINVALID, "no example for %d day %d", page.Year, page.Day)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		// The transaction lives until Commit or Abort, not until ctx ends.
		tx, err := s.db.BeginTx(context.WithoutCancel(ctx))
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}

	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO examples (year, day, text, heuristic, candidates, page_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (year, day) DO UPDATE SET
			text = excluded.text,
			heuristic = excluded.heuristic,
			candidates = excluded.candidates,
			page_hash = excluded.page_hash,
			extracted_at = excluded.extracted_at
	`, page.Year, page.Day, example.Text, string(example.Heuristic), example.Candidates,
		hashContent(page.HTML), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Commit commits pending saves. It is a no-op when nothing was saved.
func (s *ExampleStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	return err
}

// Abort discards pending saves.
func (s *ExampleStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

// RecordService implements aocexample.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// FindRecord retrieves the saved example for a puzzle.
func (s *RecordService) FindRecord(ctx context.Context, year, day int) (*aocexample.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT year, day, text, heuristic, candidates, page_hash, extracted_at
		FROM examples
		WHERE year = ? AND day = ?
	`, year, day)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, aocexample.Errorf(aocexample.ENOTFOUND, "no example saved for %d day %d", year, day)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindRecords retrieves saved examples matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter aocexample.RecordFilter) ([]*aocexample.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT year, day, text, heuristic, candidates, page_hash, extracted_at
		FROM examples
		WHERE 1=1
	`)

	if filter.Year != nil {
		query.WriteString(" AND year = ?")
		args = append(args, *filter.Year)
	}

	query.WriteString(" ORDER BY year, day")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*aocexample.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*aocexample.Record, error) {
	var record aocexample.Record
	var heuristic, extractedAt string

	if err := row.Scan(&record.Year, &record.Day, &record.Text, &heuristic,
		&record.Candidates, &record.PageHash, &extractedAt); err != nil {
		return nil, err
	}

	record.Heuristic = aocexample.Heuristic(heuristic)

	var err error
	if record.ExtractedAt, err = parseTimestamp(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}
	return &record, nil
}
