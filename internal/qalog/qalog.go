package qalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// opens (or creates) the question log at the given path.
// _txlock=immediate makes every transaction take the write lock up front,
// which serializes concurrent check-then-insert sequences across writers.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

// closes the backing database
func (s *Store) Close() error {
	return s.db.Close()
}

// creates the qa_table if it does not exist. idempotent, called on every write.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: failed to create qa_table: %v", ErrStorageUnavailable, err)
	}

	return nil
}

// appends a question/answer pair unless an entry with the same question text
// already exists. the existence check and the insert run in one transaction,
// so concurrent Record calls with the same question resolve to exactly one
// inserted row. the first stored answer for a question is never overwritten.
func (s *Store) Record(ctx context.Context, visible bool, cost float64, question, response string) (RecordOutcome, error) {
	if question == "" {
		return RecordOutcome{}, ErrEmptyQuestion
	}

	if err := s.EnsureSchema(ctx); err != nil {
		return RecordOutcome{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordOutcome{}, fmt.Errorf("%w: failed to begin transaction: %v", ErrStorageUnavailable, err)
	}

	// defer rollback - will be no-op once commit succeeds
	defer tx.Rollback() //nolint:errcheck

	var existingID int64

	err = tx.QueryRowContext(ctx, selectByQuestionQuery, question).Scan(&existingID)

	switch {
	case err == nil:
		// exact-match duplicate, no write
		return RecordOutcome{Inserted: false, ID: existingID}, nil
	case err != sql.ErrNoRows:
		return RecordOutcome{}, fmt.Errorf("failed to check for existing question: %w", err)
	}

	result, err := tx.ExecContext(ctx, insertEntryQuery, visible, cost, question, response)
	if err != nil {
		return RecordOutcome{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return RecordOutcome{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RecordOutcome{}, fmt.Errorf("failed to commit entry: %w", err)
	}

	return RecordOutcome{Inserted: true, ID: id}, nil
}

// returns all logged (question, response) pairs in insertion order,
// optionally filtered to visible entries.
//
// a store whose table has not been created yet returns an empty list rather
// than an error, so a fresh deployment renders an empty sidebar. only the
// missing-table case is downgraded; a locked or corrupt store still fails.
func (s *Store) ListQuestions(ctx context.Context, visibleOnly bool) ([]QuestionAnswer, error) {
	query := listQuestionsQuery
	if visibleOnly {
		query = listVisibleQuestionsQuery
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		if isMissingTable(err) {
			return []QuestionAnswer{}, nil
		}

		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	defer rows.Close()

	results := []QuestionAnswer{}

	for rows.Next() {
		var qa QuestionAnswer
		if err := rows.Scan(&qa.Question, &qa.Response); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, qa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

// returns a single entry by id
func (s *Store) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	var entry Entry

	err := s.db.QueryRowContext(ctx, getEntryQuery, id).Scan(
		&entry.ID,
		&entry.Visible,
		&entry.Cost,
		&entry.Question,
		&entry.Response,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}

	return &entry, nil
}

// reports whether the error is SQLite's missing-table error for qa_table
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table: qa_table")
}
