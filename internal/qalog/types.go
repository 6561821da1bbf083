package qalog

import (
	"database/sql"
	"errors"
)

var (
	// backing store could not be opened or written
	ErrStorageUnavailable = errors.New("question log storage unavailable")

	// question text must be non-empty
	ErrEmptyQuestion = errors.New("question must not be empty")
)

// durable, deduplicated, append-only log of question/answer pairs
type Store struct {
	db *sql.DB
}

// result of a Record call. exactly one of the two cases holds:
// a new row was inserted with the given ID, or a row with the same
// question text already existed and nothing was written.
type RecordOutcome struct {
	Inserted bool
	ID       int64
}

// one logged question/answer pair as shown in the sidebar
type QuestionAnswer struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// one full row of the log
type Entry struct {
	ID       int64   `json:"id"`
	Visible  bool    `json:"visible"`
	Cost     float64 `json:"cost"`
	Question string  `json:"question"`
	Response string  `json:"response"`
}
