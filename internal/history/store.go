// Package history persists answered problems to a local SQLite database so
// past sessions can be reviewed from the command line.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Source identifies which path produced an answer.
type Source string

const (
	// SourcePlugin marks answers produced by the deterministic dispatcher.
	SourcePlugin Source = "plugin"
	// SourceFallback marks answers produced by the external reasoning service.
	SourceFallback Source = "fallback"
	// SourceNone marks the no-match sentinel.
	SourceNone Source = "none"
)

// Record is one answered problem.
type Record struct {
	ID         string
	AskedAt    time.Time
	Problem    string
	Answer     string
	Tag        string
	Source     Source
	DurationMS int64
}

// Store provides durable storage for solve history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithNowFunc replaces the wall clock. Used by tests.
func WithNowFunc(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent - safe to call multiple times.
func Open(path string, opts ...StoreOption) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append inserts a record, assigning an ID and timestamp when absent.
// Duplicate IDs are silently ignored so replayed appends stay idempotent.
func (s *Store) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.AskedAt.IsZero() {
		rec.AskedAt = s.now().UTC()
	}
	if rec.Source == "" {
		rec.Source = SourcePlugin
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solves (id, asked_at, problem, answer, tag, source, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.AskedAt.Format(time.RFC3339Nano),
		rec.Problem,
		rec.Answer,
		rec.Tag,
		string(rec.Source),
		rec.DurationMS,
	)
	if err != nil {
		return Record{}, fmt.Errorf("append solve: %w", err)
	}
	return rec, nil
}

// Recent returns the most recent records, newest first. A non-positive
// limit returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, asked_at, problem, answer, tag, source, duration_ms
		FROM solves
		ORDER BY asked_at DESC, id COLLATE BINARY DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var askedAt, source string
		if err := rows.Scan(&rec.ID, &askedAt, &rec.Problem, &rec.Answer, &rec.Tag, &source, &rec.DurationMS); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		rec.AskedAt, err = time.Parse(time.RFC3339Nano, askedAt)
		if err != nil {
			return nil, fmt.Errorf("parse asked_at %q: %w", askedAt, err)
		}
		rec.Source = Source(source)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solves: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM solves").Scan(&n); err != nil {
		return 0, fmt.Errorf("count solves: %w", err)
	}
	return n, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
