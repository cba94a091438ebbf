// Package store keeps the session attempt journal in an in-memory SQLite database.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/cryptodet/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryDSN opens a private in-memory database that disappears on Close.
const MemoryDSN = ":memory:"

// Store wraps SQLite access for attempt data.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every new connection to :memory: is a new empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenMemory opens a fresh in-memory journal.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			mission_id INTEGER NOT NULL,
			kind TEXT NOT NULL,
			correct INTEGER NOT NULL,
			hint_shown INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id, created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAttempt records one answer submission and returns its ID.
func (s *Store) InsertAttempt(ctx context.Context, a model.Attempt) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, session_id, mission_id, kind, correct, hint_shown, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.SessionID,
		a.MissionID,
		a.Kind,
		boolToInt(a.Correct),
		boolToInt(a.HintShown),
		a.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// ListAttempts returns a session's attempts, oldest first.
func (s *Store) ListAttempts(ctx context.Context, sessionID string) ([]model.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, mission_id, kind, correct, hint_shown, created_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY created_at ASC, rowid ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.Attempt
	for rows.Next() {
		var a model.Attempt
		var correct, hint int
		var createdAt string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.MissionID, &a.Kind, &correct, &hint, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		a.Correct = correct != 0
		a.HintShown = hint != 0
		a.CreatedAt = parsed
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}

// KindAggregates summarizes a session's attempts per cipher kind.
func (s *Store) KindAggregates(ctx context.Context, sessionID string) ([]model.KindAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) AS attempts, SUM(correct) AS solved, SUM(hint_shown) AS with_hints
		 FROM attempts
		 WHERE session_id = ?
		 GROUP BY kind
		 ORDER BY kind`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.KindAggregate
	for rows.Next() {
		var agg model.KindAggregate
		if err := rows.Scan(&agg.Kind, &agg.Attempts, &agg.Solved, &agg.WithHints); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteSession removes every attempt of a session.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attempts WHERE session_id = ?`, sessionID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
