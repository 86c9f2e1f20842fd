// Package storage provides SQLite-based persistence for game progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Two tables: a single-row snapshot of the serialized session state, written
// through after every mutation, and a solve log recording when each puzzle
// was first completed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ellomar/puzzlebox/internal/state"
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry records the first completion of one puzzle.
type SolveEntry struct {
	PuzzleID state.PuzzleID
	SolvedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL UNIQUE,
			solved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the persisted snapshot, or (nil, nil) when no session
// has been saved yet.
func (s *Store) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshot WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the persisted snapshot with the given serialized state.
func (s *Store) Save(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshot (id, data, updated_at)
		 VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot and the solve log.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM snapshot"); err != nil {
		return fmt.Errorf("storage: cannot clear snapshot: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM solves"); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// RecordSolve logs the first completion of a puzzle.
// Recording the same puzzle again keeps the original timestamp.
func (s *Store) RecordSolve(id state.PuzzleID) error {
	_, err := s.db.Exec(
		"INSERT INTO solves (puzzle_id) VALUES (?) ON CONFLICT(puzzle_id) DO NOTHING",
		string(id),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record solve: %w", err)
	}
	return nil
}

// Solves retrieves the solve log in completion order.
func (s *Store) Solves() ([]SolveEntry, error) {
	rows, err := s.db.Query("SELECT puzzle_id, solved_at FROM solves ORDER BY solved_at, id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var id string
		var solvedAt any
		if err := rows.Scan(&id, &solvedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.PuzzleID = state.PuzzleID(id)

		// Parse the datetime - handle both time.Time and string
		switch v := solvedAt.(type) {
		case time.Time:
			e.SolvedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.SolvedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SolvedAt returns the timestamp of a puzzle's first solve, or (zero, false)
// when the puzzle has not been solved.
func (s *Store) SolvedAt(id state.PuzzleID) (time.Time, bool, error) {
	var solvedAt any
	err := s.db.QueryRow(
		"SELECT solved_at FROM solves WHERE puzzle_id = ?",
		string(id),
	).Scan(&solvedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("storage: cannot query solve: %w", err)
	}

	switch v := solvedAt.(type) {
	case time.Time:
		return v, true, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, true, nil
		}
	}
	return time.Time{}, true, nil
}

// Ensure Store implements the progress store's persistence contract.
var _ state.Persister = (*Store)(nil)
