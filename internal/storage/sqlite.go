// Package storage provides the SQLite-backed run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-climber/internal/config"
)

// ErrRunNotFound is returned when a run id has no record.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one finished session. It records enough to replay or tune:
// the seed reproduces the layout, the rest describes how far it got.
type Run struct {
	ID         int64
	Seed       int64
	Score      int
	Level      int
	Rows       int
	Cause      string // danger, fall or quit
	DurationMs int64
	Source     string // play, serve or sim
	CreatedAt  time.Time
}

// Open opens the journal at dbPath, creating the file, its parent
// directories and the schema as needed. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; SSH sessions share the store.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot prepare journal %s: %w", dbPath, err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			rows_generated INTEGER NOT NULL,
			cause TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'play',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_cause ON runs(cause);
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

// SaveRun records a finished session and returns its id.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Source == "" {
		r.Source = "play"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, score, level, rows_generated, cause, duration_ms, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Score, r.Level, r.Rows, r.Cause, r.DurationMs, r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, score, level, rows_generated, cause, duration_ms, source, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	if err := row.Scan(&r.ID, &r.Seed, &r.Score, &r.Level, &r.Rows, &r.Cause, &r.DurationMs, &r.Source, &createdAt); err != nil {
		return Run{}, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// RecentRuns returns the newest runs first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID returns one run. A missing id yields ErrRunNotFound.
func (s *Store) RunByID(id int64) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: id %d", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// CauseCounts returns how many runs ended for each cause.
func (s *Store) CauseCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT cause, COUNT(*) FROM runs GROUP BY cause`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count causes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[cause] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
