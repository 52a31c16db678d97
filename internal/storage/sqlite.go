// Package storage persists the snake high score and the history of finished
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultPath is where the database lives unless --db says otherwise.
const DefaultPath = "~/.arcade/snake.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game as kept in the history.
type Run struct {
	ID        string
	Session   string
	Score     int
	Length    int
	Ticks     uint64
	Cause     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	Longest    int
	LastPlayed time.Time
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
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

// Get reads an integer value. A missing key reports ok == false.
func (s *Store) Get(key string) (int, bool, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Set raises the value stored under key. A value lower than the stored one
// is ignored, so concurrent games sharing the database never lower a high
// score.
func (s *Store) Set(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = MAX(value, excluded.value), updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// SaveRun records a finished run. A run without an ID gets a fresh UUID.
// Returns the ID of the stored record.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, session, score, length, ticks, cause, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Session,
		run.Score,
		run.Length,
		int64(run.Ticks),
		run.Cause,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// SaveRunResult implements engine.ResultSaver.
// This adapter allows the controller to save runs without direct storage dependency.
func (s *Store) SaveRunResult(r engine.RunResult) error {
	_, err := s.SaveRun(runFromResult(r))
	return err
}

// Ensure Store implements the collaborator interfaces
var (
	_ engine.ResultSaver   = (*Store)(nil)
	_ snake.HighScoreStore = (*Store)(nil)
)

// TopRuns retrieves the best N runs, highest score first. Ties go to the
// longer snake, then the earlier run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, score, length, ticks, cause, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, length DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks, durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Session, &r.Score, &r.Length, &ticks, &r.Cause, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the run history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(length), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalScore, &stats.Longest, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func runFromResult(r engine.RunResult) Run {
	return Run{
		ID:       r.RunID,
		Session:  string(r.SessionID),
		Score:    r.Score,
		Length:   r.Length,
		Ticks:    r.Ticks,
		Cause:    r.Outcome.String(),
		Duration: r.Duration,
	}
}
