package storage

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Backend is what the game and the scoreboard need from a store.
// Both Store and MemoryStore implement it.
type Backend interface {
	Get(key string) (int, bool, error)
	Set(key string, value int) error
	SaveRunResult(r engine.RunResult) error
	TopRuns(limit int) ([]Run, error)
	Stats() (*Stats, error)
	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*MemoryStore)(nil)
)

// MemoryStore keeps everything in process memory. It is the fallback when
// the database cannot be opened; nothing survives a restart.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	runs   []Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get reads an integer value.
func (m *MemoryStore) Get(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set raises the value stored under key, like Store.Set.
func (m *MemoryStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.values[key]; ok && cur >= value {
		return nil
	}
	m.values[key] = value
	return nil
}

// SaveRunResult records a finished run.
func (m *MemoryStore) SaveRunResult(r engine.RunResult) error {
	run := runFromResult(r)
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	run.CreatedAt = time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

// TopRuns returns the best N runs in the same order as Store.TopRuns.
func (m *MemoryStore) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	runs := slices.Clone(m.runs)
	m.mu.Unlock()

	slices.SortStableFunc(runs, func(a, b Run) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return b.Length - a.Length
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Stats aggregates the in-memory history.
func (m *MemoryStore) Stats() (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{Runs: len(m.runs)}
	for _, r := range m.runs {
		stats.BestScore = max(stats.BestScore, r.Score)
		stats.Longest = max(stats.Longest, r.Length)
		stats.TotalScore += int64(r.Score)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
