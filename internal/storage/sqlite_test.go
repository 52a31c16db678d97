package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.arcade/snake.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "snake.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("Absolute paths should pass through, got %q", got)
	}
}

func TestStoreGetSet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get(snake.DefaultHighScoreKey); err != nil || ok {
		t.Fatalf("Missing key should report ok=false, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(snake.DefaultHighScoreKey, 30); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(snake.DefaultHighScoreKey, 50); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(snake.DefaultHighScoreKey)
	if err != nil || !ok || v != 50 {
		t.Errorf("Get() = %d, %v, %v; expected 50, true, nil", v, ok, err)
	}

	if err := store.Delete(snake.DefaultHighScoreKey); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(snake.DefaultHighScoreKey); ok {
		t.Error("Key should be gone after Delete()")
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set(snake.DefaultHighScoreKey, 120)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	high, err := snake.LoadHighScore(store, snake.DefaultHighScoreKey)
	if err != nil || high != 120 {
		t.Errorf("LoadHighScore() = %d, %v; expected 120", high, err)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	results := []engine.RunResult{
		{SessionID: "local", Score: 100, Length: 11, Ticks: 80, Outcome: snake.OutcomeHitWall},
		{SessionID: "local", Score: 50, Length: 6, Ticks: 40, Outcome: snake.OutcomeHitSelf},
		{SessionID: "ssh-1", Score: 200, Length: 21, Ticks: 300, Outcome: snake.OutcomeHitWall, Duration: 45 * time.Second},
		{SessionID: "local", Score: 100, Length: 12, Ticks: 90, Outcome: snake.OutcomeHitSelf},
	}
	for _, r := range results {
		if err := store.SaveRunResult(r); err != nil {
			t.Fatalf("SaveRunResult() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	if runs[0].Score != 200 || runs[0].Session != "ssh-1" || runs[0].Duration != 45*time.Second {
		t.Errorf("Unexpected best run %+v", runs[0])
	}
	// Equal scores: the longer snake ranks first.
	if runs[1].Length != 12 || runs[2].Length != 11 {
		t.Errorf("Tie order wrong: %d, %d", runs[1].Length, runs[2].Length)
	}
	if runs[3].Cause != "self" || runs[3].Ticks != 40 {
		t.Errorf("Unexpected last run %+v", runs[3])
	}
	for _, r := range runs {
		if r.ID == "" {
			t.Error("Every run should get an ID")
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{Session: "local", Score: (i + 1) * 10, Length: i + 2, Cause: "wall"})
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Session: "local", Score: 10, Length: 2, Cause: "wall"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Session: "local", Score: 10, Length: 2, Cause: "wall"}); err == nil {
		t.Error("Saving the same run twice should fail")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Session: "local", Score: 10, Length: 2, Cause: "wall"})
	store.SaveRun(Run{Session: "local", Score: 20, Length: 3, Cause: "self"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 {
		t.Errorf("Empty history should give zero stats, got %+v", stats)
	}

	store.SaveRun(Run{Session: "local", Score: 10, Length: 2, Cause: "wall"})
	store.SaveRun(Run{Session: "local", Score: 30, Length: 4, Cause: "self"})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.Longest != 4 || stats.TotalScore != 40 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	if _, ok, _ := m.Get("k"); ok {
		t.Error("Empty store should miss")
	}
	m.Set("k", 7)
	if v, ok, _ := m.Get("k"); !ok || v != 7 {
		t.Errorf("Get() = %d, %v; expected 7, true", v, ok)
	}

	m.SaveRunResult(engine.RunResult{Score: 10, Length: 2, Outcome: snake.OutcomeHitWall})
	m.SaveRunResult(engine.RunResult{Score: 30, Length: 4, Outcome: snake.OutcomeHitSelf})
	m.SaveRunResult(engine.RunResult{Score: 30, Length: 5, Outcome: snake.OutcomeHitWall})

	runs, _ := m.TopRuns(2)
	if len(runs) != 2 || runs[0].Length != 5 || runs[1].Length != 4 {
		t.Errorf("Unexpected top runs %+v", runs)
	}

	stats, _ := m.Stats()
	if stats.Runs != 3 || stats.BestScore != 30 || stats.TotalScore != 70 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}
