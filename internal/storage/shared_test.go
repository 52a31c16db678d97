package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// startFedController starts a controller on a 3x3 board whose first food
// sits right in front of the snake, so the first tick scores.
func startFedController(t *testing.T, store Backend) (*engine.Controller, *clock.Manual) {
	t.Helper()
	rules := snake.DefaultRules()
	rules.CanvasSize = 3 * rules.CellSize
	target := snake.Cell{X: 2, Y: 1}

	for seed := int64(1); seed <= 500; seed++ {
		sched := clock.NewManual()
		c := engine.NewController(engine.ControllerConfig{
			Rules:     rules,
			Store:     store,
			Results:   store,
			Scheduler: sched,
			Seed:      seed,
		})
		c.Start()
		if c.Frame().Food == target {
			t.Cleanup(c.Close)
			return c, sched
		}
		c.Close()
	}
	t.Fatal("No seed placed food in front of the snake")
	return nil, nil
}

func TestSharedStoreHighScoreNeverDrops(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Backend
	}{
		{"memory", func(t *testing.T) Backend { return NewMemoryStore() }},
		{"sqlite", func(t *testing.T) Backend {
			store, err := Open(filepath.Join(t.TempDir(), "shared.db"))
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			return store
		}},
	}

	for _, tc := range backends {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.open(t)

			// The first game starts while the store is still empty.
			first, sched := startFedController(t, store)

			// A second game on the same store sets a better score meanwhile.
			if err := store.Set(snake.DefaultHighScoreKey, 100); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			sched.Advance(snake.DefaultTickPeriod)
			if got := first.Frame().Score; got != 10 {
				t.Fatalf("First game should have scored 10, got %d", got)
			}

			high, err := snake.LoadHighScore(store, snake.DefaultHighScoreKey)
			if err != nil || high != 100 {
				t.Errorf("Stored high score = %d, %v; expected 100", high, err)
			}

			// Its next run shows the shared record.
			first.Restart()
			if got := first.Frame().HighScore; got != 100 {
				t.Errorf("Restarted run should show high score 100, got %d", got)
			}
		})
	}
}

func TestSetNeverLowersValue(t *testing.T) {
	stores := map[string]Backend{
		"memory": NewMemoryStore(),
		"sqlite": openTestStore(t),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			store.Set("k", 50)
			store.Set("k", 20)

			if v, ok, err := store.Get("k"); err != nil || !ok || v != 50 {
				t.Errorf("Get() = %d, %v, %v; expected 50, true, nil", v, ok, err)
			}
		})
	}
}
