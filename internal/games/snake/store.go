package snake

import "fmt"

// HighScoreStore persists integer values by key. Get reports false for a
// key that was never set.
type HighScoreStore interface {
	Get(key string) (int, bool, error)
	Set(key string, value int) error
}

// LoadHighScore reads the high score, treating an absent key as 0.
func LoadHighScore(store HighScoreStore, key string) (int, error) {
	if store == nil {
		return 0, nil
	}
	v, ok, err := store.Get(key)
	if err != nil {
		return 0, fmt.Errorf("snake: cannot load high score: %w", err)
	}
	if !ok || v < 0 {
		return 0, nil
	}
	return v, nil
}
