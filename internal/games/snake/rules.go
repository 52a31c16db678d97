package snake

import (
	"errors"
	"fmt"
	"time"
)

// Default rule constants.
const (
	DefaultCanvasSize   = 400
	DefaultCellSize     = 20
	DefaultReward       = 10
	DefaultFoodRetryCap = 100
	DefaultTickPeriod   = 150 * time.Millisecond
	DefaultHighScoreKey = "snakeHighScore"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("snake: invalid rules")

// Rules is the fixed rule set of a game. It does not change while a game
// is running.
type Rules struct {
	CanvasSize   int           // Board edge in pixels
	CellSize     int           // Cell edge in pixels
	Reward       int           // Points per food
	FoodRetryCap int           // Random draws before falling back to a free-cell scan
	TickPeriod   time.Duration // Time between ticks
	HighScoreKey string        // Store key for the high score
}

// DefaultRules returns the classic 20x20 board at 150ms per tick.
func DefaultRules() Rules {
	return Rules{
		CanvasSize:   DefaultCanvasSize,
		CellSize:     DefaultCellSize,
		Reward:       DefaultReward,
		FoodRetryCap: DefaultFoodRetryCap,
		TickPeriod:   DefaultTickPeriod,
		HighScoreKey: DefaultHighScoreKey,
	}
}

// GridCount returns the number of cells along each edge.
func (r Rules) GridCount() int {
	if r.CellSize <= 0 {
		return 0
	}
	return r.CanvasSize / r.CellSize
}

// Center returns the starting cell.
func (r Rules) Center() Cell {
	n := r.GridCount()
	return Cell{X: n / 2, Y: n / 2}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	switch {
	case r.CellSize <= 2:
		return fmt.Errorf("%w: cell size %d must exceed the 2px inset", ErrInvalidRules, r.CellSize)
	case r.CanvasSize%r.CellSize != 0:
		return fmt.Errorf("%w: canvas size %d is not a multiple of cell size %d", ErrInvalidRules, r.CanvasSize, r.CellSize)
	case r.GridCount() < 3:
		return fmt.Errorf("%w: grid of %d cells is too small", ErrInvalidRules, r.GridCount())
	case r.Reward <= 0:
		return fmt.Errorf("%w: reward must be positive", ErrInvalidRules)
	case r.FoodRetryCap < 0:
		return fmt.Errorf("%w: food retry cap must not be negative", ErrInvalidRules)
	case r.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period must be positive", ErrInvalidRules)
	case r.HighScoreKey == "":
		return fmt.Errorf("%w: high score key is empty", ErrInvalidRules)
	}
	return nil
}
