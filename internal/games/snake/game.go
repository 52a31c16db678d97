// Package snake implements the rules of the classic single-player snake
// game: movement, collisions, food placement and scoring. It has no notion
// of time; callers advance it one Step at a time.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrGridFull is returned when there is no free cell left for food.
var ErrGridFull = errors.New("snake: grid full")

// Config holds everything needed to start a game.
type Config struct {
	Rules     Rules
	Store     HighScoreStore // nil disables persistence
	HighScore int            // High score carried in from the store
	Seed      int64
}

// Game is the state of a single run. It is not safe for concurrent use;
// the owner serializes access.
type Game struct {
	rules Rules
	rng   *rand.Rand
	store HighScoreStore

	// Snake state
	snake     []Cell    // Head at index 0
	direction Direction // Live direction, applied by the last tick
	pending   Direction // Requested direction for the next tick

	food    Cell
	hasFood bool

	score     int
	highScore int
	status    RunStatus
	outcome   Outcome // Last non-idle step outcome
	ticks     uint64
}

// New creates a running game: a single cell at the grid center heading
// right, score zero, and fresh food.
func New(cfg Config) *Game {
	g := &Game{
		rules:     cfg.Rules,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		store:     cfg.Store,
		highScore: max(cfg.HighScore, 0),
		snake:     []Cell{cfg.Rules.Center()},
		direction: Right,
		pending:   Right,
		status:    Running,
	}
	if err := g.placeFood(); err != nil {
		// Only reachable on a degenerate 1x1 board.
		g.status = Over
		g.outcome = OutcomeBoardFull
	}
	return g
}

// StepResult is returned by Step.
type StepResult struct {
	Outcome Outcome
	Err     error // Set when the high score could not be persisted
}

// Step advances the game by one tick. It does nothing unless the game is
// running.
func (g *Game) Step() StepResult {
	if g.status != Running {
		return StepResult{Outcome: OutcomeNone}
	}
	g.ticks++

	g.direction = g.pending
	next := g.snake[0].Add(g.direction)

	if !g.inBounds(next) {
		return g.end(OutcomeHitWall)
	}

	// The tail vacates its cell this tick, so it is not an obstacle.
	for _, c := range g.snake[:len(g.snake)-1] {
		if c == next {
			return g.end(OutcomeHitSelf)
		}
	}

	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = next

	if !g.hasFood || next != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		g.outcome = OutcomeMoved
		return StepResult{Outcome: OutcomeMoved}
	}

	result := StepResult{Outcome: OutcomeAte}
	g.outcome = OutcomeAte
	g.score += g.rules.Reward
	if g.score > g.highScore {
		g.highScore = g.score
		if g.store != nil {
			if err := g.store.Set(g.rules.HighScoreKey, g.highScore); err != nil {
				result.Err = fmt.Errorf("snake: cannot persist high score: %w", err)
			}
		}
	}

	if err := g.placeFood(); errors.Is(err, ErrGridFull) {
		g.status = Over
		g.outcome = OutcomeBoardFull
		result.Outcome = OutcomeBoardFull
	}
	return result
}

// end moves the game to Over without touching the snake.
func (g *Game) end(o Outcome) StepResult {
	g.status = Over
	g.outcome = o
	return StepResult{Outcome: o}
}

// SetDirection queues a direction for the next tick. Requests on the same
// axis as the live direction are ignored, which rules out reversing into
// the neck. A second turn pressed before the first was applied is checked
// against the old direction too, so it is dropped. Returns whether the
// request was accepted.
func (g *Game) SetDirection(d Direction) bool {
	if g.status != Running || !d.Valid() {
		return false
	}
	if d.Horizontal() == g.direction.Horizontal() {
		return false
	}
	g.pending = d
	return true
}

// Pause suspends a running game.
func (g *Game) Pause() bool {
	if g.status != Running {
		return false
	}
	g.status = Paused
	return true
}

// Resume continues a paused game from exactly where it stopped.
func (g *Game) Resume() bool {
	if g.status != Paused {
		return false
	}
	g.status = Running
	return true
}

// placeFood draws random cells until one is free. After FoodRetryCap
// misses it picks among the remaining free cells directly.
func (g *Game) placeFood() error {
	n := g.rules.GridCount()
	for range g.rules.FoodRetryCap {
		c := Cell{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.isSnakeAt(c) {
			g.food = c
			g.hasFood = true
			return nil
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.food = NoFood
		g.hasFood = false
		return ErrGridFull
	}
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
	return nil
}

// freeCells lists every cell not covered by the snake, row by row.
func (g *Game) freeCells() []Cell {
	n := g.rules.GridCount()
	occupied := make(map[Cell]struct{}, len(g.snake))
	for _, c := range g.snake {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, n*n-len(occupied))
	for y := range n {
		for x := range n {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(c Cell) bool {
	n := g.rules.GridCount()
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// Status returns the run status.
func (g *Game) Status() RunStatus {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Direction returns the live direction.
func (g *Game) Direction() Direction {
	return g.direction
}

// Len returns the snake length.
func (g *Game) Len() int {
	return len(g.snake)
}

// Ticks returns how many steps the run has taken.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Head returns the head cell.
func (g *Game) Head() Cell {
	return g.snake[0]
}

// Rules returns the game's rules.
func (g *Game) Rules() Rules {
	return g.rules
}
