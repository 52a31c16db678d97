// Package engine drives snake games on a fixed tick. A Controller owns one
// game and its timer; finished frames go to a Renderer and finished runs to
// an optional ResultSaver.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SessionID identifies the terminal session a controller belongs to
// (the local TUI or one SSH connection).
type SessionID string

// LocalSession is the session ID used by the local TUI.
const LocalSession SessionID = "local"

// Renderer receives a frame after every state change.
// Render must not block; it is called from timer goroutines.
type Renderer interface {
	Render(f snake.Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f snake.Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f snake.Frame) {
	fn(f)
}

// RunResult describes a finished run.
type RunResult struct {
	RunID     string
	SessionID SessionID
	Score     int
	Length    int
	Ticks     uint64
	Outcome   snake.Outcome
	Duration  time.Duration
}

// ResultSaver persists finished runs.
// This lets the controller record runs without depending on the storage package.
type ResultSaver interface {
	SaveRunResult(result RunResult) error
}
