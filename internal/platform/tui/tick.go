// Package tui provides the Bubble Tea front end for the snake game: the
// board view, key bindings, scoreboard, and SSH server support via Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// FrameMsg carries a frame published by the game controller.
type FrameMsg snake.Frame

// sinkClosedMsg is sent once the frame sink stops delivering.
type sinkClosedMsg struct{}

// waitForFrame returns a command that blocks until the next frame arrives.
// The model re-issues it after every FrameMsg.
func waitForFrame(frames <-chan snake.Frame, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-frames:
			return FrameMsg(f)
		case <-done:
			return sinkClosedMsg{}
		}
	}
}

// newerFrame reports whether f should replace cur on screen. Frames from an
// older schedule, or older ticks of the same schedule, are stale.
func newerFrame(f, cur snake.Frame) bool {
	if f.Generation != cur.Generation {
		return f.Generation > cur.Generation
	}
	return f.Ticks >= cur.Ticks
}
