package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, h, a - steer left
	ActionRight             // Right arrow, l, d - steer right
	ActionUp                // Up arrow, k, w - steer up
	ActionDown              // Down arrow, j, s - steer down
	ActionPause             // Escape, p - toggle pause
	ActionStart             // Enter, Space - start a new game or restart after game over
	ActionRestart           // R - restart from any running state
	ActionScreenshot        // Ctrl+S - save the current frame as PNG
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
