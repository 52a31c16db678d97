package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// NoFood marks the food cell when the board has no room left.
var NoFood = Cell{X: -1, Y: -1}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit movement vector.
type Direction struct {
	DX, DY int
}

// The four movement directions.
var (
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
)

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return core.Abs(d.DX)+core.Abs(d.DY) == 1
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d.DY == 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// DirectionFor maps a steering action to its direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	default:
		return Direction{}, false
	}
}

// RunStatus is the lifecycle state of a game.
type RunStatus int

const (
	NotStarted RunStatus = iota
	Running
	Paused
	Over
)

func (s RunStatus) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Step was a no-op
	OutcomeMoved                    // Snake moved without eating
	OutcomeAte                      // Snake moved onto the food and grew
	OutcomeHitWall                  // Head left the grid
	OutcomeHitSelf                  // Head ran into the body
	OutcomeBoardFull                // Snake ate the last free cell
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "wall"
	case OutcomeHitSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf || o == OutcomeBoardFull
}
