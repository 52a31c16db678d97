package snake

// Frame is an immutable snapshot of a game, handed to renderers after a
// tick completes.
type Frame struct {
	Generation uint64 // Schedule that produced the frame, set by the owner
	Snake      []Cell // Head at index 0, empty before the first start
	Food       Cell
	HasFood    bool
	GridCount  int
	CellSize   int
	Score      int
	HighScore  int
	Length     int
	Ticks      uint64
	Direction  Direction
	Status     RunStatus
	Outcome    Outcome
}

// Frame returns a snapshot of the current state.
func (g *Game) Frame() Frame {
	body := make([]Cell, len(g.snake))
	copy(body, g.snake)

	return Frame{
		Snake:     body,
		Food:      g.food,
		HasFood:   g.hasFood,
		GridCount: g.rules.GridCount(),
		CellSize:  g.rules.CellSize,
		Score:     g.score,
		HighScore: g.highScore,
		Length:    len(g.snake),
		Ticks:     g.ticks,
		Direction: g.direction,
		Status:    g.status,
		Outcome:   g.outcome,
	}
}

// IdleFrame is the frame shown before the first game starts.
func IdleFrame(rules Rules, highScore int) Frame {
	return Frame{
		Food:      NoFood,
		GridCount: rules.GridCount(),
		CellSize:  rules.CellSize,
		HighScore: highScore,
		Direction: Right,
		Status:    NotStarted,
	}
}

// Head returns the head cell and whether the frame has a snake.
func (f Frame) Head() (Cell, bool) {
	if len(f.Snake) == 0 {
		return Cell{}, false
	}
	return f.Snake[0], true
}
