package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// CellInset is the gap in pixels left on the right and bottom of every cell.
const CellInset = 2

// Theme holds the board colors.
type Theme struct {
	Background core.Color
	Body       core.Color
	Head       core.Color
	Food       core.Color
}

// DefaultTheme returns the classic flat palette.
func DefaultTheme() Theme {
	return Theme{
		Background: "#ecf0f1",
		Body:       "#27ae60",
		Head:       "#2ecc71",
		Food:       "#e74c3c",
	}
}

// CellRect returns the pixel rectangle painted for c.
func CellRect(c Cell, cellSize int) core.Rect {
	return core.NewRect(c.X*cellSize, c.Y*cellSize, cellSize-CellInset, cellSize-CellInset)
}

// DrawFrame clears dst and paints the snake and the food. The head is
// painted last in its own color.
func DrawFrame(dst core.Canvas, f Frame, th Theme) {
	dst.Clear(th.Background)

	for _, seg := range f.Snake {
		dst.FillRect(CellRect(seg, f.CellSize), th.Body)
	}
	if head, ok := f.Head(); ok {
		dst.FillRect(CellRect(head, f.CellSize), th.Head)
	}

	if f.HasFood {
		dst.FillRect(CellRect(f.Food, f.CellSize), th.Food)
	}
}
