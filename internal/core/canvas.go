package core

// Canvas is a drawing surface addressed in pixels. Game renderers draw
// against it so the same frame can land on a terminal or in an image.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)

	// Clear paints the whole surface with the background color.
	Clear(bg Color)

	// FillRect paints r with c. Parts outside the surface are clipped.
	FillRect(r Rect, c Color)
}

// ScreenCanvas maps a pixel canvas onto a region of a Screen. Each
// character cell covers pxPerCol x pxPerRow pixels and is painted when its
// top-left pixel falls inside a filled rectangle.
type ScreenCanvas struct {
	screen   *Screen
	originX  int
	originY  int
	width    int
	height   int
	pxPerCol int
	pxPerRow int
	glyph    rune
}

// NewScreenCanvas creates a canvas of width x height pixels whose top-left
// corner sits at screen cell (x, y).
func NewScreenCanvas(s *Screen, x, y, width, height, pxPerCol, pxPerRow int) *ScreenCanvas {
	return &ScreenCanvas{
		screen:   s,
		originX:  x,
		originY:  y,
		width:    width,
		height:   height,
		pxPerCol: max(pxPerCol, 1),
		pxPerRow: max(pxPerRow, 1),
		glyph:    '█',
	}
}

// Size returns the canvas size in pixels.
func (c *ScreenCanvas) Size() (int, int) {
	return c.width, c.height
}

// Cols returns how many screen columns the canvas spans.
func (c *ScreenCanvas) Cols() int {
	return (c.width + c.pxPerCol - 1) / c.pxPerCol
}

// Rows returns how many screen rows the canvas spans.
func (c *ScreenCanvas) Rows() int {
	return (c.height + c.pxPerRow - 1) / c.pxPerRow
}

// Clear paints every covered screen cell with a blank in the background color.
func (c *ScreenCanvas) Clear(bg Color) {
	for row := range c.Rows() {
		for col := range c.Cols() {
			c.screen.SetCell(c.originX+col, c.originY+row, Cell{Rune: ' ', BG: bg})
		}
	}
}

// FillRect paints the screen cells whose origin pixel lies inside r.
func (c *ScreenCanvas) FillRect(r Rect, fill Color) {
	if !r.Intersects(NewRect(0, 0, c.width, c.height)) {
		return
	}
	for row := range c.Rows() {
		py := row * c.pxPerRow
		for col := range c.Cols() {
			px := col * c.pxPerCol
			if !r.Contains(px, py) {
				continue
			}
			sx, sy := c.originX+col, c.originY+row
			bg := c.screen.GetCell(sx, sy).BG
			c.screen.SetCell(sx, sy, Cell{Rune: c.glyph, FG: fill, BG: bg})
		}
	}
}
