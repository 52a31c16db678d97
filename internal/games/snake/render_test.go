package snake

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func rgbAt(c *core.ImageCanvas, x, y int) [3]uint8 {
	r, g, b, _ := c.Image().At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func TestCellRect(t *testing.T) {
	r := CellRect(Cell{X: 3, Y: 4}, 20)
	want := core.NewRect(60, 80, 18, 18)
	if r != want {
		t.Errorf("CellRect = %+v, expected %+v", r, want)
	}
}

func TestDrawFrameImage(t *testing.T) {
	frame := Frame{
		Snake:     []Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Food:      Cell{X: 5, Y: 5},
		HasFood:   true,
		GridCount: 10,
		CellSize:  20,
		Status:    Running,
	}
	canvas := core.NewImageCanvas(200, 200)

	DrawFrame(canvas, frame, DefaultTheme())

	tests := []struct {
		name string
		x, y int
		want [3]uint8
	}{
		{"head", 45, 25, [3]uint8{0x2e, 0xcc, 0x71}},
		{"body", 25, 25, [3]uint8{0x27, 0xae, 0x60}},
		{"food", 105, 105, [3]uint8{0xe7, 0x4c, 0x3c}},
		{"background", 150, 10, [3]uint8{0xec, 0xf0, 0xf1}},
		{"inset gap", 39, 25, [3]uint8{0xec, 0xf0, 0xf1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rgbAt(canvas, tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestDrawFrameNoFood(t *testing.T) {
	frame := IdleFrame(DefaultRules(), 0)
	canvas := core.NewImageCanvas(400, 400)

	DrawFrame(canvas, frame, DefaultTheme())

	bg := [3]uint8{0xec, 0xf0, 0xf1}
	for _, p := range [][2]int{{0, 0}, {200, 200}, {399, 399}} {
		if got := rgbAt(canvas, p[0], p[1]); got != bg {
			t.Errorf("Idle board should be blank at %v, got %v", p, got)
		}
	}
}

func TestDrawFrameUnknownColorIsBlack(t *testing.T) {
	canvas := core.NewImageCanvas(20, 20)
	canvas.Clear("not-a-color")

	r, g, b, _ := canvas.Image().At(5, 5).RGBA()
	br, bgc, bb, _ := color.Black.RGBA()
	if r != br || g != bgc || b != bb {
		t.Errorf("Unparseable color should fall back to black, got %d,%d,%d", r, g, b)
	}
}
