package core

import "testing"

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Fatalf("Right/Bottom = %d/%d, expected 6/8", r.Right(), r.Bottom())
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // top-left cell
		{5, 7, true},   // bottom-right cell
		{6, 3, false},  // right edge is exclusive
		{2, 8, false},  // bottom edge is exclusive
		{1, 4, false},  // left of the rect
		{3, -1, false}, // above the rect
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	board := NewRect(0, 0, 400, 400)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(200, 200, 18, 18), true},
		{"overlaps corner", NewRect(390, 390, 20, 20), true},
		{"touches right edge", NewRect(400, 10, 20, 20), false},
		{"above", NewRect(10, -20, 20, 20), false},
		{"covers board", NewRect(-10, -10, 500, 500), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Intersects(board); got != tc.want {
				t.Errorf("Intersects = %v, expected %v", got, tc.want)
			}
			if got := board.Intersects(tc.r); got != tc.want {
				t.Errorf("Intersects should be symmetric, got %v", got)
			}
		})
	}
}

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 10, 5)

	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(2, 1, 3, 2), NewRect(2, 1, 3, 2)},
		{"hangs off right", NewRect(8, 1, 5, 2), NewRect(8, 1, 2, 2)},
		{"hangs off top left", NewRect(-2, -1, 4, 3), NewRect(0, 0, 2, 2)},
		{"outside", NewRect(20, 20, 3, 3), Rect{X: 20, Y: 20}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clip(bounds); got != tc.want {
				t.Errorf("Clip = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestAbsMin(t *testing.T) {
	if Abs(-3) != 3 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Min(2, 7) != 2 || Min(7, 2) != 2 || Min(-1, -1) != -1 {
		t.Error("Min returned a wrong value")
	}
}
