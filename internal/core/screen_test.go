package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if want := strings.Repeat("      \n", 2) + "      "; s.String() != want {
		t.Errorf("New screen should be blank, got %q", s.String())
	}

	empty := NewScreen(-5, -1)
	if empty.Width() != 0 || empty.Height() != 0 || empty.String() != "" {
		t.Errorf("Negative size should give an empty screen, got %dx%d", empty.Width(), empty.Height())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, Cell{Rune: '█', FG: "#27ae60", BG: "#ecf0f1"})

	if c := s.GetCell(1, 1); c.Rune != '█' || c.FG != "#27ae60" || c.BG != "#ecf0f1" {
		t.Errorf("GetCell(1, 1) = %+v, expected colored block", c)
	}

	// Writes outside the buffer are dropped; reads give a blank.
	s.SetCell(-1, 0, Cell{Rune: 'x'})
	s.SetCell(4, 0, Cell{Rune: 'x'})
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("Clear should reset colors, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawStyledText(1, 0, "Sé", "#e74c3c", ColorDefault)
	s.DrawText(7, 1, "clipped")

	if c := s.GetCell(2, 0); c.Rune != 'é' || c.FG != "#e74c3c" {
		t.Errorf("Multi-byte rune should fill one styled cell, got %+v", c)
	}
	if c := s.GetCell(3, 0); c.Rune != ' ' {
		t.Errorf("Text should not spill past its runes, got %q", c.Rune)
	}
	if got := strings.Split(s.String(), "\n")[1]; got != "       cli" {
		t.Errorf("Text should clip at the edge, got %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "snake")

	if got := s.String(); got != "   snake   " {
		t.Errorf("Centered text = %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	panel := Cell{Rune: ' ', BG: "#2c3e50"}
	s.FillRect(NewRect(3, 1, 4, 4), panel)

	for y := range 3 {
		for x := range 5 {
			want := blankCell
			if x >= 3 && y >= 1 {
				want = panel
			}
			if c := s.GetCell(x, y); c != want {
				t.Errorf("Cell (%d, %d) = %+v, expected %+v", x, y, c, want)
			}
		}
	}
}

func TestScreenDrawStyledBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawStyledBox(NewRect(0, 0, 5, 4), "#95a5a6")

	want := "┌───┐\n│   │\n│   │\n└───┘"
	if s.String() != want {
		t.Errorf("Box =\n%s\nexpected\n%s", s.String(), want)
	}
	if s.GetCell(0, 0).FG != "#95a5a6" || s.GetCell(4, 2).FG != "#95a5a6" {
		t.Error("Border should carry its color")
	}
	if s.GetCell(2, 1).FG != ColorDefault {
		t.Error("Box interior should stay untouched")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 3, "World")

	s.Resize(4, 2)
	if got := s.String(); got != "Hell\n    " {
		t.Errorf("Shrunk screen = %q", got)
	}

	s.Resize(6, 3)
	if got := strings.Split(s.String(), "\n")[0]; got != "Hell  " {
		t.Errorf("Grown screen row 0 = %q", got)
	}
}
