package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. Styles are
// cached per color pair; the cache is shared by concurrent SSH sessions.
type ScreenRenderer struct {
	r *lipgloss.Renderer

	mu     sync.Mutex
	styles map[styleKey]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to a lipgloss renderer. A nil
// renderer means the process default (the local terminal).
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(k styleKey) lipgloss.Style {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if st, ok := sr.styles[k]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if !k.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if !k.bg.IsDefault() {
		st = st.Background(lipgloss.Color(k.bg))
	}
	sr.styles[k] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			k := styleKey{fg: start.FG, bg: start.BG}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != k.fg || cell.BG != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k.fg.IsDefault() && k.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)
