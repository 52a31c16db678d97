package core

// Color is a terminal color spec understood by lipgloss: a hex string such
// as "#27ae60" or an ANSI code such as "9". The zero value means the
// terminal default.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
