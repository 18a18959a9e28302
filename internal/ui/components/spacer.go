package components

import (
	"strings"
)

// Spacer renders empty space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer is a one-line spacer width cells wide.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer is an empty block height lines tall.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as blank lines.
func (s *Spacer) View() string {
	w, h := max(s.width, 0), max(s.height, 0)
	if w == 0 && h == 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	if h <= 1 {
		return line
	}
	return strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n")
}
