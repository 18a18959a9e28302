package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient fills a block with a linear blend between two colours, blended in CIE-Luv so the
// midpoint does not turn muddy.
type Gradient struct {
	from     colorful.Color
	to       colorful.Color
	width    int
	height   int
	vertical bool
	label    string
}

// NewGradient builds a horizontal gradient between two hex colours.
func NewGradient(fromHex, toHex string, width, height int) (*Gradient, error) {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return nil, fmt.Errorf("gradient start %q: %w", fromHex, err)
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return nil, fmt.Errorf("gradient end %q: %w", toHex, err)
	}
	return &Gradient{from: from, to: to, width: width, height: height}, nil
}

// Vertical blends top to bottom instead of left to right.
func (g *Gradient) Vertical() *Gradient {
	g.vertical = true
	return g
}

// WithLabel centers label over the gradient.
func (g *Gradient) WithLabel(label string) *Gradient {
	g.label = label
	return g
}

// Stops returns n evenly spaced colours from start to end inclusive, as hex strings.
func (g *Gradient) Stops(n int) []string {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []string{g.from.Hex()}
	}
	stops := make([]string, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		stops[i] = g.from.BlendLuv(g.to, t).Clamped().Hex()
	}
	stops[0], stops[n-1] = g.from.Hex(), g.to.Hex()
	return stops
}

// View renders the gradient block.
func (g *Gradient) View() string {
	w, h := max(g.width, 0), max(g.height, 0)
	if w == 0 || h == 0 {
		return ""
	}

	steps := w
	if g.vertical {
		steps = h
	}
	stops := g.Stops(steps)
	labelRow, labelStart := h/2, (w-lipgloss.Width(g.label))/2
	label := []rune(g.label)

	var sb strings.Builder
	for row := 0; row < h; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			stop := stops[col]
			if g.vertical {
				stop = stops[row]
			}
			cell := " "
			if row == labelRow && col >= labelStart && col-labelStart < len(label) {
				cell = string(label[col-labelStart])
			}
			sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(stop)).Render(cell))
		}
	}
	return sb.String()
}
