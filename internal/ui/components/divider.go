package components

import (
	"strings"
)

// Divider renders a separator line.
type Divider struct {
	BaseComponent
	char     string
	length   int
	vertical bool
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	div := &Divider{BaseComponent: NewBaseComponent(), char: "─"}
	div.SetAppliers(Foreground(PaletteNeutral))
	return div
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	div := NewDivider()
	div.char, div.vertical = "│", true
	return div
}

func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLength fixes the divider length. Zero takes the available width, or 40 cells.
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// View renders with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider against ctx.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 {
		length = ctx.MaxWidth
	}
	if length <= 0 {
		length = 40
	}

	sep := ""
	if d.vertical {
		sep = "\n"
	}
	content := strings.TrimSuffix(strings.Repeat(d.char+sep, length), sep)
	return d.ComputeStyle(ctx.Theme).Render(content)
}
