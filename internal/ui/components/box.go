package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui"
)

// Box wraps one child with padding, margin, an optional border and an optional fixed size.
// A fixed size clips the child.
type Box struct {
	BaseComponent
	child   ui.Renderable
	width   int
	height  int
	padding EdgeInsets
	margin  EdgeInsets
	border  BorderVariant
	align   lipgloss.Position
}

// NewBox wraps child.
func NewBox(child ui.Renderable) *Box {
	return &Box{BaseComponent: NewBaseComponent(), child: child}
}

// SizedBox renders child in exactly width×height cells. A non-positive dimension is left
// unconstrained.
func SizedBox(width, height int, child ui.Renderable) *Box {
	return NewBox(child).WithSize(width, height)
}

func (b *Box) WithSize(width, height int) *Box {
	b.width, b.height = width, height
	return b
}

func (b *Box) WithPadding(insets EdgeInsets) *Box {
	b.padding = insets
	return b
}

func (b *Box) WithMargin(insets EdgeInsets) *Box {
	b.margin = insets
	return b
}

func (b *Box) WithBorder(variant BorderVariant) *Box {
	b.border = variant
	return b
}

// WithAlign positions the child horizontally inside a sized box.
func (b *Box) WithAlign(pos lipgloss.Position) *Box {
	b.align = pos
	return b
}

func (b *Box) WithAppliers(appliers ...StyleFunc) *Box {
	b.SetAppliers(appliers...)
	return b
}

// Child returns the wrapped child.
func (b *Box) Child() ui.Renderable {
	return b.child
}

// View renders with the default context.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box against ctx.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	top, right, bottom, left := b.padding.sides()
	innerCtx := ctx
	if b.width > 0 {
		innerCtx = ctx.WithMaxWidth(max(b.width-left-right, 0))
	}

	style := b.ComputeStyle(ctx.Theme).
		Padding(top, right, bottom, left).
		Margin(b.margin.sides()).
		Align(b.align)
	if b.border != BorderVariantNone {
		style = Border(b.border)(style, ctx.Theme)
	}
	mTop, mRight, mBottom, mLeft := b.margin.sides()
	if b.width > 0 {
		style = style.Width(b.width).MaxWidth(b.width + b.borderCells() + mLeft + mRight)
	}
	if b.height > 0 {
		style = style.Height(b.height).MaxHeight(b.height + b.borderCells() + mTop + mBottom)
	}

	return style.Render(Render(b.child, innerCtx))
}

func (b *Box) borderCells() int {
	if b.border == BorderVariantNone {
		return 0
	}
	return 2
}
