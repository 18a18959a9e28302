package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui"
)

// StyleFunc applies theme data to a lipgloss.Style. Every themed modifier in this package
// (Background, Border, Padding, ...) is a StyleFunc.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies its StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every style func against base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn != nil {
			base = fn(base, theme)
		}
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the raw style and the themed strategy of a component. Embed it.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent returns a base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle(), strategy: CompositeStrategy{}}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given style funcs.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style funcs after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		return CompositeStrategy{funcs: appliers}.Apply(base, theme)
	})
}

// EdgeInsets is spacing around a box in CSS order: top, right, bottom, left.
type EdgeInsets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// All returns equal insets on every side.
func All(n int) EdgeInsets { return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n} }

// Symmetric returns insets with separate vertical and horizontal values.
func Symmetric(vertical, horizontal int) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Only returns explicit insets for each side.
func Only(top, right, bottom, left int) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// IsZero reports whether every side is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

func (e EdgeInsets) sides() (int, int, int, int) {
	return max(e.Top, 0), max(e.Right, 0), max(e.Bottom, 0), max(e.Left, 0)
}

// RenderContext carries the theme and the width offered by the parent.
type RenderContext struct {
	Theme    Theme
	MaxWidth int
}

// DefaultContext renders with the dark theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DarkTheme()}
}

// WithTheme returns a copy of the context with theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithMaxWidth returns a copy of the context limited to width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// ContextualRenderable is a component that can render against an explicit context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render renders child with ctx when it supports contexts.
func Render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// MainAxisAlignment places children along a flex's direction.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
)

// CrossAxisAlignment places children across a flex's direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (a CrossAxisAlignment) position() lipgloss.Position {
	switch a {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

func (a MainAxisAlignment) position() lipgloss.Position {
	switch a {
	case MainCenter:
		return lipgloss.Center
	case MainEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
