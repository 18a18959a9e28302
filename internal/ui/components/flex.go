package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui"
)

// Direction is the main axis of a Flex.
type Direction int

const (
	DirectionColumn Direction = iota
	DirectionRow
)

// Flex lays children out in a single direction with a gap, main-axis distribution over an
// optional fixed extent, and cross-axis alignment.
type Flex struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	extent    int
	main      MainAxisAlignment
	cross     CrossAxisAlignment
}

// NewFlex creates a column flex.
func NewFlex(direction Direction, children ...ui.Renderable) *Flex {
	return &Flex{BaseComponent: NewBaseComponent(), children: children, direction: direction}
}

// Column stacks children top to bottom.
func Column(children ...ui.Renderable) *Flex {
	return NewFlex(DirectionColumn, children...)
}

// Row places children left to right.
func Row(children ...ui.Renderable) *Flex {
	return NewFlex(DirectionRow, children...)
}

func (f *Flex) WithGap(gap int) *Flex {
	f.gap = max(gap, 0)
	return f
}

// WithExtent fixes the main-axis size in cells (width for rows, lines for columns). Main-axis
// alignment only has room to act when an extent is set.
func (f *Flex) WithExtent(extent int) *Flex {
	f.extent = max(extent, 0)
	return f
}

func (f *Flex) WithMainAxis(align MainAxisAlignment) *Flex {
	f.main = align
	return f
}

func (f *Flex) WithCrossAxis(align CrossAxisAlignment) *Flex {
	f.cross = align
	return f
}

func (f *Flex) WithAppliers(appliers ...StyleFunc) *Flex {
	f.SetAppliers(appliers...)
	return f
}

// Add appends children.
func (f *Flex) Add(children ...ui.Renderable) *Flex {
	f.children = append(f.children, children...)
	return f
}

// Children returns the flex children.
func (f *Flex) Children() []ui.Renderable {
	return f.children
}

// View renders with the default context.
func (f *Flex) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children and joins them along the main axis.
func (f *Flex) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(f.children))
	for _, child := range f.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := f.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	gaps := f.gaps(views)
	parts := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 && gaps[i-1] > 0 {
			parts = append(parts, f.spacer(gaps[i-1]))
		}
		parts = append(parts, view)
	}

	var content string
	if f.direction == DirectionRow {
		content = lipgloss.JoinHorizontal(f.cross.position(), parts...)
	} else {
		content = lipgloss.JoinVertical(crossPositionForColumn(f.cross), parts...)
	}

	if f.extent > 0 && f.main != MainSpaceBetween {
		if f.direction == DirectionRow {
			content = lipgloss.PlaceHorizontal(f.extent, f.main.position(), content)
		} else {
			content = lipgloss.PlaceVertical(f.extent, mainPositionForColumn(f.main), content)
		}
	}

	return style.Render(content)
}

// gaps returns the space between consecutive views. Space-between spreads the free extent
// over the gaps, leftmost gaps first.
func (f *Flex) gaps(views []string) []int {
	gaps := make([]int, max(len(views)-1, 0))
	for i := range gaps {
		gaps[i] = f.gap
	}
	if f.main != MainSpaceBetween || f.extent <= 0 || len(gaps) == 0 {
		return gaps
	}

	used := f.gap * len(gaps)
	for _, view := range views {
		used += f.measure(view)
	}
	free := f.extent - used
	if free <= 0 {
		return gaps
	}

	share, rest := free/len(gaps), free%len(gaps)
	for i := range gaps {
		gaps[i] += share
		if i < rest {
			gaps[i]++
		}
	}
	return gaps
}

func (f *Flex) measure(view string) int {
	if f.direction == DirectionRow {
		return lipgloss.Width(view)
	}
	return lipgloss.Height(view)
}

func (f *Flex) spacer(size int) string {
	if f.direction == DirectionRow {
		return strings.Repeat(" ", size)
	}
	return strings.Repeat("\n", size-1)
}

func crossPositionForColumn(a CrossAxisAlignment) lipgloss.Position {
	switch a {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func mainPositionForColumn(a MainAxisAlignment) lipgloss.Position {
	switch a {
	case MainCenter:
		return lipgloss.Center
	case MainEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}
