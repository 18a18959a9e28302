package scrollview

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// ListOptions configures a ListView.
type ListOptions struct {
	Options
	// Gap is the blank space between items, in lines (or cells for horizontal lists).
	Gap int
	// Separator draws a divider between items of a vertical list.
	Separator bool
}

// ListView scrolls a sequence of items along its axis. AxisHorizontal lays items out in a row;
// any other axis stacks them.
type ListView struct {
	*Scrollable
	items     []ui.Renderable
	gap       int
	separator bool
	offsets   []int
}

// NewListView creates a list over items.
func NewListView(opts ListOptions, items ...ui.Renderable) *ListView {
	l := &ListView{
		Scrollable: New(opts.Options),
		items:      items,
		gap:        max(opts.Gap, 0),
		separator:  opts.Separator,
	}
	l.layout()
	return l
}

// Items returns the list items.
func (l *ListView) Items() []ui.Renderable { return l.items }

// SetItems replaces the items and re-lays out the list.
func (l *ListView) SetItems(items ...ui.Renderable) {
	l.items = items
	l.layout()
}

// Append adds items at the end.
func (l *ListView) Append(items ...ui.Renderable) {
	l.items = append(l.items, items...)
	l.layout()
}

// SetSize resizes the viewport and re-lays out the items for the new width.
func (l *ListView) SetSize(width, height int) {
	l.Scrollable.SetSize(width, height)
	l.layout()
}

// ItemOffset returns the start of item i along the list axis.
func (l *ListView) ItemOffset(i int) (float64, bool) {
	if i < 0 || i >= len(l.offsets) {
		return 0, false
	}
	return float64(l.offsets[i]), true
}

// ScrollToItem scrolls so item i starts at the leading edge, as far as the extent allows.
func (l *ListView) ScrollToItem(i int) {
	offset, ok := l.ItemOffset(i)
	if !ok {
		return
	}
	l.Controller().ScrollAlong(offset)
}

// FirstVisible returns the index of the item at the leading edge, or -1 for an empty list.
func (l *ListView) FirstVisible() int {
	if len(l.offsets) == 0 {
		return -1
	}
	pos := int(l.Controller().Position().Along(l.axis()))
	i := sort.Search(len(l.offsets), func(i int) bool { return l.offsets[i] > pos })
	return max(i-1, 0)
}

func (l *ListView) axis() scroll.Axis {
	if l.Axis() == scroll.AxisHorizontal {
		return scroll.AxisHorizontal
	}
	return scroll.AxisVertical
}

func (l *ListView) layout() {
	ctx := components.DefaultContext().WithTheme(l.Theme())
	l.offsets = make([]int, len(l.items))

	if l.axis() == scroll.AxisHorizontal {
		parts := make([]string, 0, len(l.items)*2)
		pos := 0
		for i, item := range l.items {
			if i > 0 && l.gap > 0 {
				parts = append(parts, strings.Repeat(" ", l.gap))
				pos += l.gap
			}
			view := components.Render(item, ctx)
			l.offsets[i] = pos
			pos += lipgloss.Width(view)
			parts = append(parts, view)
		}
		l.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		return
	}

	width := int(l.Size().Width)
	if l.Axis() == scroll.AxisVertical {
		ctx = ctx.WithMaxWidth(width)
	}
	divider := ""
	if l.separator {
		divider = components.NewDivider().WithLength(max(width, 1)).ViewWithContext(ctx)
	}

	var lines []string
	for i, item := range l.items {
		if i > 0 {
			if l.separator {
				lines = append(lines, divider)
			}
			for g := 0; g < l.gap; g++ {
				lines = append(lines, "")
			}
		}
		l.offsets[i] = len(lines)
		lines = append(lines, strings.Split(components.Render(item, ctx), "\n")...)
	}
	l.SetContent(strings.Join(lines, "\n"))
}
