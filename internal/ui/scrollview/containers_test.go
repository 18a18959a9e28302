package scrollview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

func statics(values ...string) []ui.Renderable {
	items := make([]ui.Renderable, len(values))
	for i, v := range values {
		items[i] = ui.Static(v)
	}
	return items
}

func TestListView_ItemOffsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts ListOptions
		want []float64
	}{
		{name: "packed", want: []float64{0, 1, 3}},
		{name: "gap", opts: ListOptions{Gap: 1}, want: []float64{0, 2, 5}},
		{name: "separator", opts: ListOptions{Separator: true}, want: []float64{0, 2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.opts.Width, tt.opts.Height = 10, 2
			l := NewListView(tt.opts, statics("a", "b\nb2", "c")...)
			for i, want := range tt.want {
				got, ok := l.ItemOffset(i)
				require.True(t, ok)
				assert.Equal(t, want, got, "item %d", i)
			}
			_, ok := l.ItemOffset(3)
			assert.False(t, ok)
		})
	}
}

func TestListView_ScrollToItem(t *testing.T) {
	t.Parallel()

	l := NewListView(ListOptions{Options: Options{Width: 10, Height: 2}}, statics("a", "b", "c", "d", "e")...)
	assert.Equal(t, -1, NewListView(ListOptions{}).FirstVisible())

	l.ScrollToItem(2)
	assert.Equal(t, 0.0, l.Controller().Position().Top, "unmounted")

	l.Mount()
	l.ScrollToItem(2)
	assert.Equal(t, 2.0, l.Controller().Position().Top)
	assert.Equal(t, 2, l.FirstVisible())

	l.ScrollToItem(4)
	assert.Equal(t, 3.0, l.Controller().Position().Top, "clamped to the extent")
	assert.Equal(t, 3, l.FirstVisible())

	l.Append(statics("f", "g")...)
	assert.Equal(t, scroll.Extent{MaxTop: 5}, l.Controller().MaxExtent())
}

func TestListView_Horizontal(t *testing.T) {
	t.Parallel()

	l := NewListView(ListOptions{
		Options: Options{Width: 4, Height: 1, Axis: scroll.AxisHorizontal},
		Gap:     1,
	}, statics("aa", "bbb", "c")...)
	l.Mount()

	off, ok := l.ItemOffset(2)
	require.True(t, ok)
	assert.Equal(t, 7.0, off)
	assert.Equal(t, scroll.Extent{MaxLeft: 4}, l.Controller().MaxExtent())

	l.ScrollToItem(1)
	assert.Equal(t, scroll.Offset{Left: 3}, l.Controller().Position())
	assert.Equal(t, 1, l.FirstVisible())
}

func TestGridView_Cells(t *testing.T) {
	t.Parallel()

	g := NewGridView(GridOptions{
		Options:    Options{Width: 10, Height: 2},
		Columns:    2,
		CellHeight: 1,
	}, statics("1", "2", "3", "4", "5", "6")...)
	g.Mount()

	assert.Equal(t, 3, g.Rows())
	w, h := g.CellSize()
	assert.Equal(t, 5, w)
	assert.Equal(t, 1, h)

	x, y, ok := g.CellOffset(3)
	require.True(t, ok)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 1.0, y)

	g.ScrollToItem(5)
	assert.Equal(t, scroll.Offset{Top: 1}, g.Controller().Position())

	_, _, ok = g.CellOffset(6)
	assert.False(t, ok)
}

func TestGridView_FixedCellsScrollBothAxes(t *testing.T) {
	t.Parallel()

	g := NewGridView(GridOptions{
		Options:    Options{Width: 6, Height: 2, Axis: scroll.AxisBoth},
		Columns:    3,
		CellWidth:  4,
		CellHeight: 2,
	}, statics("1", "2", "3", "4", "5", "6")...)
	g.Mount()

	assert.Equal(t, scroll.Extent{MaxTop: 2, MaxLeft: 6}, g.Controller().MaxExtent())
	g.ScrollToItem(5)
	assert.Equal(t, scroll.Offset{Top: 2, Left: 6}, g.Controller().Position())

	g.Controller().ScrollToTop()
	assert.Equal(t, scroll.Offset{}, g.Controller().Position())
}

func TestSingleChildScrollView(t *testing.T) {
	t.Parallel()

	v := NewSingleChildScrollView(Options{Width: 5, Height: 2}, ui.Static("a\nb\nc\nd"))
	v.Mount()
	assert.Equal(t, scroll.Size{Width: 1, Height: 4}, v.ContentSize())

	v.Controller().ScrollToBottom()
	v.Surface().Finish()
	assert.Equal(t, []string{"c", "d"}, viewLines(v.View()))

	v.SetChild(ui.Static("x"))
	assert.Equal(t, scroll.Offset{}, v.Controller().Position(), "offset re-clamped to the new content")
}

func TestCustomScrollView_AppBarIsPinned(t *testing.T) {
	t.Parallel()

	v := NewCustomScrollView(CustomOptions{
		Options: Options{Width: 6, Height: 4},
		AppBar:  ui.Static("BAR"),
	},
		SliverBox{Child: ui.Static("a\nb")},
		SliverList{Items: statics("x", "y", "z")},
	)
	v.Mount()

	assert.Equal(t, scroll.Size{Width: 6, Height: 3}, v.Size())
	off, ok := v.SliverOffset(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, off)

	v.ScrollToSliver(1)
	v.Surface().Finish()
	assert.Equal(t, 2.0, v.Controller().Position().Top)

	lines := viewLines(v.View())
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"BAR", "x", "y", "z"}, lines)
}

func TestSliverGrid_Layout(t *testing.T) {
	t.Parallel()

	out := SliverGrid{Items: statics("1", "2", "3"), Columns: 2, CellHeight: 1}.Layout(components.DefaultContext(), 8)
	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, 8, lipgloss.Width(out))
}

func TestNestedScrollView_HeaderCollapsesFirst(t *testing.T) {
	t.Parallel()

	v := NewNestedScrollView(NestedOptions{Options: Options{Width: 8, Height: 4}},
		ui.Static("H1\nH2"),
		statics("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")...,
	)
	v.ScrollUser(1)
	assert.Equal(t, 0.0, v.OuterController().Position().Top, "unmounted")

	v.Mount()
	assert.Equal(t, scroll.Extent{MaxTop: 2}, v.OuterController().MaxExtent())
	assert.Equal(t, scroll.Extent{MaxTop: 6}, v.InnerController().MaxExtent())

	v.ScrollUser(3)
	assert.Equal(t, 2.0, v.OuterController().Position().Top)
	assert.Equal(t, 1.0, v.InnerController().Position().Top)

	v.ScrollUser(-2)
	assert.Equal(t, 0.0, v.InnerController().Position().Top, "body scrolls back first")
	assert.Equal(t, 1.0, v.OuterController().Position().Top)

	v.ScrollUser(-5)
	assert.Equal(t, 0.0, v.OuterController().Position().Top)
	assert.Equal(t, 0.0, v.InnerController().Position().Top)
}

func TestNestedScrollView_KeysAndView(t *testing.T) {
	t.Parallel()

	v := NewNestedScrollView(NestedOptions{Options: Options{Width: 8, Height: 4}},
		ui.Static("H1\nH2"),
		statics("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")...,
	)
	v.Mount()
	v.Focus()

	v.Update(keyMsg("G"))
	assert.Equal(t, 2.0, v.OuterController().Position().Top)
	assert.Equal(t, 6.0, v.InnerController().Position().Top)
	assert.Equal(t, []string{"6", "7", "8", "9"}, viewLines(v.View()))

	v.Update(keyMsg("g"))
	assert.Equal(t, []string{"H1", "H2", "0", "1"}, viewLines(v.View()))
}
