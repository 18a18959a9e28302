package scrollview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// Sliver is one section of a CustomScrollView. It renders itself to the given width.
type Sliver interface {
	Layout(ctx components.RenderContext, width int) string
}

// SliverBox holds a single child.
type SliverBox struct {
	Child ui.Renderable
}

func (s SliverBox) Layout(ctx components.RenderContext, width int) string {
	return components.Render(s.Child, ctx.WithMaxWidth(width))
}

// SliverList stacks items, optionally separated by dividers.
type SliverList struct {
	Items     []ui.Renderable
	Separator bool
}

func (s SliverList) Layout(ctx components.RenderContext, width int) string {
	ctx = ctx.WithMaxWidth(width)
	parts := make([]string, 0, len(s.Items)*2)
	for i, item := range s.Items {
		if i > 0 && s.Separator {
			parts = append(parts, components.NewDivider().WithLength(max(width, 1)).ViewWithContext(ctx))
		}
		parts = append(parts, components.Render(item, ctx))
	}
	return strings.Join(parts, "\n")
}

// SliverGrid lays items out in Columns equal cells of CellHeight lines.
type SliverGrid struct {
	Items      []ui.Renderable
	Columns    int
	CellHeight int
}

func (s SliverGrid) Layout(ctx components.RenderContext, width int) string {
	columns := max(s.Columns, 1)
	cellWidth := max(width/columns, 1)
	cellHeight := max(s.CellHeight, 1)

	rows := make([]string, 0, (len(s.Items)+columns-1)/columns)
	for start := 0; start < len(s.Items); start += columns {
		end := min(start+columns, len(s.Items))
		cells := make([]string, 0, end-start)
		for _, item := range s.Items[start:end] {
			cells = append(cells, components.SizedBox(cellWidth, cellHeight, item).ViewWithContext(ctx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// CustomOptions configures a CustomScrollView.
type CustomOptions struct {
	Options
	// AppBar is pinned above the scrolled slivers and takes its height from the viewport.
	AppBar ui.Renderable
}

// CustomScrollView scrolls a vertical sequence of heterogeneous slivers under an optional
// pinned app bar.
type CustomScrollView struct {
	*Scrollable
	appBar  ui.Renderable
	slivers []Sliver
	offsets []int
	height  int
}

// NewCustomScrollView creates a view over slivers.
func NewCustomScrollView(opts CustomOptions, slivers ...Sliver) *CustomScrollView {
	v := &CustomScrollView{
		Scrollable: New(opts.Options),
		appBar:     opts.AppBar,
		slivers:    slivers,
		height:     opts.Height,
	}
	v.layout()
	return v
}

// Slivers returns the sections.
func (v *CustomScrollView) Slivers() []Sliver { return v.slivers }

// SetSlivers replaces the sections.
func (v *CustomScrollView) SetSlivers(slivers ...Sliver) {
	v.slivers = slivers
	v.layout()
}

// SetSize resizes the whole view including the app bar.
func (v *CustomScrollView) SetSize(width, height int) {
	v.height = height
	v.Scrollable.SetSize(width, height)
	v.layout()
}

// SliverOffset returns the first line of sliver i.
func (v *CustomScrollView) SliverOffset(i int) (float64, bool) {
	if i < 0 || i >= len(v.offsets) {
		return 0, false
	}
	return float64(v.offsets[i]), true
}

// ScrollToSliver scrolls sliver i to the top of the viewport.
func (v *CustomScrollView) ScrollToSliver(i int) {
	if offset, ok := v.SliverOffset(i); ok {
		v.Controller().ScrollAlong(offset)
	}
}

// View renders the app bar above the scrolled slivers.
func (v *CustomScrollView) View() string {
	body := v.Scrollable.View()
	if bar := v.appBarView(); bar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, bar, body)
	}
	return body
}

func (v *CustomScrollView) appBarView() string {
	if v.appBar == nil {
		return ""
	}
	ctx := components.DefaultContext().WithTheme(v.Theme()).WithMaxWidth(int(v.Size().Width))
	return components.Render(v.appBar, ctx)
}

func (v *CustomScrollView) layout() {
	width := int(v.Size().Width)
	if bar := v.appBarView(); bar != "" {
		bodyHeight := max(v.height-lipgloss.Height(bar), 0)
		v.Scrollable.SetSize(width, bodyHeight)
	}

	ctx := components.DefaultContext().WithTheme(v.Theme())
	v.offsets = make([]int, len(v.slivers))
	var lines []string
	for i, sliver := range v.slivers {
		v.offsets[i] = len(lines)
		if sliver == nil {
			continue
		}
		if out := sliver.Layout(ctx, width); out != "" {
			lines = append(lines, strings.Split(out, "\n")...)
		}
	}
	v.SetContent(strings.Join(lines, "\n"))
}
