package scrollview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// GridOptions configures a GridView.
type GridOptions struct {
	Options
	// Columns is the number of cells per row. At least one.
	Columns int
	// CellWidth defaults to an even share of the viewport width.
	CellWidth  int
	CellHeight int
	Gap        int
}

// GridView lays items out in fixed-size cells, row by row. With a fixed cell width wider
// than the viewport the grid scrolls on both axes.
type GridView struct {
	*Scrollable
	items      []ui.Renderable
	columns    int
	cellWidth  int
	cellHeight int
	gap        int
}

// NewGridView creates a grid over items.
func NewGridView(opts GridOptions, items ...ui.Renderable) *GridView {
	g := &GridView{
		Scrollable: New(opts.Options),
		items:      items,
		columns:    max(opts.Columns, 1),
		cellWidth:  opts.CellWidth,
		cellHeight: max(opts.CellHeight, 1),
		gap:        max(opts.Gap, 0),
	}
	g.layout()
	return g
}

// Columns returns the number of cells per row.
func (g *GridView) Columns() int { return g.columns }

// Rows returns the number of rows.
func (g *GridView) Rows() int {
	return (len(g.items) + g.columns - 1) / g.columns
}

// SetItems replaces the cells.
func (g *GridView) SetItems(items ...ui.Renderable) {
	g.items = items
	g.layout()
}

// SetSize resizes the viewport and the derived cell width.
func (g *GridView) SetSize(width, height int) {
	g.Scrollable.SetSize(width, height)
	g.layout()
}

// CellSize returns the laid-out cell width and height.
func (g *GridView) CellSize() (int, int) {
	return g.resolvedCellWidth(), g.cellHeight
}

// CellOffset returns the top-left corner of item i.
func (g *GridView) CellOffset(i int) (x, y float64, ok bool) {
	if i < 0 || i >= len(g.items) {
		return 0, 0, false
	}
	w, h := g.CellSize()
	row, col := i/g.columns, i%g.columns
	return float64(col * (w + g.gap)), float64(row * (h + g.gap)), true
}

// ScrollToItem brings item i to the top-left corner, as far as the extent allows.
func (g *GridView) ScrollToItem(i int) {
	x, y, ok := g.CellOffset(i)
	if !ok {
		return
	}
	g.Controller().ScrollTo(x, y)
}

func (g *GridView) resolvedCellWidth() int {
	if g.cellWidth > 0 {
		return g.cellWidth
	}
	width := int(g.Size().Width) - g.gap*(g.columns-1)
	return max(width/g.columns, 1)
}

func (g *GridView) layout() {
	ctx := components.DefaultContext().WithTheme(g.Theme())
	w, h := g.CellSize()
	hgap := strings.Repeat(" ", g.gap)

	rows := make([]string, 0, g.Rows())
	for start := 0; start < len(g.items); start += g.columns {
		end := min(start+g.columns, len(g.items))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start && g.gap > 0 {
				cells = append(cells, hgap)
			}
			cells = append(cells, components.SizedBox(w, h, g.items[i]).ViewWithContext(ctx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sep := "\n" + strings.Repeat("\n", g.gap)
	g.SetContent(strings.Join(rows, sep))
}
