package gallery

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/scrollview"
)

const (
	listRows    = 40
	gridCells   = 24
	pageCount   = 5
	nestedRows  = 30
	sliverChips = 8
)

// demo is the part of a scroll container the gallery drives.
type demo interface {
	Update(tea.Msg) tea.Cmd
	Tick() tea.Cmd
	View() string
	SetSize(width, height int)
	Mount()
	Unmount()
	Focus()
	Blur()
}

// tab is one gallery screen. The handle is the caller-side view of the demo's controller.
type tab struct {
	title     string
	view      demo
	handle    *scroll.Handle
	animating func() bool
}

// pageTracker buffers page notifications raised inside a container's Update.
type pageTracker struct {
	pending []int
}

func (t *pageTracker) record(page int) {
	t.pending = append(t.pending, page)
}

func (t *pageTracker) drain() []int {
	pages := t.pending
	t.pending = nil
	return pages
}

func (o Options) scrollOptions(handle *scroll.Handle, axis scroll.Axis) scrollview.Options {
	return scrollview.Options{
		Axis:       axis,
		Spring:     o.Spring,
		Touch:      o.Touch,
		WheelDelta: o.WheelDelta,
		Theme:      o.Theme,
		Handle:     handle,
		Logger:     o.Logger,
	}
}

func newListTab(o Options) *tab {
	handle := scroll.NewHandle()
	slots := []components.PaletteSlot{components.PalettePrimary, components.PaletteSuccess, components.PaletteWarning, components.PaletteDanger}
	items := make([]ui.Renderable, listRows)
	for i := range items {
		items[i] = components.Row(
			components.NewChip(fmt.Sprintf("%02d", i+1)).WithSlot(slots[i%len(slots)]),
			components.NewText(fmt.Sprintf("List row %d", i+1)),
		).WithGap(1)
	}
	list := scrollview.NewListView(scrollview.ListOptions{
		Options:   o.scrollOptions(handle, scroll.AxisVertical),
		Separator: true,
	}, items...)
	return &tab{title: "List", view: list, handle: handle, animating: list.Surface().Animating}
}

func newGridTab(o Options) *tab {
	handle := scroll.NewHandle()
	items := make([]ui.Renderable, gridCells)
	for i := range items {
		items[i] = components.NewBox(components.NewText(fmt.Sprintf("cell %02d", i+1))).
			WithBorder(components.BorderVariantRounded).
			WithAlign(lipgloss.Center)
	}
	grid := scrollview.NewGridView(scrollview.GridOptions{
		Options:    o.scrollOptions(handle, scroll.AxisBoth),
		Columns:    4,
		CellWidth:  16,
		CellHeight: 3,
		Gap:        1,
	}, items...)
	return &tab{title: "Grid", view: grid, handle: handle, animating: grid.Surface().Animating}
}

func newPagesTab(o Options, pageHandle *paging.Handle, tracker *pageTracker) (*tab, *scrollview.PageView, error) {
	handle := scroll.NewHandle()
	colours := []string{"#60a5fa", "#c084fc", "#4ade80", "#facc15", "#f87171"}
	pages := make([]ui.Renderable, pageCount)
	for i := range pages {
		gradient, err := components.NewGradient(colours[i], colours[(i+1)%len(colours)], 24, 3)
		if err != nil {
			return nil, nil, fmt.Errorf("build page %d: %w", i, err)
		}
		pages[i] = components.NewBox(components.Column(
			components.TitleText(fmt.Sprintf("Page %d of %d", i+1, pageCount)),
			components.CaptionText("swipe with the wheel or use the arrow keys"),
			gradient.WithLabel(colours[i]),
		).WithGap(1).WithCrossAxis(components.CrossCenter)).
			WithAlign(lipgloss.Center).
			WithPadding(components.Only(1, 0, 0, 0))
	}

	view := scrollview.NewPageView(scrollview.PageOptions{
		Options:         o.scrollOptions(handle, o.PagingAxis),
		Physics:         o.Physics,
		SettleTimeout:   o.SettleTimeout,
		SettleTolerance: o.SettleTolerance,
		OnPageChanged:   tracker.record,
		PageHandle:      pageHandle,
		Indicator:       true,
	}, pages...)
	return &tab{title: "Pages", view: view, handle: handle, animating: view.Surface().Animating}, view, nil
}

func newNestedTab(o Options) *tab {
	handle := scroll.NewHandle()
	header := components.NewCard(
		components.NewText("The header collapses before the list scrolls."),
		components.CaptionText("Scroll back up to expand it again."),
	).WithTitle("Nested scrolling")

	items := make([]ui.Renderable, nestedRows)
	for i := range items {
		items[i] = components.NewText(fmt.Sprintf("Inner row %d", i+1))
	}
	nested := scrollview.NewNestedScrollView(scrollview.NestedOptions{
		Options: o.scrollOptions(handle, scroll.AxisVertical),
	}, header, items...)

	animating := func() bool {
		return nested.Outer().Surface().Animating() || nested.Inner().Surface().Animating()
	}
	return &tab{title: "Nested", view: nested, handle: handle, animating: animating}
}

func newCustomTab(o Options) *tab {
	handle := scroll.NewHandle()
	chips := make([]ui.Renderable, sliverChips)
	for i := range chips {
		chips[i] = components.NewChip(fmt.Sprintf("tag %d", i+1)).WithSlot(components.PaletteSecondary)
	}
	rows := make([]ui.Renderable, 12)
	for i := range rows {
		rows[i] = components.NewText(fmt.Sprintf("Sliver row %d", i+1))
	}

	custom := scrollview.NewCustomScrollView(scrollview.CustomOptions{
		Options: o.scrollOptions(handle, scroll.AxisVertical),
		AppBar: components.NewBox(components.TitleText("Custom scroll view")).
			WithAppliers(components.Background(components.PaletteSurface)),
	},
		scrollview.SliverBox{Child: components.SubtitleText("Heterogeneous sections under a pinned bar")},
		scrollview.SliverGrid{Items: chips, Columns: 4, CellHeight: 1},
		scrollview.SliverBox{Child: components.NewDivider()},
		scrollview.SliverList{Items: rows, Separator: true},
	)
	return &tab{title: "Custom", view: custom, handle: handle, animating: custom.Surface().Animating}
}

func newCatalogueTab(o Options, cat *catalogue) (*tab, *scrollview.SingleChildScrollView) {
	handle := scroll.NewHandle()
	view := scrollview.NewSingleChildScrollView(o.scrollOptions(handle, scroll.AxisVertical), cat)
	return &tab{title: "Catalogue", view: view, handle: handle, animating: view.Surface().Animating}, view
}
