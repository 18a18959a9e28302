package scrollview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// NestedOptions configures a NestedScrollView. Options describes the outer scrollable.
type NestedOptions struct {
	Options
	// Inner configures the body list. Size and axis are derived from the outer options.
	Inner ListOptions
}

// NestedScrollView scrolls a collapsible header above a list body. Downward input collapses the
// header before the body scrolls; upward input scrolls the body back to its top before the
// header expands. The outer and inner controllers are independent and separately published.
type NestedScrollView struct {
	outer  *Scrollable
	inner  *ListView
	header ui.Renderable
}

// NewNestedScrollView creates a nested view with header over items.
func NewNestedScrollView(opts NestedOptions, header ui.Renderable, items ...ui.Renderable) *NestedScrollView {
	opts.Axis = scroll.AxisVertical
	innerOpts := opts.Inner
	innerOpts.Width, innerOpts.Height = opts.Width, opts.Height
	innerOpts.Axis = scroll.AxisVertical
	innerOpts.Touch = false
	if innerOpts.Spring.FPS <= 0 {
		innerOpts.Spring = opts.Spring
	}
	if innerOpts.Theme.Name == "" {
		innerOpts.Theme = opts.Theme
	}
	if innerOpts.Logger == nil {
		innerOpts.Logger = opts.Logger
	}

	v := &NestedScrollView{
		outer:  New(opts.Options),
		inner:  NewListView(innerOpts, items...),
		header: header,
	}
	v.layout()
	return v
}

// Outer returns the scrollable that moves the header.
func (v *NestedScrollView) Outer() *Scrollable { return v.outer }

// Inner returns the body list.
func (v *NestedScrollView) Inner() *ListView { return v.inner }

// OuterController returns the controller of the header scrollable.
func (v *NestedScrollView) OuterController() *scroll.Controller { return v.outer.Controller() }

// InnerController returns the controller of the body list.
func (v *NestedScrollView) InnerController() *scroll.Controller { return v.inner.Controller() }

// Mount binds both controllers.
func (v *NestedScrollView) Mount() {
	v.outer.Mount()
	v.inner.Mount()
}

// Unmount releases both controllers.
func (v *NestedScrollView) Unmount() {
	v.inner.Unmount()
	v.outer.Unmount()
}

// Mounted reports whether the outer controller is bound.
func (v *NestedScrollView) Mounted() bool { return v.outer.Mounted() }

func (v *NestedScrollView) Focus() { v.outer.Focus() }

func (v *NestedScrollView) Blur() { v.outer.Blur() }

// SetSize resizes both scrollables.
func (v *NestedScrollView) SetSize(width, height int) {
	v.outer.SetSize(width, height)
	v.inner.SetSize(width, height)
	v.layout()
}

// SetItems replaces the body items.
func (v *NestedScrollView) SetItems(items ...ui.Renderable) {
	v.inner.SetItems(items...)
	v.layout()
}

// ScrollUser distributes a vertical user delta between header and body.
func (v *NestedScrollView) ScrollUser(dy float64) {
	if !v.Mounted() || dy == 0 {
		return
	}

	outerPos, outerMax := v.outer.Surface().Offset().Top, v.OuterController().MaxExtent().MaxTop
	innerPos := v.inner.Surface().Offset().Top

	if dy > 0 {
		take := min(dy, outerMax-outerPos)
		if take > 0 {
			v.outer.ScrollUser(0, take)
		}
		if rest := dy - max(take, 0); rest > 0 {
			v.inner.ScrollUser(0, rest)
		}
		return
	}

	take := max(dy, -innerPos)
	if take < 0 {
		v.inner.ScrollUser(0, take)
	}
	if rest := dy - min(take, 0); rest < 0 {
		v.outer.ScrollUser(0, rest)
	}
}

// Update routes frames to both scrollables and turns keys and wheel input into nested scrolls.
func (v *NestedScrollView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.outer.Focused() {
			v.handleKey(msg)
		}
		return v.Tick()
	case tea.MouseMsg:
		if v.outer.opts.Touch && msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				v.ScrollUser(-float64(v.outer.opts.WheelDelta))
			case tea.MouseButtonWheelDown:
				v.ScrollUser(float64(v.outer.opts.WheelDelta))
			}
		}
		return v.Tick()
	}
	return tea.Batch(v.outer.Update(msg), v.inner.Update(msg))
}

// Tick starts the frame loops of whichever scrollables are animating.
func (v *NestedScrollView) Tick() tea.Cmd {
	return tea.Batch(v.outer.Tick(), v.inner.Tick())
}

func (v *NestedScrollView) handleKey(msg tea.KeyMsg) {
	keys := v.outer.Keys()
	page := v.outer.Size().Height
	switch {
	case key.Matches(msg, keys.Up):
		v.ScrollUser(-1)
	case key.Matches(msg, keys.Down):
		v.ScrollUser(1)
	case key.Matches(msg, keys.PageUp):
		v.ScrollUser(-page)
	case key.Matches(msg, keys.PageDown):
		v.ScrollUser(page)
	case key.Matches(msg, keys.Top):
		v.inner.ScrollUserTo(0, 0)
		v.outer.ScrollUserTo(0, 0)
	case key.Matches(msg, keys.Bottom):
		v.outer.ScrollUserTo(0, v.OuterController().MaxExtent().MaxTop)
		v.inner.ScrollUserTo(0, v.InnerController().MaxExtent().MaxTop)
	}
}

// View renders the header and the body window through the outer viewport.
func (v *NestedScrollView) View() string {
	v.layout()
	return v.outer.View()
}

func (v *NestedScrollView) layout() {
	ctx := components.DefaultContext().WithTheme(v.outer.Theme()).WithMaxWidth(int(v.outer.Size().Width))
	header := components.Render(v.header, ctx)
	body := v.inner.View()
	if header == "" {
		v.outer.SetContent(body)
		return
	}
	v.outer.SetContent(header + "\n" + body)
}
