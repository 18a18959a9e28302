package scrollview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// snapDelay is how long wheel input must pause before a page view snaps to the nearest page.
const snapDelay = 150 * time.Millisecond

// PageOptions configures a PageView. Options.Axis picks the paging direction; AxisBoth pages
// vertically.
type PageOptions struct {
	Options
	Physics         paging.Physics
	Initial         int
	SettleTimeout   time.Duration
	SettleTolerance float64
	OnPageChanged   func(index int)
	// PageHandle receives the navigator on mount.
	PageHandle *paging.Handle
	// Indicator draws paginator dots under the pages, taking one line from Height.
	Indicator bool
	Now       func() time.Time
}

type snapMsg struct {
	id  string
	seq int
}

// PageView shows one viewport-sized page at a time. A navigator keeps the page index in step
// with the scroll offset: keys issue page commands, wheel input scrolls freely and snaps to the
// nearest page once it pauses.
type PageView struct {
	*Scrollable
	pages     []ui.Renderable
	nav       *paging.Navigator
	handle    *paging.Handle
	paginator paginator.Model
	indicator bool
	onChange  func(int)

	cancel    func()
	userMoved bool
	snapSeq   int
}

// NewPageView creates an unmounted page view.
func NewPageView(opts PageOptions, pages ...ui.Renderable) *PageView {
	if opts.Axis == scroll.AxisBoth {
		opts.Axis = scroll.AxisVertical
	}
	opts.Overscroll = opts.Overscroll || opts.Physics.AllowsOverscroll()
	if opts.Spring.FPS <= 0 && opts.Physics == paging.PhysicsBouncy {
		opts.Spring = scroll.BouncySpring()
	}

	p := &PageView{
		pages:     pages,
		handle:    opts.PageHandle,
		indicator: opts.Indicator,
		onChange:  opts.OnPageChanged,
	}
	if p.indicator {
		opts.Height = max(opts.Height-1, 0)
	}
	p.Scrollable = New(opts.Options)

	p.paginator = paginator.New()
	p.paginator.Type = paginator.Dots
	p.paginator.ActiveDot = lipgloss.NewStyle().Foreground(p.Theme().Palette.Primary.Base).Render("•")
	p.paginator.InactiveDot = lipgloss.NewStyle().Foreground(p.Theme().Palette.Neutral.Base).Render("•")
	p.paginator.TotalPages = max(len(pages), 1)

	p.nav = paging.New(p.Controller(), paging.Options{
		Count:           len(pages),
		Initial:         opts.Initial,
		Physics:         opts.Physics,
		SettleTimeout:   opts.SettleTimeout,
		SettleTolerance: opts.SettleTolerance,
		OnPageChanged:   p.pageChanged,
		Logger:          opts.Logger,
		Now:             opts.Now,
	})
	p.paginator.Page = max(p.nav.CurrentPage(), 0)

	p.layout()
	return p
}

// Navigator returns the navigator. Its commands are no-ops until Mount.
func (p *PageView) Navigator() *paging.Navigator { return p.nav }

// PageHandle returns the handle the navigator is published into, if any.
func (p *PageView) PageHandle() *paging.Handle { return p.handle }

// SetPageHandle moves publication to h. The previous handle becomes inert.
func (p *PageView) SetPageHandle(h *paging.Handle) {
	if h == p.handle {
		return
	}
	p.handle.Detach(p.nav)
	p.handle = h
	if p.Mounted() {
		h.Attach(p.nav)
	}
}

// OnPageChanged replaces the page change callback.
func (p *PageView) OnPageChanged(fn func(index int)) {
	p.onChange = fn
}

// Mount binds the controller, subscribes the navigator to the surface, publishes both handles
// and places the surface on the current page without animating.
func (p *PageView) Mount() {
	if p.Mounted() {
		return
	}
	p.Scrollable.Mount()
	p.cancel = p.Subscribe(p.observe)
	p.handle.Attach(p.nav)
	p.nav.Align()
	p.Surface().Finish()
}

// Unmount releases the controller and the navigator subscription.
func (p *PageView) Unmount() {
	if !p.Mounted() {
		return
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.handle.Detach(p.nav)
	p.Scrollable.Unmount()
}

// Pages returns the page widgets.
func (p *PageView) Pages() []ui.Renderable { return p.pages }

// SetPages replaces the pages. The index is clamped into the new range.
func (p *PageView) SetPages(pages ...ui.Renderable) {
	p.pages = pages
	p.paginator.TotalPages = max(len(pages), 1)
	p.layout()
	p.nav.SetCount(len(pages))
	p.paginator.Page = max(p.nav.CurrentPage(), 0)
}

// SetSize resizes the view. The navigator re-aligns to the current page and the surface jumps
// there.
func (p *PageView) SetSize(width, height int) {
	if p.indicator {
		height = max(height-1, 0)
	}
	p.Scrollable.SetSize(width, height)
	p.layout()
	p.Surface().Finish()
}

// Update handles page keys when focused, passes everything else to the scrollable and snaps
// to the nearest page after wheel input pauses.
func (p *PageView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case snapMsg:
		if msg.id != p.ID() || msg.seq != p.snapSeq {
			return nil
		}
		p.nav.Align()
		return p.Tick()
	case tea.KeyMsg:
		if p.Focused() && p.handlePageKey(msg) {
			return p.Tick()
		}
	}

	cmd := p.Scrollable.Update(msg)
	if !p.userMoved {
		return cmd
	}
	p.userMoved = false
	p.snapSeq++
	id, seq := p.ID(), p.snapSeq
	snap := tea.Tick(snapDelay, func(time.Time) tea.Msg { return snapMsg{id: id, seq: seq} })
	return tea.Batch(cmd, snap)
}

func (p *PageView) handlePageKey(msg tea.KeyMsg) bool {
	keys := p.Keys()
	prev, next := keys.Up, keys.Down
	if p.Axis() == scroll.AxisHorizontal {
		prev, next = keys.Left, keys.Right
	}

	switch {
	case key.Matches(msg, prev, keys.PageUp):
		p.nav.PreviousPage()
	case key.Matches(msg, next, keys.PageDown):
		p.nav.NextPage()
	case key.Matches(msg, keys.Top):
		p.nav.SetPage(0)
	case key.Matches(msg, keys.Bottom):
		p.nav.SetPage(len(p.pages) - 1)
	default:
		return false
	}
	return true
}

// View renders the visible page and, if enabled, the indicator.
func (p *PageView) View() string {
	body := p.Scrollable.View()
	if !p.indicator {
		return body
	}
	dots := lipgloss.PlaceHorizontal(int(p.Size().Width), lipgloss.Center, p.paginator.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, dots)
}

func (p *PageView) observe(ev scroll.Event) {
	if ev.User {
		p.userMoved = true
	}
	p.nav.HandleScroll(ev)
}

func (p *PageView) pageChanged(i int) {
	p.paginator.Page = i
	if p.onChange != nil {
		p.onChange(i)
	}
}

func (p *PageView) layout() {
	size := p.Size()
	w, h := int(size.Width), int(size.Height)
	ctx := components.DefaultContext().WithTheme(p.Theme())

	views := make([]string, len(p.pages))
	for i, page := range p.pages {
		views[i] = components.SizedBox(w, h, page).ViewWithContext(ctx)
	}

	if p.Axis() == scroll.AxisHorizontal {
		p.SetContent(lipgloss.JoinHorizontal(lipgloss.Top, views...))
		return
	}
	p.SetContent(lipgloss.JoinVertical(lipgloss.Left, views...))
}
