package paging

import (
	"math"
	"time"

	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
)

const (
	DefaultSettleTimeout   = time.Second
	DefaultSettleTolerance = 0.5
)

// Options configures a Navigator.
type Options struct {
	Count   int
	Initial int
	Physics Physics

	// SettleTimeout bounds how long scroll events are ignored after a page command.
	// It must exceed the animation time of the surface.
	SettleTimeout time.Duration
	// SettleTolerance is the distance from the command target, as a fraction of the page
	// extent, at which a surface that has come to rest counts as settled. A surface that is
	// still moving keeps the window open however close it is.
	SettleTolerance float64

	OnPageChanged func(index int)
	Logger        *logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Navigator keeps a discrete page index consistent with the continuous offset of a scroll
// controller. Scroll events move the index; page commands move the surface.
type Navigator struct {
	ctrl  *scroll.Controller
	pages PageSet

	onChange  func(int)
	timeout   time.Duration
	tolerance float64
	now       func() time.Time
	log       *logger.Logger

	window window
}

// window is the feedback suppression state opened by a page command.
type window struct {
	active   bool
	target   float64
	deadline time.Time
}

// New creates a navigator over ctrl. The surface is not moved until Align is called.
func New(ctrl *scroll.Controller, opts Options) *Navigator {
	if opts.Count < 0 {
		opts.Count = 0
	}
	if opts.SettleTimeout <= 0 {
		opts.SettleTimeout = DefaultSettleTimeout
	}
	if opts.SettleTolerance <= 0 {
		opts.SettleTolerance = DefaultSettleTolerance
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	pages := PageSet{Count: opts.Count, Physics: opts.Physics}
	pages.Index = max(pages.Clamp(opts.Initial), 0)

	return &Navigator{
		ctrl:      ctrl,
		pages:     pages,
		onChange:  opts.OnPageChanged,
		timeout:   opts.SettleTimeout,
		tolerance: opts.SettleTolerance,
		now:       opts.Now,
		log:       opts.Logger,
	}
}

// CurrentPage returns the current index, or NoPage when there are no pages.
func (n *Navigator) CurrentPage() int {
	if n == nil {
		return NoPage
	}
	return n.pages.Current()
}

// Pages returns a snapshot of the page set.
func (n *Navigator) Pages() PageSet {
	if n == nil {
		return PageSet{Index: NoPage}
	}
	p := n.pages
	p.Index = p.Current()
	return p
}

// Controller returns the underlying scroll controller.
func (n *Navigator) Controller() *scroll.Controller {
	if n == nil {
		return nil
	}
	return n.ctrl
}

// OnPageChanged replaces the page change callback.
func (n *Navigator) OnPageChanged(fn func(index int)) {
	if n == nil {
		return
	}
	n.onChange = fn
}

// SetPage moves to page i, clamped into range, and scrolls the surface to it.
// Nothing happens when there are no pages or i is already current.
func (n *Navigator) SetPage(i int) {
	if n == nil || n.pages.Count == 0 {
		return
	}
	i = n.pages.Clamp(i)
	if i == n.pages.Index {
		return
	}
	n.pages.Index = i
	n.scrollToPage(i)
	n.notify(i, "command")
}

// NextPage moves one page forward. It does not wrap.
func (n *Navigator) NextPage() {
	if n == nil {
		return
	}
	n.SetPage(n.pages.Index + 1)
}

// PreviousPage moves one page back. It does not wrap.
func (n *Navigator) PreviousPage() {
	if n == nil {
		return
	}
	n.SetPage(n.pages.Index - 1)
}

// HandleScroll interprets one scroll event of the bound surface.
func (n *Navigator) HandleScroll(ev scroll.Event) {
	if n == nil || n.pages.Count == 0 {
		return
	}
	if ev.Layout {
		// The page extent follows the viewport, so keep the current page in view instead of
		// reinterpreting the re-clamped offset.
		n.Align()
		return
	}
	if ev.User && n.window.active {
		n.log.Debug("suppression interrupted by user input", "target", n.window.target)
		n.window = window{}
	}

	axis := n.axis()
	extent := ev.Viewport.Along(axis)
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		return
	}
	offset := ev.Offset.Along(axis)

	if n.window.active {
		switch {
		case !ev.Moving && math.Abs(offset-n.window.target) < n.tolerance*extent:
			n.log.Debug("programmatic scroll settled", "target", n.window.target, "offset", offset)
			n.window = window{}
		case !n.now().Before(n.window.deadline):
			n.log.Debug("programmatic scroll settle timed out", "target", n.window.target, "offset", offset)
			n.window = window{}
		default:
			return
		}
	}

	candidate := n.pages.Clamp(int(math.Round(offset / extent)))
	if candidate == n.pages.Index {
		return
	}
	n.pages.Index = candidate
	n.notify(candidate, "scroll")
}

// Suppressed reports whether scroll events are currently being ignored.
func (n *Navigator) Suppressed() bool {
	return n != nil && n.window.active
}

// Interrupt closes the suppression window so the next scroll event is interpreted.
func (n *Navigator) Interrupt() {
	if n == nil {
		return
	}
	n.window = window{}
}

// Align scrolls the surface to the current page without notifying. Hosts call it on mount and
// after the viewport is resized, since the page extent changes with the viewport.
func (n *Navigator) Align() {
	if n == nil || n.pages.Count == 0 {
		return
	}
	n.scrollToPage(n.pages.Index)
}

// SetCount changes the number of pages. The index is clamped into the new range; if that moves
// it, the surface follows and a notification is emitted.
func (n *Navigator) SetCount(count int) {
	if n == nil {
		return
	}
	if count < 0 {
		count = 0
	}
	wasEmpty := n.pages.Count == 0
	n.pages.Count = count
	if count == 0 {
		n.pages.Index = 0
		n.window = window{}
		return
	}
	if wasEmpty {
		n.pages.Index = 0
		return
	}
	clamped := n.pages.Clamp(n.pages.Index)
	if clamped == n.pages.Index {
		return
	}
	n.pages.Index = clamped
	n.scrollToPage(clamped)
	n.notify(clamped, "count")
}

func (n *Navigator) scrollToPage(i int) {
	if !n.ctrl.Mounted() {
		return
	}
	axis := n.axis()
	extent := n.ctrl.Viewport().Along(axis)
	if extent <= 0 {
		return
	}

	limit := n.ctrl.MaxExtent().MaxTop
	if axis == scroll.AxisHorizontal {
		limit = n.ctrl.MaxExtent().MaxLeft
	}
	target := math.Min(float64(i)*extent, limit)
	if n.ctrl.Position().Along(axis) == target {
		return
	}

	// The window must be open before the command: static surfaces report synchronously.
	n.window = window{active: true, target: target, deadline: n.now().Add(n.timeout)}
	n.ctrl.ScrollAlong(target)

	if n.ctrl.Position().Along(axis) == target {
		return
	}
	// The controller clamped differently than expected; follow the surface's target.
	n.window.target = n.ctrl.Position().Along(axis)
}

func (n *Navigator) notify(i int, cause string) {
	n.log.Debug("page changed", "page", i, "count", n.pages.Count, "cause", cause)
	if n.onChange != nil {
		n.onChange(i)
	}
}

func (n *Navigator) axis() scroll.Axis {
	if axis := n.ctrl.Axis(); axis == scroll.AxisHorizontal {
		return axis
	}
	return scroll.AxisVertical
}
