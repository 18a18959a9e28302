package scrollview

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

const defaultWheelDelta = 3

var lastID int64

func nextID() string {
	return fmt.Sprintf("scrollable-%d", atomic.AddInt64(&lastID, 1))
}

// Options configures a Scrollable and every container built on it.
type Options struct {
	// ID routes FrameMsg values. A unique ID is generated when empty.
	ID     string
	Width  int
	Height int
	Axis   scroll.Axis
	Spring scroll.SpringConfig
	// Overscroll lets animation frames render past either end.
	Overscroll bool
	// Touch enables mouse wheel input. The program must also enable mouse reporting.
	Touch bool
	// WheelDelta is the distance of one wheel notch in cells.
	WheelDelta int
	Keys       *KeyMap
	Theme      components.Theme
	// Handle receives the controller on mount.
	Handle *scroll.Handle
	Logger *logger.Logger
}

// FrameMsg advances the animation of the scrollable with the same ID by one frame.
type FrameMsg struct {
	ID   string
	Time time.Time
}

// Scrollable is the scroll host shared by every container: it owns an animated surface, binds a
// controller to it while mounted, publishes the controller into a caller-supplied handle, turns
// keys and wheel input into user scrolls and renders through a bubbles viewport.
type Scrollable struct {
	id   string
	opts Options
	keys KeyMap
	log  *logger.Logger

	binding  *scroll.Binding
	surface  *scroll.AnimatedSurface
	ctrl     *scroll.Controller
	handle   *scroll.Handle
	viewport viewport.Model

	ticking bool
	focused bool
}

// New creates an unmounted scrollable with empty content.
func New(opts Options) *Scrollable {
	if opts.ID == "" {
		opts.ID = nextID()
	}
	if opts.WheelDelta <= 0 {
		opts.WheelDelta = defaultWheelDelta
	}
	if opts.Spring.FPS <= 0 {
		opts.Spring = scroll.DefaultSpring()
	}
	if opts.Theme.Name == "" {
		opts.Theme = components.DarkTheme()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	width, height := max(opts.Width, 0), max(opts.Height, 0)
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = false

	binding := scroll.NewBinding()
	surface := scroll.NewAnimatedSurface(
		scroll.Size{Width: float64(width), Height: float64(height)},
		scroll.Size{},
		opts.Spring,
	)
	surface.SetOverscroll(opts.Overscroll)

	return &Scrollable{
		id:       opts.ID,
		opts:     opts,
		keys:     keys,
		log:      opts.Logger.Named("scrollview"),
		binding:  binding,
		surface:  surface,
		ctrl:     scroll.NewController(binding, opts.Axis),
		handle:   opts.Handle,
		viewport: vp,
	}
}

// ID returns the frame routing ID.
func (s *Scrollable) ID() string { return s.id }

// Axis returns the scrolling axis.
func (s *Scrollable) Axis() scroll.Axis { return s.opts.Axis }

// Controller returns the controller bound to this scrollable. It is inert until Mount.
func (s *Scrollable) Controller() *scroll.Controller { return s.ctrl }

// Surface returns the animated surface.
func (s *Scrollable) Surface() *scroll.AnimatedSurface { return s.surface }

// Handle returns the handle the controller is published into, if any.
func (s *Scrollable) Handle() *scroll.Handle { return s.handle }

// Theme returns the theme content is rendered with.
func (s *Scrollable) Theme() components.Theme { return s.opts.Theme }

// Keys returns the active key bindings.
func (s *Scrollable) Keys() KeyMap { return s.keys }

// SetHandle moves publication to h. The previous handle becomes inert.
func (s *Scrollable) SetHandle(h *scroll.Handle) {
	if h == s.handle {
		return
	}
	s.handle.Detach(s.ctrl)
	s.handle = h
	if s.Mounted() {
		h.Attach(s.ctrl)
	}
	s.log.Debug("scroll handle rebound", "id", s.id, "attached", h.Attached())
}

// Mount binds the controller to the surface and publishes it.
func (s *Scrollable) Mount() {
	if s.binding.Mounted() {
		return
	}
	s.binding.Mount(s.surface)
	s.handle.Attach(s.ctrl)
	s.log.Debug("scrollable mounted", "id", s.id, "axis", s.opts.Axis.String())
}

// Unmount unbinds the controller. Calls through it, or through the handle, become no-ops.
func (s *Scrollable) Unmount() {
	if !s.binding.Mounted() {
		return
	}
	s.binding.Unmount()
	s.handle.Detach(s.ctrl)
	s.ticking = false
	s.log.Debug("scrollable unmounted", "id", s.id)
}

// Mounted reports whether the controller reaches the surface.
func (s *Scrollable) Mounted() bool { return s.binding.Mounted() }

// Focus routes key input to this scrollable.
func (s *Scrollable) Focus() { s.focused = true }

// Blur stops routing key input.
func (s *Scrollable) Blur() { s.focused = false }

// Focused reports whether keys are handled.
func (s *Scrollable) Focused() bool { return s.focused }

// Subscribe registers fn for every surface event.
func (s *Scrollable) Subscribe(fn func(scroll.Event)) func() {
	return s.surface.Subscribe(fn)
}

// Size returns the viewport size.
func (s *Scrollable) Size() scroll.Size { return s.surface.Viewport() }

// ContentSize returns the measured content size.
func (s *Scrollable) ContentSize() scroll.Size { return s.surface.Content() }

// SetSize resizes the viewport. Offsets are re-clamped and a layout event is reported.
func (s *Scrollable) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	s.viewport.Width, s.viewport.Height = width, height
	s.resize(scroll.Size{Width: float64(width), Height: float64(height)}, s.surface.Content())
}

// SetContent replaces the rendered content and measures it.
func (s *Scrollable) SetContent(content string) {
	s.viewport.SetContent(content)
	size := scroll.Size{
		Width:  float64(lipgloss.Width(content)),
		Height: float64(s.viewport.TotalLineCount()),
	}
	if content == "" {
		size = scroll.Size{}
	}
	s.resize(s.surface.Viewport(), size)
}

func (s *Scrollable) resize(vp, content scroll.Size) {
	if vp == s.surface.Viewport() && content == s.surface.Content() {
		return
	}
	s.surface.Resize(vp, content)
}

// ScrollUser moves the surface as direct user input would, along the enabled axes.
func (s *Scrollable) ScrollUser(dx, dy float64) {
	if !s.Mounted() {
		return
	}
	if !s.opts.Axis.Horizontal() {
		dx = 0
	}
	if !s.opts.Axis.Vertical() {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return
	}
	current := s.surface.Offset()
	s.surface.UserScroll(scroll.Offset{Top: current.Top + dy, Left: current.Left + dx})
}

// ScrollUserTo moves the surface to an absolute position as direct user input would.
func (s *Scrollable) ScrollUserTo(x, y float64) {
	if !s.Mounted() {
		return
	}
	s.surface.UserScroll(scroll.Offset{Top: y, Left: x})
}

// Update handles frames, keys (when focused) and wheel input (when Touch is set). The returned
// command keeps the frame loop running while the surface animates.
func (s *Scrollable) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != s.id {
			return nil
		}
		s.ticking = false
		s.surface.Step()
	case tea.KeyMsg:
		if s.focused {
			s.handleKey(msg)
		}
	case tea.MouseMsg:
		if s.opts.Touch {
			s.handleMouse(msg)
		}
	}
	return s.Tick()
}

// Tick starts the frame loop if the surface is animating and no frame is pending. Hosts call
// it after issuing controller commands outside Update.
func (s *Scrollable) Tick() tea.Cmd {
	if s.ticking || !s.Mounted() || !s.surface.Animating() {
		return nil
	}
	s.ticking = true
	id := s.id
	return tea.Tick(s.frameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

func (s *Scrollable) frameInterval() time.Duration {
	return time.Second / time.Duration(max(s.opts.Spring.FPS, 1))
}

func (s *Scrollable) handleKey(msg tea.KeyMsg) {
	vp := s.surface.Viewport()
	extent := scroll.ExtentOf(vp, s.surface.Content())
	vertical := s.opts.Axis.Vertical()

	page, end := vp.Height, extent.MaxTop
	if !vertical {
		page, end = vp.Width, extent.MaxLeft
	}
	along := func(d float64) {
		if vertical {
			s.ScrollUser(0, d)
			return
		}
		s.ScrollUser(d, 0)
	}
	jump := func(v float64) {
		o := s.surface.Offset()
		if vertical {
			s.ScrollUserTo(o.Left, v)
			return
		}
		s.ScrollUserTo(v, o.Top)
	}

	switch {
	case key.Matches(msg, s.keys.Up):
		s.ScrollUser(0, -1)
	case key.Matches(msg, s.keys.Down):
		s.ScrollUser(0, 1)
	case key.Matches(msg, s.keys.Left):
		s.ScrollUser(-1, 0)
	case key.Matches(msg, s.keys.Right):
		s.ScrollUser(1, 0)
	case key.Matches(msg, s.keys.PageUp):
		along(-page)
	case key.Matches(msg, s.keys.PageDown):
		along(page)
	case key.Matches(msg, s.keys.Top):
		jump(0)
	case key.Matches(msg, s.keys.Bottom):
		jump(end)
	}
}

func (s *Scrollable) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || !tea.MouseEvent(msg).IsWheel() {
		return
	}
	d := float64(s.opts.WheelDelta)
	// Horizontal-only views take the plain wheel as horizontal input.
	sideways := msg.Shift || s.opts.Axis == scroll.AxisHorizontal
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if sideways {
			s.ScrollUser(-d, 0)
			return
		}
		s.ScrollUser(0, -d)
	case tea.MouseButtonWheelDown:
		if sideways {
			s.ScrollUser(d, 0)
			return
		}
		s.ScrollUser(0, d)
	case tea.MouseButtonWheelLeft:
		s.ScrollUser(-d, 0)
	case tea.MouseButtonWheelRight:
		s.ScrollUser(d, 0)
	}
}

// View renders the visible window at the most recent animation frame. Frames past either end
// show blank overscroll.
func (s *Scrollable) View() string {
	rendered := s.surface.Rendered()
	extent := scroll.ExtentOf(s.surface.Viewport(), s.surface.Content())

	y := int(math.Round(rendered.Top))
	x := int(math.Round(rendered.Left))
	cy := min(max(y, 0), int(extent.MaxTop))
	cx := min(max(x, 0), int(extent.MaxLeft))

	s.viewport.SetYOffset(cy)
	s.viewport.SetXOffset(cx)
	return shift(s.viewport.View(), x-cx, y-cy, s.viewport.Width, s.viewport.Height)
}

// ScrollPercent reports the vertical position as a fraction in [0,1].
func (s *Scrollable) ScrollPercent() float64 {
	extent := scroll.ExtentOf(s.surface.Viewport(), s.surface.Content())
	if s.opts.Axis == scroll.AxisHorizontal {
		if extent.MaxLeft == 0 {
			return 1
		}
		return s.surface.Offset().Left / extent.MaxLeft
	}
	if extent.MaxTop == 0 {
		return 1
	}
	return s.surface.Offset().Top / extent.MaxTop
}
