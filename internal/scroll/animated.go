package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig parameterizes the spring that drives animated surfaces. The values are handed
// to harmonica unchanged; the controller never depends on them.
type SpringConfig struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultSpring is a critically damped spring at 60 frames per second.
func DefaultSpring() SpringConfig {
	return SpringConfig{FPS: 60, Frequency: 7.0, Damping: 1.0}
}

// BouncySpring is an under-damped spring that visibly overshoots its target.
func BouncySpring() SpringConfig {
	return SpringConfig{FPS: 60, Frequency: 7.0, Damping: 0.45}
}

// FrameDuration returns the wall-clock time of one frame in seconds.
func (c SpringConfig) FrameDuration() float64 {
	if c.FPS <= 0 {
		return harmonica.FPS(60)
	}
	return harmonica.FPS(c.FPS)
}

// settleEpsilon is the distance and speed, in cells, under which a frame snaps onto the target.
const settleEpsilon = 0.01

// AnimatedSurface keeps the authoritative target offset separately from the rendered offset.
// SetOffset only retargets; Step advances the rendered offset one frame along a spring and
// reports the frame as an Event.
type AnimatedSurface struct {
	emitter
	viewport Size
	content  Size

	target   Offset
	rendered Offset
	velocity Offset

	spring     harmonica.Spring
	config     SpringConfig
	overscroll bool
}

// NewAnimatedSurface creates a surface resting at offset zero.
func NewAnimatedSurface(viewport, content Size, cfg SpringConfig) *AnimatedSurface {
	s := &AnimatedSurface{viewport: viewport, content: content}
	s.Configure(cfg)
	return s
}

// Configure replaces the spring. In-flight animations continue from their current velocity.
func (s *AnimatedSurface) Configure(cfg SpringConfig) {
	if cfg.Frequency <= 0 {
		cfg.Frequency = DefaultSpring().Frequency
	}
	if cfg.Damping <= 0 {
		cfg.Damping = DefaultSpring().Damping
	}
	s.config = cfg
	s.spring = harmonica.NewSpring(cfg.FrameDuration(), cfg.Frequency, cfg.Damping)
}

// Config returns the active spring configuration.
func (s *AnimatedSurface) Config() SpringConfig { return s.config }

// SetOverscroll allows rendered frames to leave [0, extent] while the spring overshoots.
// The target itself is always inside the extent.
func (s *AnimatedSurface) SetOverscroll(enabled bool) { s.overscroll = enabled }

// Viewport returns the visible size.
func (s *AnimatedSurface) Viewport() Size { return s.viewport }

// Content returns the laid-out content size.
func (s *AnimatedSurface) Content() Size { return s.content }

// Offset returns the target of the last command.
func (s *AnimatedSurface) Offset() Offset { return s.target }

// Rendered returns the offset of the most recent frame.
func (s *AnimatedSurface) Rendered() Offset { return s.rendered }

// SetOffset retargets the animation. Issuing a new target while animating keeps the current
// velocity, so the last caller wins without a visual jump.
func (s *AnimatedSurface) SetOffset(o Offset) {
	s.target = o
}

// Animating reports whether more frames are pending.
func (s *AnimatedSurface) Animating() bool {
	return !near(s.rendered.Top, s.target.Top) || !near(s.rendered.Left, s.target.Left) ||
		!near(s.velocity.Top, 0) || !near(s.velocity.Left, 0)
}

// Step advances one frame. It returns false, without reporting, when the surface is at rest.
func (s *AnimatedSurface) Step() (Event, bool) {
	if !s.Animating() {
		return Event{}, false
	}

	s.rendered.Top, s.velocity.Top = s.spring.Update(s.rendered.Top, s.velocity.Top, s.target.Top)
	s.rendered.Left, s.velocity.Left = s.spring.Update(s.rendered.Left, s.velocity.Left, s.target.Left)

	if !s.overscroll {
		extent := ExtentOf(s.viewport, s.content)
		clamped := extent.Clamp(s.rendered)
		if clamped.Top != s.rendered.Top {
			s.velocity.Top = 0
		}
		if clamped.Left != s.rendered.Left {
			s.velocity.Left = 0
		}
		s.rendered = clamped
	}

	if near(s.rendered.Top, s.target.Top) && near(s.velocity.Top, 0) {
		s.rendered.Top, s.velocity.Top = s.target.Top, 0
	}
	if near(s.rendered.Left, s.target.Left) && near(s.velocity.Left, 0) {
		s.rendered.Left, s.velocity.Left = s.target.Left, 0
	}

	ev := s.event(false)
	s.emit(ev)
	return ev, true
}

// Settle runs frames until the surface is at rest or maxFrames have elapsed and returns the
// number of frames produced.
func (s *AnimatedSurface) Settle(maxFrames int) int {
	frames := 0
	for frames < maxFrames {
		if _, ok := s.Step(); !ok {
			break
		}
		frames++
	}
	return frames
}

// Finish jumps the rendered offset onto the target and reports the final frame.
func (s *AnimatedSurface) Finish() {
	if !s.Animating() {
		return
	}
	s.rendered, s.velocity = s.target, Offset{}
	s.emit(s.event(false))
}

// UserScroll moves the surface directly, cancelling any animation.
func (s *AnimatedSurface) UserScroll(o Offset) {
	o = ExtentOf(s.viewport, s.content).Clamp(o)
	s.target, s.rendered, s.velocity = o, o, Offset{}
	s.emit(s.event(true))
}

// Resize updates layout metrics and re-clamps both the target and the rendered offset.
func (s *AnimatedSurface) Resize(viewport, content Size) {
	s.viewport = viewport
	s.content = content
	extent := ExtentOf(viewport, content)
	s.target = extent.Clamp(s.target)
	if !s.overscroll || !s.Animating() {
		s.rendered = extent.Clamp(s.rendered)
	}
	ev := s.event(false)
	ev.Layout = true
	s.emit(ev)
}

func (s *AnimatedSurface) event(user bool) Event {
	return Event{
		Offset:   s.rendered,
		Extent:   ExtentOf(s.viewport, s.content),
		Viewport: s.viewport,
		User:     user,
		Moving:   s.Animating(),
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < settleEpsilon
}
