package scroll

// Surface is the physical scrollable entity owned by the rendering layer: a viewport of known
// size over content of known size, with a current offset.
//
// Offset reports the authoritative position: for animated surfaces this is the target of the
// last command, not an intermediate frame. Frames are reported through Subscribe.
type Surface interface {
	Viewport() Size
	Content() Size
	Offset() Offset
	// SetOffset applies an already clamped target offset.
	SetOffset(Offset)
	// Subscribe registers fn for every observed position or layout change.
	// The returned function removes the subscription.
	Subscribe(fn func(Event)) (cancel func())
}

type subscriber struct {
	id int
	fn func(Event)
}

// emitter fans events out to subscribers in registration order.
type emitter struct {
	next int
	subs []subscriber
}

func (e *emitter) Subscribe(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}
	e.next++
	id := e.next
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *emitter) emit(ev Event) {
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]subscriber(nil), e.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}

// StaticSurface applies offsets immediately. It is the surface used by headless hosts and by
// renderers that do not animate.
type StaticSurface struct {
	emitter
	viewport Size
	content  Size
	offset   Offset
}

// NewStaticSurface creates a surface at offset zero.
func NewStaticSurface(viewport, content Size) *StaticSurface {
	return &StaticSurface{viewport: viewport, content: content}
}

// Viewport returns the visible size.
func (s *StaticSurface) Viewport() Size { return s.viewport }

// Content returns the laid-out content size.
func (s *StaticSurface) Content() Size { return s.content }

// Offset returns the current offset.
func (s *StaticSurface) Offset() Offset { return s.offset }

// SetOffset moves the surface and reports the change.
func (s *StaticSurface) SetOffset(o Offset) {
	if o == s.offset {
		return
	}
	s.offset = o
	s.emit(s.event(false))
}

// UserScroll moves the surface as a result of direct input (wheel, drag, keys).
func (s *StaticSurface) UserScroll(o Offset) {
	s.offset = ExtentOf(s.viewport, s.content).Clamp(o)
	s.emit(s.event(true))
}

// Resize updates the layout metrics, re-clamps the offset and reports the new layout.
func (s *StaticSurface) Resize(viewport, content Size) {
	s.viewport = viewport
	s.content = content
	s.offset = ExtentOf(viewport, content).Clamp(s.offset)
	ev := s.event(false)
	ev.Layout = true
	s.emit(ev)
}

func (s *StaticSurface) event(user bool) Event {
	return Event{
		Offset:   s.offset,
		Extent:   ExtentOf(s.viewport, s.content),
		Viewport: s.viewport,
		User:     user,
	}
}
