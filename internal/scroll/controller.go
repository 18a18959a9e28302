package scroll

// Scroller is the imperative scroll surface exposed to callers of a scroll container.
type Scroller interface {
	ScrollToTop()
	ScrollToBottom()
	ScrollBy(dx, dy float64)
	ScrollTo(x, y float64)
	Position() Offset
	MaxExtent() Extent
}

// Binding is the rebindable reference from a controller to its surface. The host mounts the
// surface on it, swaps it when the rendering layer replaces the surface, and unmounts it on
// teardown. Controllers read through the binding on every call, so they never need to be
// re-acquired.
type Binding struct {
	surface Surface
}

// NewBinding returns an unmounted binding.
func NewBinding() *Binding {
	return &Binding{}
}

// Mount binds s. Mounting a new surface replaces the previous one.
func (b *Binding) Mount(s Surface) {
	b.surface = s
}

// Unmount clears the binding. Later controller calls become no-ops.
func (b *Binding) Unmount() {
	b.surface = nil
}

// Surface returns the bound surface or nil.
func (b *Binding) Surface() Surface {
	if b == nil {
		return nil
	}
	return b.surface
}

// Mounted reports whether a surface is bound.
func (b *Binding) Mounted() bool {
	return b.Surface() != nil
}

// Controller gives uniform imperative access to a surface's position and bounds.
// It holds no position state of its own; every call reads or writes the live surface.
// All methods are safe on a nil Controller and on an unmounted binding.
type Controller struct {
	binding *Binding
	axis    Axis
}

var _ Scroller = (*Controller)(nil)

// NewController creates a controller reading through binding. Axis decides which component
// ScrollToTop and ScrollToBottom move.
func NewController(binding *Binding, axis Axis) *Controller {
	return &Controller{binding: binding, axis: axis}
}

// Axis returns the scrolling axis.
func (c *Controller) Axis() Axis {
	if c == nil {
		return AxisVertical
	}
	return c.axis
}

// Mounted reports whether the controller currently reaches a surface.
func (c *Controller) Mounted() bool {
	return c.surface() != nil
}

// ScrollToTop moves both axes to zero, whatever the scrolling axis.
func (c *Controller) ScrollToTop() {
	s := c.surface()
	if s == nil {
		return
	}
	c.apply(s, Offset{})
}

// ScrollToBottom moves the scrolling axis to its maximum. The cross axis is kept.
func (c *Controller) ScrollToBottom() {
	s := c.surface()
	if s == nil {
		return
	}
	extent := ExtentOf(s.Viewport(), s.Content())
	target := s.Offset()
	if c.axis.Vertical() {
		target.Top = extent.MaxTop
	}
	if c.axis.Horizontal() {
		target.Left = extent.MaxLeft
	}
	c.apply(s, target)
}

// ScrollBy applies a relative delta, dx horizontally and dy vertically, then clamps.
func (c *Controller) ScrollBy(dx, dy float64) {
	s := c.surface()
	if s == nil {
		return
	}
	current := s.Offset()
	c.apply(s, Offset{Top: current.Top + sanitize(dy), Left: current.Left + sanitize(dx)})
}

// ScrollTo sets an absolute position, x horizontally and y vertically, then clamps.
func (c *Controller) ScrollTo(x, y float64) {
	s := c.surface()
	if s == nil {
		return
	}
	c.apply(s, Offset{Top: y, Left: x})
}

// ScrollAlong sets the position on the primary axis and keeps the cross axis.
func (c *Controller) ScrollAlong(v float64) {
	s := c.surface()
	if s == nil {
		return
	}
	axis := c.axis
	if axis == AxisBoth {
		axis = AxisVertical
	}
	c.apply(s, s.Offset().WithAlong(axis, v))
}

// Position returns the live offset of the surface, or zero when unmounted.
func (c *Controller) Position() Offset {
	s := c.surface()
	if s == nil {
		return Offset{}
	}
	return s.Offset()
}

// MaxExtent recomputes the extent from the current viewport and content sizes.
func (c *Controller) MaxExtent() Extent {
	s := c.surface()
	if s == nil {
		return Extent{}
	}
	return ExtentOf(s.Viewport(), s.Content())
}

// Viewport returns the live viewport size, or zero when unmounted.
func (c *Controller) Viewport() Size {
	s := c.surface()
	if s == nil {
		return Size{}
	}
	return s.Viewport()
}

func (c *Controller) apply(s Surface, target Offset) {
	target = ExtentOf(s.Viewport(), s.Content()).Clamp(target)
	if target == s.Offset() {
		return
	}
	s.SetOffset(target)
}

func (c *Controller) surface() Surface {
	if c == nil {
		return nil
	}
	return c.binding.Surface()
}
