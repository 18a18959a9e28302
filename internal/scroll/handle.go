package scroll

// Handle is a caller-owned slot a scroll container publishes its controller into.
// The container attaches on mount and detaches on unmount or when it is handed another
// handle; callers keep using the same Handle throughout.
type Handle struct {
	ctrl *Controller
}

// NewHandle returns an empty handle. All calls through an empty handle are no-ops.
func NewHandle() *Handle {
	return &Handle{}
}

// Attach publishes c. It is called by hosts, not by callers.
func (h *Handle) Attach(c *Controller) {
	if h == nil {
		return
	}
	h.ctrl = c
}

// Detach withdraws the published controller if it is still c.
func (h *Handle) Detach(c *Controller) {
	if h == nil || h.ctrl != c {
		return
	}
	h.ctrl = nil
}

// Attached reports whether a host has published a controller.
func (h *Handle) Attached() bool {
	return h != nil && h.ctrl != nil
}

// Controller returns the published controller, or nil. A nil *Controller is safe to call.
func (h *Handle) Controller() *Controller {
	if h == nil {
		return nil
	}
	return h.ctrl
}

func (h *Handle) ScrollToTop()            { h.Controller().ScrollToTop() }
func (h *Handle) ScrollToBottom()         { h.Controller().ScrollToBottom() }
func (h *Handle) ScrollBy(dx, dy float64) { h.Controller().ScrollBy(dx, dy) }
func (h *Handle) ScrollTo(x, y float64)   { h.Controller().ScrollTo(x, y) }
func (h *Handle) Position() Offset        { return h.Controller().Position() }
func (h *Handle) MaxExtent() Extent       { return h.Controller().MaxExtent() }
