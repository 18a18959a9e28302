package paging

import "github.com/alexisbeaulieu97/widgetry/internal/scroll"

// Handle is a caller-owned slot a paged container publishes its navigator into.
// Calls through an empty handle are no-ops and CurrentPage reports NoPage.
type Handle struct {
	nav *Navigator
}

// NewHandle returns an empty handle.
func NewHandle() *Handle {
	return &Handle{}
}

// Attach publishes n. It is called by hosts.
func (h *Handle) Attach(n *Navigator) {
	if h == nil {
		return
	}
	h.nav = n
}

// Detach withdraws the published navigator if it is still n.
func (h *Handle) Detach(n *Navigator) {
	if h == nil || h.nav != n {
		return
	}
	h.nav = nil
}

// Attached reports whether a navigator is published.
func (h *Handle) Attached() bool {
	return h != nil && h.nav != nil
}

// Navigator returns the published navigator or nil. A nil *Navigator is safe to call.
func (h *Handle) Navigator() *Navigator {
	if h == nil {
		return nil
	}
	return h.nav
}

// Scroller exposes the controller under the navigator for position queries.
func (h *Handle) Scroller() *scroll.Controller {
	return h.Navigator().Controller()
}

func (h *Handle) SetPage(i int)    { h.Navigator().SetPage(i) }
func (h *Handle) NextPage()        { h.Navigator().NextPage() }
func (h *Handle) PreviousPage()    { h.Navigator().PreviousPage() }
func (h *Handle) CurrentPage() int { return h.Navigator().CurrentPage() }
