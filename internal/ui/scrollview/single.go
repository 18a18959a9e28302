package scrollview

import (
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// SingleChildScrollView scrolls one arbitrarily large child. Vertical views wrap the child to
// the viewport width.
type SingleChildScrollView struct {
	*Scrollable
	child ui.Renderable
}

// NewSingleChildScrollView creates a view over child.
func NewSingleChildScrollView(opts Options, child ui.Renderable) *SingleChildScrollView {
	v := &SingleChildScrollView{Scrollable: New(opts), child: child}
	v.layout()
	return v
}

// Child returns the scrolled child.
func (v *SingleChildScrollView) Child() ui.Renderable { return v.child }

// SetChild replaces the child.
func (v *SingleChildScrollView) SetChild(child ui.Renderable) {
	v.child = child
	v.layout()
}

// Refresh re-renders the child, for children whose output changes over time.
func (v *SingleChildScrollView) Refresh() {
	v.layout()
}

// SetSize resizes the viewport.
func (v *SingleChildScrollView) SetSize(width, height int) {
	v.Scrollable.SetSize(width, height)
	v.layout()
}

func (v *SingleChildScrollView) layout() {
	ctx := components.DefaultContext().WithTheme(v.Theme())
	if v.Axis() == scroll.AxisVertical {
		ctx = ctx.WithMaxWidth(int(v.Size().Width))
	}
	v.SetContent(components.Render(v.child, ctx))
}
