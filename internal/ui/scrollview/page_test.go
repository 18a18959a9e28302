package scrollview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/paging"
	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
)

type pageRecorder struct {
	changes []int
}

func (r *pageRecorder) record(i int) { r.changes = append(r.changes, i) }

func newTestPageView(t *testing.T, opts PageOptions) (*PageView, *pageRecorder) {
	t.Helper()
	rec := &pageRecorder{}
	opts.Width, opts.Height = 10, max(opts.Height, 2)
	opts.Axis = scroll.AxisHorizontal
	opts.OnPageChanged = rec.record
	p := NewPageView(opts, statics("one", "two", "three")...)
	return p, rec
}

func settle(t *testing.T, p *PageView, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 1000; i++ {
		cmd = p.Update(FrameMsg{ID: p.ID()})
	}
	require.False(t, p.Surface().Animating())
}

func TestPageView_MountPlacesInitialPageSilently(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{Initial: 2})
	p.Mount()

	assert.Equal(t, 2, p.Navigator().CurrentPage())
	assert.Equal(t, scroll.Offset{Left: 20}, p.Controller().Position())
	assert.Equal(t, scroll.Offset{Left: 20}, p.Surface().Rendered())
	assert.Empty(t, rec.changes)
	assert.Equal(t, "three", viewLines(p.View())[0])
}

func TestPageView_KeyCommandsNotifyOnce(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{})
	p.Mount()
	p.Focus()

	cmd := p.Update(keyMsg("l"))
	require.NotNil(t, cmd, "page commands animate")
	assert.Equal(t, []int{1}, rec.changes)
	assert.Equal(t, 10.0, p.Controller().Position().Left)

	settle(t, p, cmd)
	assert.Equal(t, []int{1}, rec.changes, "animation frames do not re-notify")
	assert.Equal(t, 1, p.Navigator().CurrentPage())

	settle(t, p, p.Update(keyMsg("G")))
	settle(t, p, p.Update(keyMsg("l")))
	settle(t, p, p.Update(keyMsg("g")))
	assert.Equal(t, []int{1, 2, 0}, rec.changes)

	assert.Nil(t, p.Update(keyMsg("h")), "previous page at the first page is a no-op")
	assert.Equal(t, []int{1, 2, 0}, rec.changes)
}

func TestPageView_PageHandle(t *testing.T) {
	t.Parallel()

	h := paging.NewHandle()
	p, rec := newTestPageView(t, PageOptions{PageHandle: h})
	assert.Equal(t, paging.NoPage, h.CurrentPage())

	p.Mount()
	require.True(t, h.Attached())
	h.SetPage(5)
	assert.Equal(t, 2, h.CurrentPage())
	assert.Equal(t, []int{2}, rec.changes)
	assert.Equal(t, 20.0, h.Scroller().Position().Left)

	other := paging.NewHandle()
	p.SetPageHandle(other)
	assert.False(t, h.Attached())
	h.PreviousPage()
	assert.Equal(t, []int{2}, rec.changes)
	other.PreviousPage()
	assert.Equal(t, []int{2, 1}, rec.changes)

	p.Unmount()
	assert.False(t, other.Attached())
	assert.Equal(t, paging.NoPage, other.CurrentPage())
}

func TestPageView_WheelSnapsToNearestPage(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{Options: Options{Touch: true, WheelDelta: 6}})
	p.Mount()

	cmd := p.Update(wheel(tea.MouseButtonWheelDown))
	require.NotNil(t, cmd, "a snap is scheduled")
	assert.Equal(t, 6.0, p.Controller().Position().Left)
	assert.Equal(t, []int{1}, rec.changes)

	assert.Nil(t, p.Update(snapMsg{id: p.ID(), seq: p.snapSeq - 1}), "stale snaps are ignored")
	assert.Nil(t, p.Update(snapMsg{id: "other", seq: p.snapSeq}))

	cmd = p.Update(snapMsg{id: p.ID(), seq: p.snapSeq})
	assert.Equal(t, 10.0, p.Controller().Position().Left)
	settle(t, p, cmd)
	assert.Equal(t, []int{1}, rec.changes)
}

func TestPageView_ResizeKeepsPage(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{Initial: 1})
	p.Mount()

	p.SetSize(20, 2)
	assert.Equal(t, scroll.Offset{Left: 20}, p.Controller().Position())
	assert.Equal(t, scroll.Offset{Left: 20}, p.Surface().Rendered())
	assert.Equal(t, 1, p.Navigator().CurrentPage())
	assert.Empty(t, rec.changes)
}

func TestPageView_SetPagesClampsIndex(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{Initial: 2})
	p.Mount()

	p.SetPages(statics("one", "two")...)
	assert.Equal(t, 1, p.Navigator().CurrentPage())
	assert.Equal(t, []int{1}, rec.changes)

	p.SetPages()
	assert.Equal(t, paging.NoPage, p.Navigator().CurrentPage())
	p.Navigator().NextPage()
	assert.Equal(t, []int{1}, rec.changes)
}

func TestPageView_Indicator(t *testing.T) {
	t.Parallel()

	p, _ := newTestPageView(t, PageOptions{Options: Options{Height: 3}, Indicator: true})
	p.Mount()

	assert.Equal(t, 2.0, p.Size().Height, "the indicator takes one line")
	lines := viewLines(p.View())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "•••")
}

func TestPageView_BouncyAllowsOverscroll(t *testing.T) {
	t.Parallel()

	p, rec := newTestPageView(t, PageOptions{Physics: paging.PhysicsBouncy})
	p.Mount()
	p.Navigator().SetPage(2)

	peak := 0.0
	for i := 0; i < 1000 && p.Surface().Animating(); i++ {
		p.Update(FrameMsg{ID: p.ID()})
		peak = max(peak, p.Surface().Rendered().Left)
	}
	assert.Greater(t, peak, 20.0)
	assert.Equal(t, []int{2}, rec.changes)
	assert.Equal(t, 2, p.Navigator().CurrentPage())
}
