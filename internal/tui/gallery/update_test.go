package gallery

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/scrollview"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func sized(t *testing.T) Model {
	t.Helper()
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := sized(t)

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.False(t, m.showError)

	list := m.Handle(1)
	assert.Greater(t, list.MaxExtent().MaxTop, 0.0)
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 30, Height: 8})
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_SpinnerTickMsg(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, spinner.TickMsg{})
	assert.NotNil(t, cmd)
}

func TestUpdate_TabSwitching(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.ActiveTab())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.tabs)-1, m.ActiveTab())
}

func TestUpdate_ScrollKeysReachOnlyTheActiveDemo(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))

	assert.Equal(t, scroll.Offset{Top: 2}, m.Handle(1).Position())
	assert.Equal(t, scroll.Offset{}, m.Handle(4).Position())
}

func TestUpdate_ResetScrollsThroughTheHandle(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	list, ok := m.tabs[1].view.(*scrollview.ListView)
	require.True(t, ok)
	m.Handle(1).ScrollTo(0, 10)
	list.Surface().Finish()
	require.Equal(t, 10.0, list.Surface().Rendered().Top)

	m, cmd := update(t, m, runes("r"))
	assert.Equal(t, scroll.Offset{}, m.Handle(1).Position())
	assert.NotNil(t, cmd, "animating back to the top needs frames")
}

func TestUpdate_PageKeysDriveThePageHandle(t *testing.T) {
	m := sized(t)

	m, cmd := update(t, m, runes("]"))
	assert.Equal(t, 1, m.PageHandle().CurrentPage())
	assert.NotNil(t, cmd)
	assert.Equal(t, []int(nil), m.tracker.pending, "notifications are drained into commands")

	m, _ = update(t, m, runes("]"))
	m, _ = update(t, m, runes("["))
	assert.Equal(t, 1, m.PageHandle().CurrentPage())

	m, _ = update(t, m, runes("["))
	m, _ = update(t, m, runes("["))
	assert.Equal(t, 0, m.PageHandle().CurrentPage(), "no wraparound")
}

func TestUpdate_PageChangedStatus(t *testing.T) {
	m := sized(t)

	m, cmd := update(t, m, PageChangedMsg{Page: 2})
	assert.Equal(t, "Page 3 of 5", m.Status())
	assert.NotNil(t, cmd)

	stale := m.statusSeq
	m, _ = update(t, m, PageChangedMsg{Page: 3})
	m, _ = update(t, m, ClearStatusMsg{Seq: stale})
	assert.Equal(t, "Page 4 of 5", m.Status(), "an older clear must not remove a newer status")

	m, _ = update(t, m, ClearStatusMsg{Seq: m.statusSeq})
	assert.Empty(t, m.Status())
}

func TestUpdate_FadeRunsAnimationFrames(t *testing.T) {
	m := sized(t)

	m, cmd := update(t, m, runes("o"))
	require.NotNil(t, cmd)
	assert.True(t, m.animTicking)
	assert.True(t, m.animating())

	m, _ = update(t, m, runes("c"))
	assert.True(t, m.animTicking)

	for i := 0; i < 1000 && m.animTicking; i++ {
		m, _ = update(t, m, AnimationFrameMsg{})
	}
	assert.False(t, m.animTicking)
	assert.False(t, m.catalogue.Animating())
}

func TestUpdate_ErrorMsg(t *testing.T) {
	m := sized(t)
	m, _ = update(t, m, ErrorMsg{Message: "boom"})
	assert.True(t, m.showError)
	assert.Contains(t, ansi.Strip(m.View()), "boom")
}

func TestUpdate_HelpMode(t *testing.T) {
	m := sized(t)

	m, _ = update(t, m, runes("?"))
	assert.Equal(t, ViewHelp, m.viewMode)
	assert.Contains(t, ansi.Strip(m.View()), "Keyboard shortcuts")

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, ViewHelp, m.viewMode)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewGallery, m.viewMode)
}

func TestHandleKeyPress_Quit(t *testing.T) {
	m := sized(t)

	_, cmd := m.handleKeyPress(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Handle(0).Attached())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 24)
	assert.Contains(t, lines[0], "widgetry")
	assert.Contains(t, lines[0], "Catalogue")
	assert.Contains(t, view, "Component catalogue")
	assert.Contains(t, view, "page 1")
}
