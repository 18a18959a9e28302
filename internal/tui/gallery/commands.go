package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusCmd expires the status message with sequence seq after d.
func clearStatusCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// animationFrameCmd schedules the next catalogue animation frame.
func animationFrameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AnimationFrameMsg{Time: t}
	})
}

// pageChangedCmd reports a page change recorded during a container update.
func pageChangedCmd(page int) tea.Cmd {
	return func() tea.Msg {
		return PageChangedMsg{Page: page}
	}
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Message: err.Error()}
	}
}
