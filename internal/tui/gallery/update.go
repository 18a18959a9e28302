package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minWidth  = 40
	minHeight = 12

	// headerHeight and footerHeight include the border lines.
	headerHeight = 2
	footerHeight = 3
)

// Update handles incoming messages and routes container traffic to the demos.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}

		bodyHeight := m.bodyHeight()
		for _, t := range m.tabs {
			t.view.SetSize(m.width, bodyHeight)
		}
		return m, nil

	case tea.KeyMsg:
		var model tea.Model
		model, cmd = m.handleKeyPress(msg)
		m = model.(Model)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AnimationFrameMsg:
		m.catalogue.Step()
		m.catalogueView.Refresh()
		if !m.catalogue.Animating() {
			m.animTicking = false
			return m, nil
		}
		return m, animationFrameCmd(m.frameInterval())

	case PageChangedMsg:
		m.statusSeq++
		m.status = fmt.Sprintf("Page %d of %d", msg.Page+1, len(m.pages.Pages()))
		m.log.Debug("page changed", "page", msg.Page)
		return m, clearStatusCmd(m.statusSeq, statusTimeout)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case tea.MouseMsg:
		cmd = m.activeTab().view.Update(msg)

	default:
		cmds := make([]tea.Cmd, 0, len(m.tabs))
		for _, t := range m.tabs {
			cmds = append(cmds, t.view.Update(msg))
		}
		cmd = tea.Batch(cmds...)
	}

	return m, tea.Batch(cmd, m.drainPages())
}

// handleKeyPress handles keyboard input based on the current view mode.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewMode == ViewHelp {
		return m.handleHelpKeys(msg)
	}
	return m.handleGalleryKeys(msg)
}

func (m Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(m.active + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(m.active - 1)
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.pageHandle.NextPage()
		return m, m.pages.Tick()

	case key.Matches(msg, m.keys.PrevPage):
		m.pageHandle.PreviousPage()
		return m, m.pages.Tick()

	case key.Matches(msg, m.keys.Reset):
		active := m.activeTab()
		active.handle.ScrollToTop()
		return m, active.view.Tick()

	case key.Matches(msg, m.keys.Fade):
		m.catalogue.ToggleFade()
		return m.startAnimation()

	case key.Matches(msg, m.keys.Recolour):
		if err := m.catalogue.Recolour(); err != nil {
			return m, errorCmd(err)
		}
		return m.startAnimation()
	}

	return m, m.activeTab().view.Update(msg)
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
		m.viewMode = ViewGallery
	}
	return m, nil
}

func (m *Model) switchTab(i int) {
	n := len(m.tabs)
	m.activeTab().view.Blur()
	m.active = (i%n + n) % n
	m.activeTab().view.Focus()
	m.log.Debug("tab focused", "tab", m.activeTab().title)
}

// startAnimation starts the catalogue frame loop unless it is already running.
func (m Model) startAnimation() (tea.Model, tea.Cmd) {
	if m.animTicking {
		return m, nil
	}
	m.animTicking = true
	return m, animationFrameCmd(m.frameInterval())
}

// drainPages turns page changes recorded by the pages demo into messages.
func (m Model) drainPages() tea.Cmd {
	pages := m.tracker.drain()
	if len(pages) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(pages))
	for i, page := range pages {
		cmds[i] = pageChangedCmd(page)
	}
	return tea.Sequence(cmds...)
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(max(m.opts.Spring.FPS, 1))
}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}
