package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.viewMode == ViewHelp {
		return m.renderHelpView()
	}
	return m.renderGalleryView()
}

func (m Model) renderGalleryView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderFooter(),
	)
}

// renderHeader renders the title and the tab bar.
func (m Model) renderHeader() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			tabs[i] = m.styles.activeTab.Render(t.title)
			continue
		}
		tabs[i] = m.styles.tab.Render(t.title)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.title.Render("widgetry"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
	return m.styles.header.Width(m.width).Render(ansi.Truncate(line, m.width, "…"))
}

// renderBody renders the active demo clipped to the body area.
func (m Model) renderBody() string {
	height := m.bodyHeight()
	lines := strings.Split(m.activeTab().view.View(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the handle readout, the status line and the short help.
func (m Model) renderFooter() string {
	active := m.activeTab()
	pos, extent := active.handle.Position(), active.handle.MaxExtent()
	readout := fmt.Sprintf("offset %.0f,%.0f  extent %.0f,%.0f  page %d",
		pos.Left, pos.Top, extent.MaxLeft, extent.MaxTop, m.pageHandle.CurrentPage()+1)
	if m.animating() {
		readout += " " + m.spinner.View()
	}

	switch {
	case m.showError:
		readout += "  " + m.styles.errorBanner.Render(m.errorMsg)
	case m.status != "":
		readout += "  " + m.styles.status.Render(m.status)
	}

	m.help.Width = m.width
	content := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(readout, m.width, "…"),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	return m.styles.footer.Width(m.width).Render(content)
}

// renderHelpView renders every key binding.
func (m Model) renderHelpView() string {
	m.help.Width = max(m.width-6, 0)
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.helpTitle.Render("Keyboard shortcuts"),
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		"Press ? or esc to return",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.helpBox.Render(body))
}
