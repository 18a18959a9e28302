package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

// styles holds the gallery chrome styles derived from a theme.
type styles struct {
	title       lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	header      lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	errorBanner lipgloss.Style
	helpBox     lipgloss.Style
	helpTitle   lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	p := theme.Palette

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			PaddingRight(2),
		tab: lipgloss.NewStyle().
			Foreground(p.Neutral.OnBase).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Bold(true).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Neutral.Base),
		footer: lipgloss.NewStyle().
			Foreground(p.Neutral.OnBase).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Neutral.Base),
		status: lipgloss.NewStyle().
			Foreground(p.Secondary.Base),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.Danger.OnBase).
			Background(p.Danger.Base).
			Bold(true).
			Padding(0, 1),
		helpBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary.Base).
			Padding(1, 2),
		helpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			MarginBottom(1),
		spinner: lipgloss.NewStyle().
			Foreground(p.Primary.Base),
	}
}
