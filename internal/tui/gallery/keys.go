package gallery

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/widgetry/internal/ui/scrollview"
)

// KeyMap holds the gallery-level bindings. Scroll keys belong to the active demo.
type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Reset     key.Binding
	Fade      key.Binding
	Recolour  key.Binding
	Help      key.Binding
	Quit      key.Binding
	Scrolling scrollview.KeyMap
}

// DefaultKeyMap returns the gallery bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next demo"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous demo"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page (handle)"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous page (handle)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scroll to top (handle)"),
		),
		Fade: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "fade"),
		),
		Recolour: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recolour"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Scrolling: scrollview.DefaultKeyMap(),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Reset, k.Help, k.Quit}
}

// FullHelp returns every binding grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
		{k.NextPage, k.PrevPage, k.Reset, k.Fade, k.Recolour},
	}, k.Scrolling.FullHelp()...)
}
