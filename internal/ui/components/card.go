package components

import (
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
)

// Card is a bordered column with an optional title and footer.
type Card struct {
	BaseComponent
	title    string
	body     []ui.Renderable
	footer   ui.Renderable
	width    int
	selected bool
}

// NewCard creates a card holding body.
func NewCard(body ...ui.Renderable) *Card {
	card := &Card{BaseComponent: NewBaseComponent(), body: body}
	card.SetAppliers(CardStyle()...)
	return card
}

func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the outer width of the card.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithSelected highlights the card border.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// View renders with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card against ctx.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.selected {
		style = style.BorderForeground(ctx.Theme.Palette.Primary.Contrast)
	}

	inner := ctx
	if c.width > 0 {
		style = style.Width(c.width - 2)
		inner = ctx.WithMaxWidth(max(c.width-2-style.GetHorizontalPadding(), 0))
	}

	column := Column()
	if c.title != "" {
		column.Add(TitleText(c.title))
	}
	column.Add(c.body...)
	if c.footer != nil {
		column.Add(NewDivider().WithLength(max(inner.MaxWidth, 1)), c.footer)
	}

	return style.Render(column.ViewWithContext(inner))
}
