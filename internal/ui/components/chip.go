package components

// Chip is a compact label with a semantic colour, used for tags and filters.
type Chip struct {
	BaseComponent
	label    string
	slot     PaletteSlot
	selected bool
}

// NewChip creates a neutral chip.
func NewChip(label string) *Chip {
	return &Chip{BaseComponent: NewBaseComponent(), label: label, slot: PaletteNeutral}
}

// WithSlot colours the chip from slot.
func (c *Chip) WithSlot(slot PaletteSlot) *Chip {
	if slot != nil {
		c.slot = slot
	}
	return c
}

func (c *Chip) WithSelected(selected bool) *Chip {
	c.selected = selected
	return c
}

func (c *Chip) Label() string { return c.label }

func (c *Chip) Selected() bool { return c.selected }

// View renders with the default context.
func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chip against ctx. A selected chip is prefixed with a check mark.
func (c *Chip) ViewWithContext(ctx RenderContext) string {
	style := Background(c.slot)(c.ComputeStyle(ctx.Theme), ctx.Theme).Padding(0, 1)
	label := c.label
	if c.selected {
		style = style.Bold(true)
		label = "✓ " + label
	}
	return style.Render(label)
}
