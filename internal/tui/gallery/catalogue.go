package gallery

import (
	"fmt"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui/components"
)

var swatchColours = []string{"#60a5fa", "#f472b6", "#4ade80", "#facc15"}

// catalogue renders one of every presentational component, including the animated ones.
type catalogue struct {
	fade     *components.AnimatedOpacity
	swatch   *components.AnimatedColor
	gradient *components.Gradient
	next     int
}

func newCatalogue(spring scroll.SpringConfig) (*catalogue, error) {
	swatch, err := components.NewAnimatedColor("swatch", swatchColours[0], spring)
	if err != nil {
		return nil, fmt.Errorf("build swatch: %w", err)
	}
	gradient, err := components.NewGradient("#1d4ed8", "#f472b6", 32, 2)
	if err != nil {
		return nil, fmt.Errorf("build gradient: %w", err)
	}
	return &catalogue{
		fade:     components.NewAnimatedOpacity("Now you see me", true, spring),
		swatch:   swatch,
		gradient: gradient.WithLabel("gradient"),
		next:     1,
	}, nil
}

// ToggleFade starts fading the text in or out.
func (c *catalogue) ToggleFade() {
	c.fade.Toggle()
}

// Recolour starts a transition to the next swatch colour.
func (c *catalogue) Recolour() error {
	hex := swatchColours[c.next%len(swatchColours)]
	c.next++
	return c.swatch.SetTarget(hex)
}

// Step advances both animations by one frame.
func (c *catalogue) Step() bool {
	faded := c.fade.Step()
	coloured := c.swatch.Step()
	return faded || coloured
}

func (c *catalogue) Animating() bool {
	return c.fade.Animating() || c.swatch.Animating()
}

func (c *catalogue) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

func (c *catalogue) ViewWithContext(ctx components.RenderContext) string {
	chips := components.Row(
		components.NewChip("primary"),
		components.NewChip("success").WithSlot(components.PaletteSuccess),
		components.NewChip("warning").WithSlot(components.PaletteWarning),
		components.NewChip("selected").WithSlot(components.PaletteSecondary).WithSelected(true),
	).WithGap(1)

	card := components.NewCard(
		components.NewText("Cards wrap their body in a rounded border."),
		components.CodeText("components.NewCard(body...)"),
	).WithTitle("Card").WithFooter(components.CaptionText("footer")).WithWidth(44)

	animated := components.Row(c.fade, c.swatch).WithGap(2).WithCrossAxis(components.CrossCenter)

	return components.Column(
		components.TitleText("Component catalogue"),
		components.SubtitleText("o fades the text, c recolours the swatch"),
		components.NewDivider(),
		chips,
		card,
		c.gradient,
		animated,
		components.VerticalSpacer(1),
		components.CaptionText(fmt.Sprintf("theme: %s", ctx.Theme.Name)),
	).WithGap(1).ViewWithContext(ctx)
}
