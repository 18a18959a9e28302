package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
)

const tweenEpsilon = 0.001

// tween drives one scalar toward a target with a harmonica spring, one frame per step.
type tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newTween(cfg scroll.SpringConfig, start float64) tween {
	if cfg.Frequency <= 0 || cfg.Damping <= 0 {
		cfg = scroll.DefaultSpring()
	}
	return tween{
		spring: harmonica.NewSpring(cfg.FrameDuration(), cfg.Frequency, cfg.Damping),
		pos:    start,
		target: start,
	}
}

func (t *tween) step() bool {
	if !t.animating() {
		return false
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < tweenEpsilon && math.Abs(t.vel) < tweenEpsilon {
		t.pos, t.vel = t.target, 0
	}
	return true
}

func (t *tween) animating() bool {
	return t.pos != t.target || t.vel != 0
}

// AnimatedOpacity fades text in and out by blending its colour toward the surface colour.
type AnimatedOpacity struct {
	content string
	tween   tween
}

// NewAnimatedOpacity creates a fully visible or fully hidden fade.
func NewAnimatedOpacity(content string, visible bool, cfg scroll.SpringConfig) *AnimatedOpacity {
	start := 0.0
	if visible {
		start = 1
	}
	return &AnimatedOpacity{content: content, tween: newTween(cfg, start)}
}

// SetOpacity retargets the fade. Values are clamped to [0,1].
func (a *AnimatedOpacity) SetOpacity(v float64) {
	a.tween.target = math.Max(0, math.Min(1, v))
}

// SetVisible targets full or zero opacity.
func (a *AnimatedOpacity) SetVisible(visible bool) {
	if visible {
		a.SetOpacity(1)
		return
	}
	a.SetOpacity(0)
}

// Toggle flips the target between visible and hidden.
func (a *AnimatedOpacity) Toggle() {
	a.SetVisible(a.tween.target < 0.5)
}

// Opacity returns the rendered opacity in [0,1].
func (a *AnimatedOpacity) Opacity() float64 {
	return math.Max(0, math.Min(1, a.tween.pos))
}

// Target returns the opacity being animated toward.
func (a *AnimatedOpacity) Target() float64 { return a.tween.target }

// Step advances one frame and reports whether anything moved.
func (a *AnimatedOpacity) Step() bool { return a.tween.step() }

// Animating reports whether frames are still pending.
func (a *AnimatedOpacity) Animating() bool { return a.tween.animating() }

// View renders with the default context.
func (a *AnimatedOpacity) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the content with its foreground blended toward the surface.
func (a *AnimatedOpacity) ViewWithContext(ctx RenderContext) string {
	opacity := a.Opacity()
	if opacity < tweenEpsilon {
		return blankLike(a.content)
	}

	surface := ctx.Theme.Palette.Surface
	bg, errBg := colorful.Hex(string(surface.Base))
	fg, errFg := colorful.Hex(string(surface.OnBase))
	style := lipgloss.NewStyle()
	if errBg == nil && errFg == nil {
		style = style.Foreground(lipgloss.Color(bg.BlendLuv(fg, opacity).Clamped().Hex()))
	}
	return style.Render(a.content)
}

// AnimatedColor transitions a swatch between colours.
type AnimatedColor struct {
	label string
	from  colorful.Color
	to    colorful.Color
	tween tween
}

// NewAnimatedColor starts settled on hex.
func NewAnimatedColor(label, hex string, cfg scroll.SpringConfig) (*AnimatedColor, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("animated colour %q: %w", hex, err)
	}
	return &AnimatedColor{label: label, from: c, to: c, tween: newTween(cfg, 1)}, nil
}

// SetTarget starts a transition from the current colour to hex.
func (a *AnimatedColor) SetTarget(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("animated colour %q: %w", hex, err)
	}
	a.from, a.to = a.Current(), c
	a.tween.pos, a.tween.vel, a.tween.target = 0, 0, 1
	return nil
}

// Current returns the rendered colour.
func (a *AnimatedColor) Current() colorful.Color {
	switch t := a.tween.pos; {
	case t <= 0:
		return a.from
	case t >= 1:
		return a.to
	default:
		return a.from.BlendLuv(a.to, t).Clamped()
	}
}

// Target returns the colour being animated toward.
func (a *AnimatedColor) Target() colorful.Color { return a.to }

// Step advances one frame and reports whether anything moved.
func (a *AnimatedColor) Step() bool { return a.tween.step() }

// Animating reports whether frames are still pending.
func (a *AnimatedColor) Animating() bool { return a.tween.animating() }

// View renders the label on the current colour.
func (a *AnimatedColor) View() string {
	label := a.label
	if label == "" {
		label = "  "
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(a.Current().Hex())).
		Padding(0, 1).
		Render(label)
}

func blankLike(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(line))
	}
	return strings.Join(lines, "\n")
}
