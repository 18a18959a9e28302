package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by ThemeByName and the `theme:` config key.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ColourSet is a semantic colour combination:
//
//   - Base: the background or brand colour
//   - OnBase: text that reads on Base
//   - Muted: a quieter variant of Base
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette groups the semantic colour slots.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale holds the text presets of a theme.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme is an immutable styling theme. Modifications return copies.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
}

// DarkTheme is the default theme.
func DarkTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8", Contrast: "#facc15"},
		Secondary: ColourSet{Base: "#c084fc", OnBase: "#1f2937", Muted: "#6b21a8", Contrast: "#f472b6"},
		Surface:   ColourSet{Base: "#0b1120", OnBase: "#e5e7eb", Muted: "#1f2937", Contrast: "#60a5fa"},
		Success:   ColourSet{Base: "#4ade80", OnBase: "#022c22", Muted: "#15803d", Contrast: "#f8fafc"},
		Warning:   ColourSet{Base: "#facc15", OnBase: "#422006", Muted: "#a16207", Contrast: "#111827"},
		Danger:    ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c", Contrast: "#f8fafc"},
		Neutral:   ColourSet{Base: "#334155", OnBase: "#cbd5e1", Muted: "#1f2937", Contrast: "#f8fafc"},
	}
	return Theme{Name: ThemeDark, Palette: palette, Typography: typographyFor(palette)}
}

// LightTheme mirrors DarkTheme for light terminals.
func LightTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: "#3b82f6", OnBase: "#f8fafc", Muted: "#2563eb", Contrast: "#ca8a04"},
		Secondary: ColourSet{Base: "#a855f7", OnBase: "#f8fafc", Muted: "#7c3aed", Contrast: "#db2777"},
		Surface:   ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0", Contrast: "#3b82f6"},
		Success:   ColourSet{Base: "#22c55e", OnBase: "#052e16", Muted: "#16a34a", Contrast: "#f8fafc"},
		Warning:   ColourSet{Base: "#eab308", OnBase: "#422006", Muted: "#ca8a04", Contrast: "#111827"},
		Danger:    ColourSet{Base: "#ef4444", OnBase: "#7f1d1d", Muted: "#dc2626", Contrast: "#f8fafc"},
		Neutral:   ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#475569", Contrast: "#f8fafc"},
	}
	return Theme{Name: ThemeLight, Palette: palette, Typography: typographyFor(palette)}
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case ThemeDark, "":
		return DarkTheme(), true
	case ThemeLight:
		return LightTheme(), true
	default:
		return DarkTheme(), false
	}
}

func typographyFor(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Secondary.Muted).Faint(true),
		Caption:  body.Foreground(p.Neutral.OnBase).Faint(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// BorderFor returns the lipgloss border drawn for variant.
func BorderFor(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Background applies a semantic background and the matching foreground.
//
//	chip := NewChip("beta").WithAppliers(Background(PaletteWarning))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic text colour and leaves the background alone.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border draws variant in the theme's muted primary colour.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.UnsetBorderStyle()
		}
		return base.Border(BorderFor(variant)).BorderForeground(theme.Palette.Primary.Muted)
	}
}

// Padding sets inner spacing.
func Padding(insets EdgeInsets) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(insets.sides())
	}
}

// Margin sets outer spacing.
func Margin(insets EdgeInsets) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Margin(insets.sides())
	}
}

// Typography layers a typography preset under the current style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardStyle is the applier bundle used by Card.
func CardStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		Padding(Symmetric(0, 1)),
	}
}
