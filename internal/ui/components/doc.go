// Package components is the presentational half of widgetry: theme-aware building blocks that
// map a small prop set onto a lipgloss style.
//
// # Styling
//
// Every component embeds BaseComponent and accepts StyleFunc appliers. Appliers read the
// Theme passed through a RenderContext, so one component tree can render under several themes:
//
//	chip := NewChip("beta").WithSlot(PaletteWarning)
//	out := chip.ViewWithContext(DefaultContext().WithTheme(LightTheme()))
//
// View() renders with the dark theme.
//
// # Layout
//
//   - Column / Row: a Flex with gap, main-axis distribution and cross-axis alignment
//   - Box / SizedBox: padding, margin, border and a clipping fixed size
//   - Card: a bordered column with title and footer
//   - Divider, Spacer
//
// # Decoration
//
//   - Chip: semantic label
//   - Gradient: Luv-blended colour block (go-colorful)
//   - AnimatedOpacity, AnimatedColor: spring-driven style transitions (harmonica). Hosts call
//     Step once per frame until Animating reports false.
package components
