package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetry/internal/scroll"
	"github.com/alexisbeaulieu97/widgetry/internal/ui"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRowJoinsWithGap(t *testing.T) {
	t.Parallel()

	view := Row(ui.Static("ab"), ui.Static("cd")).WithGap(2).View()
	assert.Equal(t, "ab  cd", plain(view))
}

func TestColumnGapAddsBlankLines(t *testing.T) {
	t.Parallel()

	view := Column(ui.Static("a"), ui.Static("b")).WithGap(1).View()
	assert.Equal(t, 3, lipgloss.Height(view))
}

func TestFlexMainAxisDistribution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		align MainAxisAlignment
		want  string
	}{
		{name: "space between", align: MainSpaceBetween, want: "ab  cd  ef"},
		{name: "start", align: MainStart, want: "abcdef    "},
		{name: "end", align: MainEnd, want: "    abcdef"},
		{name: "center", align: MainCenter, want: "  abcdef  "},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view := Row(ui.Static("ab"), ui.Static("cd"), ui.Static("ef")).
				WithExtent(10).
				WithMainAxis(tc.align).
				View()
			assert.Equal(t, tc.want, plain(view))
		})
	}
}

func TestFlexSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	view := Row(ui.Static("a"), nil, ui.Static(""), ui.Static("b")).WithGap(1).View()
	assert.Equal(t, "a b", plain(view))
}

func TestSizedBoxClipsToSize(t *testing.T) {
	t.Parallel()

	view := SizedBox(5, 2, ui.Static("hello world again and again")).View()
	assert.Equal(t, 5, lipgloss.Width(view))
	assert.Equal(t, 2, lipgloss.Height(view))
}

func TestBoxPaddingAndBorder(t *testing.T) {
	t.Parallel()

	view := NewBox(ui.Static("hi")).
		WithPadding(All(1)).
		WithBorder(BorderVariantRounded).
		View()
	assert.Equal(t, 6, lipgloss.Width(view))
	assert.Equal(t, 5, lipgloss.Height(view))
	assert.True(t, strings.HasPrefix(plain(view), "╭"))
}

func TestCardRendersTitleAndFooter(t *testing.T) {
	t.Parallel()

	view := NewCard(ui.Static("body")).
		WithTitle("Stats").
		WithFooter(CaptionText("footer")).
		WithWidth(20).
		View()

	text := plain(view)
	assert.Equal(t, 20, lipgloss.Width(view))
	assert.Contains(t, text, "Stats")
	assert.Contains(t, text, "body")
	assert.Contains(t, text, "footer")
	assert.Contains(t, text, "──")
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "─────", plain(NewDivider().WithLength(5).View()))
	assert.Equal(t, 3, lipgloss.Height(VerticalDivider().WithLength(3).View()))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithMaxWidth(12))))
}

func TestSpacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   \n   ", NewSpacer(3, 2).View())
	assert.Equal(t, "    ", HorizontalSpacer(4).View())
	assert.Empty(t, NewSpacer(-1, 0).View())
}

func TestChip(t *testing.T) {
	t.Parallel()

	chip := NewChip("beta").WithSlot(PaletteWarning)
	assert.Equal(t, 6, lipgloss.Width(chip.View()))

	chip.WithSelected(true)
	assert.True(t, chip.Selected())
	assert.Contains(t, plain(chip.View()), "✓ beta")
}

func TestGradientStops(t *testing.T) {
	t.Parallel()

	g, err := NewGradient("#000000", "#ffffff", 8, 2)
	require.NoError(t, err)

	stops := g.Stops(5)
	require.Len(t, stops, 5)
	assert.Equal(t, "#000000", stops[0])
	assert.Equal(t, "#ffffff", stops[4])
	assert.NotEqual(t, stops[1], stops[3])

	view := g.WithLabel("ok").View()
	assert.Equal(t, 8, lipgloss.Width(view))
	assert.Equal(t, 2, lipgloss.Height(view))
	assert.Contains(t, plain(view), "ok")

	_, err = NewGradient("nope", "#ffffff", 1, 1)
	require.Error(t, err)
}

func TestAnimatedOpacityConverges(t *testing.T) {
	t.Parallel()

	fade := NewAnimatedOpacity("hello", false, scroll.DefaultSpring())
	assert.Equal(t, "     ", fade.View())
	assert.False(t, fade.Animating())

	fade.SetVisible(true)
	require.True(t, fade.Animating())

	frames := 0
	for fade.Step() {
		frames++
		require.Less(t, frames, 600)
		assert.LessOrEqual(t, fade.Opacity(), 1.0)
	}
	assert.Equal(t, 1.0, fade.Opacity())
	assert.Equal(t, "hello", plain(fade.View()))

	fade.Toggle()
	assert.Equal(t, 0.0, fade.Target())
}

func TestAnimatedColorReachesTarget(t *testing.T) {
	t.Parallel()

	swatch, err := NewAnimatedColor("", "#0000ff", scroll.DefaultSpring())
	require.NoError(t, err)
	require.False(t, swatch.Animating())

	require.NoError(t, swatch.SetTarget("#ff0000"))
	require.True(t, swatch.Step())
	assert.NotEqual(t, "#ff0000", swatch.Current().Hex())

	for i := 0; swatch.Step(); i++ {
		require.Less(t, i, 600)
	}
	assert.Equal(t, "#ff0000", swatch.Current().Hex())
	require.Error(t, swatch.SetTarget("red"))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	theme, ok := ThemeByName("light")
	require.True(t, ok)
	assert.Equal(t, ThemeLight, theme.Name)

	theme, ok = ThemeByName("sepia")
	assert.False(t, ok)
	assert.Equal(t, ThemeDark, theme.Name)
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	t.Parallel()

	base := NewBaseComponent()
	base.SetAppliers(Padding(All(1)))
	base.AddAppliers(Border(BorderVariantThick))

	style := base.ComputeStyle(DarkTheme())
	assert.Equal(t, 1, style.GetPaddingTop())
	assert.Equal(t, lipgloss.ThickBorder(), style.GetBorderStyle())
}
