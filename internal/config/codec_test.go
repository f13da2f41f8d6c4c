package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
)

func customBundle() settings.ColorBundle {
	b := settings.ColorBundle{
		Foreground: "#ffffff",
		Background: "rgba(0, 0, 0, 1.0)",
	}.WithOpacity(0.85)
	b.Palette[0] = "#000000"
	b.Palette[7] = "rgba(200, 200, 200, 1.0)"
	b.Palette[15] = "#abcdef"
	return b
}

func TestParseEmpty(t *testing.T) {
	assert.Equal(t, settings.Default(), Parse(""))
	assert.Equal(t, settings.Default(), Parse("\n\n"))
}

func TestParseScalars(t *testing.T) {
	s := Parse("titlebar = false\nfont_family = JetBrains Mono\nfont_size = 13.5")

	assert.False(t, s.TitleBarVisible)
	assert.Equal(t, "JetBrains Mono", s.FontFamily)
	assert.Equal(t, 13.5, s.FontSize)
}

func TestParseTitleBarOnlyTrueIsTrue(t *testing.T) {
	assert.True(t, Parse("titlebar = true").TitleBarVisible)
	assert.False(t, Parse("titlebar = yes").TitleBarVisible)
	assert.False(t, Parse("titlebar = TRUE").TitleBarVisible)
}

func TestParseMalformedNumbersKeepPriorValue(t *testing.T) {
	s := Parse("font_size = 14\nfont_size = big\nbackground_opacity = 0.5\nbackground_opacity = half\nbackground_opacity = 3")

	assert.Equal(t, 14.0, s.FontSize)
	require.NotNil(t, s.Colors.BackgroundOpacity)
	assert.Equal(t, 0.5, *s.Colors.BackgroundOpacity)

	assert.Equal(t, settings.DefaultFontSize, Parse("font_size = -2").FontSize)
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	s := Parse("foreground = #111111\nforeground = #222222\ntitlebar = false\ntitlebar = true")

	assert.Equal(t, settings.Color("#222222"), s.Colors.Foreground)
	assert.True(t, s.TitleBarVisible)
}

func TestParsePaletteBounds(t *testing.T) {
	s := Parse("color16 = #ffffff\ncolor15 = #abcdef\ncolor-1 = #111111\ncolor = #222222\ncolorX = #333333")

	assert.Equal(t, settings.Color("#abcdef"), s.Colors.Palette[15])
	for i := 0; i < 15; i++ {
		assert.Empty(t, s.Colors.Palette[i], "color%d", i)
	}
}

func TestParseKnownPresetWinsRegardlessOfOrder(t *testing.T) {
	want := preset.ColorsFor(preset.Nord)

	before := Parse("foreground = #ffffff\ncolor1 = #ff0000\nactive_preset = Nord")
	after := Parse("active_preset = Nord\nforeground = #ffffff\ncolor1 = #ff0000\nbackground_opacity = 0.3")

	assert.Equal(t, want, before.Colors)
	assert.Equal(t, want, after.Colors)
}

func TestParseUnknownPresetKeepsOverrides(t *testing.T) {
	s := Parse("active_preset = Solarized\nforeground = #ffffff\ncolor2 = #00ff00")

	assert.Equal(t, "Solarized", s.Colors.ActivePreset)
	assert.Equal(t, settings.Color("#ffffff"), s.Colors.Foreground)
	assert.Equal(t, settings.Color("#00ff00"), s.Colors.Palette[2])
}

func TestParseCustomSentinelIsLiteral(t *testing.T) {
	s := Parse("active_preset = Custom\nbackground = #101010")

	assert.Equal(t, "Custom", s.Colors.ActivePreset)
	assert.Equal(t, settings.Color("#101010"), s.Colors.Background)
}

func TestParseFontIndependentOfPreset(t *testing.T) {
	s := Parse("active_preset = Monokai\nfont_family = Hack\nfont_size = 10")

	assert.Equal(t, "Hack", s.FontFamily)
	assert.Equal(t, 10.0, s.FontSize)
	assert.Equal(t, preset.ColorsFor(preset.Monokai), s.Colors)
}

func TestParseIgnoresUnknownAndMalformedLines(t *testing.T) {
	s := Parse("foo = bar\njust text\n= value\ntitlebar")
	assert.Equal(t, settings.Default(), s)
}

func TestRenderColorsRoundTrip(t *testing.T) {
	unknown := customBundle()
	unknown.ActivePreset = "MyTheme"

	tests := []struct {
		name   string
		bundle settings.ColorBundle
	}{
		{name: "custom", bundle: customBundle()},
		{name: "unknown preset label", bundle: unknown},
		{name: "empty", bundle: settings.ColorBundle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Join(RenderColors(nil, tt.bundle), "\n")
			assert.Equal(t, tt.bundle, Parse(raw).Colors)
		})
	}
}

func TestRenderColorsKnownPresetWins(t *testing.T) {
	stale := customBundle()
	stale.ActivePreset = "TokyoNight"

	lines := RenderColors(nil, stale)
	assert.Equal(t, []string{"active_preset = TokyoNight"}, lines)
	assert.Equal(t, preset.ColorsFor(preset.TokyoNight), Parse(strings.Join(lines, "\n")).Colors)
}

func TestRenderColorsOrder(t *testing.T) {
	b := customBundle()
	b.ActivePreset = "Mine"

	assert.Equal(t, []string{
		"active_preset = Mine",
		"foreground = #ffffff",
		"background = rgba(0, 0, 0, 1.0)",
		"background_opacity = 0.85",
		"color0 = #000000",
		"color7 = rgba(200, 200, 200, 1.0)",
		"color15 = #abcdef",
	}, RenderColors(nil, b))
}

func TestRenderColorsPreservesUnrelatedLines(t *testing.T) {
	lines := []string{
		"foo = bar",
		"foreground = #010101",
		"titlebar = false",
		"color3 = #030303",
		"color16 = #161616",
		"active_preset = Nord",
	}

	for i := 0; i < 3; i++ {
		lines = RenderColors(lines, customBundle())
	}

	count := 0
	for _, l := range lines {
		if l == "foo = bar" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{
		"foo = bar",
		"titlebar = false",
		"color16 = #161616",
		"foreground = #ffffff",
		"background = rgba(0, 0, 0, 1.0)",
		"background_opacity = 0.85",
		"color0 = #000000",
		"color7 = rgba(200, 200, 200, 1.0)",
		"color15 = #abcdef",
	}, lines)
}

func TestRenderTitleBar(t *testing.T) {
	lines := RenderTitleBar([]string{"titlebar = true", "font_size = 12", "titlebar = true"}, false)
	assert.Equal(t, []string{"font_size = 12", "titlebar = false"}, lines)

	assert.Equal(t, []string{"titlebar = true"}, RenderTitleBar(nil, true))
}

func TestRenderFont(t *testing.T) {
	lines := []string{"font_family = Hack", "active_preset = Nord"}

	lines = RenderFontFamily(lines, "Fira Code")
	lines = RenderFontSize(lines, 12.5)
	assert.Equal(t, []string{"active_preset = Nord", "font_family = Fira Code", "font_size = 12.5"}, lines)

	lines = RenderFontFamily(lines, "  ")
	lines = RenderFontSize(lines, 0)
	assert.Equal(t, []string{"active_preset = Nord"}, lines)
}

func TestRenderFontSizeFormatting(t *testing.T) {
	assert.Equal(t, []string{"font_size = 11"}, RenderFontSize(nil, 11))
	assert.Equal(t, []string{"font_size = 10.25"}, RenderFontSize(nil, 10.25))
}

func TestValidateColors(t *testing.T) {
	require.NoError(t, ValidateColors(customBundle()))
	require.NoError(t, ValidateColors(preset.ColorsFor(preset.GruvboxDark)))

	bad := customBundle()
	bad.Palette[4] = "blue"
	assert.ErrorContains(t, ValidateColors(bad), "color4")

	assert.Error(t, ValidateColors(settings.ColorBundle{}.WithOpacity(1.2)))
	assert.Error(t, ValidateColors(settings.ColorBundle{ActivePreset: "a\nb"}))
}

func TestKnownKey(t *testing.T) {
	for _, key := range []string{KeyTitleBar, KeyFontFamily, KeyFontSize, KeyActivePreset, KeyBackgroundOpacity, "color0", "color15"} {
		assert.True(t, KnownKey(key), key)
	}
	for _, key := range []string{"color16", "color", "color-1", "colour1", "font"} {
		assert.False(t, KnownKey(key), key)
	}
}

func TestValidateFontFamily(t *testing.T) {
	assert.NoError(t, ValidateFontFamily("JetBrains Mono"))
	assert.NoError(t, ValidateFontFamily(" Iosevka\n"))

	assert.Error(t, ValidateFontFamily("   "))
	assert.ErrorIs(t, ValidateFontFamily("Mono\ntitlebar = false"), ErrLineBreak)
	assert.ErrorIs(t, ValidateFontFamily("Mono\rfont_size = 40"), ErrLineBreak)
}

func TestValidateColorsRejectsLineBreaks(t *testing.T) {
	b := customBundle()
	b.Palette[2] = "#00ff00\nactive_preset = Nord"
	assert.Error(t, ValidateColors(b))

	assert.ErrorIs(t, ValidateColors(settings.ColorBundle{ActivePreset: "Home\ntitlebar = false"}), ErrLineBreak)
}
