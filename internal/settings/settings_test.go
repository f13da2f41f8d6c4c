package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.True(t, s.TitleBarVisible)
	assert.Equal(t, DefaultFontFamily, s.FontFamily)
	assert.Equal(t, DefaultFontSize, s.FontSize)
	assert.True(t, s.Colors.IsEmpty())
}

func TestColorBundleIsEmpty(t *testing.T) {
	var b ColorBundle
	assert.True(t, b.IsEmpty())

	b.Palette[15] = "#ffffff"
	assert.False(t, b.IsEmpty())

	assert.False(t, ColorBundle{}.WithOpacity(0).IsEmpty())
	assert.False(t, ColorBundle{ActivePreset: "Nord"}.IsEmpty())
}

func TestColorBundleClone(t *testing.T) {
	orig := ColorBundle{Foreground: "#ffffff"}.WithOpacity(0.5)
	clone := orig.Clone()
	*clone.BackgroundOpacity = 0.9
	clone.Palette[0] = "#000000"

	assert.Equal(t, 0.5, *orig.BackgroundOpacity)
	assert.Equal(t, Color(""), orig.Palette[0])
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hex   string
		alpha float64
	}{
		{name: "rgba", input: "rgba(40, 40, 40, 1.0)", hex: "#282828", alpha: 1},
		{name: "rgba no spaces", input: "rgba(255,0,0,0.5)", hex: "#ff0000", alpha: 0.5},
		{name: "hex", input: "#ffffff", hex: "#ffffff", alpha: 1},
		{name: "hex upper", input: "#ABCDEF", hex: "#abcdef", alpha: 1},
		{name: "short hex", input: "#fff", hex: "#ffffff", alpha: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, got.Hex())
			assert.InDelta(t, tt.alpha, got.Alpha, 1e-9)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "white", "rgba(1, 2, 3)", "rgba(256, 0, 0, 1)", "rgba(0, 0, 0, 2)", "rgb(1, 2, 3, 1)", "#zzzzzz"} {
		_, err := ParseColor(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRGBAColorRoundTrip(t *testing.T) {
	c := RGBAColor(46, 52, 64, 1.0)
	assert.Equal(t, Color("rgba(46, 52, 64, 1.0)"), c)
	assert.Equal(t, "#2e3440", c.Hex())
	assert.Equal(t, "", Color("").Hex())
	assert.Equal(t, "", Color("bogus").Hex())
}

func TestValidOpacity(t *testing.T) {
	assert.True(t, ValidOpacity(0))
	assert.True(t, ValidOpacity(1))
	assert.True(t, ValidOpacity(0.25))
	assert.False(t, ValidOpacity(-0.1))
	assert.False(t, ValidOpacity(1.5))
}
