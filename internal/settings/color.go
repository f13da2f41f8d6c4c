package settings

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a textual color as stored in the config file, either
// "rgba(R, G, B, A)" or a CSS hex string. It is written back verbatim.
type Color string

// RGBA is a decoded color with its alpha channel.
type RGBA struct {
	colorful.Color
	Alpha float64
}

// RGBAColor formats the rgba() encoding used by the built-in presets.
func RGBAColor(r, g, b uint8, alpha float64) Color {
	return Color(fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', 1, 64)))
}

// ParseColor decodes an rgba() or hex color.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGBA{Color: c, Alpha: 1}, nil
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "rgba(") || !strings.HasSuffix(lower, ")") {
		return RGBA{}, fmt.Errorf("invalid color %q (expected rgba(r, g, b, a) or #rrggbb)", s)
	}
	parts := strings.Split(s[len("rgba("):len(s)-1], ",")
	if len(parts) != 4 {
		return RGBA{}, fmt.Errorf("invalid color %q (expected 4 components)", s)
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return RGBA{}, fmt.Errorf("invalid color %q (channel %d out of range)", s, i)
		}
		channels[i] = float64(v) / 255
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		return RGBA{}, fmt.Errorf("invalid color %q (alpha must be between 0 and 1)", s)
	}

	return RGBA{
		Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]},
		Alpha: alpha,
	}, nil
}

// Valid reports whether c decodes.
func (c Color) Valid() bool {
	_, err := ParseColor(string(c))
	return err == nil
}

// Hex returns c as #rrggbb, or "" when c is unset or does not decode.
func (c Color) Hex() string {
	if c == "" {
		return ""
	}
	rgba, err := ParseColor(string(c))
	if err != nil {
		return ""
	}
	return rgba.Color.Hex()
}

func (c Color) String() string { return string(c) }
