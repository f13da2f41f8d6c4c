package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/better-terminal/internal/settings"
)

const unsetCell = "··"

// ColorCell renders one color as a two-cell block, or a dotted placeholder
// when it is unset or invalid.
func ColorCell(c settings.Color) string {
	hex := c.Hex()
	if hex == "" || ActivePalette.Disabled {
		if c != "" && ActivePalette.Disabled {
			return "██"
		}
		return MutedStyle.Render(unsetCell)
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// Swatch renders the 16-color palette as two rows: normal and bright.
func Swatch(b settings.ColorBundle) string {
	rows := make([]string, 0, 2)
	for row := 0; row < 2; row++ {
		cells := make([]string, 0, settings.PaletteSize/2)
		for i := row * 8; i < (row+1)*8; i++ {
			cells = append(cells, ColorCell(b.Palette[i]))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

// Sample renders text in the bundle's foreground on its background.
func Sample(b settings.ColorBundle, text string) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if ActivePalette.Disabled {
		return style.Render(text)
	}
	if hex := b.Foreground.Hex(); hex != "" {
		style = style.Foreground(lipgloss.Color(hex))
	}
	if hex := b.Background.Hex(); hex != "" {
		style = style.Background(lipgloss.Color(hex))
	}
	return style.Render(text)
}

func colorValue(c settings.Color) string {
	if c == "" {
		return MutedStyle.Render("unset")
	}
	return ColorCell(c) + " " + string(c)
}

// SettingsView renders the loaded settings for display.
func SettingsView(s settings.AppSettings, path string) string {
	const width = 18

	titleBar := "hidden"
	if s.TitleBarVisible {
		titleBar = "visible"
	}
	presetName := s.Colors.ActivePreset
	if presetName == "" {
		presetName = MutedStyle.Render("none (custom colors)")
	}
	opacity := MutedStyle.Render("unset")
	if s.Colors.BackgroundOpacity != nil {
		opacity = strconv.FormatFloat(*s.Colors.BackgroundOpacity, 'g', -1, 64)
	}

	lines := []string{
		KeyValue("config", path, width),
		KeyValue("titlebar", titleBar, width),
		KeyValue("font", s.FontFamily+" "+strconv.FormatFloat(s.FontSize, 'g', -1, 64), width),
		KeyValue("active_preset", presetName, width),
		KeyValue("foreground", colorValue(s.Colors.Foreground), width),
		KeyValue("background", colorValue(s.Colors.Background), width),
		KeyValue("background_opacity", opacity, width),
		"",
		Bold.Render("Palette"),
		Swatch(s.Colors),
		"",
		Sample(s.Colors, "The quick brown fox jumps over the lazy dog"),
	}
	return strings.Join(lines, "\n")
}
