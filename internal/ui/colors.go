package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/better-terminal/internal/settings"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

// Active palette colors, set by ApplyPalette.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
)

// DefaultPalette is used for anything the terminal colors leave unset.
func DefaultPalette() Palette {
	return Palette{
		Name:       "default",
		Primary:    lipgloss.Color("#22D3EE"),
		Secondary:  lipgloss.Color("#A78BFA"),
		Accent:     lipgloss.Color("#38BDF8"),
		Info:       lipgloss.Color("#60A5FA"),
		Success:    lipgloss.Color("#34D399"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
		Muted:      lipgloss.Color("#94A3B8"),
		Background: lipgloss.Color("#0B1120"),
		Foreground: lipgloss.Color("#E2E8F0"),
		Border:     lipgloss.Color("#334155"),
		Highlight:  lipgloss.Color("#7DD3FC"),
	}
}

// PaletteFromBundle themes the UI with the user's own terminal colors,
// mapping ANSI slots onto UI roles.
func PaletteFromBundle(b settings.ColorBundle) Palette {
	p := DefaultPalette()
	if b.ActivePreset != "" {
		p.Name = b.ActivePreset
	} else if !b.IsEmpty() {
		p.Name = "custom"
	}

	pick := func(dst *lipgloss.Color, c settings.Color) {
		if hex := c.Hex(); hex != "" {
			*dst = lipgloss.Color(hex)
		}
	}
	pick(&p.Foreground, b.Foreground)
	pick(&p.Background, b.Background)
	pick(&p.Error, b.Palette[1])
	pick(&p.Success, b.Palette[2])
	pick(&p.Warning, b.Palette[3])
	pick(&p.Primary, b.Palette[4])
	pick(&p.Secondary, b.Palette[5])
	pick(&p.Accent, b.Palette[6])
	pick(&p.Muted, b.Palette[8])
	pick(&p.Border, b.Palette[8])
	pick(&p.Info, b.Palette[12])
	pick(&p.Highlight, b.Palette[14])
	return p
}

// ApplyPalette switches the active colors and rebuilds the styles.
func ApplyPalette(p Palette) {
	if p.Disabled {
		none := lipgloss.Color("")
		p.Primary, p.Secondary, p.Accent, p.Info = none, none, none, none
		p.Success, p.Warning, p.Error, p.Muted = none, none, none, none
		p.Background, p.Foreground, p.Border, p.Highlight = none, none, none, none
	}
	ActivePalette = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	buildStyles()
}

// ActivePalette is the palette last passed to ApplyPalette.
var ActivePalette Palette

func init() {
	ApplyPalette(DefaultPalette())
}
