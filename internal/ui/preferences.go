package ui

import (
	"github.com/iiroan/better-terminal/internal/settings"
)

// Preferences controls runtime UI settings.
type Preferences struct {
	NoColor bool
	Dense   bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{}

// ApplyPreferences updates UI preferences and themes the UI with the
// terminal's own colors.
func ApplyPreferences(p Preferences, colors settings.ColorBundle) {
	CurrentPreferences = p
	palette := PaletteFromBundle(colors)
	palette.Disabled = p.NoColor
	ApplyPalette(palette)
}
