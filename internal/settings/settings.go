// Package settings holds the in-memory appearance model for better-terminal
package settings

// PaletteSize is the number of ANSI palette entries in a color bundle.
const PaletteSize = 16

// Default font used when the config file does not name one.
const (
	DefaultFontFamily = "Monospace"
	DefaultFontSize   = 11.0
)

// ColorBundle is the set of terminal colors. Empty strings and a nil opacity
// mean "unset".
type ColorBundle struct {
	Foreground        Color              `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background        Color              `json:"background,omitempty" yaml:"background,omitempty"`
	BackgroundOpacity *float64           `json:"background_opacity,omitempty" yaml:"background_opacity,omitempty"`
	Palette           [PaletteSize]Color `json:"palette" yaml:"palette"`

	// ActivePreset is the literal preset name from the config file, which may
	// not resolve to a built-in preset.
	ActivePreset string `json:"active_preset,omitempty" yaml:"active_preset,omitempty"`
}

// IsEmpty reports whether no field of the bundle is set.
func (b ColorBundle) IsEmpty() bool {
	if b.Foreground != "" || b.Background != "" || b.BackgroundOpacity != nil || b.ActivePreset != "" {
		return false
	}
	for _, c := range b.Palette {
		if c != "" {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no memory with b.
func (b ColorBundle) Clone() ColorBundle {
	out := b
	if b.BackgroundOpacity != nil {
		v := *b.BackgroundOpacity
		out.BackgroundOpacity = &v
	}
	return out
}

// WithOpacity returns a copy of b with the background opacity set.
func (b ColorBundle) WithOpacity(v float64) ColorBundle {
	out := b.Clone()
	out.BackgroundOpacity = &v
	return out
}

// AppSettings aggregates everything persisted in the config file.
type AppSettings struct {
	TitleBarVisible bool        `json:"title_bar_visible" yaml:"title_bar_visible"`
	FontFamily      string      `json:"font_family" yaml:"font_family"`
	FontSize        float64     `json:"font_size" yaml:"font_size"`
	Colors          ColorBundle `json:"colors" yaml:"colors"`
}

// Default returns the settings used when nothing has been saved yet.
func Default() AppSettings {
	return AppSettings{
		TitleBarVisible: true,
		FontFamily:      DefaultFontFamily,
		FontSize:        DefaultFontSize,
	}
}

// ValidOpacity reports whether v is an acceptable background opacity.
func ValidOpacity(v float64) bool {
	return v >= 0 && v <= 1
}
