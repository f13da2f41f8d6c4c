// Package preset is the catalog of built-in terminal color schemes
package preset

import (
	"github.com/iiroan/better-terminal/internal/settings"
)

// ID identifies a built-in color scheme. The zero value is Custom.
type ID int

const (
	// Custom means no preset is active and colors are taken literally.
	Custom ID = iota
	GruvboxDark
	CatppuccinMocha
	Monokai
	Nord
	TokyoNight
)

// CustomName is the display name of the Custom sentinel.
const CustomName = "Custom"

var names = map[ID]string{
	Custom:          CustomName,
	GruvboxDark:     "GruvboxDark",
	CatppuccinMocha: "CatppuccinMocha",
	Monokai:         "Monokai",
	Nord:            "Nord",
	TokyoNight:      "TokyoNight",
}

// displayOrder is the stable order used for listings.
var displayOrder = []ID{GruvboxDark, CatppuccinMocha, Monokai, Nord, TokyoNight}

// All returns the built-in presets in display order.
func All() []ID {
	out := make([]ID, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Names returns the built-in preset names in display order.
func Names() []string {
	out := make([]string, len(displayOrder))
	for i, id := range displayOrder {
		out[i] = id.Name()
	}
	return out
}

// Name returns the preset's config-file name.
func (id ID) Name() string {
	if name, ok := names[id]; ok {
		return name
	}
	return CustomName
}

func (id ID) String() string { return id.Name() }

// BuiltIn reports whether id is one of the built-in schemes.
func (id ID) BuiltIn() bool {
	_, ok := schemes[id]
	return ok
}

// ByName looks up a built-in preset by its exact, case-sensitive name.
// Custom is not a built-in preset and is never found.
func ByName(name string) (ID, bool) {
	for _, id := range displayOrder {
		if id.Name() == name {
			return id, true
		}
	}
	return Custom, false
}

// ColorsFor returns the color bundle of a preset with ActivePreset set to its
// name. Custom yields an empty bundle.
func ColorsFor(id ID) settings.ColorBundle {
	s, ok := schemes[id]
	if !ok {
		return settings.ColorBundle{}
	}
	return settings.ColorBundle{
		Foreground:   s.foreground,
		Background:   s.background,
		Palette:      s.palette,
		ActivePreset: id.Name(),
	}
}

// Resolve returns the preset named by a bundle's ActivePreset, if any.
func Resolve(b settings.ColorBundle) (ID, bool) {
	if b.ActivePreset == "" {
		return Custom, false
	}
	return ByName(b.ActivePreset)
}
