package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
)

// Config file keys.
const (
	KeyTitleBar          = "titlebar"
	KeyActivePreset      = "active_preset"
	KeyForeground        = "foreground"
	KeyBackground        = "background"
	KeyBackgroundOpacity = "background_opacity"
	KeyFontFamily        = "font_family"
	KeyFontSize          = "font_size"

	paletteKeyPrefix = "color"
)

// PaletteKey returns the key of palette entry i (color0..color15).
func PaletteKey(i int) string {
	return paletteKeyPrefix + strconv.Itoa(i)
}

// paletteIndex parses color<N> keys, accepting only 0..15.
func paletteIndex(key string) (int, bool) {
	digits, ok := strings.CutPrefix(key, paletteKeyPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 0 || idx >= settings.PaletteSize {
		return 0, false
	}
	return idx, true
}

// KnownKey reports whether key is read by the settings parser.
func KnownKey(key string) bool {
	switch key {
	case KeyTitleBar, KeyFontFamily, KeyFontSize:
		return true
	}
	return colorScope(key)
}

// RenderFunc rewrites the existing config lines for one settings facet.
type RenderFunc func(existing []string) []string

var (
	titleBarScope   = keySet(KeyTitleBar)
	fontFamilyScope = keySet(KeyFontFamily)
	fontSizeScope   = keySet(KeyFontSize)
)

func colorScope(key string) bool {
	switch key {
	case KeyActivePreset, KeyForeground, KeyBackground, KeyBackgroundOpacity:
		return true
	}
	_, ok := paletteIndex(key)
	return ok
}

// colorRecord collects the color keys of a file before the preset/override
// merge is applied.
type colorRecord struct {
	presetName *string
	explicit   settings.ColorBundle
}

func (r *colorRecord) apply(key, value string) bool {
	switch key {
	case KeyActivePreset:
		name := value
		r.presetName = &name
	case KeyForeground:
		r.explicit.Foreground = settings.Color(value)
	case KeyBackground:
		r.explicit.Background = settings.Color(value)
	case KeyBackgroundOpacity:
		if v, err := strconv.ParseFloat(value, 64); err == nil && settings.ValidOpacity(v) {
			r.explicit.BackgroundOpacity = &v
		}
	default:
		idx, ok := paletteIndex(key)
		if !ok {
			return false
		}
		r.explicit.Palette[idx] = settings.Color(value)
	}
	return true
}

// merge resolves the record. A recognized preset wins over explicit
// overrides; overrides apply only when the preset is absent or unknown.
func (r *colorRecord) merge() settings.ColorBundle {
	if r.presetName == nil {
		return r.explicit
	}
	colors := r.explicit
	if id, ok := preset.ByName(*r.presetName); ok {
		colors = preset.ColorsFor(id)
	}
	colors.ActivePreset = *r.presetName
	return colors
}

// Parse builds settings from raw config file content. Malformed or unknown
// lines are ignored.
func Parse(raw string) settings.AppSettings {
	return ParseDocument(raw).Settings()
}

// Settings interprets the document's pairs on top of the defaults.
func (d *Document) Settings() settings.AppSettings {
	s := settings.Default()
	var colors colorRecord

	for _, p := range d.Pairs() {
		switch p.Key {
		case KeyTitleBar:
			s.TitleBarVisible = p.Value == "true"
		case KeyFontFamily:
			s.FontFamily = p.Value
		case KeyFontSize:
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil && v > 0 {
				s.FontSize = v
			}
		default:
			colors.apply(p.Key, p.Value)
		}
	}

	s.Colors = colors.merge()
	return s
}

// ErrLineBreak is returned for values that would span more than one line of
// the config file.
var ErrLineBreak = errors.New("value contains a line break")

// CheckPairs reports the first pair whose value cannot be stored on one line.
func CheckPairs(pairs []Pair) error {
	for _, p := range pairs {
		if strings.ContainsAny(p.Value, "\r\n") {
			return fmt.Errorf("%s: %w", p.Key, ErrLineBreak)
		}
	}
	return nil
}

// ValidateFontFamily rejects empty family names and names with line breaks.
func ValidateFontFamily(family string) error {
	family = strings.TrimSpace(family)
	if family == "" {
		return errors.New("font family must not be empty")
	}
	return CheckPairs(FontFamilyPairs(family))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// TitleBarPairs formats the title bar facet.
func TitleBarPairs(visible bool) []Pair {
	return []Pair{{Key: KeyTitleBar, Value: strconv.FormatBool(visible)}}
}

// FontFamilyPairs formats the font family facet. An empty family removes the key.
func FontFamilyPairs(family string) []Pair {
	family = strings.TrimSpace(family)
	if family == "" {
		return nil
	}
	return []Pair{{Key: KeyFontFamily, Value: family}}
}

// FontSizePairs formats the font size facet. Non-positive sizes remove the key.
func FontSizePairs(size float64) []Pair {
	if size <= 0 {
		return nil
	}
	return []Pair{{Key: KeyFontSize, Value: formatFloat(size)}}
}

// ColorPairs formats the color facet. A recognized preset is written as the
// preset name alone; custom or unknown labels also carry the literal fields.
func ColorPairs(b settings.ColorBundle) []Pair {
	var pairs []Pair
	if b.ActivePreset != "" {
		pairs = append(pairs, Pair{Key: KeyActivePreset, Value: b.ActivePreset})
		if _, ok := preset.ByName(b.ActivePreset); ok {
			return pairs
		}
	}

	if b.Foreground != "" {
		pairs = append(pairs, Pair{Key: KeyForeground, Value: string(b.Foreground)})
	}
	if b.Background != "" {
		pairs = append(pairs, Pair{Key: KeyBackground, Value: string(b.Background)})
	}
	if b.BackgroundOpacity != nil {
		pairs = append(pairs, Pair{Key: KeyBackgroundOpacity, Value: formatFloat(*b.BackgroundOpacity)})
	}
	for i, c := range b.Palette {
		if c != "" {
			pairs = append(pairs, Pair{Key: PaletteKey(i), Value: string(c)})
		}
	}
	return pairs
}

func render(existing []string, scope Scope, pairs []Pair) []string {
	doc := NewDocument(existing)
	doc.Replace(scope, pairs...)
	return doc.Lines()
}

// RenderTitleBar replaces the titlebar line.
func RenderTitleBar(existing []string, visible bool) []string {
	return render(existing, titleBarScope, TitleBarPairs(visible))
}

// RenderColors replaces every color line with the lines for b.
func RenderColors(existing []string, b settings.ColorBundle) []string {
	return render(existing, colorScope, ColorPairs(b))
}

// RenderFontFamily replaces the font_family line.
func RenderFontFamily(existing []string, family string) []string {
	return render(existing, fontFamilyScope, FontFamilyPairs(family))
}

// RenderFontSize replaces the font_size line.
func RenderFontSize(existing []string, size float64) []string {
	return render(existing, fontSizeScope, FontSizePairs(size))
}

// Facet names used in diagnostics.
const (
	FacetTitleBar   = "titlebar"
	FacetColors     = "colors"
	FacetFontFamily = "font_family"
	FacetFontSize   = "font_size"
)

// ValidateColors checks every set color and the opacity of a bundle.
func ValidateColors(b settings.ColorBundle) error {
	check := func(key string, c settings.Color) error {
		if c == "" {
			return nil
		}
		if _, err := settings.ParseColor(string(c)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	}
	if err := check(KeyForeground, b.Foreground); err != nil {
		return err
	}
	if err := check(KeyBackground, b.Background); err != nil {
		return err
	}
	if b.BackgroundOpacity != nil && !settings.ValidOpacity(*b.BackgroundOpacity) {
		return fmt.Errorf("%s: %v is not between 0 and 1", KeyBackgroundOpacity, *b.BackgroundOpacity)
	}
	for i, c := range b.Palette {
		if err := check(PaletteKey(i), c); err != nil {
			return err
		}
	}
	return CheckPairs(ColorPairs(b))
}
