package validate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
)

// Config lints the config file at path. A missing file is pending, not an
// error: the defaults apply.
func Config(_ context.Context, path string) Result {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		result := Result{}
		if errors.Is(err, fs.ErrNotExist) {
			result.AddItem(StatusPending, name, 0, "not found, defaults in use")
			return result
		}
		result.AddItem(StatusError, name, 0, err.Error())
		return result
	}
	return Content(name, string(data))
}

// Content lints raw config content. Every finding names the line it was
// found on; a clean file yields a single success item.
func Content(name, raw string) Result {
	result := Result{}
	doc := config.ParseDocument(raw)
	entries := doc.Entries()

	seen := make(map[string]int)
	var presetLine int
	var presetKnown bool
	var colorLines []config.Entry

	for _, e := range entries {
		if !e.IsPair {
			if strings.TrimSpace(e.Raw) != "" {
				result.AddItem(StatusWarning, name, e.Number, "not a key = value line, ignored")
			}
			continue
		}

		key, value := e.Pair.Key, e.Pair.Value
		if !config.KnownKey(key) {
			result.AddItem(StatusWarning, name, e.Number, fmt.Sprintf("unknown key %q, ignored", key))
			continue
		}
		if prev, ok := seen[key]; ok {
			result.AddItem(StatusWarning, name, e.Number, fmt.Sprintf("%s repeats line %d, this line wins", key, prev))
		}
		seen[key] = e.Number

		switch key {
		case config.KeyTitleBar:
			if value != "true" && value != "false" {
				result.AddItem(StatusWarning, name, e.Number, fmt.Sprintf("titlebar %q reads as false", value))
			}
		case config.KeyFontFamily:
			if value == "" {
				result.AddItem(StatusWarning, name, e.Number, "empty font_family")
			}
		case config.KeyFontSize:
			if v, err := strconv.ParseFloat(value, 64); err != nil || v <= 0 {
				result.AddItem(StatusError, name, e.Number, fmt.Sprintf("font_size %q is not a positive number, default used", value))
			}
		case config.KeyActivePreset:
			presetLine = e.Number
			_, presetKnown = preset.ByName(value)
			if !presetKnown {
				result.AddItem(StatusWarning, name, e.Number, fmt.Sprintf("%q is not a built-in preset, colors are used as written", value))
			}
		case config.KeyBackgroundOpacity:
			colorLines = append(colorLines, e)
			if v, err := strconv.ParseFloat(value, 64); err != nil || !settings.ValidOpacity(v) {
				result.AddItem(StatusError, name, e.Number, fmt.Sprintf("background_opacity %q must be between 0 and 1", value))
			}
		default:
			colorLines = append(colorLines, e)
			if _, err := settings.ParseColor(value); err != nil {
				result.AddItem(StatusError, name, e.Number, err.Error())
			}
		}
	}

	if presetKnown {
		for _, e := range colorLines {
			result.AddItem(StatusWarning, name, e.Number,
				fmt.Sprintf("%s is ignored while the preset on line %d is active", e.Pair.Key, presetLine))
		}
	}

	if len(result.Items) == 0 {
		result.AddItem(StatusSuccess, name, 0, "")
	}
	return result
}
