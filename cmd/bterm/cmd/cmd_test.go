package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/better-terminal/internal/config"
	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
	"github.com/iiroan/better-terminal/internal/ui"
	"github.com/iiroan/better-terminal/internal/validate"
)

func useTempManager(t *testing.T) {
	t.Helper()
	prev := manager
	manager = config.OpenPath(filepath.Join(t.TempDir(), "bterm.conf"), nil)
	t.Cleanup(func() { manager = prev })
}

func TestParseKeyValuePairs(t *testing.T) {
	got, err := parseKeyValuePairs([]string{"foreground=#fff", " color1 = rgba(1, 2, 3, 1.0) ", "", "x=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"foreground": "#fff",
		"color1":     "rgba(1, 2, 3, 1.0)",
		"x":          "a=b",
	}, got)

	_, err = parseKeyValuePairs([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseKeyValuePairs([]string{"=value"})
	assert.Error(t, err)
}

func TestFormatKeyValuePairs(t *testing.T) {
	assert.Equal(t, "", formatKeyValuePairs(nil))
	assert.Equal(t, "a=1, b=2", formatKeyValuePairs(map[string]string{"b": "2", "a": "1"}))
}

func TestApplyColorAssignmentsLeavesPreset(t *testing.T) {
	nord := preset.ColorsFor(preset.Nord)

	got, err := applyColorAssignments(nord, map[string]string{
		"color1":             "#ff0000",
		"background_opacity": "0.9",
	})
	require.NoError(t, err)

	assert.Empty(t, got.ActivePreset)
	assert.Equal(t, settings.Color("#ff0000"), got.Palette[1])
	assert.Equal(t, nord.Palette[2], got.Palette[2])
	assert.Equal(t, nord.Foreground, got.Foreground)
	require.NotNil(t, got.BackgroundOpacity)
	assert.Equal(t, 0.9, *got.BackgroundOpacity)
	assert.Equal(t, "Nord", nord.ActivePreset, "input bundle must not change")
}

func TestApplyColorAssignmentsErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown key":     {"color16": "#fff"},
		"bad color":       {"foreground": "white"},
		"bad opacity":     {"background_opacity": "lots"},
		"opacity too big": {"background_opacity": "1.5"},
	}
	for name, assignments := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := applyColorAssignments(settings.ColorBundle{}, assignments)
			assert.Error(t, err)
		})
	}
}

func TestApplyColorAssignmentsClearsOpacity(t *testing.T) {
	got, err := applyColorAssignments(settings.ColorBundle{}.WithOpacity(0.5), map[string]string{"background_opacity": ""})
	require.NoError(t, err)
	assert.Nil(t, got.BackgroundOpacity)
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		arg     string
		current bool
		want    bool
		wantErr bool
	}{
		{arg: "on", current: false, want: true},
		{arg: "OFF", current: true, want: false},
		{arg: "toggle", current: true, want: false},
		{arg: "toggle", current: false, want: true},
		{arg: "maybe", current: true, want: true, wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseToggle(tt.arg, tt.current)
		if tt.wantErr {
			assert.Error(t, err, tt.arg)
		} else {
			assert.NoError(t, err, tt.arg)
		}
		assert.Equal(t, tt.want, got, tt.arg)
	}
}

func TestParseFontSize(t *testing.T) {
	size, err := parseFontSize(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, size)

	for _, bad := range []string{"", "big", "0", "-3"} {
		_, err := parseFontSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestEncodeSettings(t *testing.T) {
	s := settings.Default()
	s.Colors = preset.ColorsFor(preset.Monokai)

	out, err := encodeSettings(s, true)
	require.NoError(t, err)
	var fromJSON settings.AppSettings
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	assert.Equal(t, s, fromJSON)

	out, err = encodeSettings(s, false)
	require.NoError(t, err)
	var fromYAML settings.AppSettings
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, s, fromYAML)
}

func TestUsePreset(t *testing.T) {
	useTempManager(t)

	require.NoError(t, usePreset("TokyoNight"))
	assert.Equal(t, preset.ColorsFor(preset.TokyoNight), manager.LoadAppSettings().Colors)

	assert.Error(t, usePreset("Custom"))
	assert.Error(t, usePreset("tokyonight"))
}

func TestSetTitleBar(t *testing.T) {
	useTempManager(t)

	require.NoError(t, setTitleBar("toggle"))
	assert.False(t, manager.LoadAppSettings().TitleBarVisible)
	require.NoError(t, setTitleBar("on"))
	assert.True(t, manager.LoadAppSettings().TitleBarVisible)
}

func TestSaveFontOnlyWritesChanges(t *testing.T) {
	useTempManager(t)

	require.NoError(t, saveFont(settings.DefaultFontFamily, settings.DefaultFontSize, "Monospace", "14"))

	raw, err := config.NewStore(manager.Path(), nil).ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "font_size = 14", raw)
}

func TestSaveFontRejectsLineBreaks(t *testing.T) {
	useTempManager(t)

	assert.ErrorIs(t, saveFont(settings.DefaultFontFamily, settings.DefaultFontSize, "Mono\ntitlebar = false", "11"), config.ErrLineBreak)
	assert.True(t, manager.LoadAppSettings().TitleBarVisible)
	assert.Equal(t, settings.DefaultFontFamily, manager.LoadAppSettings().FontFamily)
}

func TestValidationSummary(t *testing.T) {
	r := validate.Content("bterm.conf", "font_size = 0\ncolor99 = #fff\ntitlebar = true")
	summary := validationSummary("/tmp/bterm.conf", r)

	assert.Contains(t, summary, "`/tmp/bterm.conf`: 1 error(s), 1 warning(s)")
	assert.Contains(t, summary, "- line 1 (error):")
	assert.Contains(t, summary, "- line 2 (warning):")
	assert.NotContains(t, summary, "line 3")
}

func TestFormatItem(t *testing.T) {
	t.Cleanup(func() { ui.ApplyPreferences(ui.Preferences{}, settings.ColorBundle{}) })
	ui.ApplyPreferences(ui.Preferences{NoColor: true}, settings.ColorBundle{})

	line := formatItem(validate.Item{Name: "bterm.conf", Line: 4, Status: validate.StatusError, Details: "bad"})
	assert.Contains(t, line, "✗")
	assert.Contains(t, line, "bterm.conf:4")
	assert.Contains(t, line, "bad")

	assert.Contains(t, formatItem(validate.Item{Name: "bterm.conf", Status: validate.StatusSuccess}), "✓ bterm.conf")
}
