package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/better-terminal/internal/preset"
	"github.com/iiroan/better-terminal/internal/settings"
)

func newTestManager(t *testing.T) (*Manager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	path := filepath.Join(t.TempDir(), ".config", AppName, AppName+".conf")
	return OpenPath(path, logger), &buf
}

func TestManagerEndToEnd(t *testing.T) {
	m, _ := newTestManager(t)

	s := m.LoadAppSettings()
	assert.True(t, s.TitleBarVisible)
	assert.Empty(t, s.Colors.ActivePreset)
	assert.Equal(t, settings.Default(), s)

	require.NoError(t, m.SaveColorSettings(settings.ColorBundle{ActivePreset: "Nord"}))
	s = m.LoadAppSettings()
	assert.Equal(t, preset.ColorsFor(preset.Nord), s.Colors)
	assert.Equal(t, "Nord", s.Colors.ActivePreset)

	require.NoError(t, m.SaveColorSettings(settings.ColorBundle{Foreground: "#ffffff"}))
	s = m.LoadAppSettings()
	assert.Equal(t, settings.Color("#ffffff"), s.Colors.Foreground)
	assert.Empty(t, s.Colors.ActivePreset)
	for i, c := range s.Colors.Palette {
		assert.Empty(t, c, "color%d should not survive a recognized preset save", i)
	}
}

func TestManagerUnknownPresetKeepsLiteralColors(t *testing.T) {
	m, _ := newTestManager(t)

	b := customBundle()
	b.ActivePreset = "HomeMade"
	require.NoError(t, m.SaveColorSettings(b))

	assert.Equal(t, b, m.LoadAppSettings().Colors)
}

func TestManagerFacetsAreIndependent(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.SaveColorSettings(settings.ColorBundle{ActivePreset: "Monokai"}))
	require.NoError(t, m.SaveTitleBarSetting(false))
	require.NoError(t, m.SaveFontFamilySetting("Iosevka"))
	require.NoError(t, m.SaveFontSizeSetting(15))
	require.NoError(t, m.SaveTitleBarSetting(false))

	s := m.LoadAppSettings()
	assert.False(t, s.TitleBarVisible)
	assert.Equal(t, "Iosevka", s.FontFamily)
	assert.Equal(t, 15.0, s.FontSize)
	assert.Equal(t, preset.ColorsFor(preset.Monokai), s.Colors)

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.Equal(t, "active_preset = Monokai\nfont_family = Iosevka\nfont_size = 15\ntitlebar = false", string(data))
}

func TestManagerRefusesValuesWithLineBreaks(t *testing.T) {
	m, buf := newTestManager(t)
	require.NoError(t, m.SaveFontSizeSetting(13))

	err := m.SaveFontFamilySetting("Mono\ntitlebar = false")
	require.ErrorIs(t, err, ErrLineBreak)

	b := settings.ColorBundle{Foreground: "#ffffff\nactive_preset = Nord"}
	require.ErrorIs(t, m.SaveColorSettings(b), ErrLineBreak)

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.Equal(t, "font_size = 13", string(data))

	s := m.LoadAppSettings()
	assert.True(t, s.TitleBarVisible)
	assert.Equal(t, settings.DefaultFontFamily, s.FontFamily)
	assert.Empty(t, s.Colors.ActivePreset)
	assert.Contains(t, buf.String(), "refusing to save settings")
}

func TestManagerWithoutPath(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(nil, log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	assert.Empty(t, m.Path())
	assert.Equal(t, settings.Default(), m.LoadAppSettings())
	assert.NoError(t, m.SaveTitleBarSetting(false))
	assert.NoError(t, m.SaveColorSettings(preset.ColorsFor(preset.Nord)))
	assert.Contains(t, buf.String(), "no config path")
}

func TestManagerSaveFailureIsReported(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var buf bytes.Buffer
	m := OpenPath(filepath.Join(blocker, "nested", "app.conf"), log.New(&buf))

	err := m.SaveFontSizeSetting(12)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to save settings")
	assert.Contains(t, buf.String(), FacetFontSize)

	assert.Equal(t, settings.Default(), m.LoadAppSettings())
}

func TestManagerLoadUnreadableFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes the read fail
	path := filepath.Join(dir, "app.conf")
	require.NoError(t, os.Mkdir(path, 0o755))

	var buf bytes.Buffer
	m := OpenPath(path, log.New(&buf))

	assert.Equal(t, settings.Default(), m.LoadAppSettings())
	assert.Contains(t, buf.String(), "using defaults")
}
