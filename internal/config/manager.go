package config

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/iiroan/better-terminal/internal/settings"
)

// ErrNoConfigPath is returned by operations that need a file when no config
// path could be resolved.
var ErrNoConfigPath = errors.New("no config path: home directory not found")

// Manager is the settings boundary used by front ends. Loads never fail and
// every failure is reported through the logger.
type Manager struct {
	store  *Store
	logger *log.Logger
}

// NewManager wraps store. A nil store gives a manager that always loads the
// defaults and silently skips saves.
func NewManager(store *Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{store: store, logger: logger}
}

// Open resolves the config path under the home directory once.
func Open(logger *log.Logger) *Manager {
	path, ok := ResolvePath()
	if !ok {
		return NewManager(nil, logger)
	}
	return NewManager(NewStore(path, logger), logger)
}

// OpenPath returns a manager for an explicit config file.
func OpenPath(path string, logger *log.Logger) *Manager {
	return NewManager(NewStore(path, logger), logger)
}

// Path returns the config file path, or "" when there is none.
func (m *Manager) Path() string {
	if m.store == nil {
		return ""
	}
	return m.store.Path()
}

// LoadAppSettings reads and parses the config file. Missing or unreadable
// files yield the defaults.
func (m *Manager) LoadAppSettings() settings.AppSettings {
	if m.store == nil {
		return settings.Default()
	}
	raw, err := m.store.ReadRaw()
	if err != nil {
		m.logger.Warn("could not read config, using defaults", "path", m.store.Path(), "err", err)
		return settings.Default()
	}
	return Parse(raw)
}

// SaveColorSettings rewrites the color lines.
func (m *Manager) SaveColorSettings(b settings.ColorBundle) error {
	b = b.Clone()
	return m.save(FacetColors, ColorPairs(b), func(existing []string) []string {
		return RenderColors(existing, b)
	})
}

// SaveTitleBarSetting rewrites the titlebar line.
func (m *Manager) SaveTitleBarSetting(visible bool) error {
	return m.save(FacetTitleBar, TitleBarPairs(visible), func(existing []string) []string {
		return RenderTitleBar(existing, visible)
	})
}

// SaveFontFamilySetting rewrites the font_family line.
func (m *Manager) SaveFontFamilySetting(family string) error {
	return m.save(FacetFontFamily, FontFamilyPairs(family), func(existing []string) []string {
		return RenderFontFamily(existing, family)
	})
}

// SaveFontSizeSetting rewrites the font_size line.
func (m *Manager) SaveFontSizeSetting(size float64) error {
	return m.save(FacetFontSize, FontSizePairs(size), func(existing []string) []string {
		return RenderFontSize(existing, size)
	})
}

// save reports failures to the logger before returning them, so callers may
// ignore the error. Values that would break into extra lines are refused
// before the file is touched.
func (m *Manager) save(facet string, pairs []Pair, render RenderFunc) error {
	if err := CheckPairs(pairs); err != nil {
		m.logger.Error("refusing to save settings", "facet", facet, "err", err)
		return err
	}
	if m.store == nil {
		m.logger.Debug("no config path, not saving", "facet", facet)
		return nil
	}
	if err := m.store.WriteScoped(render); err != nil {
		m.logger.Error("failed to save settings", "facet", facet, "path", m.store.Path(), "err", err)
		return err
	}
	m.logger.Debug("settings saved", "facet", facet, "path", m.store.Path())
	return nil
}
