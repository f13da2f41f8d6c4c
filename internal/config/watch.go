package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/iiroan/better-terminal/internal/settings"
)

// Watch calls fn with the current settings once the watcher is in place, then
// with freshly loaded settings whenever the config file changes, skipping
// reloads that produce the same settings. It blocks until ctx is done.
//
// The directory is watched rather than the file because saves replace the
// file by rename.
func (m *Manager) Watch(ctx context.Context, fn func(settings.AppSettings)) error {
	if m.store == nil {
		return ErrNoConfigPath
	}
	path := filepath.Clean(m.store.Path())
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	m.logger.Debug("watching config", "path", path)

	last := m.LoadAppSettings()
	fn(last)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			current := m.LoadAppSettings()
			if reflect.DeepEqual(current, last) {
				continue
			}
			last = current
			m.logger.Debug("config changed", "path", path, "op", event.Op.String())
			fn(current)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Warn("config watcher error", "err", err)
		}
	}
}
