// Package config reads and writes the better-terminal settings file
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// AppName names the config directory and file.
const AppName = "better-terminal"

// ResolvePath returns <home>/.config/better-terminal/better-terminal.conf.
// It reports false when no home directory can be found.
func ResolvePath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".config", AppName, AppName+".conf"), true
}

// Store performs whole-file reads and scoped rewrites of one config file.
// It keeps no settings in memory.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a store for path. A nil logger discards diagnostics.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// ReadRaw returns the file content, or "" when the file or its directory
// does not exist.
func (s *Store) ReadRaw() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return string(data), nil
}

// WriteScoped reads the current file, applies render to its lines and
// replaces the file with the result. On error the file is left as it was.
func (s *Store) WriteScoped(render RenderFunc) error {
	raw, err := s.ReadRaw()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content := strings.Join(render(splitLines(raw)), "\n")
	if err := atomicWriteFile(s.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	s.logger.Debug("config written", "path", s.path)
	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it over path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("setting temp file permissions: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}
