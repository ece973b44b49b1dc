// Package fs implements the file-backed key-value store.
// Each key lives in its own JSON file under the store directory; writes are
// atomic so a crash never leaves a partially written value behind.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	Dir       string
	AutoInit  bool // create the directory when missing
	MustExist bool // fail Initialize when the directory is missing
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures (e.g. permission
	// denied) which are otherwise only logged.
	ErrorHandler func(error)
}

// Store implements core.Store on top of a directory of files.
type Store struct {
	dir    string
	config Config
}

// NewStore creates a filesystem-backed store rooted at config.Dir.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{dir: filepath.Clean(config.Dir), config: config}
}

// Initialize ensures the store directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.Dir == "" {
		return fmt.Errorf("store directory is empty")
	}

	info, err := os.Stat(s.dir)
	switch {
	case os.IsNotExist(err):
		if s.config.MustExist {
			return fmt.Errorf("store directory does not exist: %s", s.dir)
		}
		if !s.config.AutoInit {
			return fmt.Errorf("store directory does not exist: %s (enable auto-init to create it)", s.dir)
		}
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to stat store directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("store path is not a directory: %s", s.dir)
	}

	return nil
}

// Get reads the value stored under key. A missing file is not an error:
// it reports ok=false, the never-written state.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set overwrites the value stored under key using an atomic
// temp-file-and-rename write.
func (s *Store) Set(ctx context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.config.Logger.Debug("writing store key", "key", key, "path", path, "bytes", len(value))

	if err := writeFileAtomic(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// path maps a key to its backing file. Keys are flat names: separators are
// rejected so a key can never escape the store directory.
func (s *Store) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("store key is empty")
	}
	if strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("store key contains a path separator: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// keyFromPath is the inverse of path, used by the watcher.
// It returns ok=false for files that do not look like store values.
func (s *Store) keyFromPath(name string) (string, bool) {
	base := filepath.Base(name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return "", false
	}
	key := strings.TrimSuffix(base, ".json")
	if key == base || key == "" {
		return "", false
	}
	return key, true
}
