package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Source hands out the current catalog. Readers always see a complete,
// validated catalog; reloads swap the pointer atomically.
type Source struct {
	current atomic.Pointer[Catalog]
}

// NewSource creates a Source serving cat.
func NewSource(cat *Catalog) *Source {
	s := &Source{}
	s.current.Store(cat)
	return s
}

// Current returns the catalog in effect.
func (s *Source) Current() *Catalog {
	return s.current.Load()
}

// Reload replaces the catalog with the one at path. On error the previous
// catalog stays in effect.
func (s *Source) Reload(path string) error {
	cat, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.current.Store(cat)
	return nil
}

// Watch loads path and keeps reloading it whenever it changes until ctx is
// cancelled. The parent directory is watched so that editors that save via
// rename are picked up.
func (s *Source) Watch(ctx context.Context, path string) error {
	if err := s.Reload(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	go s.watchFile(ctx, watcher, filepath.Clean(path))

	slog.Info("Watching content catalog for changes", "path", path)
	return nil
}

func (s *Source) watchFile(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher context cancelled")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(path); err != nil {
				slog.Error("Failed to reload content catalog, keeping previous version", "path", path, "error", err)
				continue
			}
			slog.Info("Reloaded content catalog", "path", path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
