package preview

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/obsidian2md/internal/logfields"
)

// WatchVault watches the vault tree and invokes rebuild after filesystem
// changes settle for the debounce interval. New directories are picked up as
// they appear. Blocks until ctx is canceled.
func WatchVault(ctx context.Context, root string, debounce time.Duration, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	slog.Info("Watching vault for changes", logfields.Root(root))

	// The timer starts drained; each event rearms it.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := addRecursive(watcher, event.Name); addErr != nil {
						slog.Warn("Could not watch new directory", logfields.Path(event.Name), logfields.Error(addErr))
					}
				}
			}
			slog.Debug("Vault change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(debounce)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(watchErr))
		case <-timer.C:
			rebuild()
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
