package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file at path is written, created or
// renamed into place and hands every valid result to onChange. The parent
// directory is watched so that editors replacing the file atomically are
// noticed. Invalid configs are logged and skipped. Watch blocks until ctx is
// cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	expandedPath := filepath.Clean(ExpandPath(path))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(expandedPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(expandedPath), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != expandedPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadAndValidateConfig(expandedPath)
			if err != nil {
				log.Printf("[CONFIG] Ignoring change to %s: %v", expandedPath, err)
				continue
			}
			log.Printf("[CONFIG] Reloaded %s", expandedPath)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[CONFIG] Watcher error: %v", err)
		}
	}
}
