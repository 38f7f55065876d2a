package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors path and calls onChange with the config returned by load
// each time the file is written or replaced. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so saves that
// rename a temporary file over path keep being seen.
//
// A failed reload is logged, passed to onError if it is non-nil, and skipped;
// onChange only sees configs that loaded and validated.
func Watch(ctx context.Context, path string, load func(string) (*Config, error), onChange func(*Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	slog.Debug("config: watching for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// a rename over path arrives as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := load(path)
			if err == nil {
				err = cfg.Validate()
			}
			if err != nil {
				slog.Warn("config: reload failed, keeping previous config", "path", path, "err", err)
				if onError != nil {
					onError(err)
				}
				continue
			}

			slog.Debug("config: reloaded", "path", path)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
