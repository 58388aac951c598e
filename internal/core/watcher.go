package core

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const configReloadDebounce = 150 * time.Millisecond

// ConfigWatcher reloads a config file whenever it changes on disk.
type ConfigWatcher struct {
	projectRoot string
	path        string
	logger      *slog.Logger
	watcher     *fsnotify.Watcher
	onChange    func(Config, error)
}

// NewConfigWatcher watches path. onChange runs on the watcher's goroutine
// with the freshly loaded config or the load error.
func NewConfigWatcher(projectRoot, path string, logger *slog.Logger, onChange func(Config, error)) (*ConfigWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ConfigWatcher{
		projectRoot: projectRoot,
		path:        path,
		logger:      logger,
		watcher:     w,
		onChange:    onChange,
	}, nil
}

// Run blocks until ctx is done. The parent directory is watched rather
// than the file, so editors that replace the file on save are still seen.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	if err := EnsureProjectDirs(cw.projectRoot); err != nil {
		return err
	}
	if err := cw.watcher.Add(filepath.Dir(cw.path)); err != nil {
		return err
	}
	filename := filepath.Base(cw.path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce = time.After(configReloadDebounce)
			}

		case <-debounce:
			debounce = nil
			cfg, err := LoadConfig(cw.projectRoot, cw.path)
			if err != nil {
				cw.logger.Warn("config reload failed", "path", cw.path, "error", err)
			} else {
				cw.logger.Debug("config reloaded", "path", cw.path)
			}
			cw.onChange(cfg, err)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.logger.Warn("config watcher error", "error", err)
		}
	}
}
