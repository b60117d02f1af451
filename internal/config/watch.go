package config

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/theirongolddev/shelf/internal/watcher"
)

// WatchDebounce coalesces the burst of events an editor emits per save.
const WatchDebounce = 300 * time.Millisecond

// Watch watches the config file at path (DefaultPath when empty) and calls
// onChange with the reloaded config after each change. Reload failures are
// logged and skipped, keeping the previous config in effect.
// It returns a close function to stop watching.
func Watch(path string, onChange func(*Config), logger *zap.Logger, opts ...watcher.Option) (func(), error) {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	reload := func(changes []watcher.Change) {
		cfg, err := Load(absPath)
		if err != nil {
			logger.Warn("config reload failed", zap.String("path", absPath), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("path", absPath), zap.Stringer("op", changes[len(changes)-1].Op))
		if onChange != nil {
			onChange(cfg)
		}
	}

	options := append([]watcher.Option{
		watcher.WithDebounceDuration(WatchDebounce),
		watcher.WithErrorHandler(func(err error) {
			logger.Warn("config watcher error", zap.Error(err))
		}),
	}, opts...)

	w, err := watcher.New(reload, options...)
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	if err := w.Add(absPath); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching config path %s: %w", absPath, err)
	}

	return func() {
		w.Close()
	}, nil
}
