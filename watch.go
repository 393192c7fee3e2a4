// FILE: lixenwraith/appconfig/watch.go
package appconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchOptions configures file watching behavior
type WatchOptions struct {
	// Debounce coalesces bursts of file events (minimum MinDebounce)
	Debounce time.Duration

	// OnReload is called from the watcher goroutine after each reload attempt.
	// changed lists the dot-paths whose values differ from the previous value.
	// On error the previous value is kept. Optional; must not call Close.
	OnReload func(changed []string, err error)
}

// DefaultWatchOptions returns sensible defaults for file watching
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{Debounce: DefaultDebounce}
}

// watcher tracks a running watch loop
type watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (w *watcher) stop() {
	w.cancel()
	<-w.done
}

// Watch reloads the settings value whenever the config file is changed by
// someone else. Writes made by this manager are recognized and skipped.
// Unlike Load, a reload never falls back to defaults: an unreadable or
// malformed file keeps the current value and is reported to OnReload.
//
// Watching stops when ctx is done or the manager is closed. Calling Watch
// again replaces the running watcher.
func (m *Manager[T]) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	} else if opts.Debounce < MinDebounce {
		opts.Debounce = MinDebounce
	}

	path, err := m.Path()
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// The directory is watched because atomic saves replace the file.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch config directory '%s': %w", filepath.Dir(path), err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = fsw.Close()
		return ErrClosed
	}
	previous := m.watcher
	watchCtx, cancel := context.WithCancel(ctx)
	w := &watcher{cancel: cancel, done: make(chan struct{})}
	m.watcher = w
	logger := m.cfg.logger
	m.mu.Unlock()

	if previous != nil {
		previous.stop()
	}

	logger.Debug("config watcher started", zap.String("path", path))
	go m.watchLoop(watchCtx, fsw, path, opts, w.done)
	return nil
}

func (m *Manager[T]) watchLoop(ctx context.Context, fsw *fsnotify.Watcher, path string, opts WatchOptions, done chan struct{}) {
	defer close(done)
	defer fsw.Close()

	logger := m.snapshot().logger
	path = filepath.Clean(path)

	var debounceTimer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			logger.Debug("config watcher stopped", zap.String("path", path))
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// Write and Create cover in-place edits and rename-over saves
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(opts.Debounce)
			} else {
				debounceTimer.Reset(opts.Debounce)
			}
			fire = debounceTimer.C

		case <-fire:
			fire = nil
			changed, reloaded, err := m.reload(path)
			if err != nil {
				logger.Warn("config reload failed, keeping current value", zap.String("path", path), zap.Error(err))
			} else if reloaded {
				logger.Info("config reloaded", zap.String("path", path), zap.Strings("changed", changed))
			}
			if opts.OnReload != nil && (reloaded || err != nil) {
				opts.OnReload(changed, err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

// reload reads path and applies it unless it matches what the manager last
// read or wrote.
func (m *Manager[T]) reload(path string) (changed []string, reloaded bool, err error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, false, err
	}
	if m.isSynced(data) {
		return nil, false, nil
	}

	cfg := m.snapshot()
	next, err := cfg.decode(path, data)
	if err != nil {
		return nil, false, err
	}

	var current T
	m.value.View(func(v *T) { current = *v })
	changed, diffErr := changedKeys(current, next)
	if diffErr != nil {
		cfg.logger.Warn("cannot list changed config keys", zap.String("path", path), zap.Error(diffErr))
	}

	m.value.Set(next)
	m.markSynced(data)
	return changed, true, nil
}

// changedKeys lists the dot-paths that differ between two settings values.
func changedKeys[T any](before, after T) ([]string, error) {
	oldTree, err := toTree(before)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	newTree, err := toTree(after)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return changedPaths(oldTree, newTree), nil
}
