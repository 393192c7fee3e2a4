// FILE: lixenwraith/appconfig/config.go
package appconfig

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Defaulter is implemented by settings types that know their own defaults.
// It is consulted when no defaults function is configured.
type Defaulter[T any] interface {
	Default() T
}

// settings holds the mutable configuration of a Manager.
type settings[T any] struct {
	organizationName string
	appName          string
	autoRecovery     bool
	autoSaving       bool
	defaults         func() T
	codec            Codec
	resolver         PathResolver
	logger           *zap.Logger
	fileMode         os.FileMode
}

// Manager binds a settings value to a config file at
// <config root>/com.<organization>.<app>/app_config.<ext>.
//
// Auto-recovery and auto-saving are enabled by default. Call Close when the
// manager is no longer needed so the auto-save runs.
type Manager[T any] struct {
	value *Value[T]

	mu         sync.Mutex // Protects cfg, lastSynced, saving, watcher and closed
	cfg        settings[T]
	lastSynced []byte // File content last read or written by this manager
	saving     int    // Saves in flight
	watcher    *watcher
	closed     bool
}

// New creates a manager for value. It does not touch the filesystem.
// A nil value is replaced by a new handle holding the defaults.
func New[T any](value *Value[T], appName, organizationName string) *Manager[T] {
	m := &Manager[T]{cfg: defaultSettings[T](appName, organizationName)}
	if value == nil {
		value = NewValue(m.cfg.newDefault())
	}
	m.value = value
	return m
}

// SetAutoRecovery controls whether Load falls back to defaults when the
// file is missing, unreadable, or malformed.
func (m *Manager[T]) SetAutoRecovery(enabled bool) *Manager[T] {
	m.mu.Lock()
	m.cfg.autoRecovery = enabled
	m.mu.Unlock()
	return m
}

// SetAutoSaving controls whether Close saves the value.
func (m *Manager[T]) SetAutoSaving(enabled bool) *Manager[T] {
	m.mu.Lock()
	m.cfg.autoSaving = enabled
	m.mu.Unlock()
	return m
}

// SetOrganizationName changes the organization part of the directory name.
func (m *Manager[T]) SetOrganizationName(name string) *Manager[T] {
	m.mu.Lock()
	m.cfg.organizationName = name
	m.mu.Unlock()
	return m
}

// SetAppName changes the application part of the directory name.
func (m *Manager[T]) SetAppName(name string) *Manager[T] {
	m.mu.Lock()
	m.cfg.appName = name
	m.mu.Unlock()
	return m
}

// SetDefaults sets the function producing default values. A nil fn restores
// the Defaulter / zero value behavior.
func (m *Manager[T]) SetDefaults(fn func() T) *Manager[T] {
	m.mu.Lock()
	m.cfg.defaults = fn
	m.mu.Unlock()
	return m
}

// AutoRecovery reports whether auto-recovery is enabled.
func (m *Manager[T]) AutoRecovery() bool { return m.snapshot().autoRecovery }

// AutoSaving reports whether auto-saving is enabled.
func (m *Manager[T]) AutoSaving() bool { return m.snapshot().autoSaving }

// OrganizationName returns the configured organization name.
func (m *Manager[T]) OrganizationName() string { return m.snapshot().organizationName }

// AppName returns the configured application name.
func (m *Manager[T]) AppName() string { return m.snapshot().appName }

// Codec returns the codec used for the config file.
func (m *Manager[T]) Codec() Codec { return m.snapshot().codec }

// Value returns the shared handle to the settings value.
func (m *Manager[T]) Value() *Value[T] { return m.value }

// Get returns a copy of the current settings value.
func (m *Manager[T]) Get() T { return m.value.Get() }

// Update modifies the settings value in place.
func (m *Manager[T]) Update(fn func(v *T)) { m.value.Update(fn) }

// Reset replaces the settings value with the defaults. The file is not touched.
func (m *Manager[T]) Reset() {
	m.value.Set(m.snapshot().newDefault())
}

// Path returns the config file path. As a side effect the containing
// directory is created if it does not exist, on every call.
func (m *Manager[T]) Path() (string, error) {
	return m.snapshot().path()
}

// Load reads the config file into the shared value.
//
// With auto-recovery enabled, a file that cannot be read or decoded resets the
// value to its defaults and Load returns nil. Without it, the error is
// returned (ErrConfigNotFound, an I/O error, or ErrDecode) and the value is
// left unchanged. Failures to resolve or create the config directory are
// always returned.
func (m *Manager[T]) Load() error {
	cfg := m.snapshot()

	path, err := cfg.path()
	if err != nil {
		return err
	}

	data, err := readConfigFile(path)
	if err == nil {
		var next T
		if next, err = cfg.decode(path, data); err == nil {
			m.value.Set(next)
			m.markSynced(data)
			cfg.logger.Debug("config loaded", zap.String("path", path), zap.String("codec", cfg.codec.Name()))
			return nil
		}
	}

	if !cfg.autoRecovery {
		return err
	}

	cfg.logger.Info("config load failed, using defaults", zap.String("path", path), zap.Error(err))
	m.value.Set(cfg.newDefault())
	m.markSynced(nil)
	return nil
}

// Save writes the current value to the config file, replacing its content.
func (m *Manager[T]) Save() error {
	cfg := m.snapshot()

	path, err := cfg.path()
	if err != nil {
		return err
	}

	var data []byte
	m.value.View(func(v *T) {
		data, err = cfg.codec.Marshal(*v)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	// Recorded before the write so a watcher never mistakes it for an external edit
	previous := m.beginSave(data)
	err = writeConfigFile(path, data, cfg.fileMode)
	m.endSave(previous, err)
	if err != nil {
		return err
	}

	cfg.logger.Debug("config saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Remove deletes the config file. A missing file is not an error.
// The in-memory value is not changed.
func (m *Manager[T]) Remove() error {
	path, err := m.Path()
	if err != nil {
		return err
	}
	if err := removeConfigFile(path); err != nil {
		return err
	}
	m.markSynced(nil)
	return nil
}

// Close releases the manager: it stops any watcher and, when auto-saving is
// enabled, saves the value. The save is best effort; its error is logged and
// never returned. Only the first call has an effect.
func (m *Manager[T]) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	w := m.watcher
	m.watcher = nil
	cfg := m.cfg
	m.mu.Unlock()

	if w != nil {
		w.stop()
	}

	if !cfg.autoSaving {
		return
	}
	if err := m.Save(); err != nil {
		cfg.logger.Warn("auto-save on close failed", zap.Error(err))
	}
}

func defaultSettings[T any](appName, organizationName string) settings[T] {
	return settings[T]{
		organizationName: organizationName,
		appName:          appName,
		autoRecovery:     true,
		autoSaving:       true,
		codec:            TOML,
		resolver:         OSResolver{},
		logger:           zap.NewNop(),
		fileMode:         DefaultFileMode,
	}
}

func (m *Manager[T]) snapshot() settings[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

func (m *Manager[T]) markSynced(data []byte) {
	m.mu.Lock()
	m.lastSynced = bytes.Clone(data)
	m.mu.Unlock()
}

// beginSave marks data as synced and returns the previous content.
func (m *Manager[T]) beginSave(data []byte) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	previous := m.lastSynced
	m.lastSynced = bytes.Clone(data)
	m.saving++
	return previous
}

// endSave restores the previous content when the write failed.
func (m *Manager[T]) endSave(previous []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saving--
	if err != nil {
		m.lastSynced = previous
	}
}

// isSynced reports whether data matches what the manager last read or wrote,
// or whether a save is still in flight.
func (m *Manager[T]) isSynced(data []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saving > 0 {
		return true
	}
	return m.lastSynced != nil && bytes.Equal(m.lastSynced, data)
}

func (c settings[T]) path() (string, error) {
	return resolveConfigPath(c.resolver, c.organizationName, c.appName, c.codec)
}

// newDefault produces a fresh default value.
func (c settings[T]) newDefault() T {
	if c.defaults != nil {
		return c.defaults()
	}
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

// decode decodes data on top of a fresh default value, so keys missing from
// the file keep their defaults.
func (c settings[T]) decode(path string, data []byte) (T, error) {
	v := c.newDefault()
	if err := c.codec.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: '%s': %w", ErrDecode, path, err)
	}
	return v, nil
}
