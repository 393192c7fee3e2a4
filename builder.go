// File: lixenwraith/appconfig/builder.go
package appconfig

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for building managers
type Builder[T any] struct {
	value *Value[T]
	cfg   settings[T]
	err   error
}

// NewBuilder creates a builder with the same defaults as New.
func NewBuilder[T any](value *Value[T], appName, organizationName string) *Builder[T] {
	return &Builder[T]{
		value: value,
		cfg:   defaultSettings[T](appName, organizationName),
	}
}

// WithAutoRecovery sets whether Load falls back to defaults on failure
func (b *Builder[T]) WithAutoRecovery(enabled bool) *Builder[T] {
	b.cfg.autoRecovery = enabled
	return b
}

// WithAutoSaving sets whether Close saves the value
func (b *Builder[T]) WithAutoSaving(enabled bool) *Builder[T] {
	b.cfg.autoSaving = enabled
	return b
}

// WithOrganizationName sets the organization name
func (b *Builder[T]) WithOrganizationName(name string) *Builder[T] {
	b.cfg.organizationName = name
	return b
}

// WithAppName sets the application name
func (b *Builder[T]) WithAppName(name string) *Builder[T] {
	b.cfg.appName = name
	return b
}

// WithDefaults sets the function producing default values
func (b *Builder[T]) WithDefaults(fn func() T) *Builder[T] {
	b.cfg.defaults = fn
	return b
}

// WithCodec sets the file format; the file extension follows the codec
func (b *Builder[T]) WithCodec(codec Codec) *Builder[T] {
	if codec == nil {
		b.err = fmt.Errorf("codec cannot be nil")
		return b
	}
	b.cfg.codec = codec
	return b
}

// WithFormat selects the codec by name ("toml", "json", "yaml")
func (b *Builder[T]) WithFormat(name string) *Builder[T] {
	codec, err := CodecFor(name)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.codec = codec
	return b
}

// WithResolver sets how the config root is found
func (b *Builder[T]) WithResolver(r PathResolver) *Builder[T] {
	if r == nil {
		b.err = fmt.Errorf("path resolver cannot be nil")
		return b
	}
	b.cfg.resolver = r
	return b
}

// WithConfigRoot pins the config root to dir
func (b *Builder[T]) WithConfigRoot(dir string) *Builder[T] {
	return b.WithResolver(StaticDir(dir))
}

// WithLogger sets the logger; nil disables logging
func (b *Builder[T]) WithLogger(logger *zap.Logger) *Builder[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.cfg.logger = logger
	return b
}

// WithFileMode sets the permission applied to the config file on every save
func (b *Builder[T]) WithFileMode(mode os.FileMode) *Builder[T] {
	b.cfg.fileMode = mode
	return b
}

// Build creates the Manager with all specified options.
// It validates the names but does not touch the filesystem.
func (b *Builder[T]) Build() (*Manager[T], error) {
	if b.err != nil {
		return nil, b.err
	}

	if _, err := AppDirName(b.cfg.organizationName, b.cfg.appName); err != nil {
		return nil, err
	}

	value := b.value
	if value == nil {
		value = NewValue(b.cfg.newDefault())
	}

	return &Manager[T]{
		value: value,
		cfg:   b.cfg,
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder[T]) MustBuild() *Manager[T] {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("appconfig build failed: %v", err))
	}
	return m
}
