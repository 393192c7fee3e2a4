// FILE: lixenwraith/appconfig/builder_test.go
package appconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestBuilder tests the fluent configuration interface
func TestBuilder(t *testing.T) {
	t.Run("AllOptions", func(t *testing.T) {
		root := t.TempDir()
		value := NewValue(windowSettings{})
		m, err := NewBuilder(value, "placeholder", "placeholder").
			WithAppName("myapp").
			WithOrganizationName("sumibi-yakitori").
			WithAutoRecovery(false).
			WithAutoSaving(false).
			WithFormat("yaml").
			WithConfigRoot(root).
			WithFileMode(0600).
			WithLogger(nil).
			Build()
		require.NoError(t, err)

		assert.Same(t, value, m.Value())
		assert.False(t, m.AutoRecovery())
		assert.False(t, m.AutoSaving())
		assert.Equal(t, "yaml", m.Codec().Name())

		path, err := m.Path()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "com.sumibi-yakitori.myapp", "app_config.yaml"), path)
	})

	t.Run("NilValueUsesBuilderDefaults", func(t *testing.T) {
		m, err := NewBuilder[appSettings](nil, "myapp", "sumibi-yakitori").
			WithDefaults(defaultAppSettings).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "light", m.Get().Theme)
	})

	t.Run("InvalidNames", func(t *testing.T) {
		_, err := NewBuilder(NewValue(windowSettings{}), "", "sumibi-yakitori").Build()
		assert.ErrorIs(t, err, ErrInvalidName)

		assert.Panics(t, func() {
			NewBuilder(NewValue(windowSettings{}), "myapp", "a/b").MustBuild()
		})
	})

	t.Run("InvalidOptions", func(t *testing.T) {
		_, err := NewBuilder(NewValue(windowSettings{}), "myapp", "acme").WithFormat("ini").Build()
		assert.ErrorIs(t, err, ErrUnknownCodec)

		_, err = NewBuilder(NewValue(windowSettings{}), "myapp", "acme").WithCodec(nil).Build()
		assert.Error(t, err)

		_, err = NewBuilder(NewValue(windowSettings{}), "myapp", "acme").WithResolver(nil).Build()
		assert.Error(t, err)
	})

	t.Run("LoggerReceivesRecovery", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		m := NewBuilder(NewValue(windowSettings{}), "myapp", "sumibi-yakitori").
			WithConfigRoot(t.TempDir()).
			WithLogger(zap.New(core)).
			MustBuild()

		require.NoError(t, m.Load())
		assert.Equal(t, 1, logs.FilterMessage("config load failed, using defaults").Len())

		require.NoError(t, m.Save())
		assert.Equal(t, 1, logs.FilterMessage("config saved").Len())
	})
}
