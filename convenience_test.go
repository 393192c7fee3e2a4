// FILE: lixenwraith/appconfig/convenience_test.go
package appconfig

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Run("LoadsDefaultsOnFirstRun", func(t *testing.T) {
		value := NewValue(windowSettings{WindowPos: [2]uint32{1, 1}})
		m, err := Open(value, "first-run", "sumibi-yakitori")
		require.NoError(t, err)
		defer m.Close()

		assert.Equal(t, [2]uint32{320, 280}, value.Get().WindowPos)
	})

	t.Run("LoadsSavedValue", func(t *testing.T) {
		value := NewValue(windowSettings{}.Default())
		m := MustOpen(value, "saved", "sumibi-yakitori")
		value.Update(func(s *windowSettings) { s.WindowPos = [2]uint32{640, 480} })
		m.Close()

		fresh := NewValue(windowSettings{}.Default())
		m = MustOpen(fresh, "saved", "sumibi-yakitori")
		defer m.Close()
		assert.Equal(t, [2]uint32{640, 480}, fresh.Get().WindowPos)
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := Open(NewValue(windowSettings{}), "", "sumibi-yakitori")
		assert.ErrorIs(t, err, ErrInvalidName)

		assert.Panics(t, func() {
			MustOpen(NewValue(windowSettings{}), "..", "sumibi-yakitori")
		})
	})
}
