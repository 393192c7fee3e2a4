// FILE: lixenwraith/appconfig/helper_test.go
package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"theme": "dark",
		"window": map[string]any{
			"size": map[string]any{"width": int64(800)},
			"pos":  []any{int64(1), int64(2)},
		},
	}

	assert.Equal(t, map[string]any{
		"theme":             "dark",
		"window.size.width": int64(800),
		"window.pos":        []any{int64(1), int64(2)},
	}, flattenMap(nested, ""))
}

func TestSetNestedValue(t *testing.T) {
	tree := map[string]any{"window": "not a table"}
	setNestedValue(tree, "window.size.width", int64(1024))
	setNestedValue(tree, "theme", "dark")

	assert.Equal(t, map[string]any{
		"window": map[string]any{
			"size": map[string]any{"width": int64(1024)},
		},
		"theme": "dark",
	}, tree)
}

func TestChangedPaths(t *testing.T) {
	before := map[string]any{
		"theme":  "light",
		"volume": 0.5,
		"window": map[string]any{"pos": []any{int64(1), int64(2)}},
		"gone":   true,
	}
	after := map[string]any{
		"theme":  "light",
		"volume": 0.75,
		"window": map[string]any{"pos": []any{int64(1), int64(3)}},
		"added":  "x",
	}

	assert.Equal(t, []string{"added", "gone", "volume", "window.pos"}, changedPaths(before, after))
	assert.Empty(t, changedPaths(before, before))
}

func TestSetKey(t *testing.T) {
	tree := make(map[string]any)

	require.NoError(t, SetKey(tree, "server.port", "8080"))
	require.NoError(t, SetKey(tree, "server.debug", "true"))
	require.NoError(t, SetKey(tree, "ratio", "0.25"))
	require.NoError(t, SetKey(tree, "name", `"quoted"`))
	require.NoError(t, SetKey(tree, "host", "example.com"))

	assert.Equal(t, map[string]any{
		"server": map[string]any{"port": int64(8080), "debug": true},
		"ratio":  0.25,
		"name":   "quoted",
		"host":   "example.com",
	}, tree)

	for _, bad := range []string{"", "server..port", ".lead", "trail.", "bad key", "semi;colon"} {
		assert.Error(t, SetKey(tree, bad, "1"), bad)
	}
}
