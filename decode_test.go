// FILE: lixenwraith/appconfig/decode_test.go
package appconfig

import (
	"math"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromTreeHooks tests the decode hooks used by the JSON and YAML codecs
func TestFromTreeHooks(t *testing.T) {
	type NetworkConfig struct {
		IP       net.IP        `toml:"ip"`
		Subnet   net.IPNet     `toml:"subnet"`
		Endpoint *url.URL      `toml:"endpoint"`
		Interval time.Duration `toml:"interval"`
		Count    uint16        `toml:"count"`
	}

	t.Run("ValidValues", func(t *testing.T) {
		var got NetworkConfig
		err := fromTree(map[string]any{
			"ip":       "192.168.1.10",
			"subnet":   "10.0.0.0/8",
			"endpoint": "https://example.com:8443/api",
			"interval": "1m30s",
			"count":    int64(12),
		}, &got)
		require.NoError(t, err)

		assert.Equal(t, "192.168.1.10", got.IP.String())
		assert.Equal(t, "10.0.0.0/8", got.Subnet.String())
		require.NotNil(t, got.Endpoint)
		assert.Equal(t, "example.com:8443", got.Endpoint.Host)
		assert.Equal(t, 90*time.Second, got.Interval)
		assert.Equal(t, uint16(12), got.Count)
	})

	tests := []struct {
		name  string
		field string
		value any
	}{
		{"InvalidIP", "ip", "999.1.1.1"},
		{"OverlongIP", "ip", "1111:2222:3333:4444:5555:6666:7777:8888:9999:0000"},
		{"InvalidCIDR", "subnet", "10.0.0.0/99"},
		{"InvalidURL", "endpoint", "http://[::1"},
		{"InvalidDuration", "interval", "soon"},
		{"StringNumber", "count", "12"},
		{"NegativeUnsigned", "count", int64(-1)},
		{"Overflow", "count", int64(70000)},
		{"FractionalInteger", "count", 1.5},
		{"BoolNumber", "count", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got NetworkConfig
			assert.Error(t, fromTree(map[string]any{tt.field: tt.value}, &got))
		})
	}

	t.Run("NonPointerTarget", func(t *testing.T) {
		var got NetworkConfig
		err := fromTree(map[string]any{}, got)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-nil pointer")
	})
}

// TestNumericRangeHook tests the numeric checks applied by fromTree
func TestNumericRangeHook(t *testing.T) {
	type limits struct {
		Small  int8    `toml:"small"`
		Big    uint64  `toml:"big"`
		Ratio  float32 `toml:"ratio"`
		Signed int     `toml:"signed"`
	}

	var got limits
	require.NoError(t, fromTree(map[string]any{
		"small":  int64(-128),
		"big":    uint64(math.MaxUint64),
		"ratio":  0.5,
		"signed": 42.0,
	}, &got))
	assert.Equal(t, limits{Small: -128, Big: math.MaxUint64, Ratio: 0.5, Signed: 42}, got)

	for name, tree := range map[string]map[string]any{
		"IntUnderflow":   {"small": int64(-129)},
		"UintFromNeg":    {"big": -1.0},
		"FloatOverflow":  {"ratio": math.MaxFloat64},
		"IntFromBigUint": {"signed": uint64(math.MaxUint64)},
	} {
		t.Run(name, func(t *testing.T) {
			var got limits
			assert.Error(t, fromTree(tree, &got))
		})
	}
}

// TestToTree tests the generic table produced for a settings value
func TestToTree(t *testing.T) {
	tree, err := toTree(sampleServerSettings())
	require.NoError(t, err)

	assert.Equal(t, "example.com", tree["host"])
	assert.Equal(t, int64(9000), tree["port"])
	assert.Equal(t, []any{"primary", "replica"}, tree["tags"])

	tls, ok := tree["tls"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, tls["enabled"])

	_, err = toTree("scalar")
	assert.Error(t, err, "top-level values must be tables")
}
