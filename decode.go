// FILE: lixenwraith/appconfig/decode.go
package appconfig

import (
	"fmt"
	"math"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// toTree renders v as the generic table the TOML codec would produce for it.
// Every non-TOML codec writes this tree, so `toml` tags name fields in all formats.
func toTree(v any) (map[string]any, error) {
	data, err := TOML.Marshal(v)
	if err != nil {
		return nil, err
	}

	tree := make(map[string]any)
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to rebuild TOML tree: %w", err)
	}
	return tree, nil
}

// fromTree decodes a generic table into target, the inverse of toTree.
func fromTree(tree map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: false,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	return decoder.Decode(tree)
}

// decodeHook returns the composite decode hook for all type conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Network types
		stringToNetIPHookFunc(),
		stringToNetIPNetHookFunc(),
		stringToURLHookFunc(),

		// Numbers must fit the target type
		numericRangeHookFunc(),

		// Standard hooks
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// stringToNetIPHookFunc handles net.IP conversion
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 45 { // Max IPv6 length
			return nil, fmt.Errorf("invalid IP length: %d", len(str))
		}

		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// stringToNetIPNetHookFunc handles net.IPNet conversion
func stringToNetIPNetHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(net.IPNet{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 49 { // Max IPv6 CIDR length
			return nil, fmt.Errorf("invalid CIDR length: %d", len(str))
		}
		_, ipnet, err := net.ParseCIDR(str)
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR: %w", err)
		}
		if isPtr {
			return ipnet, nil
		}
		return *ipnet, nil
	}
}

// stringToURLHookFunc handles url.URL conversion
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}

// numericRangeHookFunc rejects numbers the target integer or float32 type
// cannot hold, and fractional values for integer targets.
func numericRangeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if data == nil {
			return data, nil
		}
		v := reflect.ValueOf(data)
		target := reflect.New(t).Elem()

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			switch f.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				if target.OverflowInt(v.Int()) {
					return nil, fmt.Errorf("%d is out of range for %s", v.Int(), t)
				}
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				if u := v.Uint(); u > math.MaxInt64 || target.OverflowInt(int64(u)) {
					return nil, fmt.Errorf("%d is out of range for %s", u, t)
				}
			case reflect.Float32, reflect.Float64:
				fl := v.Float()
				if fl != math.Trunc(fl) {
					return nil, fmt.Errorf("%v is not an integer", fl)
				}
				if fl < math.MinInt64 || fl >= math.MaxInt64 || target.OverflowInt(int64(fl)) {
					return nil, fmt.Errorf("%v is out of range for %s", fl, t)
				}
			}

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			switch f.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				if i := v.Int(); i < 0 || target.OverflowUint(uint64(i)) {
					return nil, fmt.Errorf("%d is out of range for %s", i, t)
				}
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				if target.OverflowUint(v.Uint()) {
					return nil, fmt.Errorf("%d is out of range for %s", v.Uint(), t)
				}
			case reflect.Float32, reflect.Float64:
				fl := v.Float()
				if fl != math.Trunc(fl) {
					return nil, fmt.Errorf("%v is not an integer", fl)
				}
				if fl < 0 || fl >= math.MaxUint64 || target.OverflowUint(uint64(fl)) {
					return nil, fmt.Errorf("%v is out of range for %s", fl, t)
				}
			}

		case reflect.Float32:
			switch f.Kind() {
			case reflect.Float32, reflect.Float64:
				if target.OverflowFloat(v.Float()) {
					return nil, fmt.Errorf("%v is out of range for %s", v.Float(), t)
				}
			}
		}
		return data, nil
	}
}
