// FILE: lixenwraith/appconfig/loader.go
package appconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Codec converts settings values to and from a text format.
type Codec interface {
	// Name is the format name, e.g. "toml".
	Name() string
	// Extension is the file extension without the leading dot.
	Extension() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// TOML is the default codec. Struct fields are named by their `toml` tags.
	TOML Codec = tomlCodec{}

	// JSON writes indented JSON. It honors the same `toml` tags as TOML.
	JSON Codec = jsonCodec{}

	// YAML writes YAML. It honors the same `toml` tags as TOML.
	YAML Codec = yamlCodec{}
)

// CodecFor returns the codec registered under name ("toml", "json", "yaml"; "yml" and "tml" are aliases).
func CodecFor(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml", "tml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// DetectCodec picks a codec from the extension of path.
func DetectCodec(path string) (Codec, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: no extension in '%s'", ErrUnknownCodec, path)
	}
	return CodecFor(ext)
}

type tomlCodec struct{}

func (tomlCodec) Name() string      { return "toml" }
func (tomlCodec) Extension() string { return "toml" }

func (tomlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

type jsonCodec struct{}

func (jsonCodec) Name() string      { return "json" }
func (jsonCodec) Extension() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	tree, err := toTree(v)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	tree := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision
	if err := decoder.Decode(&tree); err != nil {
		return err
	}
	return fromTree(normalizeNumbers(tree).(map[string]any), v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string      { return "yaml" }
func (yamlCodec) Extension() string { return "yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	tree, err := toTree(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	tree := make(map[string]any)
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}
	return fromTree(tree, v)
}

// normalizeNumbers replaces json.Number leaves with int64 or float64 so that
// untyped targets end up with the same values the TOML codec produces.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for key, value := range x {
			x[key] = normalizeNumbers(value)
		}
		return x
	case []any:
		for i, value := range x {
			x[i] = normalizeNumbers(value)
		}
		return x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}
