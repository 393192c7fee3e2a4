// File: lixenwraith/appconfig/helper.go
package appconfig

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]

		if nextMap, isMap := current[segment].(map[string]any); isMap {
			current = nextMap
			continue
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}

// changedPaths returns the sorted dot-paths whose values differ between two trees,
// including paths present in only one of them.
func changedPaths(before, after map[string]any) []string {
	oldFlat := flattenMap(before, "")
	newFlat := flattenMap(after, "")

	var changed []string
	for path, oldValue := range oldFlat {
		newValue, exists := newFlat[path]
		if !exists || !reflect.DeepEqual(oldValue, newValue) {
			changed = append(changed, path)
		}
	}
	for path := range newFlat {
		if _, exists := oldFlat[path]; !exists {
			changed = append(changed, path)
		}
	}

	sort.Strings(changed)
	return changed
}

// SetKey assigns raw to the dot-separated path in tree, creating intermediate
// tables. raw is parsed as a bool, integer or float when possible, otherwise
// it is stored as a string.
func SetKey(tree map[string]any, path string, raw string) error {
	if path == "" {
		return fmt.Errorf("key path cannot be empty")
	}
	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("invalid key segment %q in path %q", segment, path)
		}
	}

	setNestedValue(tree, path, parseValue(raw))
	return nil
}

// parseValue attempts to parse a string into appropriate types
func parseValue(s string) any {
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}

// isValidKeySegment checks if a single path segment is a valid TOML bare key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}

	// TOML bare keys are sequences of ASCII letters, ASCII digits, underscores, and dashes (A-Za-z0-9_-).
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// validateName checks that an organization or app name forms a single,
// harmless directory name component.
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s name cannot be empty", ErrInvalidName, kind)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %s name %q", ErrInvalidName, kind, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %s name %q contains a path separator", ErrInvalidName, kind, name)
	}
	return nil
}
