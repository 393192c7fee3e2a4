// File: lixenwraith/appconfig/io.go
package appconfig

import (
	"errors"
	"fmt"
	"os"
)

// DefaultFileMode is the permission applied to written config files.
const DefaultFileMode os.FileMode = 0644

// readConfigFile reads path, mapping a missing file to ErrConfigNotFound.
func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return data, nil
}

// writeConfigFile replaces the content of path with data in full.
func writeConfigFile(path string, data []byte, perm os.FileMode) error {
	if err := atomicWriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write config file '%s': %w", path, err)
	}
	return nil
}

// removeConfigFile deletes path; a missing file is not an error.
func removeConfigFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove config file '%s': %w", path, err)
	}
	return nil
}
