// FILE: lixenwraith/appconfig/discovery.go
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the base name of the config file inside the app directory.
// The codec extension is appended, e.g. "app_config.toml".
const ConfigFileName = "app_config"

// PathResolver maps the current user to a base configuration directory.
type PathResolver interface {
	ConfigDir() (string, error)
}

// OSResolver resolves the per-user config root following platform conventions:
//
//	Linux/Unix  $XDG_CONFIG_HOME, or $HOME/.config
//	macOS       $HOME/Library/Application Support
//	Windows     FOLDERID_LocalAppData
type OSResolver struct{}

// ConfigDir implements PathResolver.
func (OSResolver) ConfigDir() (string, error) {
	return osConfigDir()
}

// StaticDir is a PathResolver that always returns the same root.
// Useful for portable installs and tests.
type StaticDir string

// ConfigDir implements PathResolver.
func (d StaticDir) ConfigDir() (string, error) {
	if d == "" {
		return "", fmt.Errorf("%w: static directory is empty", ErrNoConfigDir)
	}
	return string(d), nil
}

// AppDirName returns the per-app directory name, "com.<organization>.<app>".
func AppDirName(organizationName, appName string) (string, error) {
	if err := validateName("organization", organizationName); err != nil {
		return "", err
	}
	if err := validateName("app", appName); err != nil {
		return "", err
	}
	return "com." + organizationName + "." + appName, nil
}

// resolveConfigPath builds the config file path and creates its directory.
// The directory is created on every call, not only before writes.
func resolveConfigPath(r PathResolver, organizationName, appName string, codec Codec) (string, error) {
	root, err := r.ConfigDir()
	if err != nil {
		return "", err
	}

	name, err := AppDirName(organizationName, appName)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	return filepath.Join(dir, ConfigFileName+"."+codec.Extension()), nil
}

// xdgConfigDir implements the Linux/Unix rule. Relative values of
// XDG_CONFIG_HOME are invalid under the XDG base directory rules and ignored.
func xdgConfigDir(getenv func(string) string) (string, error) {
	if xdgHome := getenv("XDG_CONFIG_HOME"); xdgHome != "" && filepath.IsAbs(xdgHome) {
		return xdgHome, nil
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config"), nil
	}
	return "", fmt.Errorf("%w: neither $XDG_CONFIG_HOME nor $HOME is set", ErrNoConfigDir)
}

func darwinConfigDir(getenv func(string) string) (string, error) {
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, "Library", "Application Support"), nil
	}
	return "", fmt.Errorf("%w: $HOME is not set", ErrNoConfigDir)
}

// windowsEnvConfigDir is the fallback when the known-folder lookup fails.
func windowsEnvConfigDir(getenv func(string) string) (string, error) {
	if dir := strings.TrimSpace(getenv("LOCALAPPDATA")); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("%w: %%LOCALAPPDATA%% is not set", ErrNoConfigDir)
}
