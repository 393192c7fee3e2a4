// FILE: lixenwraith/appconfig/errors.go
package appconfig

import "errors"

var (
	// ErrNoConfigDir is returned when no per-user configuration root can be determined.
	ErrNoConfigDir = errors.New("no user config directory")

	// ErrConfigNotFound is returned by Load when the config file does not exist
	// and auto-recovery is disabled.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrDecode marks content that could not be decoded into the settings type.
	ErrDecode = errors.New("failed to decode config")

	// ErrEncode marks a settings value the codec cannot represent.
	ErrEncode = errors.New("failed to encode config")

	// ErrInvalidName is returned for organization or application names that
	// cannot form a single directory name.
	ErrInvalidName = errors.New("invalid name")

	// ErrUnknownCodec is returned by CodecFor and DetectCodec.
	ErrUnknownCodec = errors.New("unknown config format")

	// ErrClosed is returned by Watch after Close.
	ErrClosed = errors.New("manager is closed")
)
