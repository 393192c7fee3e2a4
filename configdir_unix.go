// FILE: lixenwraith/appconfig/configdir_unix.go

//go:build !darwin && !windows

package appconfig

import "os"

func osConfigDir() (string, error) {
	return xdgConfigDir(os.Getenv)
}
