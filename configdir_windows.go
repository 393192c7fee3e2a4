// FILE: lixenwraith/appconfig/configdir_windows.go

//go:build windows

package appconfig

import (
	"os"

	"golang.org/x/sys/windows"
)

func osConfigDir() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_DEFAULT)
	if err == nil && dir != "" {
		return dir, nil
	}
	return windowsEnvConfigDir(os.Getenv)
}
