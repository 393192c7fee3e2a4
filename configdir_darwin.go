// FILE: lixenwraith/appconfig/configdir_darwin.go

//go:build darwin

package appconfig

import "os"

func osConfigDir() (string, error) {
	return darwinConfigDir(os.Getenv)
}
