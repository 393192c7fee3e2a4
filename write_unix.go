// FILE: lixenwraith/appconfig/write_unix.go

//go:build !windows

package appconfig

import (
	"os"

	"github.com/google/renameio/v2"
)

// atomicWriteFile writes through a temporary file in the same directory and
// renames it over path, so readers never observe a partial file. perm is
// applied on every write, including over an existing file.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithStaticPermissions(perm))
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
