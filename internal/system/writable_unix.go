//go:build unix

package system

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func checkAccess(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return &fs.PathError{Op: "access", Path: dir, Err: err}
	}
	return nil
}
