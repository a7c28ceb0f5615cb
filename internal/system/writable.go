package system

import (
	"errors"
	"io/fs"
	"os"
)

var errNotDir = errors.New("not a directory")

// CheckWritableDir reports whether dir exists, is a directory and accepts new
// files. Errors are *fs.PathError so callers can match fs.ErrNotExist and
// fs.ErrPermission.
func CheckWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "stat", Path: dir, Err: errNotDir}
	}
	return checkAccess(dir)
}
