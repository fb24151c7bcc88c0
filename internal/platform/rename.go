package platform

import (
	"errors"
	"os"
)

// RenameNoReplace moves oldpath to newpath and fails with an error matching
// fs.ErrExist if newpath already exists, even as an empty directory. Where
// the kernel or filesystem cannot refuse atomically it falls back to
// os.Rename, which still refuses non-empty directories.
func RenameNoReplace(oldpath, newpath string) error {
	err := renameExclusive(oldpath, newpath)
	if errors.Is(err, errUnsupported) {
		return os.Rename(oldpath, newpath)
	}
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	return nil
}

var errUnsupported = errors.New("exclusive rename not supported")
