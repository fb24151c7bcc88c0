package platform

import (
	"errors"

	"golang.org/x/sys/unix"
)

func renameExclusive(oldpath, newpath string) error {
	err := unix.RenamexNp(oldpath, newpath, unix.RENAME_EXCL)
	if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EINVAL) {
		return errUnsupported
	}
	return err
}
