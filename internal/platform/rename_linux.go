package platform

import (
	"errors"

	"golang.org/x/sys/unix"
)

func renameExclusive(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	// EINVAL: filesystem without RENAME_NOREPLACE; ENOSYS: kernel before 3.15.
	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) {
		return errUnsupported
	}
	return err
}
