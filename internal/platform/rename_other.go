//go:build !linux && !darwin

package platform

func renameExclusive(oldpath, newpath string) error {
	return errUnsupported
}
