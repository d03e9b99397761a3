//go:build !unix

package errs

import (
	"errors"
	"syscall"
)

// Errno returns the operating system error number carried by err, or 0.
func Errno(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}

// ErrnoName is only resolved on unix platforms.
func ErrnoName(err error) string {
	return ""
}
