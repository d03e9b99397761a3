//go:build unix

package errs

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// Errno returns the operating system error number carried by err, or 0.
func Errno(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}

// ErrnoName returns the symbolic errno name ("ENOENT", "EACCES", ...) carried
// by err, or "" when err holds no errno.
func ErrnoName(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return unix.ErrnoName(errno)
	}
	return ""
}
