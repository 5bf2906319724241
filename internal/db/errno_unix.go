//go:build unix

package db

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoCode names the OS error behind a dial failure, e.g. ECONNREFUSED.
func errnoCode(err error) (string, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) || errno == 0 {
		return "", false
	}
	if name := unix.ErrnoName(errno); name != "" {
		return name, true
	}
	return "", false
}
