//go:build !windows

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile acquires an exclusive non-blocking flock on the file.
func lockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

// unlockFile releases the lock.
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
