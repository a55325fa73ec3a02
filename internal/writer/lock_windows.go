//go:build windows

package writer

import (
	"os"
)

// Robust locking on Windows requires syscall.LockFileEx; for the
// single-writer case we rely on O_APPEND atomicity instead.
func lockFile(file *os.File) error {
	return nil
}

func unlockFile(file *os.File) error {
	return nil
}
