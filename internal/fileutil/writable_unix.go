//go:build unix

package fileutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Writable reports whether the current user may create entries in dir.
func Writable(dir string) error {
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("directory %s not writable: %w", dir, err)
	}
	return nil
}
