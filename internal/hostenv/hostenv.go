// Package hostenv wraps the process primitives the resolvers depend on so
// tests can substitute them.
package hostenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// OS is the real process environment.
type OS struct{}

// Executable returns the absolute, symlink-resolved path of the running binary.
func (OS) Executable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve executable %s: %w", path, err)
	}
	return resolved, nil
}

// Setenv sets a variable that child processes started afterwards inherit.
func (OS) Setenv(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("setenv %s: %w", key, err)
	}
	return nil
}

// Getenv returns the value of key, or "" when unset.
func (OS) Getenv(key string) string {
	return os.Getenv(key)
}
