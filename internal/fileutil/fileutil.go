package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exists reports whether path names an existing file or directory. Stat
// errors other than not-exist are treated as absent.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates path and any missing parents. It fails when path exists
// but is not a directory.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("ensure directory: empty path")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("ensure directory %s: %w", path, err)
	}
	return nil
}

// RemoveIfExists deletes path recursively. A missing path is not an error.
func RemoveIfExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
