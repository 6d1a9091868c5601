//go:build !unix

package fileutil

import (
	"fmt"
	"os"
)

// Writable reports whether dir exists. Directory ACLs are not inspected on
// this platform; creation failures surface from the caller's mkdir.
func Writable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %s not accessible: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
