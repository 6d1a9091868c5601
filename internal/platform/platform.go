package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is a target operating-system family.
type Platform int

const (
	Linux Platform = iota
	MacOS
	Windows
)

// Detect maps the build target onto a Platform. Unknown unix flavours are
// treated as Linux.
func Detect() Platform {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) Platform {
	switch goos {
	case "darwin", "ios":
		return MacOS
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// Parse accepts the names used in the bootstrap config. An empty value
// returns Detect().
func Parse(value string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return Detect(), nil
	case "linux":
		return Linux, nil
	case "macos", "darwin", "osx":
		return MacOS, nil
	case "windows":
		return Windows, nil
	default:
		return Linux, fmt.Errorf("unknown platform %q", value)
	}
}

func (p Platform) String() string {
	switch p {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	default:
		return "linux"
	}
}

// UsesNamedPipes reports whether local IPC to the worker process goes over
// named pipes, which requires publishing a local peer identifier.
func (p Platform) UsesNamedPipes() bool {
	return p == Windows
}

// BundleLayout reports whether installs are application bundles with an
// Info.plist descriptor and a Resources directory.
func (p Platform) BundleLayout() bool {
	return p == MacOS
}

// ExecutableSuffix is appended to helper binary names.
func (p Platform) ExecutableSuffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}
