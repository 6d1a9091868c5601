// Package platform models the operating-system family the shell runs on.
//
// The value is chosen once at startup, either detected from runtime.GOOS or
// pinned by configuration, and every platform-dependent decision elsewhere
// (font preference order, bundle layout, named-pipe IPC) reads it from here
// instead of branching on the build target. Tests pass an explicit Platform
// to exercise another OS's behaviour on any host.
package platform
