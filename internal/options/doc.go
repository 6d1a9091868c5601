// Package options is the shell's single entry point for runtime options.
//
// An Options value is built once at startup from explicit collaborators and
// passed to whatever needs it. It owns the typed settings accessors with
// their defaults, and delegates derived values to the paths, fonts, and
// endpoint packages. Writes go straight to the settings store; there is no
// commit step.
//
// Options is not safe for concurrent use. The shell drives it from a single
// control thread.
package options
