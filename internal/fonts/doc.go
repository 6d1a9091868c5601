// Package fonts selects the proportional and fixed-width font families the
// shell hands to its styling layer.
//
// Selection walks a platform-ordered preference list and returns the first
// family the host reports as installed (and monospaced, when required). If
// nothing matches, a generic CSS keyword is returned instead. Concrete
// families render quoted and generic keywords unquoted, because a quoted
// "monospace" asks the styling layer for a font literally named monospace.
//
// A family stored by the user under font.proportional or font.fixedWidth
// always wins and is re-read on every call; detected choices are computed
// once per Selector.
package fonts
