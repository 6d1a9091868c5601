// Package logging assembles structured slog loggers used across deskshell.
//
// It owns the console and JSON handlers, maps level/format strings from the
// bootstrap config onto slog, and exposes NewComponentLogger so every
// component tags its lines with a stable component attribute. NewNop returns
// a logger for tests and wiring code that has nothing to log to.
package logging
