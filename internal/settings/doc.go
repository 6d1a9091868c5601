// Package settings provides the persistent key-value store behind user
// preferences and the typed accessors the rest of the shell reads it through.
//
// Keys are dotted strings such as "view.zoomLevel". A Store holds tagged
// values (bool, string, float, list of strings); Settings layers defaults and
// loose kind conversion on top so callers ask for the type they want. Reading
// an absent key returns the caller's default and never writes.
//
// Two stores are provided: SQLiteStore, a single-table database used by the
// shell, and MemoryStore for tests and for hosts without a writable profile.
package settings
