// Package config loads, normalizes, and validates the deskshell bootstrap
// configuration.
//
// The bootstrap file is TOML and only carries what must be known before the
// settings store is open: where that store lives, the log directory, the
// scratch root, the target platform override, and font lookup tuning. User
// preferences themselves live in the settings store, not here.
package config
