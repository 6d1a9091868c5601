// Package main hosts the deskopts CLI, a terminal front end to the desktop
// shell's runtime options.
//
// Each invocation loads the bootstrap configuration, opens the settings
// database, and builds the same options object the shell uses at startup, so
// what deskopts prints is what the shell would resolve on this machine.
// Subcommands inspect and edit stored options, show resolved paths, fonts,
// and the worker endpoint, and scaffold the configuration file.
package main
