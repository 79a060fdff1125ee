// Package app wires application dependencies for the CLI.
//
// It reads Config through viper, builds the logger, the network registry,
// the file store and the high-level services, and exposes them via the Wire
// struct for commands to use. Open additionally loads the configured file.
package app
