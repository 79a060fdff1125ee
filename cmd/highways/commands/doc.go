// Package commands defines the highways CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)       Interactive menu over the network file
//   - route        Plan a trip between two cities
//   - crossings    List cities shared by two highways, or by every pair
//   - print        Print every highway with its cities and tolls
//   - fingerprint  Print the digest of the loaded network
//
// # Implementation
//
// The root command reads configuration (flags, HIGHWAYS_* environment,
// highways.yaml) and builds the dependency graph before any subcommand runs.
// Subcommands other than the menu need a network file.
package commands
