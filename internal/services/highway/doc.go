// Package highway validates user requests and applies them to the network.
//
// It sits between the console (or CLI commands) and internal/network:
// requests are trimmed, checked with go-playground/validator, applied to
// the registry, and logged. Route requests rebuild the adjacency index
// before planning so cross-highway trips always see current state.
package highway
