// Package persistence loads and saves the network through a domain.NetworkStore
// and remembers the fingerprint of the last state read or written, so callers
// can ask whether there are unsaved changes.
package persistence
