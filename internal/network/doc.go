// Package network models a set of named highways and plans trips over them.
//
// A Registry owns Highways; a Highway owns a Sequence of Cities kept in
// non-decreasing distance order; a City owns a Ledger of directed tolls.
// Removing any of them drops everything beneath it.
//
// # Names
//
// Every name comparison goes through Fold: surrounding whitespace is
// trimmed and Unicode case folding applied. Cross-highway city resolution
// additionally drops a trailing ", <annotation>" (see MatchKey).
//
// # Routing
//
// Trips only move forward along a highway (ascending distance). A trip
// between two highways uses exactly one connecting city taken from the
// adjacency index, which callers rebuild with Registry.RebuildAdjacency
// before planning.
//
// The package is not safe for concurrent use.
package network
