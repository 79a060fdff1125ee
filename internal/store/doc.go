// Package store provides file-based persistence for the highway network.
//
// The on-disk format is line oriented, one block per highway:
//
//	Rodovia: BR-101
//	Pedágio: R$ 15.00
//		Cidade: Rio, Distância: 0.00
//		Cidade: Niteroi, Distância: 13.00, Pedágio: R$ 5.00
//
// A toll on a city line is charged between that city and the previous one.
// Lines that do not parse are skipped rather than failing the load. Writes go
// through a temp file and a rename so a crash never leaves a truncated file.
//
// Fingerprint digests the same encoding, letting callers notice unsaved
// changes without keeping a copy of the last saved state.
package store
