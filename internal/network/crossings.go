package network

import (
	"highways/internal/domain/types"
)

// Crossings lists every city carried by both highways, in a's order.
func Crossings(a, b *Highway) []types.Crossing {
	var out []types.Crossing
	for _, c1 := range a.cities.cities {
		key := Fold(c1.name)
		for _, c2 := range b.cities.cities {
			if Fold(c2.name) != key {
				continue
			}
			out = append(out, types.Crossing{
				City:     c1.name,
				First:    a.name,
				FirstKm:  c1.distance,
				Second:   b.name,
				SecondKm: c2.distance,
			})
		}
	}
	return out
}

// AllCrossings lists the crossings of every unordered pair of highways.
func (r *Registry) AllCrossings() []types.Crossing {
	var out []types.Crossing
	for i, a := range r.highways {
		for _, b := range r.highways[i+1:] {
			out = append(out, Crossings(a, b)...)
		}
	}
	return out
}
