package network

import "slices"

// Link records that the owning highway meets Highway at City.
type Link struct {
	Highway string
	City    string
}

// RebuildAdjacency discards every highway's links and recomputes them from
// the current cities. A link is recorded on h1 for each city of h1 (in
// distance order) and each other highway h2 that carries the same name.
func (r *Registry) RebuildAdjacency() {
	for _, h := range r.highways {
		h.links = nil
	}
	for _, h1 := range r.highways {
		for _, c1 := range h1.cities.cities {
			for _, h2 := range r.highways {
				if h2 == h1 {
					continue
				}
				if h2.cities.Lookup(c1.name) != nil {
					h1.links = append(h1.links, Link{Highway: h2.name, City: c1.name})
				}
			}
		}
	}
}

// Neighbors returns the highway's links, most recently discovered first.
// It is empty until RebuildAdjacency has run.
func (h *Highway) Neighbors() []Link {
	out := slices.Clone(h.links)
	slices.Reverse(out)
	return out
}

// ConnectionTo returns the first link toward the named highway.
func (h *Highway) ConnectionTo(highway string) (Link, bool) {
	key := Fold(highway)
	for i := len(h.links) - 1; i >= 0; i-- {
		if Fold(h.links[i].Highway) == key {
			return h.links[i], true
		}
	}
	return Link{}, false
}
