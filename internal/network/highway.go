package network

// Highway is a named route owning its cities and its adjacency links.
type Highway struct {
	name      string
	cities    Sequence
	totalToll float64
	links     []Link
}

// Name returns the highway name as it was inserted.
func (h *Highway) Name() string { return h.name }

// Cities returns the highway's city sequence.
func (h *Highway) Cities() *Sequence { return &h.cities }

// TotalToll recomputes and caches the sum of every toll entry of every city
// on the highway. It is a structural total, not the cost of any trip.
func (h *Highway) TotalToll() float64 {
	var sum float64
	for _, c := range h.cities.cities {
		sum += c.ledger.Total()
	}
	h.totalToll = sum
	return sum
}

// CachedToll returns the total from the last TotalToll call or SetCachedToll.
func (h *Highway) CachedToll() float64 { return h.totalToll }

// SetCachedToll primes the cached total, e.g. from a saved file header.
func (h *Highway) SetCachedToll(v float64) { h.totalToll = v }

func (h *Highway) destroy() {
	h.cities.clear()
	h.links = nil
	h.totalToll = 0
}
