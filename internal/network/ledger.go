package network

// Toll is a directed charge applied when travelling from the owning city
// toward Target. Target need not exist as a city.
type Toll struct {
	Target string
	Amount float64
}

// Ledger holds the tolls charged by one city. The newest entry shadows older
// ones with the same target.
type Ledger struct {
	// oldest first; reads walk it backwards
	entries []Toll
}

// Add records a toll toward target. Existing entries are kept.
func (l *Ledger) Add(target string, amount float64) {
	l.entries = append(l.entries, Toll{Target: target, Amount: amount})
}

// Find returns the newest toll toward target.
func (l *Ledger) Find(target string) (float64, bool) {
	key := Fold(target)
	for i := len(l.entries) - 1; i >= 0; i-- {
		if Fold(l.entries[i].Target) == key {
			return l.entries[i].Amount, true
		}
	}
	return 0, false
}

// Latest returns the most recently added entry.
func (l *Ledger) Latest() (Toll, bool) {
	if len(l.entries) == 0 {
		return Toll{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Entries returns a copy of the ledger, newest first.
func (l *Ledger) Entries() []Toll {
	out := make([]Toll, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Total sums every entry regardless of target.
func (l *Ledger) Total() float64 {
	var sum float64
	for _, e := range l.entries {
		sum += e.Amount
	}
	return sum
}

func (l *Ledger) clear() { l.entries = nil }

// Between returns the toll charged between two neighbouring cities. a's
// entry toward b wins; b's entry toward a is only consulted when a has none.
func Between(a, b *City) (float64, bool) {
	if amount, ok := a.ledger.Find(b.name); ok {
		return amount, true
	}
	return b.ledger.Find(a.name)
}
