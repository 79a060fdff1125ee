package network

import (
	"fmt"
	"slices"

	"highways/internal/domain/types"
)

// Registry is the set of highways, kept in insertion order.
type Registry struct {
	highways []*Highway
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Insert registers an empty highway. Names are unique ignoring case.
func (r *Registry) Insert(name string) (*Highway, error) {
	if r.Find(name) != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateHighway, name)
	}
	h := &Highway{name: name}
	r.highways = append(r.highways, h)
	return h, nil
}

// Remove destroys the named highway with its cities, tolls and links.
func (r *Registry) Remove(name string) bool {
	key := Fold(name)
	i := slices.IndexFunc(r.highways, func(h *Highway) bool { return Fold(h.name) == key })
	if i < 0 {
		return false
	}
	r.highways[i].destroy()
	r.highways = slices.Delete(r.highways, i, i+1)
	return true
}

// Find returns the highway with this name ignoring case.
func (r *Registry) Find(name string) *Highway {
	key := Fold(name)
	for _, h := range r.highways {
		if Fold(h.name) == key {
			return h
		}
	}
	return nil
}

// Highways returns the registered highways in insertion order.
func (r *Registry) Highways() []*Highway { return slices.Clone(r.highways) }

// Len returns the number of highways.
func (r *Registry) Len() int { return len(r.highways) }

// Ensure returns the named highway, registering it first if needed.
func (r *Registry) Ensure(name string) *Highway {
	if h := r.Find(name); h != nil {
		return h
	}
	h := &Highway{name: name}
	r.highways = append(r.highways, h)
	return h
}

// InsertCity places a city on the named highway.
func (r *Registry) InsertCity(highway, city string, distance float64) (*City, error) {
	h := r.Find(highway)
	if h == nil {
		return nil, fmt.Errorf("%w: %q", types.ErrHighwayNotFound, highway)
	}
	return h.cities.Insert(city, distance)
}

// RemoveCity removes a city, matched ignoring case, from the named highway.
func (r *Registry) RemoveCity(highway, city string) error {
	h := r.Find(highway)
	if h == nil {
		return fmt.Errorf("%w: %q", types.ErrHighwayNotFound, highway)
	}
	c := h.cities.Lookup(city)
	if c == nil || !h.cities.Remove(c.name) {
		return fmt.Errorf("%w: %q on %q", types.ErrCityNotFound, city, h.name)
	}
	return nil
}

// AddToll charges amount when travelling from one city toward another on
// the same highway. Both cities must exist at the time of the call.
func (r *Registry) AddToll(highway, from, to string, amount float64) error {
	h := r.Find(highway)
	if h == nil {
		return fmt.Errorf("%w: %q", types.ErrHighwayNotFound, highway)
	}
	src := h.cities.Lookup(from)
	if src == nil {
		return fmt.Errorf("%w: %q on %q", types.ErrCityNotFound, from, h.name)
	}
	dst := h.cities.Lookup(to)
	if dst == nil {
		return fmt.Errorf("%w: %q on %q", types.ErrCityNotFound, to, h.name)
	}
	src.ledger.Add(dst.name, amount)
	return nil
}

// Close tears the registry down, releasing every highway.
func (r *Registry) Close() {
	for _, h := range r.highways {
		h.destroy()
	}
	r.highways = nil
}
