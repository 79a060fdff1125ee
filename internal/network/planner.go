package network

import (
	"fmt"

	"highways/internal/domain/types"
)

// Planner computes itineraries over a registry without modifying it.
type Planner struct {
	reg *Registry
}

// NewPlanner returns a planner reading reg.
func NewPlanner(reg *Registry) *Planner { return &Planner{reg: reg} }

// HighwayRoute walks the named highway forward from start to end.
func (p *Planner) HighwayRoute(highway, start, end string) (types.Leg, error) {
	h := p.reg.Find(highway)
	if h == nil {
		return types.Leg{}, fmt.Errorf("%w: %q", types.ErrHighwayNotFound, highway)
	}
	return SingleHighwayRoute(h, start, end)
}

// SingleHighwayRoute walks h from start toward increasing distance, summing
// segment lengths and the toll between each pair of neighbouring cities,
// until it reaches end.
func SingleHighwayRoute(h *Highway, start, end string) (types.Leg, error) {
	cities := h.cities.cities
	from := h.cities.index(start)
	if from < 0 {
		return types.Leg{}, fmt.Errorf("%w: %q on %q", types.ErrStartCityNotFound, start, h.name)
	}
	if h.cities.index(end) < 0 {
		return types.Leg{}, fmt.Errorf("%w: %q on %q", types.ErrEndCityNotFound, end, h.name)
	}

	leg := types.Leg{
		Highway: h.name,
		From:    cities[from].name,
		StartKm: cities[from].distance,
	}
	endKey := Fold(end)
	if Fold(cities[from].name) == endKey {
		leg.To = cities[from].name
		return leg, nil
	}
	for i := from + 1; i < len(cities); i++ {
		prev, next := cities[i-1], cities[i]
		seg := types.Segment{
			From:     prev.name,
			To:       next.name,
			FromKm:   prev.distance,
			ToKm:     next.distance,
			Distance: next.distance - prev.distance,
		}
		if amount, ok := Between(prev, next); ok {
			seg.Toll = amount
		}
		leg.Segments = append(leg.Segments, seg)
		leg.Distance += seg.Distance
		leg.Toll += seg.Toll
		if Fold(next.name) == endKey {
			leg.To = next.name
			return leg, nil
		}
	}
	return types.Leg{}, fmt.Errorf("%w: %q precedes %q on %q",
		types.ErrEndCityNotReachedForward, end, start, h.name)
}

// CrossHighwayRoute plans a trip between two cities that may sit on
// different highways. Names are resolved across every highway with
// MatchKey. When both cities share a highway the trip stays on it;
// otherwise the first adjacency link from the start highway to the end
// highway joins two legs. The adjacency index must be current.
func (p *Planner) CrossHighwayRoute(start, end string) (types.Itinerary, error) {
	starts := p.resolve(start)
	if len(starts) == 0 {
		return types.Itinerary{}, fmt.Errorf("%w: %q", types.ErrStartCityNotFound, start)
	}
	ends := p.resolve(end)
	if len(ends) == 0 {
		return types.Itinerary{}, fmt.Errorf("%w: %q", types.ErrEndCityNotFound, end)
	}

	for _, s := range starts {
		for _, e := range ends {
			if s.highway != e.highway {
				continue
			}
			leg, err := SingleHighwayRoute(s.highway, s.city.name, e.city.name)
			if err != nil {
				return types.Itinerary{}, err
			}
			return itinerary(s.city.name, e.city.name, "", leg), nil
		}
	}

	s, e := starts[0], ends[0]
	link, ok := s.highway.ConnectionTo(e.highway.name)
	if !ok {
		return types.Itinerary{}, fmt.Errorf("%w: %q and %q",
			types.ErrNoDirectConnection, s.highway.name, e.highway.name)
	}
	first, err := SingleHighwayRoute(s.highway, s.city.name, link.City)
	if err != nil {
		return types.Itinerary{}, err
	}
	second, err := SingleHighwayRoute(e.highway, link.City, e.city.name)
	if err != nil {
		return types.Itinerary{}, err
	}
	return itinerary(s.city.name, e.city.name, link.City, first, second), nil
}

type placement struct {
	highway *Highway
	city    *City
}

// resolve finds every city matching name, in registry then distance order.
func (p *Planner) resolve(name string) []placement {
	key := MatchKey(name)
	var out []placement
	for _, h := range p.reg.highways {
		for _, c := range h.cities.cities {
			if MatchKey(c.name) == key {
				out = append(out, placement{highway: h, city: c})
			}
		}
	}
	return out
}

func itinerary(start, end, connection string, legs ...types.Leg) types.Itinerary {
	it := types.Itinerary{
		Start:      start,
		End:        end,
		Connection: connection,
		Legs:       legs,
	}
	for _, l := range legs {
		it.Distance += l.Distance
		it.Toll += l.Toll
	}
	return it
}
