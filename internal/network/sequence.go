package network

import (
	"fmt"
	"slices"
	"sort"

	"highways/internal/domain/types"
)

// CityID identifies a city within its highway. IDs are never reused.
type CityID uint32

// City is a point on exactly one highway.
type City struct {
	id       CityID
	name     string
	distance float64
	ledger   Ledger
}

// ID returns the city's identifier within its highway.
func (c *City) ID() CityID { return c.id }

// Name returns the city name as it was inserted.
func (c *City) Name() string { return c.name }

// Distance returns the distance from the highway origin.
func (c *City) Distance() float64 { return c.distance }

// Ledger returns the tolls charged by the city.
func (c *City) Ledger() *Ledger { return &c.ledger }

// Sequence keeps a highway's cities sorted by distance. A new city goes
// immediately before the first city at the same or a greater distance, so
// among equal distances the most recent insert comes first.
type Sequence struct {
	cities []*City
	nextID CityID
}

// Insert adds a city. Names are unique per sequence ignoring case.
func (s *Sequence) Insert(name string, distance float64) (*City, error) {
	if s.Lookup(name) != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateCity, name)
	}
	i := sort.Search(len(s.cities), func(i int) bool {
		return s.cities[i].distance >= distance
	})
	return s.insertAt(i, name, distance), nil
}

// Append adds a city after every city at the same or a smaller distance, so
// cities read back in stored order keep that order among equal distances.
func (s *Sequence) Append(name string, distance float64) (*City, error) {
	if s.Lookup(name) != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateCity, name)
	}
	i := sort.Search(len(s.cities), func(i int) bool {
		return s.cities[i].distance > distance
	})
	return s.insertAt(i, name, distance), nil
}

func (s *Sequence) insertAt(i int, name string, distance float64) *City {
	s.nextID++
	c := &City{id: s.nextID, name: name, distance: distance}
	s.cities = slices.Insert(s.cities, i, c)
	return c
}

// Remove unlinks the city with exactly this name together with its tolls.
func (s *Sequence) Remove(name string) bool {
	i := slices.IndexFunc(s.cities, func(c *City) bool { return c.name == name })
	if i < 0 {
		return false
	}
	s.cities[i].ledger.clear()
	s.cities = slices.Delete(s.cities, i, i+1)
	return true
}

// Find returns the city with exactly this name.
func (s *Sequence) Find(name string) *City {
	for _, c := range s.cities {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Lookup is Find with Fold applied to both sides.
func (s *Sequence) Lookup(name string) *City {
	if i := s.index(name); i >= 0 {
		return s.cities[i]
	}
	return nil
}

// ByID returns the city with the given identifier.
func (s *Sequence) ByID(id CityID) *City {
	for _, c := range s.cities {
		if c.id == id {
			return c
		}
	}
	return nil
}

// Before returns the city preceding c, or nil when c is first.
func (s *Sequence) Before(c *City) *City {
	i := slices.Index(s.cities, c)
	if i <= 0 {
		return nil
	}
	return s.cities[i-1]
}

// Adjacent reports whether the two named cities sit next to each other.
func (s *Sequence) Adjacent(a, b string) bool {
	i, j := s.index(a), s.index(b)
	if i < 0 || j < 0 {
		return false
	}
	return i-j == 1 || j-i == 1
}

// Cities returns the cities in distance order. The slice is a copy.
func (s *Sequence) Cities() []*City {
	return slices.Clone(s.cities)
}

// Len returns the number of cities.
func (s *Sequence) Len() int { return len(s.cities) }

func (s *Sequence) index(name string) int {
	key := Fold(name)
	return slices.IndexFunc(s.cities, func(c *City) bool { return Fold(c.name) == key })
}

func (s *Sequence) clear() {
	for _, c := range s.cities {
		c.ledger.clear()
	}
	s.cities = nil
}
