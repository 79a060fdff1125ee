package types

// Segment is the stretch between two consecutive cities of a highway.
type Segment struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	FromKm   float64 `json:"from_km"`
	ToKm     float64 `json:"to_km"`
	Distance float64 `json:"distance"`
	Toll     float64 `json:"toll"`
}

// Leg is a forward walk along a single highway.
type Leg struct {
	Highway  string    `json:"highway"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	StartKm  float64   `json:"start_km"`
	Segments []Segment `json:"segments"`
	Distance float64   `json:"distance"`
	Toll     float64   `json:"toll"`
}

// Itinerary is a complete trip: one leg when origin and destination share a
// highway, two legs joined at Connection otherwise.
type Itinerary struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Connection string  `json:"connection,omitempty"`
	Legs       []Leg   `json:"legs"`
	Distance   float64 `json:"distance"`
	Toll       float64 `json:"toll"`
}

// Direct reports whether the trip stays on one highway.
func (it Itinerary) Direct() bool { return len(it.Legs) < 2 }

// Crossing is a city carried by two highways, with its position on each.
type Crossing struct {
	City     string  `json:"city"`
	First    string  `json:"first"`
	FirstKm  float64 `json:"first_km"`
	Second   string  `json:"second"`
	SecondKm float64 `json:"second_km"`
}

// CityView is a read-only snapshot of a city for listings.
type CityView struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	// Toll is the most recently added toll charged by the city, if any.
	Toll    float64 `json:"toll,omitempty"`
	HasToll bool    `json:"has_toll"`
}

// HighwayView is a read-only snapshot of a highway for listings.
type HighwayView struct {
	Name      string     `json:"name"`
	TotalToll float64    `json:"total_toll"`
	Cities    []CityView `json:"cities"`
}
