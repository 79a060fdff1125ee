package types

// Requests carry user input into the services. Field tags are checked with
// go-playground/validator before anything touches the network.

// HighwayRequest names a highway to insert or remove.
type HighwayRequest struct {
	Name string `validate:"required,max=49"`
}

// CityRequest places a city on a highway. Distance is ignored on removal.
type CityRequest struct {
	Highway  string  `validate:"required,max=49"`
	Name     string  `validate:"required,max=49"`
	Distance float64 `validate:"gte=0"`
}

// TollRequest charges Amount on the way from From to To on one highway.
type TollRequest struct {
	Highway string  `validate:"required,max=49"`
	From    string  `validate:"required,max=49"`
	To      string  `validate:"required,max=49,nefield=From"`
	Amount  float64 `validate:"gte=0"`
}

// RouteRequest asks for an itinerary. When Highway is set the trip is
// restricted to that highway.
type RouteRequest struct {
	Highway string `validate:"omitempty,max=49"`
	Start   string `validate:"required,max=49"`
	End     string `validate:"required,max=49"`
}

// CrossingRequest names the two highways of a crossing report.
type CrossingRequest struct {
	First  string `validate:"required,max=49"`
	Second string `validate:"required,max=49,nefield=First"`
}
