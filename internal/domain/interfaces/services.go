package interfaces

import (
	domaintypes "highways/internal/domain/types"
)

// NetworkService edits the highway network and answers questions about it.
type NetworkService interface {
	AddHighway(req domaintypes.HighwayRequest) error
	RemoveHighway(req domaintypes.HighwayRequest) error
	AddCity(req domaintypes.CityRequest) error
	RemoveCity(req domaintypes.CityRequest) error
	AddToll(req domaintypes.TollRequest) error

	Route(req domaintypes.RouteRequest) (domaintypes.Itinerary, error)
	Crossings(req domaintypes.CrossingRequest) ([]domaintypes.Crossing, error)
	AllCrossings() ([]domaintypes.Crossing, error)

	Highways() []domaintypes.HighwayView
	Highway(name string) (domaintypes.HighwayView, error)
}

// PersistenceService loads and saves the network and tracks unsaved changes.
type PersistenceService interface {
	Load() error
	Open(path string) error
	Save() error
	SaveAs(path string) error
	Path() string
	Dirty() bool
	Fingerprint() domaintypes.Fingerprint
}
