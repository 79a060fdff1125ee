package domain

import (
	interfaces "highways/internal/domain/interfaces"
	types "highways/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint     = types.Fingerprint
	Segment         = types.Segment
	Leg             = types.Leg
	Itinerary       = types.Itinerary
	Crossing        = types.Crossing
	CityView        = types.CityView
	HighwayView     = types.HighwayView
	HighwayRequest  = types.HighwayRequest
	CityRequest     = types.CityRequest
	TollRequest     = types.TollRequest
	RouteRequest    = types.RouteRequest
	CrossingRequest = types.CrossingRequest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	NetworkStore       = interfaces.NetworkStore
	NetworkService     = interfaces.NetworkService
	PersistenceService = interfaces.PersistenceService
)

// Sentinel errors re-exported from the types subpackage.
var (
	ErrDuplicateHighway         = types.ErrDuplicateHighway
	ErrDuplicateCity            = types.ErrDuplicateCity
	ErrHighwayNotFound          = types.ErrHighwayNotFound
	ErrCityNotFound             = types.ErrCityNotFound
	ErrStartCityNotFound        = types.ErrStartCityNotFound
	ErrEndCityNotFound          = types.ErrEndCityNotFound
	ErrEndCityNotReachedForward = types.ErrEndCityNotReachedForward
	ErrNotNeighbours            = types.ErrNotNeighbours
	ErrNoDirectConnection       = types.ErrNoDirectConnection
	ErrTooFewHighways           = types.ErrTooFewHighways
	ErrInvalidInput             = types.ErrInvalidInput
	ErrNoFile                   = types.ErrNoFile
)
