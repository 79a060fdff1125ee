package types

import "errors"

// Sentinel errors returned by the network model and the services above it.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrDuplicateHighway is returned when a highway with the same
	// case-insensitive name is already registered.
	ErrDuplicateHighway = errors.New("highway already exists")

	// ErrDuplicateCity is returned when the highway already carries a city
	// with the same case-insensitive name.
	ErrDuplicateCity = errors.New("city already exists on highway")

	// ErrHighwayNotFound is returned when no highway matches the given name.
	ErrHighwayNotFound = errors.New("highway not found")

	// ErrCityNotFound is returned when a city is missing from the highway it
	// was looked up on.
	ErrCityNotFound = errors.New("city not found on highway")

	// ErrStartCityNotFound is returned when a route's origin cannot be located.
	ErrStartCityNotFound = errors.New("start city not found")

	// ErrEndCityNotFound is returned when a route's destination cannot be located.
	ErrEndCityNotFound = errors.New("end city not found")

	// ErrEndCityNotReachedForward is returned when the destination lies
	// before the origin. Highways are only traversed in ascending distance.
	ErrEndCityNotReachedForward = errors.New("end city is not reachable travelling forward")

	// ErrNotNeighbours is returned when a toll is requested between two
	// cities that are not next to each other on their highway.
	ErrNotNeighbours = errors.New("cities are not neighbours on highway")

	// ErrNoDirectConnection is returned when the two highways of a
	// cross-highway route share no city.
	ErrNoDirectConnection = errors.New("no direct connection between highways")

	// ErrTooFewHighways is returned by reports that need at least two highways.
	ErrTooFewHighways = errors.New("at least two highways are required")

	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrNoFile is returned when saving or loading without a bound file.
var ErrNoFile = errors.New("no network file selected")
