package interfaces

import "highways/internal/network"

// NetworkStore loads and saves the whole highway network.
type NetworkStore interface {
	// Path is the file Load reads and Save writes; empty when none is bound.
	Path() string
	Load(reg *network.Registry) error
	// LoadFrom binds the store to path, then loads it.
	LoadFrom(path string, reg *network.Registry) error
	Save(reg *network.Registry) error
	// SaveAs writes to path and binds the store to it.
	SaveAs(path string, reg *network.Registry) error
}
