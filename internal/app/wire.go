package app

import (
	"go.uber.org/zap"

	"highways/internal/domain"
	"highways/internal/logging"
	"highways/internal/network"
	highwaysvc "highways/internal/services/highway"
	persistencesvc "highways/internal/services/persistence"
	"highways/internal/store"
)

// Wire bundles the registry, store, and services for the CLI.
type Wire struct {
	Config   Config
	Log      *zap.Logger
	Registry *network.Registry
	Store    domain.NetworkStore
	Network  domain.NetworkService
	Files    domain.PersistenceService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}
	return NewWireWithLogger(cfg, log), nil
}

// NewWireWithLogger is NewWire with a caller-supplied logger.
func NewWireWithLogger(cfg Config, log *zap.Logger) *Wire {
	// The registry is the single owner of all network state.
	reg := network.NewRegistry()

	// File-based store
	networkStore := store.NewNetworkFileStore(cfg.DataFile, log)

	// High-level services
	networkSvc := highwaysvc.New(reg, log)
	filesSvc := persistencesvc.New(reg, networkStore, log)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Registry: reg,
		Store:    networkStore,
		Network:  networkSvc,
		Files:    filesSvc,
	}
}
