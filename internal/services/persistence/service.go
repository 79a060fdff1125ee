package persistence

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"highways/internal/domain"
	"highways/internal/network"
	"highways/internal/store"
)

// Service tracks the saved state of one registry.
type Service struct {
	reg   *network.Registry
	store domain.NetworkStore
	saved domain.Fingerprint
	log   *zap.Logger
}

// New returns a service for reg backed by st. The registry's current state
// counts as saved.
func New(reg *network.Registry, st domain.NetworkStore, log *zap.Logger) *Service {
	return &Service{reg: reg, store: st, saved: store.Fingerprint(reg), log: log}
}

// Load merges the store's bound file into the registry.
func (s *Service) Load() error {
	if err := s.store.Load(s.reg); err != nil {
		return err
	}
	s.mark()
	return nil
}

// Open binds the store to path and loads it.
func (s *Service) Open(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: empty file name", domain.ErrInvalidInput)
	}
	if err := s.store.LoadFrom(path, s.reg); err != nil {
		return err
	}
	s.mark()
	return nil
}

// Save writes the registry to the bound file.
func (s *Service) Save() error {
	if err := s.store.Save(s.reg); err != nil {
		return err
	}
	s.mark()
	return nil
}

// SaveAs writes the registry to path and binds the store to it.
func (s *Service) SaveAs(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: empty file name", domain.ErrInvalidInput)
	}
	if err := s.store.SaveAs(path, s.reg); err != nil {
		return err
	}
	s.mark()
	return nil
}

// Path returns the bound file, if any.
func (s *Service) Path() string { return s.store.Path() }

// Dirty reports whether the registry changed since the last load or save.
func (s *Service) Dirty() bool { return s.Fingerprint() != s.saved }

// Fingerprint digests the registry's current state.
func (s *Service) Fingerprint() domain.Fingerprint { return store.Fingerprint(s.reg) }

func (s *Service) mark() {
	s.saved = s.Fingerprint()
	s.log.Debug("network state marked saved", zap.String("fingerprint", s.saved.String()))
}

// Compile-time assertion that Service implements domain.PersistenceService.
var _ domain.PersistenceService = (*Service)(nil)
