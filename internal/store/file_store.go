package store

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"highways/internal/domain"
	"highways/internal/network"
)

const fileMode os.FileMode = 0o644

// NetworkFileStore persists a registry in the line-oriented text format.
type NetworkFileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewNetworkFileStore returns a store bound to path. An empty path means
// nothing has been loaded yet; Save then fails until SaveAs names a file.
func NewNetworkFileStore(path string, log *zap.Logger) *NetworkFileStore {
	return &NetworkFileStore{path: path, log: log}
}

// Path returns the file the store reads from and saves to.
func (s *NetworkFileStore) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Load merges the bound file into reg. A missing file loads nothing.
func (s *NetworkFileStore) Load(reg *network.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return domain.ErrNoFile
	}
	return s.load(reg)
}

// LoadFrom binds the store to path and merges that file into reg.
func (s *NetworkFileStore) LoadFrom(path string, reg *network.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = path
	return s.load(reg)
}

func (s *NetworkFileStore) load(reg *network.Registry) error {
	b, err := readFile(s.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	if b == nil {
		s.log.Info("network file not found, starting empty", zap.String("path", s.path))
		return nil
	}
	stats, err := Decode(bytes.NewReader(b), reg, s.log)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.log.Info("network loaded",
		zap.String("path", s.path),
		zap.Int("highways", stats.Highways),
		zap.Int("cities", stats.Cities),
		zap.Int("tolls", stats.Tolls),
		zap.Int("skipped", stats.Skipped),
	)
	return nil
}

// Save writes reg to the bound file.
func (s *NetworkFileStore) Save(reg *network.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return domain.ErrNoFile
	}
	return s.write(s.path, reg)
}

// SaveAs writes reg to path and binds the store to it.
func (s *NetworkFileStore) SaveAs(path string, reg *network.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(path, reg); err != nil {
		return err
	}
	s.path = path
	return nil
}

func (s *NetworkFileStore) write(path string, reg *network.Registry) error {
	var buf bytes.Buffer
	if err := Encode(&buf, reg); err != nil {
		return fmt.Errorf("encode network: %w", err)
	}
	if err := writeFile(path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	for _, t := range LostTolls(reg) {
		s.log.Warn("toll not written to network file",
			zap.String("path", path),
			zap.String("highway", t.Highway),
			zap.String("from", t.From),
			zap.String("to", t.Target),
			zap.Float64("amount", t.Amount),
		)
	}
	s.log.Info("network saved", zap.String("path", path), zap.Int("highways", reg.Len()))
	return nil
}

// Compile-time assertion that NetworkFileStore implements domain.NetworkStore.
var _ domain.NetworkStore = (*NetworkFileStore)(nil)
