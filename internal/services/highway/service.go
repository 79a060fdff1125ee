package highway

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"highways/internal/domain"
	"highways/internal/network"
)

// Service edits a registry and plans routes over it.
type Service struct {
	reg     *network.Registry
	planner *network.Planner
	val     *validation
	log     *zap.Logger
}

// New returns a service backed by reg.
func New(reg *network.Registry, log *zap.Logger) *Service {
	return &Service{
		reg:     reg,
		planner: network.NewPlanner(reg),
		val:     newValidation(),
		log:     log,
	}
}

// AddHighway registers an empty highway.
func (s *Service) AddHighway(req domain.HighwayRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.val.check(req); err != nil {
		return err
	}
	if _, err := s.reg.Insert(req.Name); err != nil {
		return err
	}
	s.log.Info("highway added", zap.String("highway", req.Name))
	return nil
}

// RemoveHighway removes a highway and everything it owns.
func (s *Service) RemoveHighway(req domain.HighwayRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.val.check(req); err != nil {
		return err
	}
	if !s.reg.Remove(req.Name) {
		return fmt.Errorf("%w: %q", domain.ErrHighwayNotFound, req.Name)
	}
	s.log.Info("highway removed", zap.String("highway", req.Name))
	return nil
}

// AddCity places a city on a highway.
func (s *Service) AddCity(req domain.CityRequest) error {
	req.Highway = strings.TrimSpace(req.Highway)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.val.check(req); err != nil {
		return err
	}
	if _, err := s.reg.InsertCity(req.Highway, req.Name, req.Distance); err != nil {
		return err
	}
	s.log.Info("city added",
		zap.String("highway", req.Highway),
		zap.String("city", req.Name),
		zap.Float64("km", req.Distance))
	return nil
}

// RemoveCity removes a city and its tolls from a highway.
func (s *Service) RemoveCity(req domain.CityRequest) error {
	req.Highway = strings.TrimSpace(req.Highway)
	req.Name = strings.TrimSpace(req.Name)
	req.Distance = 0
	if err := s.val.check(req); err != nil {
		return err
	}
	if err := s.reg.RemoveCity(req.Highway, req.Name); err != nil {
		return err
	}
	s.log.Info("city removed", zap.String("highway", req.Highway), zap.String("city", req.Name))
	return nil
}

// AddToll charges req.Amount from req.From toward req.To. The two cities
// must be neighbours; the network file only carries tolls between
// consecutive cities.
func (s *Service) AddToll(req domain.TollRequest) error {
	req.Highway = strings.TrimSpace(req.Highway)
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	if err := s.val.check(req); err != nil {
		return err
	}
	if network.SameName(req.From, req.To) {
		return fmt.Errorf("%w: toll from %q to itself", domain.ErrInvalidInput, req.From)
	}
	if h := s.reg.Find(req.Highway); h != nil {
		cities := h.Cities()
		if cities.Lookup(req.From) != nil && cities.Lookup(req.To) != nil && !cities.Adjacent(req.From, req.To) {
			return fmt.Errorf("%w: %q and %q on %q", domain.ErrNotNeighbours, req.From, req.To, h.Name())
		}
	}
	if err := s.reg.AddToll(req.Highway, req.From, req.To, req.Amount); err != nil {
		return err
	}
	s.log.Info("toll added",
		zap.String("highway", req.Highway),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Float64("amount", req.Amount))
	return nil
}

// Route plans a trip. With req.Highway set the trip must stay on that
// highway; otherwise cities are resolved across the whole network.
func (s *Service) Route(req domain.RouteRequest) (domain.Itinerary, error) {
	req.Highway = strings.TrimSpace(req.Highway)
	req.Start = strings.TrimSpace(req.Start)
	req.End = strings.TrimSpace(req.End)
	if err := s.val.check(req); err != nil {
		return domain.Itinerary{}, err
	}

	if req.Highway != "" {
		leg, err := s.planner.HighwayRoute(req.Highway, req.Start, req.End)
		if err != nil {
			return domain.Itinerary{}, err
		}
		return domain.Itinerary{
			Start:    leg.From,
			End:      leg.To,
			Legs:     []domain.Leg{leg},
			Distance: leg.Distance,
			Toll:     leg.Toll,
		}, nil
	}

	s.reg.RebuildAdjacency()
	it, err := s.planner.CrossHighwayRoute(req.Start, req.End)
	if err != nil {
		s.log.Debug("route failed", zap.String("start", req.Start), zap.String("end", req.End), zap.Error(err))
		return domain.Itinerary{}, err
	}
	return it, nil
}

// Crossings lists the cities shared by two highways.
func (s *Service) Crossings(req domain.CrossingRequest) ([]domain.Crossing, error) {
	req.First = strings.TrimSpace(req.First)
	req.Second = strings.TrimSpace(req.Second)
	if err := s.val.check(req); err != nil {
		return nil, err
	}
	a := s.reg.Find(req.First)
	if a == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrHighwayNotFound, req.First)
	}
	b := s.reg.Find(req.Second)
	if b == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrHighwayNotFound, req.Second)
	}
	if a == b {
		return nil, fmt.Errorf("%w: %q given twice", domain.ErrInvalidInput, a.Name())
	}
	return network.Crossings(a, b), nil
}

// AllCrossings lists the shared cities of every pair of highways.
func (s *Service) AllCrossings() ([]domain.Crossing, error) {
	if s.reg.Len() < 2 {
		return nil, domain.ErrTooFewHighways
	}
	return s.reg.AllCrossings(), nil
}

// Highways returns a snapshot of every highway with freshly computed totals.
func (s *Service) Highways() []domain.HighwayView {
	hs := s.reg.Highways()
	out := make([]domain.HighwayView, 0, len(hs))
	for _, h := range hs {
		out = append(out, view(h))
	}
	return out
}

// Highway returns a snapshot of one highway.
func (s *Service) Highway(name string) (domain.HighwayView, error) {
	h := s.reg.Find(strings.TrimSpace(name))
	if h == nil {
		return domain.HighwayView{}, fmt.Errorf("%w: %q", domain.ErrHighwayNotFound, name)
	}
	return view(h), nil
}

func view(h *network.Highway) domain.HighwayView {
	v := domain.HighwayView{Name: h.Name(), TotalToll: h.TotalToll()}
	for _, c := range h.Cities().Cities() {
		cv := domain.CityView{Name: c.Name(), Distance: c.Distance()}
		if t, ok := c.Ledger().Latest(); ok {
			cv.Toll, cv.HasToll = t.Amount, true
		}
		v.Cities = append(v.Cities, cv)
	}
	return v
}

// Compile-time assertion that Service implements domain.NetworkService.
var _ domain.NetworkService = (*Service)(nil)
