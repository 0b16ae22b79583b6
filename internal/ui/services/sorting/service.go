package sorting

import (
	"sort"
	"strings"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

// Mode is a result ordering
type Mode string

const (
	ByRelevance Mode = "relevance" // catalog order
	ByName      Mode = "name"
	ByRating    Mode = "rating"
)

var modes = []Mode{ByRelevance, ByName, ByRating}

// Service owns the result ordering of one results page
type Service struct {
	mode Mode
	bus  eventbus.EventBus
}

// NewService creates a sorter in relevance order. bus may be nil.
func NewService(bus eventbus.EventBus) *Service {
	return &Service{mode: ByRelevance, bus: bus}
}

// Mode returns the current sort mode
func (s *Service) Mode() Mode {
	return s.mode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	if mode == s.mode {
		return
	}

	old := s.mode
	s.mode = mode

	if s.bus != nil {
		s.bus.Publish(domain.SortChangedEvent{Old: string(old), New: string(mode)})
	}
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	current := 0
	for i, m := range modes {
		if m == s.mode {
			current = i
			break
		}
	}
	s.SetMode(modes[(current+1)%len(modes)])
}

// Sort returns trucks ordered by the current mode. The input is not modified.
func (s *Service) Sort(trucks []domain.Truck) []domain.Truck {
	out := make([]domain.Truck, len(trucks))
	copy(out, trucks)

	switch s.mode {
	case ByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case ByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}
