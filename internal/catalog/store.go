package catalog

import (
	"fmt"
	"strings"
	"sync"

	"trucktrack/internal/domain"
)

// Store provides read access to catalog data
type Store interface {
	Truck(id string) (domain.Truck, error)
	Trucks() []domain.Truck
	Search(query string, cuisine domain.CuisineID) []domain.Truck
	Events() []domain.Event
	Page(slug string) (domain.Page, error)
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu     sync.RWMutex
	trucks map[string]domain.Truck
	order  []string
	events []domain.Event
	pages  map[string]domain.Page
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trucks: make(map[string]domain.Truck),
		pages:  make(map[string]domain.Page),
	}
}

// Replace swaps the store contents for data
func (s *MemoryStore) Replace(data *Data) {
	trucks := make(map[string]domain.Truck, len(data.Trucks))
	order := make([]string, 0, len(data.Trucks))
	for _, t := range data.Trucks {
		key := normalizeKey(t.ID)
		trucks[key] = t
		order = append(order, key)
	}

	pages := make(map[string]domain.Page, len(data.Pages))
	for _, p := range data.Pages {
		pages[normalizeKey(p.Slug)] = p
	}

	events := make([]domain.Event, len(data.Events))
	copy(events, data.Events)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trucks = trucks
	s.order = order
	s.pages = pages
	s.events = events
}

// AddTruck inserts or replaces a truck
func (s *MemoryStore) AddTruck(t domain.Truck) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeKey(t.ID)
	if _, ok := s.trucks[key]; !ok {
		s.order = append(s.order, key)
	}
	s.trucks[key] = t
}

// Truck looks a truck up by id, ignoring case
func (s *MemoryStore) Truck(id string) (domain.Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trucks[normalizeKey(id)]
	if !ok {
		return domain.Truck{}, fmt.Errorf("%w: %q", ErrTruckNotFound, id)
	}
	return t, nil
}

// Trucks returns every truck in catalog order
func (s *MemoryStore) Trucks() []domain.Truck {
	return s.Search("", domain.CuisineNone)
}

// Search returns trucks whose name, description or tags contain query
// (case-insensitive) and whose cuisine matches. CuisineAll and CuisineNone
// match every truck.
func (s *MemoryStore) Search(query string, cuisine domain.CuisineID) []domain.Truck {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]domain.Truck, 0, len(s.order))
	for _, key := range s.order {
		t := s.trucks[key]
		if cuisine != domain.CuisineNone && cuisine != domain.CuisineAll && t.Cuisine != cuisine {
			continue
		}
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Events returns a copy of the events list
func (s *MemoryStore) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Event, len(s.events))
	copy(result, s.events)
	return result
}

// Page looks a content page up by slug
func (s *MemoryStore) Page(slug string) (domain.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pages[normalizeKey(slug)]
	if !ok {
		return domain.Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, slug)
	}
	return p, nil
}

func matchesQuery(t domain.Truck, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
