package search

import (
	"fmt"
	"strings"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

// ResultsPath is where submitted searches and quick actions navigate
const ResultsPath = "/find-trucks"

// Service is the hero search bar and cuisine chip controller. It keeps the
// state of a single mounted view and is driven from the UI update loop.
// None of its operations fail; problems are reported through the Notifier.
type Service struct {
	state   State
	filters []domain.Filter
	nav     Navigator
	notify  Notifier
	bus     eventbus.EventBus
}

// NewService creates a controller over the given chip set. An empty set
// falls back to domain.DefaultFilters. bus may be nil.
func NewService(nav Navigator, notify Notifier, bus eventbus.EventBus, filters []domain.Filter) *Service {
	if len(filters) == 0 {
		filters = domain.DefaultFilters()
	}
	fs := make([]domain.Filter, len(filters))
	copy(fs, filters)

	return &Service{
		filters: fs,
		nav:     nav,
		notify:  notify,
		bus:     bus,
	}
}

// OnQueryChange replaces the query text. Nothing is validated here.
func (s *Service) OnQueryChange(text string) {
	s.state.Query = text
	if text == "" && !s.state.Focused {
		s.state.Expanded = false
	}
}

// OnFocus expands the search bar
func (s *Service) OnFocus() {
	s.state.Focused = true
	s.state.Expanded = true
}

// OnBlur collapses the search bar unless there is text in it
func (s *Service) OnBlur() {
	s.state.Focused = false
	if s.state.Query == "" {
		s.state.Expanded = false
	}
}

// OnFilterToggle selects a chip, or clears it when it is already active.
// Unknown ids are ignored.
func (s *Service) OnFilterToggle(id domain.CuisineID) {
	if _, ok := s.filter(id); !ok {
		return
	}

	if s.state.Active == id {
		s.state.Active = domain.CuisineNone
	} else {
		s.state.Active = id
	}

	label := s.ActiveLabel()
	s.notify.Notify(domain.NotifySuccess, fmt.Sprintf(MsgFilterSelected, label))
	s.publish(eventbus.FilterChangedEvent{Active: s.state.Active, Label: label})
}

// OnClear empties the query and collapses the bar
func (s *Service) OnClear() {
	s.state.Query = ""
	s.state.Expanded = false
}

// OnSubmit navigates to the results view when the trimmed query is not
// empty. The raw query travels in the navigation state.
func (s *Service) OnSubmit() {
	if strings.TrimSpace(s.state.Query) == "" {
		s.notify.Notify(domain.NotifyError, MsgEmptyQuery)
		s.publish(eventbus.SearchSubmittedEvent{Query: s.state.Query, Cuisine: s.state.Active})
		return
	}

	query := s.state.Query
	s.notify.Notify(domain.NotifySuccess, fmt.Sprintf(MsgSearchingFor, query))
	s.publish(eventbus.SearchSubmittedEvent{Query: query, Cuisine: s.state.Active, Accepted: true})
	s.nav.Navigate(ResultsPath, &domain.NavigationState{
		SearchQuery: query,
		Cuisine:     s.state.Active,
	})
}

// OnQuickAction runs one of the hero shortcuts. QuickLocate only notifies;
// no location lookup happens.
func (s *Service) OnQuickAction(kind QuickAction) {
	switch kind {
	case QuickNearby:
		s.notify.Notify(domain.NotifySuccess, MsgNearby)
		s.nav.Navigate(ResultsPath, nil)
	case QuickMap:
		s.notify.Notify(domain.NotifySuccess, MsgLiveMap)
		s.nav.Navigate(ResultsPath, &domain.NavigationState{ViewMode: domain.ViewModeMap})
	case QuickLocate:
		s.notify.Notify(domain.NotifySuccess, MsgLocate)
	}
}

// Reset drops all state, as when the owning view is torn down
func (s *Service) Reset() {
	s.state = State{}
}

// State returns a snapshot of the controller state
func (s *Service) State() State {
	return s.state
}

func (s *Service) Query() string { return s.state.Query }

func (s *Service) Expanded() bool { return s.state.Expanded }

func (s *Service) Focused() bool { return s.state.Focused }

func (s *Service) ActiveFilter() domain.CuisineID { return s.state.Active }

// ActiveLabel returns the active chip's label, or the default label
func (s *Service) ActiveLabel() string {
	if f, ok := s.filter(s.state.Active); ok {
		return f.Label
	}
	return domain.DefaultFilterLabel
}

// Filters returns the chip set in display order
func (s *Service) Filters() []domain.Filter {
	out := make([]domain.Filter, len(s.filters))
	copy(out, s.filters)
	return out
}

func (s *Service) filter(id domain.CuisineID) (domain.Filter, bool) {
	if id == domain.CuisineNone {
		return domain.Filter{}, false
	}
	for _, f := range s.filters {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Filter{}, false
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
