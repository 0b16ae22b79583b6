package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNotification        EventType = "Notification"
	EventNavigationRequested EventType = "NavigationRequested"
	EventViewResolved        EventType = "ViewResolved"
	EventFilterChanged       EventType = "FilterChanged"
	EventSearchSubmitted     EventType = "SearchSubmitted"
	EventCatalogLoaded       EventType = "CatalogLoaded"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventSortChanged         EventType = "SortChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NotificationEvent carries a toast to anyone listening
type NotificationEvent struct {
	Notification Notification
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// NavigationRequestedEvent is emitted when a view asks to move to another path
type NavigationRequestedEvent struct {
	Path  string
	State *NavigationState // nil when no state is attached
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// ViewResolvedEvent is emitted after the dispatcher resolves a path
type ViewResolvedEvent struct {
	Path     string
	View     string
	Params   map[string]string
	NotFound bool
	HasState bool
}

func (e ViewResolvedEvent) Type() EventType { return EventViewResolved }

// FilterChangedEvent is emitted when the active cuisine chip changes
type FilterChangedEvent struct {
	Active CuisineID // CuisineNone when cleared
	Label  string
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// SearchSubmittedEvent is emitted for every submit attempt
type SearchSubmittedEvent struct {
	Query    string
	Cuisine  CuisineID
	Accepted bool
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// CatalogLoadedEvent is emitted once the truck catalog is ready
type CatalogLoadedEvent struct {
	Source string
	Trucks int
	Events int
	Pages  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	StartPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SortChangedEvent is emitted when a results page changes its ordering
type SortChangedEvent struct {
	Old string
	New string
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }
