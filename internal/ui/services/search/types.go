package search

import "trucktrack/internal/domain"

// State holds the controller's per-view state
type State struct {
	Query    string
	Expanded bool
	Focused  bool
	Active   domain.CuisineID // CuisineNone when no chip is selected
}

// QuickAction names a hero shortcut button
type QuickAction string

const (
	QuickNearby QuickAction = "nearby"
	QuickMap    QuickAction = "map"
	QuickLocate QuickAction = "locate"
)

// Navigator receives navigation requests
type Navigator interface {
	Navigate(path string, state *domain.NavigationState)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string, state *domain.NavigationState)

func (f NavigatorFunc) Navigate(path string, state *domain.NavigationState) { f(path, state) }

// Notifier receives transient user-facing messages. Implementations must
// not block.
type Notifier interface {
	Notify(kind domain.NotificationKind, message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(kind domain.NotificationKind, message string)

func (f NotifierFunc) Notify(kind domain.NotificationKind, message string) { f(kind, message) }

// Notification texts
const (
	MsgEmptyQuery     = "Please enter a search term"
	MsgSearchingFor   = "Searching for: %s"
	MsgFilterSelected = "Filter selected: %s"
	MsgNearby         = "Finding trucks near you..."
	MsgLiveMap        = "Viewing live map..."
	MsgLocate         = "Using your current location"
)
