package domain

// CuisineID identifies a cuisine filter chip. The zero value means no filter.
type CuisineID string

const (
	CuisineNone    CuisineID = ""
	CuisineAll     CuisineID = "all"
	CuisineMexican CuisineID = "mexican"
	CuisineAsian   CuisineID = "asian"
	CuisineBBQ     CuisineID = "bbq"
	CuisineVegan   CuisineID = "vegan"
	CuisineDessert CuisineID = "dessert"
	CuisineCoffee  CuisineID = "coffee"
)

// DefaultFilterLabel is shown when no filter is active
const DefaultFilterLabel = "All"

// Filter is a selectable cuisine chip
type Filter struct {
	ID    CuisineID `toml:"id"`
	Label string    `toml:"label"`
}

// DefaultFilters returns the stock chip set in display order
func DefaultFilters() []Filter {
	return []Filter{
		{ID: CuisineAll, Label: "All Cuisines"},
		{ID: CuisineMexican, Label: "Mexican"},
		{ID: CuisineAsian, Label: "Asian"},
		{ID: CuisineBBQ, Label: "BBQ"},
		{ID: CuisineVegan, Label: "Vegan"},
		{ID: CuisineDessert, Label: "Dessert"},
		{ID: CuisineCoffee, Label: "Coffee"},
	}
}

// ViewMode selects how search results are presented
type ViewMode string

const (
	ViewModeUnset ViewMode = ""
	ViewModeList  ViewMode = "list"
	ViewModeMap   ViewMode = "map"
)

// NavigationState is the one-shot payload attached to a navigation request.
// It is handed to the destination view once and never stored in history.
type NavigationState struct {
	SearchQuery string
	Cuisine     CuisineID
	ViewMode    ViewMode
}

// NotificationKind classifies a toast
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient user-visible message
type Notification struct {
	ID      string
	Kind    NotificationKind
	Message string
}

// Truck is a food truck listed in the catalog
type Truck struct {
	ID          string     `toml:"id"`
	Name        string     `toml:"name"`
	Cuisine     CuisineID  `toml:"cuisine"`
	Description string     `toml:"description"`
	Rating      float64    `toml:"rating"`
	Location    string     `toml:"location"`
	Hours       string     `toml:"hours"`
	Tags        []string   `toml:"tags"`
	Menu        []MenuItem `toml:"menu"`
}

// MenuItem is a single dish on a truck's menu
type MenuItem struct {
	Name  string  `toml:"name"`
	Price float64 `toml:"price"`
}

// Event is a food truck gathering shown on the events screen
type Event struct {
	Name     string   `toml:"name"`
	Date     string   `toml:"date"`
	Location string   `toml:"location"`
	Summary  string   `toml:"summary"`
	Trucks   []string `toml:"trucks"`
}

// Page is a markdown content page (blog, about, sustainability)
type Page struct {
	Slug     string `toml:"slug"`
	Title    string `toml:"title"`
	Markdown string `toml:"markdown"`
}
