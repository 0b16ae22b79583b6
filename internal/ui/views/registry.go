package views

import (
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"trucktrack/internal/catalog"
	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
	"trucktrack/internal/ui/services/search"
)

// View is a mounted screen. A view owns its state; the model drops it and
// builds a fresh one on every transition.
type View interface {
	ID() router.ViewID
	Title() string
	Init() tea.Cmd
	// Update receives non-key messages addressed to views
	Update(msg tea.Msg) tea.Cmd
	HandleAction(action types.Action) tea.Cmd
	SetSize(width, height int)
	Render() string
	Teardown()
}

// Env carries the collaborators views may use
type Env struct {
	Nav         search.Navigator
	Notify      search.Notifier
	Catalog     catalog.Store
	Bus         eventbus.EventBus
	Filters     []domain.Filter
	Markers     int
	RenderStyle string
	Styles      *Styles
	Logger      *zap.Logger
	Rand        *rand.Rand
}

func (e *Env) styles() *Styles {
	if e.Styles == nil {
		e.Styles = NewStyles()
	}
	return e.Styles
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e.Logger
}

func (e *Env) rng() *rand.Rand {
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e.Rand
}

// Factory builds a view from its mount input
type Factory func(env *Env, in router.Input) View

// Registry maps route views to factories
type Registry map[router.ViewID]Factory

// DefaultRegistry returns the factories for every route in the default table
func DefaultRegistry() Registry {
	return Registry{
		router.ViewHome:           NewHomeView,
		router.ViewFindTrucks:     NewResultsView,
		router.ViewTruckDetails:   NewDetailsView,
		router.ViewEvents:         NewEventsView,
		router.ViewVendorLogin:    NewVendorLoginView,
		router.ViewUserLogin:      NewUserLoginView,
		router.ViewBlog:           pageFactory(router.ViewBlog, "blog"),
		router.ViewAbout:          pageFactory(router.ViewAbout, "aboutus"),
		router.ViewSustainability: pageFactory(router.ViewSustainability, "sustainability"),
		router.ViewNotFound:       NewNotFoundView,
	}
}

// Build creates the view for id. An id without a factory gets the not-found
// view.
func (r Registry) Build(env *Env, id router.ViewID, in router.Input) View {
	if f, ok := r[id]; ok {
		return f(env, in)
	}
	return NewNotFoundView(env, in)
}

// base provides no-op defaults for the optional View methods
type base struct {
	width  int
	height int
}

func (b *base) Init() tea.Cmd                     { return nil }
func (b *base) Update(msg tea.Msg) tea.Cmd        { return nil }
func (b *base) HandleAction(types.Action) tea.Cmd { return nil }
func (b *base) Teardown()                         {}

func (b *base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// contentWidth is the usable width, with a floor for tiny terminals
func (b *base) contentWidth() int {
	if b.width < 20 {
		return 76
	}
	return b.width
}
