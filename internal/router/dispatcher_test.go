package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

func newTestDispatcher(start string) *Dispatcher {
	return NewDispatcher(DefaultTable(ConflictModePreferStatic), start, nil, nil)
}

func TestDispatcherStartsAtStartPath(t *testing.T) {
	d := newTestDispatcher("/events/")

	cur := d.Current()
	assert.Equal(t, "/events", cur.Path)
	assert.Equal(t, ViewEvents, cur.View)
	assert.Nil(t, cur.State)
	assert.Equal(t, uint64(1), d.Seq())
	assert.False(t, d.CanGoBack())
}

func TestNavigateAttachesStateOnce(t *testing.T) {
	d := newTestDispatcher("/")

	state := &domain.NavigationState{SearchQuery: "tacos"}
	d.Navigate(PathFindTrucks, state)
	state.SearchQuery = "mutated after navigate"

	first := d.Mount()
	require.NotNil(t, first.State)
	assert.Equal(t, "tacos", first.State.SearchQuery)
	assert.Equal(t, domain.CuisineNone, first.State.Cuisine)
	assert.Equal(t, ViewFindTrucks, first.View)

	second := d.Mount()
	assert.Nil(t, second.State, "state must only be handed out once")
	assert.Equal(t, ViewFindTrucks, second.View)
}

func TestVisitDropsStaleState(t *testing.T) {
	d := newTestDispatcher("/")
	d.Navigate(PathFindTrucks, &domain.NavigationState{ViewMode: domain.ViewModeMap})

	d.Visit("/find-trucks")

	cur := d.Mount()
	assert.Equal(t, ViewFindTrucks, cur.View)
	assert.Nil(t, cur.State)
}

func TestBackAndForwardCarryNoState(t *testing.T) {
	d := newTestDispatcher("/")
	d.Navigate(PathFindTrucks, &domain.NavigationState{SearchQuery: "bbq"})
	d.Navigate(TruckPath("7"), nil)

	require.True(t, d.Back())
	cur := d.Current()
	assert.Equal(t, "/find-trucks", cur.Path)
	assert.Nil(t, cur.State)

	require.True(t, d.CanGoForward())
	require.True(t, d.Forward())
	cur = d.Current()
	assert.Equal(t, ViewTruckDetails, cur.View)
	assert.Equal(t, "7", cur.Params["id"])

	require.True(t, d.Back())
	require.True(t, d.Back())
	assert.Equal(t, ViewHome, d.Current().View)
	assert.False(t, d.Back())
}

func TestNavigateClearsForwardStack(t *testing.T) {
	d := newTestDispatcher("/")
	d.Navigate(PathEvents, nil)
	require.True(t, d.Back())
	require.True(t, d.CanGoForward())

	d.Navigate(PathBlog, nil)
	assert.False(t, d.CanGoForward())
	assert.False(t, d.Forward())
}

func TestSeqAdvancesOnEveryTransition(t *testing.T) {
	d := newTestDispatcher("/")
	start := d.Seq()

	d.Navigate(PathEvents, nil)
	d.Visit("/zzz-unknown")
	d.Back()

	assert.Equal(t, start+3, d.Seq())
}

func TestUnknownPathResolvesToNotFound(t *testing.T) {
	d := newTestDispatcher("/")
	d.Visit("/zzz-unknown")

	cur := d.Current()
	assert.True(t, cur.NotFound)
	assert.Equal(t, ViewNotFound, cur.View)
	assert.Equal(t, "/zzz-unknown", cur.Path)
}

func TestDispatcherPublishesResolvedViews(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	resolved := make(chan eventbus.ViewResolvedEvent, 4)
	requested := make(chan eventbus.NavigationRequestedEvent, 4)
	bus.Subscribe(eventbus.EventViewResolved, func(e eventbus.DomainEvent) {
		resolved <- e.(eventbus.ViewResolvedEvent)
	})
	bus.Subscribe(eventbus.EventNavigationRequested, func(e eventbus.DomainEvent) {
		requested <- e.(eventbus.NavigationRequestedEvent)
	})

	d := NewDispatcher(DefaultTable(ConflictModePreferStatic), "/", bus, nil)
	d.Navigate("/trucks/42", &domain.NavigationState{ViewMode: domain.ViewModeList})

	var events []eventbus.ViewResolvedEvent
	for len(events) < 2 {
		select {
		case ev := <-resolved:
			events = append(events, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for resolved events")
		}
	}

	assert.Equal(t, string(ViewHome), events[0].View)
	assert.Equal(t, string(ViewTruckDetails), events[1].View)
	assert.Equal(t, map[string]string{"id": "42"}, events[1].Params)
	assert.True(t, events[1].HasState)

	select {
	case req := <-requested:
		assert.Equal(t, "/trucks/42", req.Path)
		require.NotNil(t, req.State)
		assert.Equal(t, domain.ViewModeList, req.State.ViewMode)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for navigation request")
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.CanGoBack())

	h.Push("/")
	h.Push("/events")
	assert.Equal(t, 2, h.Len())

	prev, ok := h.Back("/blog")
	require.True(t, ok)
	assert.Equal(t, "/events", prev)

	next, ok := h.Forward("/events")
	require.True(t, ok)
	assert.Equal(t, "/blog", next)

	h.Clear()
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
}
