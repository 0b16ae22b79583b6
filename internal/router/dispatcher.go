package router

import (
	"go.uber.org/zap"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

// Input is what a resolved view receives when it is mounted
type Input struct {
	Path   string
	Params Params
	State  *domain.NavigationState // nil when no state was attached
}

// Resolution is the dispatcher's current location
type Resolution struct {
	Match
	Path  string
	State *domain.NavigationState
}

// Input converts the resolution into a view's mount input
func (r Resolution) Input() Input {
	return Input{Path: r.Path, Params: r.Params, State: r.State}
}

// Dispatcher resolves paths against a Table and tracks the current view.
// It is not safe for concurrent use; it belongs to the UI update loop.
type Dispatcher struct {
	table   *Table
	history *History
	current Resolution
	seq     uint64

	bus    eventbus.EventBus
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher positioned at start
func NewDispatcher(table *Table, start string, bus eventbus.EventBus, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		table:   table,
		history: NewHistory(),
		bus:     bus,
		logger:  logger,
	}
	d.resolve(start, nil)
	return d
}

// Navigate handles a user-initiated navigation request. The state, if any,
// is attached to this transition only.
func (d *Dispatcher) Navigate(path string, state *domain.NavigationState) {
	if d.bus != nil {
		d.bus.Publish(eventbus.NavigationRequestedEvent{Path: path, State: copyState(state)})
	}
	d.history.Push(d.current.Path)
	d.resolve(path, copyState(state))
}

// Visit handles a direct path change such as manual entry. Any state from a
// previous navigation is discarded.
func (d *Dispatcher) Visit(path string) {
	d.history.Push(d.current.Path)
	d.resolve(path, nil)
}

// Back returns to the previous path without state
func (d *Dispatcher) Back() bool {
	prev, ok := d.history.Back(d.current.Path)
	if !ok {
		return false
	}
	d.resolve(prev, nil)
	return true
}

// Forward re-visits the path left by Back, without state
func (d *Dispatcher) Forward() bool {
	next, ok := d.history.Forward(d.current.Path)
	if !ok {
		return false
	}
	d.resolve(next, nil)
	return true
}

// Current returns the current resolution without consuming its state
func (d *Dispatcher) Current() Resolution {
	return d.current
}

// Mount hands the current resolution to the view being mounted and clears
// the attached state so it is read at most once.
func (d *Dispatcher) Mount() Resolution {
	r := d.current
	d.current.State = nil
	return r
}

// Seq increments on every transition
func (d *Dispatcher) Seq() uint64 {
	return d.seq
}

// CanGoBack reports whether there is a page to return to
func (d *Dispatcher) CanGoBack() bool {
	return d.history.CanGoBack()
}

// CanGoForward reports whether Forward would move
func (d *Dispatcher) CanGoForward() bool {
	return d.history.CanGoForward()
}

// Table returns the route table
func (d *Dispatcher) Table() *Table {
	return d.table
}

func (d *Dispatcher) resolve(path string, state *domain.NavigationState) {
	path = NormalizePath(path)
	m := d.table.Resolve(path)
	d.current = Resolution{Match: m, Path: path, State: state}
	d.seq++

	d.logger.Debug("view resolved",
		zap.String("path", path),
		zap.String("view", string(m.View)),
		zap.Bool("not_found", m.NotFound),
		zap.Bool("has_state", state != nil))

	if d.bus != nil {
		params := make(map[string]string, len(m.Params))
		for k, v := range m.Params {
			params[k] = v
		}
		d.bus.Publish(eventbus.ViewResolvedEvent{
			Path:     path,
			View:     string(m.View),
			Params:   params,
			NotFound: m.NotFound,
			HasState: state != nil,
		})
	}
}

func copyState(s *domain.NavigationState) *domain.NavigationState {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
