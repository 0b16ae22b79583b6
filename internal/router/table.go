package router

import (
	"errors"
	"fmt"
	"sort"
)

// ViewID names a view bound to a route
type ViewID string

// Params maps parameter names to the values taken from the matched path
type Params map[string]string

// ConflictMode controls how routes that could match the same path are treated
type ConflictMode string

const (
	// ConflictModePreferStatic orders overlapping routes so literal segments
	// win over parameters.
	ConflictModePreferStatic ConflictMode = "prefer_static"
	// ConflictModeStrict rejects any route that overlaps an existing one.
	ConflictModeStrict ConflictMode = "strict"
)

func (m ConflictMode) normalize() ConflictMode {
	switch m {
	case ConflictModeStrict:
		return ConflictModeStrict
	default:
		return ConflictModePreferStatic
	}
}

func (m ConflictMode) String() string {
	return string(m.normalize())
}

var (
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrRouteConflict  = errors.New("route conflict")
)

// Route is a single pattern to view binding
type Route struct {
	Pattern string
	View    ViewID

	parsed pattern
	order  int
}

// Match is the outcome of resolving a path
type Match struct {
	Pattern  string // empty for the not-found view
	View     ViewID
	Params   Params
	NotFound bool
}

// Table is an ordered route list plus a dedicated not-found slot. The
// not-found view is never part of the list, so it can never shadow a route.
type Table struct {
	routes   []Route
	notFound ViewID
	mode     ConflictMode
}

// NewTable creates an empty table whose unmatched paths resolve to notFound
func NewTable(notFound ViewID, mode ConflictMode) *Table {
	return &Table{
		notFound: notFound,
		mode:     mode.normalize(),
	}
}

// Add appends a route. Exact duplicate shapes are always rejected; in strict
// mode any overlap is rejected as well.
func (t *Table) Add(rawPattern string, view ViewID) error {
	p, err := parsePattern(rawPattern)
	if err != nil {
		return err
	}

	for _, r := range t.routes {
		if r.parsed.shape() == p.shape() {
			return fmt.Errorf("%w: %q and %q match the same paths", ErrDuplicateRoute, r.Pattern, rawPattern)
		}
		if t.mode == ConflictModeStrict && overlaps(r.parsed, p) {
			return fmt.Errorf("%w: %q overlaps %q", ErrRouteConflict, rawPattern, r.Pattern)
		}
	}

	t.routes = append(t.routes, Route{
		Pattern: rawPattern,
		View:    view,
		parsed:  p,
		order:   len(t.routes),
	})

	if t.mode == ConflictModePreferStatic {
		sort.SliceStable(t.routes, func(i, j int) bool {
			a, b := t.routes[i], t.routes[j]
			if c := compareSpecificity(a.parsed, b.parsed); c != 0 {
				return c < 0
			}
			return a.order < b.order
		})
	}
	return nil
}

// MustAdd is Add for static tables built at startup
func (t *Table) MustAdd(rawPattern string, view ViewID) *Table {
	if err := t.Add(rawPattern, view); err != nil {
		panic(err)
	}
	return t
}

// Resolve maps a path to exactly one view. It never fails: unmatched paths
// resolve to the not-found view.
func (t *Table) Resolve(path string) Match {
	parts := splitPath(NormalizePath(path))
	for _, r := range t.routes {
		if params, ok := r.parsed.match(parts); ok {
			return Match{Pattern: r.Pattern, View: r.View, Params: params}
		}
	}
	return Match{View: t.notFound, Params: Params{}, NotFound: true}
}

// Routes returns the routes in evaluation order
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// NotFound returns the view used for unmatched paths
func (t *Table) NotFound() ViewID {
	return t.notFound
}

// Mode returns the table's conflict mode
func (t *Table) Mode() ConflictMode {
	return t.mode
}
