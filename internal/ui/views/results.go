package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trucktrack/internal/domain"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
	"trucktrack/internal/ui/services/navigation"
	"trucktrack/internal/ui/services/sorting"
)

// ResultsView lists catalog trucks for the query and cuisine it was opened
// with. The navigation state is read once, here, at construction.
type ResultsView struct {
	base
	env      *Env
	query    string
	cuisine  domain.CuisineID
	mode     domain.ViewMode
	found    []domain.Truck // catalog order
	trucks   []domain.Truck
	cursor   *navigation.Service
	sorter   *sorting.Service
	truckMap *TruckMap
}

func NewResultsView(env *Env, in router.Input) View {
	v := &ResultsView{env: env, mode: domain.ViewModeList}
	if in.State != nil {
		v.query = in.State.SearchQuery
		v.cuisine = in.State.Cuisine
		if in.State.ViewMode != domain.ViewModeUnset {
			v.mode = in.State.ViewMode
		}
	}

	if env.Catalog != nil {
		v.found = env.Catalog.Search(v.query, v.cuisine)
	}
	v.sorter = sorting.NewService(env.Bus)
	v.trucks = v.sorter.Sort(v.found)
	v.cursor = navigation.NewService(len(v.trucks))
	v.placeMarkers()
	return v
}

// placeMarkers pins one labelled marker per listed truck, in list order
func (v *ResultsView) placeMarkers() {
	v.truckMap = NewTruckMap(v.env.rng(), 0)
	labels := make([]string, len(v.trucks))
	for i, t := range v.trucks {
		labels[i] = t.Name
	}
	v.truckMap.PlaceLabeled(v.env.rng(), labels)
}

func (v *ResultsView) ID() router.ViewID { return router.ViewFindTrucks }

func (v *ResultsView) Title() string { return "Find trucks" }

func (v *ResultsView) Query() string { return v.query }

func (v *ResultsView) Cuisine() domain.CuisineID { return v.cuisine }

func (v *ResultsView) Mode() domain.ViewMode { return v.mode }

func (v *ResultsView) Trucks() []domain.Truck { return v.trucks }

func (v *ResultsView) SortMode() sorting.Mode { return v.sorter.Mode() }

// Selected returns the truck under the cursor
func (v *ResultsView) Selected() (domain.Truck, bool) {
	i := v.cursor.Cursor()
	if i < 0 {
		return domain.Truck{}, false
	}
	return v.trucks[i], true
}

func (v *ResultsView) SetSize(width, height int) {
	v.base.SetSize(width, height)
	v.cursor.SetViewportHeight(height - 4)
}

func (v *ResultsView) HandleAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		v.cursor.Navigate(navigation.Direction(a.Direction))
	case types.ToggleViewModeAction:
		if v.mode == domain.ViewModeMap {
			v.mode = domain.ViewModeList
		} else {
			v.mode = domain.ViewModeMap
		}
	case types.CycleSortAction:
		v.sorter.NextMode()
		v.trucks = v.sorter.Sort(v.found)
		v.cursor.Navigate(navigation.DirectionHome)
		v.placeMarkers()
		if v.env.Notify != nil {
			v.env.Notify.Notify(domain.NotifySuccess, "Sorted by "+string(v.sorter.Mode()))
		}
	case types.ActivateAction:
		if t, ok := v.Selected(); ok {
			v.env.Nav.Navigate(router.TruckPath(t.ID), nil)
		}
	}
	return nil
}

func (v *ResultsView) Render() string {
	s := v.env.styles()

	var b strings.Builder
	b.WriteString(s.Headline.Render(v.heading()))
	b.WriteString("\n")

	if len(v.trucks) == 0 {
		b.WriteString(s.Dim.Render("No trucks match. Press ⌫ to go back and try another search."))
		return b.String()
	}

	if v.mode == domain.ViewModeMap {
		b.WriteString(v.renderMap())
	} else {
		b.WriteString(v.renderList())
	}
	return b.String()
}

func (v *ResultsView) heading() string {
	var parts []string
	if strings.TrimSpace(v.query) != "" {
		parts = append(parts, fmt.Sprintf("Results for %q", v.query))
	} else {
		parts = append(parts, "Trucks near you")
	}
	if v.cuisine != domain.CuisineNone && v.cuisine != domain.CuisineAll {
		parts = append(parts, string(v.cuisine))
	}
	parts = append(parts, fmt.Sprintf("%d found", len(v.trucks)), string(v.mode)+" view")
	if v.sorter.Mode() != sorting.ByRelevance {
		parts = append(parts, "by "+string(v.sorter.Mode()))
	}
	return strings.Join(parts, " · ")
}

func (v *ResultsView) renderList() string {
	s := v.env.styles()
	start, end := v.cursor.Window()

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		t := v.trucks[i]
		cuisine := lipgloss.NewStyle().Foreground(CuisineColor(string(t.Cuisine))).Render(fmt.Sprintf("%-8s", t.Cuisine))
		line := fmt.Sprintf("%-18s %s ★ %.1f  %s", t.Name, cuisine, t.Rating, t.Location)
		if i == v.cursor.Cursor() {
			line = s.Selected.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (v *ResultsView) renderMap() string {
	s := v.env.styles()
	width := v.contentWidth()
	if width > 80 {
		width = 80
	}

	legend := make([]string, 0, len(v.trucks))
	for i, name := range v.truckMap.Legend() {
		entry := fmt.Sprintf("%d. %s", i+1, name)
		if i == v.cursor.Cursor() {
			entry = s.Selected.Render(entry)
		}
		legend = append(legend, entry)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.truckMap.Render(s, width, 14),
		strings.Join(legend, "  "),
	)
}
