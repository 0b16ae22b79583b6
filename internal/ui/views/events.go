package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"trucktrack/internal/domain"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
	"trucktrack/internal/ui/services/navigation"
)

// EventsView lists upcoming gatherings. Enter opens the first truck
// attending the selected event.
type EventsView struct {
	base
	env    *Env
	events []domain.Event
	cursor *navigation.Service
}

func NewEventsView(env *Env, in router.Input) View {
	v := &EventsView{env: env}
	if env.Catalog != nil {
		v.events = env.Catalog.Events()
	}
	v.cursor = navigation.NewService(len(v.events))
	return v
}

func (v *EventsView) ID() router.ViewID { return router.ViewEvents }

func (v *EventsView) Title() string { return "Events" }

func (v *EventsView) SetSize(width, height int) {
	v.base.SetSize(width, height)
	v.cursor.SetViewportHeight((height - 4) / 4)
}

func (v *EventsView) HandleAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		v.cursor.Navigate(navigation.Direction(a.Direction))
	case types.ActivateAction:
		i := v.cursor.Cursor()
		if i >= 0 && len(v.events[i].Trucks) > 0 {
			v.env.Nav.Navigate(router.TruckPath(v.events[i].Trucks[0]), nil)
		}
	}
	return nil
}

func (v *EventsView) Render() string {
	s := v.env.styles()

	var b strings.Builder
	b.WriteString(s.Headline.Render("Upcoming events"))
	b.WriteString("\n")
	if len(v.events) == 0 {
		b.WriteString(s.Dim.Render("No events scheduled."))
		return b.String()
	}

	start, end := v.cursor.Window()
	for i := start; i < end; i++ {
		e := v.events[i]
		title := fmt.Sprintf("%s  %s", e.Name, s.Dim.Render(e.Date))
		if i == v.cursor.Cursor() {
			title = s.Selected.Render("› " + title)
		} else {
			title = "  " + title
		}
		b.WriteString(title)
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s · %s\n", e.Location, e.Summary)
		if names := v.truckNames(e); len(names) > 0 {
			fmt.Fprintf(&b, "    %s\n", s.Dim.Render("Trucks: "+strings.Join(names, ", ")))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *EventsView) truckNames(e domain.Event) []string {
	names := make([]string, 0, len(e.Trucks))
	for _, id := range e.Trucks {
		if v.env.Catalog == nil {
			names = append(names, id)
			continue
		}
		if t, err := v.env.Catalog.Truck(id); err == nil {
			names = append(names, t.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
