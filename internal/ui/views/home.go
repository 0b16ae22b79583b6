package views

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trucktrack/internal/domain"
	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
	"trucktrack/internal/ui/services/search"
)

const pulseInterval = 500 * time.Millisecond

// Placeholder is shown in an empty search bar
const Placeholder = "Find food trucks near you..."

var viewInstances atomic.Uint64

// pulseMsg drives the map marker animation of one home view instance
type pulseMsg struct {
	instance uint64
}

// HomeView is the landing screen: search bar, cuisine chips, quick actions
// and the decorative map.
type HomeView struct {
	base
	env        *Env
	instance   uint64
	ctrl       *search.Service
	chipCursor int
	truckMap   *TruckMap
}

func NewHomeView(env *Env, in router.Input) View {
	return &HomeView{
		env:      env,
		instance: viewInstances.Add(1),
		ctrl:     search.NewService(env.Nav, env.Notify, env.Bus, env.Filters),
		truckMap: NewTruckMap(env.rng(), env.Markers),
	}
}

func (v *HomeView) ID() router.ViewID { return router.ViewHome }

func (v *HomeView) Title() string { return "Home" }

// Controller exposes the search controller, mainly for the input context
func (v *HomeView) Controller() *search.Service { return v.ctrl }

// ChipCursor is the index of the highlighted chip
func (v *HomeView) ChipCursor() int { return v.chipCursor }

// Map returns the decorative map panel
func (v *HomeView) Map() *TruckMap { return v.truckMap }

func (v *HomeView) Init() tea.Cmd {
	return v.pulse()
}

func (v *HomeView) Update(msg tea.Msg) tea.Cmd {
	if p, ok := msg.(pulseMsg); ok && p.instance == v.instance {
		v.truckMap.Pulse()
		return v.pulse()
	}
	return nil
}

func (v *HomeView) pulse() tea.Cmd {
	id := v.instance
	return tea.Tick(pulseInterval, func(time.Time) tea.Msg { return pulseMsg{instance: id} })
}

func (v *HomeView) HandleAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.FocusSearchAction:
		v.ctrl.OnFocus()
	case types.BlurSearchAction:
		v.ctrl.OnBlur()
	case types.UpdateTextAction:
		v.ctrl.OnQueryChange(a.Text)
	case types.SubmitTextAction:
		if a.Mode == types.ModeSearch {
			v.ctrl.OnSubmit()
		}
	case types.ActivateAction:
		v.ctrl.OnSubmit()
	case types.ClearSearchAction:
		v.ctrl.OnClear()
	case types.ToggleFilterAction:
		filters := v.ctrl.Filters()
		idx := a.Index
		if idx < 0 {
			idx = v.chipCursor
		}
		if idx < len(filters) {
			v.chipCursor = idx
			v.ctrl.OnFilterToggle(filters[idx].ID)
		}
	case types.QuickAction:
		v.ctrl.OnQuickAction(search.QuickAction(a.Kind))
	case types.NavigateAction:
		v.moveChipCursor(a.Direction)
	}
	return nil
}

func (v *HomeView) moveChipCursor(direction string) {
	n := len(v.ctrl.Filters())
	switch direction {
	case "left", "up":
		if v.chipCursor > 0 {
			v.chipCursor--
		}
	case "right", "down":
		if v.chipCursor < n-1 {
			v.chipCursor++
		}
	case "home":
		v.chipCursor = 0
	case "end":
		v.chipCursor = n - 1
	}
}

func (v *HomeView) Teardown() {
	v.ctrl.Reset()
}

func (v *HomeView) Render() string {
	s := v.env.styles()
	width := v.contentWidth()

	var left strings.Builder
	left.WriteString(s.Headline.Render("Track. Taste. " + s.Accent.Render("Thrive.")))
	left.WriteString("\n")
	left.WriteString(s.Dim.Render("Find the best food trucks near you, track their locations in real-time,\nand discover your next favorite meal on wheels."))
	left.WriteString("\n\n")
	left.WriteString(v.renderSearchBar())
	left.WriteString("\n")
	left.WriteString(v.renderChips())
	left.WriteString("\n\n")
	left.WriteString(v.renderQuickActions())

	leftBlock := left.String()
	if width < 110 {
		return leftBlock
	}

	mapWidth := width - lipgloss.Width(leftBlock) - 4
	if mapWidth > 60 {
		mapWidth = 60
	}
	mapBlock := lipgloss.JoinVertical(lipgloss.Left,
		v.truckMap.Render(s, mapWidth, 14),
		s.Badge.Render("4.9")+" Top Rated · 98% positive   "+s.Badge.Render("●")+" Live Tracking · 12 trucks nearby",
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, "    ", mapBlock)
}

func (v *HomeView) renderSearchBar() string {
	s := v.env.styles()
	text := v.ctrl.Query()
	if text == "" {
		text = s.Dim.Render(Placeholder)
	}
	line := "⌕ " + text
	if v.ctrl.Query() != "" {
		line += "  " + s.Dim.Render("[ctrl+x clear]")
	}

	style := s.SearchBar
	if v.ctrl.Expanded() {
		style = s.SearchBarWide
	}
	return style.Render(line)
}

func (v *HomeView) renderChips() string {
	s := v.env.styles()
	active := v.ctrl.ActiveFilter()

	chips := make([]string, 0, len(v.ctrl.Filters()))
	for i, f := range v.ctrl.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label)
		style := s.Chip
		if f.ID == active {
			style = s.ChipActive
		}
		if i == v.chipCursor {
			style = style.Inherit(s.ChipCursor)
		}
		chips = append(chips, style.Render(label))
	}
	return strings.Join(chips, " ")
}

func (v *HomeView) renderQuickActions() string {
	s := v.env.styles()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Button.Render("n  Find trucks nearby"), " ",
		s.Button.Render("m  View live map"), " ",
		s.Button.Render("L  Use my location"),
	)
}

// ActiveCuisine returns the selected chip, for display by the frame
func (v *HomeView) ActiveCuisine() domain.CuisineID {
	return v.ctrl.ActiveFilter()
}
