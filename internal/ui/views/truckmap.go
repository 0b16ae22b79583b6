package views

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Backdrop is a decorative street layout
type Backdrop struct {
	Name string
	// street reports whether cell (x, y) is road
	street func(x, y int) bool
}

// Backdrops is the set a TruckMap picks from
var Backdrops = []Backdrop{
	{Name: "Downtown grid", street: func(x, y int) bool { return x%8 == 0 || y%4 == 0 }},
	{Name: "Harbor front", street: func(x, y int) bool { return y%5 == 0 || (x+y)%11 == 0 }},
	{Name: "Old town", street: func(x, y int) bool { return (x+2*y)%9 == 0 || y%6 == 3 }},
	{Name: "Riverside", street: func(x, y int) bool { return x%10 == 4 || (y%4 == 1 && x%3 != 0) }},
}

// Marker is a truck pin placed at a relative position (0..1) on the map
type Marker struct {
	X, Y  float64
	Label string
}

// TruckMap is a decorative map panel. Nothing about it is geographic.
type TruckMap struct {
	Backdrop Backdrop
	Markers  []Marker
	frame    int
}

// NewTruckMap picks a random backdrop and scatters count unlabeled markers
func NewTruckMap(rng *rand.Rand, count int) *TruckMap {
	m := &TruckMap{Backdrop: Backdrops[rng.IntN(len(Backdrops))]}
	for i := 0; i < count; i++ {
		m.Markers = append(m.Markers, Marker{X: 0.1 + 0.8*rng.Float64(), Y: 0.1 + 0.8*rng.Float64()})
	}
	return m
}

// PlaceLabeled replaces the markers with one per label
func (m *TruckMap) PlaceLabeled(rng *rand.Rand, labels []string) {
	m.Markers = m.Markers[:0]
	for _, l := range labels {
		m.Markers = append(m.Markers, Marker{X: 0.1 + 0.8*rng.Float64(), Y: 0.1 + 0.8*rng.Float64(), Label: l})
	}
}

// Pulse advances the marker animation
func (m *TruckMap) Pulse() {
	m.frame++
}

// Render draws the map into a width x height box, border included
func (m *TruckMap) Render(styles *Styles, width, height int) string {
	w, h := width-2, height-3 // border and caption
	if w < 10 || h < 3 {
		return ""
	}

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			if m.Backdrop.street(x, y) {
				grid[y][x] = '·'
			} else {
				grid[y][x] = ' '
			}
		}
	}

	pins := make(map[[2]int]int, len(m.Markers))
	for i, mk := range m.Markers {
		x := clampInt(int(mk.X*float64(w)), 0, w-1)
		y := clampInt(int(mk.Y*float64(h)), 0, h-1)
		pins[[2]int{x, y}] = i
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i, ok := pins[[2]int{x, y}]
			if !ok {
				b.WriteRune(grid[y][x])
				continue
			}
			// Neighbouring markers pulse out of phase
			if (m.frame+i)%2 == 0 {
				b.WriteString(styles.Marker.Render("●"))
			} else {
				b.WriteString(styles.MarkerDim.Render("○"))
			}
		}
		if y < h-1 {
			b.WriteByte('\n')
		}
	}

	caption := styles.Dim.Render(m.Backdrop.Name + " · street map with food truck locations")
	body := lipgloss.JoinVertical(lipgloss.Left, b.String(), caption)
	return styles.MapPanel.Width(w).Render(body)
}

// Legend lists labeled markers in placement order
func (m *TruckMap) Legend() []string {
	var out []string
	for _, mk := range m.Markers {
		if mk.Label != "" {
			out = append(out, mk.Label)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
