package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand palette
var (
	colorTeal  = lipgloss.Color("37")
	colorGold  = lipgloss.Color("220")
	colorSlate = lipgloss.Color("60")
	colorCoral = lipgloss.Color("203")
	colorGreen = lipgloss.Color("78")
	colorGray  = lipgloss.Color("241")
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Headline      lipgloss.Style
	Accent        lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Path          lipgloss.Style
	Prompt        lipgloss.Style
	SearchBar     lipgloss.Style
	SearchBarWide lipgloss.Style
	Chip          lipgloss.Style
	ChipActive    lipgloss.Style
	ChipCursor    lipgloss.Style
	Button        lipgloss.Style
	Badge         lipgloss.Style
	MapPanel      lipgloss.Style
	Marker        lipgloss.Style
	MarkerDim     lipgloss.Style
	Panel         lipgloss.Style
	Selected      lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	PopupBox      lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTeal),
		Headline: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSlate).
			MarginBottom(1),
		Accent:    lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(1, 2),
		Path:      lipgloss.NewStyle().Foreground(colorGray).Italic(true),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		SearchBar: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(0, 1).Width(40),
		SearchBarWide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(0, 1).
			Width(46),
		Chip:       lipgloss.NewStyle().Padding(0, 1).Foreground(colorSlate),
		ChipActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(colorTeal),
		ChipCursor: lipgloss.NewStyle().Underline(true),
		Button:     lipgloss.NewStyle().Padding(0, 1).Foreground(colorGold).Border(lipgloss.NormalBorder()).BorderForeground(colorGray),
		Badge:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("255")).Background(colorTeal),
		MapPanel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSlate),
		Marker:     lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		MarkerDim:  lipgloss.NewStyle().Foreground(colorSlate),
		Panel:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorGray).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Field:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorGray).Padding(0, 1).Width(36),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorGold).
			Padding(0, 1).
			Width(36),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(colorCoral),
		StatusSuccess: lipgloss.NewStyle().Foreground(colorGreen),
	}
}

// CuisineColor returns the accent color for a cuisine tag
func CuisineColor(c string) lipgloss.Color {
	switch c {
	case "mexican":
		return colorCoral
	case "asian":
		return lipgloss.Color("170")
	case "bbq":
		return lipgloss.Color("130")
	case "vegan":
		return colorGreen
	case "dessert":
		return lipgloss.Color("212")
	case "coffee":
		return lipgloss.Color("137")
	default:
		return colorGray
	}
}
