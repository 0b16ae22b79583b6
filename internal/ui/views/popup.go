package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	dim    lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		dim:    lipgloss.NewStyle().Foreground(colorGray),
	}
}

// RenderPopupOverlay draws popupContent centred over a greyed copy of
// mainContent. The base keeps its text so the page stays recognisable
// around the modal.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	popup := popupStyle.MaxWidth(width - 2).MaxHeight(height - 2).Render(popupContent)
	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)
	x := (width - popupW) / 2
	y := (height - len(popupLines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(stripANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	out := make([]string, height)
	for row, line := range base {
		i := row - y
		if i < 0 || i >= len(popupLines) {
			out[row] = pr.dim.Render(line)
			continue
		}
		runes := []rune(line)
		left := padRunes(runes, x)[:x]
		var right []rune
		if end := x + popupW; end < len(runes) {
			right = runes[end:]
		}
		out[row] = pr.dim.Render(string(left)) + popupLines[i] + pr.dim.Render(string(right))
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func padRunes(r []rune, n int) []rune {
	for len(r) < n {
		r = append(r, ' ')
	}
	return r
}
