package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"trucktrack/internal/ui/input/keys"
)

// FrameState contains everything the frame needs around the mounted view
type FrameState struct {
	Width      int
	Height     int
	Path       string
	Title      string
	CanBack    bool
	CanForward bool

	// Prompt and Input are set while a text mode owns the input line
	Prompt string
	Input  string

	Content     string
	Status      string
	StatusError bool

	HelpModel        help.Model
	ShowHelp         bool
	HelpContent      string
	HelpScrollOffset int
}

// Renderer handles all frame rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// ContentHeight is the number of rows left for the view once the frame
// chrome is drawn
func ContentHeight(height int) int {
	// padding(2) + title(1) + gap(1) + status(1) + footer(1)
	h := height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// ContentWidth mirrors ContentHeight for columns
func ContentWidth(width int) int {
	w := width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// Render produces the complete frame
func (r *Renderer) Render(state FrameState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	content := &strings.Builder{}
	content.WriteString(r.titleLine(state, width))
	content.WriteString("\n")

	if state.Prompt != "" {
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString(state.Input)
	}
	content.WriteString("\n")

	content.WriteString(state.Content)

	footer := r.statusLine(state)
	if footer != "" {
		footer += "\n"
	}
	if !state.ShowHelp {
		footer += state.HelpModel.View(keys.Default)
	}

	// Push the footer to the bottom of the available area
	available := height - 2
	used := strings.Count(content.String(), "\n") + 1
	footerLines := strings.Count(footer, "\n") + 1
	if pad := available - used - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	frame := r.styles.Main.MaxHeight(height).Render(content.String())

	if state.ShowHelp && state.HelpContent != "" {
		popup := ScrollWindow(state.HelpContent, HelpWindowHeight(height), state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(frame, popup, height, width, r.styles.PopupBox)
	}
	return frame
}

func (r *Renderer) titleLine(state FrameState, width int) string {
	logo := r.styles.Title.Render("trucktrack")
	left := logo
	if state.Title != "" {
		left = fmt.Sprintf("%s  %s", logo, state.Title)
	}

	nav := ""
	if state.CanBack {
		nav += "◀"
	} else {
		nav += " "
	}
	if state.CanForward {
		nav += "▶"
	} else {
		nav += " "
	}
	right := r.styles.Path.Render(state.Path) + " " + r.styles.Dim.Render(nav)

	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "  " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) statusLine(state FrameState) string {
	if state.Status == "" {
		return ""
	}
	if state.StatusError {
		return r.styles.StatusError.Render("✗ " + state.Status)
	}
	return r.styles.StatusSuccess.Render("✓ " + state.Status)
}

// HelpWindowHeight is the number of help lines shown in a frame of height
func HelpWindowHeight(height int) int {
	return height - 6
}

// minScrollHeight is the smallest window ScrollWindow draws
const minScrollHeight = 5

// MaxScrollOffset is the largest useful offset for ScrollWindow
func MaxScrollOffset(content string, height int) int {
	if height < minScrollHeight {
		height = minScrollHeight
	}
	if n := strings.Count(content, "\n") + 1 - height; n > 0 {
		return n
	}
	return 0
}

// ScrollWindow returns at most height lines of content starting at offset,
// marking clipped edges
func ScrollWindow(content string, height, offset int) string {
	if height < minScrollHeight {
		height = minScrollHeight
	}
	lines := strings.Split(content, "\n")
	total := len(lines)
	if total <= height {
		return content
	}

	maxOffset := MaxScrollOffset(content, height)
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	visible := append([]string(nil), lines[offset:end]...)

	more := lipgloss.NewStyle().Foreground(colorGray)
	if offset > 0 {
		visible[0] = more.Render("↑ (more above)")
	}
	if end < total {
		visible[len(visible)-1] = more.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}
