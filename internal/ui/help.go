package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"trucktrack/internal/ui/input/keys"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

var errNoProgram = errors.New("program not set")

// helpSections names the rows of KeyMap.FullHelp in order
var helpSections = []string{"Moving around", "Search & filters", "Shortcuts", "Pages & history"}

// HelpRenderer builds the help text from the key map, so the popup, the
// pager and the footer never disagree.
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: km}
}

// Content renders the full help with colors
func (r *HelpRenderer) Content() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("37")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("trucktrack help"))
	help.WriteString("\n")

	for i, row := range r.keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range row {
			writeBinding(&help, keyStyle, descStyle, b)
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Go to a page (g then …)"))
	help.WriteString("\n")
	chords := make([]string, 0, len(keys.PageChords))
	for k := range keys.PageChords {
		chords = append(chords, k)
	}
	sort.Strings(chords)
	for _, k := range chords {
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("g "+k), descStyle.Render(keys.PageChords[k])))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("While typing"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("enter"), descStyle.Render("submit")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("esc"), descStyle.Render("leave the prompt")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("ctrl+x"), descStyle.Render("clear the search")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("tab"), descStyle.Render("next form field")))

	return help.String()
}

func writeBinding(b *strings.Builder, keyStyle, descStyle lipgloss.Style, binding key.Binding) {
	h := binding.Help()
	if h.Key == "" {
		return
	}
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
}

// HelpOps shows the help in an external pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return errNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// ov needs a moment to hand the tty back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
