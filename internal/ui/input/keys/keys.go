package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Activate key.Binding

	Search     key.Binding
	Clear      key.Binding
	Chip       key.Binding
	ChipNumber key.Binding
	Nearby     key.Binding
	LiveMap    key.Binding
	Locate     key.Binding
	ViewMode   key.Binding
	Sort       key.Binding
	EditForm   key.Binding

	GoTo    key.Binding
	Pages   key.Binding
	Back    key.Binding
	Forward key.Binding

	Help key.Binding
	Quit key.Binding
}

// Default is the application key map
var Default = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev chip"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next chip"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("gg/home", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "bottom"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/search"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear search"),
	),
	Chip: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle chip"),
	),
	ChipNumber: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "toggle chip n"),
	),
	Nearby: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "trucks nearby"),
	),
	LiveMap: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "live map"),
	),
	Locate: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "use my location"),
	),
	ViewMode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "list/map"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort results"),
	),
	EditForm: key.NewBinding(
		key.WithKeys("i", "enter"),
		key.WithHelp("i", "fill in form"),
	),
	GoTo: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to path"),
	),
	Pages: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g+h/t/e/b/a/s/l/v", "go to page"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "["),
		key.WithHelp("⌫/[", "back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "forward"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PageChords maps the key pressed after "g" to a path
var PageChords = map[string]string{
	"h": "/",
	"t": "/find-trucks",
	"e": "/events",
	"b": "/blog",
	"a": "/aboutus",
	"s": "/sustainability",
	"l": "/login",
	"v": "/vendor-login",
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Activate, k.Pages, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.Activate},
		{k.Search, k.Clear, k.Left, k.Right, k.Chip, k.ChipNumber},
		{k.Nearby, k.LiveMap, k.Locate, k.ViewMode, k.Sort, k.EditForm},
		{k.GoTo, k.Pages, k.Back, k.Forward, k.Help, k.Quit},
	}
}
