package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/keys"
	"trucktrack/internal/ui/input/types"
)

// chordTimeout bounds the gap between "g" and the key that follows it
const chordTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        keys.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: keys.Default, now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if m.lastKeyWasG {
		m.lastKeyWasG = false
		if m.now().Sub(m.lastGTime) < chordTimeout {
			s := msg.String()
			if s == "g" {
				return []types.Action{types.NavigateAction{Direction: "home"}}, true
			}
			if path, ok := keys.PageChords[s]; ok {
				return []types.Action{types.OpenPathAction{Path: path}}, true
			}
		}
	}

	view := ctx.CurrentView()
	onHome := view == router.ViewHome
	onForm := view == router.ViewUserLogin || view == router.ViewVendorLogin

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Pages):
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true

	case key.Matches(msg, k.GoTo):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto, Data: ctx.CurrentPath()}}, true

	case key.Matches(msg, k.Back):
		return []types.Action{types.BackAction{}}, true

	case key.Matches(msg, k.Forward):
		return []types.Action{types.ForwardAction{}}, true

	case onForm && key.Matches(msg, k.EditForm):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case onHome && key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case onHome && key.Matches(msg, k.Clear):
		return []types.Action{types.ClearSearchAction{}}, true

	case onHome && key.Matches(msg, k.Chip):
		return []types.Action{types.ToggleFilterAction{Index: -1}}, true

	case onHome && key.Matches(msg, k.ChipNumber):
		idx := int(msg.Runes[0] - '1')
		if idx >= ctx.FilterCount() {
			return nil, true
		}
		return []types.Action{types.ToggleFilterAction{Index: idx}}, true

	case onHome && key.Matches(msg, k.Nearby):
		return []types.Action{types.QuickAction{Kind: "nearby"}}, true

	case onHome && key.Matches(msg, k.LiveMap):
		return []types.Action{types.QuickAction{Kind: "map"}}, true

	case onHome && key.Matches(msg, k.Locate):
		return []types.Action{types.QuickAction{Kind: "locate"}}, true

	case view == router.ViewFindTrucks && key.Matches(msg, k.ViewMode):
		return []types.Action{types.ToggleViewModeAction{}}, true

	case view == router.ViewFindTrucks && key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true

	case key.Matches(msg, k.Activate):
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, k.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case key.Matches(msg, k.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	return nil, false
}
