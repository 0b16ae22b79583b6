package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"trucktrack/internal/ui/input/types"
)

// FormMode forwards keys to the fields of the current view's form
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FormFocusAction{}}
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.FormBlurAction{}}
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "tab", "down":
		return []types.Action{types.FormFocusAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FormFocusAction{Delta: -1}}, true
	case "enter":
		return []types.Action{types.SubmitFormAction{}}, true
	}
	return []types.Action{types.FormInputAction{Msg: msg}}, true
}
