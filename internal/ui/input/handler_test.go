package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func homeCtx() *ModelContext {
	return &ModelContext{View: router.ViewHome, Path: "/", Filters: 7}
}

func typeText(t *testing.T, h *Handler, ctx types.Context, text string) []types.Action {
	t.Helper()
	var last []types.Action
	for _, r := range text {
		last, _ = h.HandleKey(runes(string(r)), ctx)
	}
	return last
}

func TestSearchModeLifecycle(t *testing.T) {
	h := New()
	ctx := homeCtx()
	ctx.Query = "ta"

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.FocusSearchAction{}}, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "ta", h.TextInput().Value(), "search bar keeps its text")
	assert.Equal(t, "Search: ", h.Prompt())

	actions = typeText(t, h, ctx, "co")
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "taco"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "taco", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode(), "submit keeps focus")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.BlurSearchAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeClear(t *testing.T) {
	h := New()
	ctx := homeCtx()

	h.HandleKey(runes("/"), ctx)
	typeText(t, h, ctx, "bbq")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX}, ctx)
	assert.Equal(t, []types.Action{types.ClearSearchAction{}, types.BlurSearchAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSearchKeysOnlyOnHome(t *testing.T) {
	h := New()
	ctx := &ModelContext{View: router.ViewEvents, Path: "/events"}

	for _, k := range []string{"/", "c", "n", "m", "L", "1"} {
		actions, _ := h.HandleKey(runes(k), ctx)
		assert.Empty(t, actions, "key %q", k)
	}
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestChipKeys(t *testing.T) {
	h := New()
	ctx := homeCtx()

	actions, _ := h.HandleKey(runes("3"), ctx)
	assert.Equal(t, []types.Action{types.ToggleFilterAction{Index: 2}}, actions)

	actions, _ = h.HandleKey(runes("9"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	assert.Equal(t, []types.Action{types.ToggleFilterAction{Index: -1}}, actions)
}

func TestQuickActionKeys(t *testing.T) {
	h := New()
	ctx := homeCtx()

	for k, kind := range map[string]string{"n": "nearby", "m": "map", "L": "locate"} {
		actions, _ := h.HandleKey(runes(k), ctx)
		assert.Equal(t, []types.Action{types.QuickAction{Kind: kind}}, actions, "key %q", k)
	}
}

func TestGotoMode(t *testing.T) {
	h := New()
	ctx := &ModelContext{View: router.ViewBlog, Path: "/blog"}

	actions, _ := h.HandleKey(runes(":"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeGoto, h.CurrentMode())
	assert.Equal(t, "/blog", h.TextInput().Value())

	h.TextInput().SetValue("")
	typeText(t, h, ctx, "/trucks/42")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "/trucks/42", Mode: types.ModeGoto}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGotoModeCancel(t *testing.T) {
	h := New()
	ctx := homeCtx()

	h.HandleKey(runes(":"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestFormMode(t *testing.T) {
	h := New()
	ctx := &ModelContext{View: router.ViewUserLogin, Path: "/login"}

	actions, _ := h.HandleKey(runes("i"), ctx)
	assert.Equal(t, []types.Action{types.FormFocusAction{}}, actions)
	assert.Equal(t, types.ModeForm, h.CurrentMode())

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.FormInputAction{Msg: runes("q")}}, actions, "q types instead of quitting")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.FormFocusAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitFormAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.FormBlurAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGlobalKeys(t *testing.T) {
	h := New()
	ctx := &ModelContext{View: router.ViewFindTrucks, Path: "/find-trucks"}

	tests := []struct {
		key  tea.KeyMsg
		want types.Action
	}{
		{runes("q"), types.QuitAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
		{runes("?"), types.ToggleHelpAction{}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, types.BackAction{}},
		{runes("]"), types.ForwardAction{}},
		{runes("v"), types.ToggleViewModeAction{}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.ActivateAction{}},
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyPgUp}, types.NavigateAction{Direction: "pageup"}},
		{runes("G"), types.NavigateAction{Direction: "end"}},
	}
	for _, tt := range tests {
		actions, _ := h.HandleKey(tt.key, ctx)
		assert.Equal(t, []types.Action{tt.want}, actions, "key %q", tt.key.String())
	}
}

func TestResetDropsTextMode(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), homeCtx())
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}
