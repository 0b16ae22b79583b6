package modes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"trucktrack/internal/router"
	"trucktrack/internal/ui/input/types"
)

type stubCtx struct{ view router.ViewID }

func (c stubCtx) CurrentView() router.ViewID { return c.view }
func (c stubCtx) CurrentPath() string        { return "/" }
func (c stubCtx) SearchQuery() string        { return "" }
func (c stubCtx) FilterCount() int           { return 7 }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageChords(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewNormalMode()
	m.now = func() time.Time { return now }
	ctx := stubCtx{view: router.ViewHome}

	tests := map[string]string{
		"h": "/", "t": "/find-trucks", "e": "/events", "b": "/blog",
		"a": "/aboutus", "s": "/sustainability", "l": "/login", "v": "/vendor-login",
	}
	for second, path := range tests {
		actions, consumed := m.HandleKey(runeKey("g"), ctx)
		assert.Empty(t, actions)
		assert.True(t, consumed)

		actions, _ = m.HandleKey(runeKey(second), ctx)
		assert.Equal(t, []types.Action{types.OpenPathAction{Path: path}}, actions, "g%s", second)
	}
}

func TestDoubleGGoesToTop(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewNormalMode()
	m.now = func() time.Time { return now }
	ctx := stubCtx{view: router.ViewFindTrucks}

	m.HandleKey(runeKey("g"), ctx)
	actions, _ := m.HandleKey(runeKey("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestChordTimesOut(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewNormalMode()
	m.now = func() time.Time { return now }
	ctx := stubCtx{view: router.ViewFindTrucks}

	m.HandleKey(runeKey("g"), ctx)
	now = now.Add(time.Second)

	actions, _ := m.HandleKey(runeKey("e"), ctx)
	assert.Empty(t, actions, "a late key is handled on its own")

	actions, _ = m.HandleKey(runeKey("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)
}

func TestLeftRightOnHomeMoveChips(t *testing.T) {
	m := NewNormalMode()
	actions, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, stubCtx{view: router.ViewHome})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "right"}}, actions)
}

func TestSortOnlyOnResults(t *testing.T) {
	m := NewNormalMode()

	actions, _ := m.HandleKey(runeKey("s"), stubCtx{view: router.ViewFindTrucks})
	assert.Equal(t, []types.Action{types.CycleSortAction{}}, actions)

	actions, consumed := m.HandleKey(runeKey("s"), stubCtx{view: router.ViewEvents})
	assert.Empty(t, actions)
	assert.False(t, consumed)
}
