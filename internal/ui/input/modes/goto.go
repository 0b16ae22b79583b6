package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"trucktrack/internal/ui/input/types"
)

// GotoMode reads a path typed by hand
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to: ", ti),
	}
}
