package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction is Enter on the current view
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search bar actions
type FocusSearchAction struct{}

func (a FocusSearchAction) Type() string { return "focus_search" }

type BlurSearchAction struct{}

func (a BlurSearchAction) Type() string { return "blur_search" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// ToggleFilterAction toggles a cuisine chip. Index -1 means the chip under
// the chip cursor.
type ToggleFilterAction struct {
	Index int
}

func (a ToggleFilterAction) Type() string { return "toggle_filter" }

type QuickAction struct {
	Kind string // "nearby", "map", "locate"
}

func (a QuickAction) Type() string { return "quick_action" }

type ToggleViewModeAction struct{}

func (a ToggleViewModeAction) Type() string { return "toggle_view_mode" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// Routing actions
type OpenPathAction struct {
	Path string
}

func (a OpenPathAction) Type() string { return "open_path" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ForwardAction struct{}

func (a ForwardAction) Type() string { return "forward" }

// Form actions
type FormFocusAction struct {
	Delta int // 0 focuses the current field
}

func (a FormFocusAction) Type() string { return "form_focus" }

type FormBlurAction struct{}

func (a FormBlurAction) Type() string { return "form_blur" }

type FormInputAction struct {
	Msg tea.KeyMsg
}

func (a FormInputAction) Type() string { return "form_input" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

// Application actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
