package ui

// clearStatusMsg clears the toast with the matching id. Ticks for older
// toasts arrive after a newer one replaced them and are ignored.
type clearStatusMsg struct {
	id string
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
