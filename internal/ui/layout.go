package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which row subtitles are hidden.
	LayoutCompactWidth = 60

	// LayoutMaxContentWidth caps the settings column on wide terminals.
	LayoutMaxContentWidth = 96
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 4 * time.Second

	// ActionTimeout bounds a single user-triggered API call.
	ActionTimeout = 30 * time.Second

	// DiagnosticsLines is how many log lines the diagnostics view reads.
	DiagnosticsLines = 300
)

// modalWidth returns preferred clamped to the terminal width.
func modalWidth(termWidth, preferred int) int {
	if termWidth <= 0 {
		return preferred
	}
	if w := termWidth - 4; w < preferred {
		if w < 20 {
			return 20
		}
		return w
	}
	return preferred
}

// modalHeight returns the body height available inside a modal.
func modalHeight(termHeight int) int {
	h := termHeight - 10
	if h < 5 {
		return 5
	}
	return h
}
