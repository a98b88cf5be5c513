package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomify/sprig/internal/state"
)

// Modal is the interface for overlays drawn over the settings list.
// Update returns the updated modal, a command, and whether it should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// snapshotAware modals receive every new store snapshot.
type snapshotAware interface {
	WithSnapshot(snap state.Snapshot) Modal
}
