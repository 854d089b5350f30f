package window

import tea "github.com/charmbracelet/bubbletea"

// Window is content drawn inside a node or a modal
type Window interface {
	// Update handles input while focused
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders into a width x height cell area
	View(width, height int) string

	Focused() bool
	SetFocus(bool)

	// Name is the title shown in the status bar
	Name() string
}

var (
	_ Window = (*Note)(nil)
	_ Window = (*Help)(nil)
)
