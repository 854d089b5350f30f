package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/dock/internal/keys"
	"github.com/kmacinski/dock/internal/ui"
)

// Help displays keybinding help
type Help struct {
	Base
}

// NewHelp creates a new help window
func NewHelp(styles ui.Styles) *Help {
	return &Help{
		Base: NewBase("help", styles),
	}
}

// Update handles input (modal keys handled by app)
func (h *Help) Update(msg tea.Msg) (Window, tea.Cmd) {
	return h, nil
}

// View renders the help content
func (h *Help) View(width, height int) string {
	contentWidth := width - 4   // padding and border
	contentHeight := height - 4 // padding and border

	if contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	var lines []string
	lines = append(lines, h.styles.ModalTitle.Render("Keybindings"))

	seen := make(map[string]bool)
	for _, b := range keys.HelpBindings() {
		help := b.Help()
		if seen[help.Key] {
			continue
		}
		seen[help.Key] = true
		keyStyle := h.styles.Bold.Width(12)
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(help.Key), h.styles.Text.Render(help.Desc)))
	}
	lines = append(lines, "", h.styles.Muted.Render("mouse: drag floating windows"))
	lines = append(lines, h.styles.Muted.Render("Press ? or Esc to close"))

	return h.styles.Modal.
		Width(contentWidth).
		MaxHeight(contentHeight).
		Render(strings.Join(lines, "\n"))
}
