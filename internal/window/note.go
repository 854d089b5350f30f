package window

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/dock/internal/dock"
	"github.com/kmacinski/dock/internal/keys"
	"github.com/kmacinski/dock/internal/ui"
)

// Note renders the body of a tab as wrapped text. Scrolling writes back
// into the tab so the offset survives redraws and saves.
type Note struct {
	Base
	tab *dock.Tab
}

// NewNote creates a view over tab
func NewNote(tab *dock.Tab, styles ui.Styles) *Note {
	return &Note{
		Base: NewBase(tab.Title, styles),
		tab:  tab,
	}
}

// Update scrolls the body while the note is focused
func (n *Note) Update(msg tea.Msg) (Window, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !n.Focused() {
		return n, nil
	}
	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.ScrollDown):
		n.tab.Scroll++
	case key.Matches(keyMsg, keys.DefaultKeyMap.ScrollUp):
		n.tab.Scroll = max(0, n.tab.Scroll-1)
	}
	return n, nil
}

// View renders the body wrapped to width and cut to height, starting at
// the tab's scroll offset. The last line always stays visible. Unfocused
// notes are dimmed.
func (n *Note) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	body := n.tab.Body
	style := n.styles.Text
	if !n.Focused() {
		style = n.styles.Muted
	}
	if body == "" {
		body = "(empty)"
		style = n.styles.Muted
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(body)
	lines := strings.Split(wrapped, "\n")
	lines = lines[min(max(n.tab.Scroll, 0), len(lines)-1):]
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
}
