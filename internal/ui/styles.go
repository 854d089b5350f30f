package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the application
type Styles struct {
	// Node styles
	NodeFocused   lipgloss.Style
	NodeUnfocused lipgloss.Style
	Floating      lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Text  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		NodeFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused),
		NodeUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused),
		Floating: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(c.BorderFloating),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(c.Muted).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(c.StatusBar).
			Foreground(c.Text).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			MarginBottom(1),

		Text: lipgloss.NewStyle().
			Foreground(c.Text),
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
