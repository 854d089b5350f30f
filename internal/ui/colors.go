package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/dock/internal/config"
)

// Colors defines the color palette for the application
type Colors struct {
	Text            lipgloss.Color
	Muted           lipgloss.Color
	Header          lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	BorderFloating  lipgloss.Color
	StatusBar       lipgloss.Color
}

// ColorsFrom converts configured hex strings into a palette
func ColorsFrom(c config.ColorConfig) Colors {
	return Colors{
		Text:            lipgloss.Color(c.Text),
		Muted:           lipgloss.Color(c.Muted),
		Header:          lipgloss.Color(c.Header),
		BorderFocused:   lipgloss.Color(c.BorderFocused),
		BorderUnfocused: lipgloss.Color(c.BorderUnfocused),
		BorderFloating:  lipgloss.Color(c.BorderFloating),
		StatusBar:       lipgloss.Color(c.StatusBar),
	}
}

// DefaultColors returns the default color palette
var DefaultColors = ColorsFrom(config.Default.Colors)
