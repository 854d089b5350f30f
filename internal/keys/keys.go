package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Focus
	NextTab  key.Binding
	PrevTab  key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding

	// Tab content
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Floating windows
	MoveUp     key.Binding
	MoveDown   key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Minimize   key.Binding
	Detach     key.Binding
	Split      key.Binding
	NewTab     key.Binding
	CloseTab   key.Binding
	CloseOther key.Binding
	CloseLeaf  key.Binding
	CloseFloat key.Binding

	// Actions
	Quit key.Binding
	Save key.Binding
	Yank key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	NextTab: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("h/l", "switch tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h/l", "switch tab"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next node"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev node"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("j/k", "scroll tab"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j/k", "scroll tab"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("arrows", "move window"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("arrows", "move window"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("arrows", "move window"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("arrows", "move window"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "resize window"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("+/-", "resize window"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize window"),
	),
	Detach: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "detach tab"),
	),
	Split: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "split tab right"),
	),
	NewTab: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new tab"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
	),
	CloseOther: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "close other tabs"),
	),
	CloseLeaf: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "close node"),
	),
	CloseFloat: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "close window"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save layout"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy layout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.NextTab,
		DefaultKeyMap.Tab,
		DefaultKeyMap.ScrollDown,
		DefaultKeyMap.NewTab,
		DefaultKeyMap.Split,
		DefaultKeyMap.Detach,
		DefaultKeyMap.MoveUp,
		DefaultKeyMap.Grow,
		DefaultKeyMap.Minimize,
		DefaultKeyMap.CloseTab,
		DefaultKeyMap.CloseOther,
		DefaultKeyMap.CloseLeaf,
		DefaultKeyMap.CloseFloat,
		DefaultKeyMap.Save,
		DefaultKeyMap.Yank,
		DefaultKeyMap.Help,
		DefaultKeyMap.Quit,
	}
}
