package app

import (
	"github.com/kmacinski/dock/internal/dock"
	"github.com/kmacinski/dock/internal/layout"
)

// State holds the UI state that is not part of the dock layout
type State struct {
	Focus       layout.Focus
	ActiveModal string // empty if no modal

	// Errors
	Error string
}

// NewState creates a new state with focus on the first docked node
func NewState() *State {
	return &State{
		Focus: layout.Focus{Surface: dock.MainSurface},
	}
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// FocusTargets lists every live node, docked nodes first
func FocusTargets(d *dock.DockState) []layout.Focus {
	var targets []layout.Focus
	for si, surface := range d.Surfaces {
		if surface == nil {
			continue
		}
		for ni := range surface.Nodes {
			targets = append(targets, layout.Focus{Surface: dock.SurfaceIndex(si), Node: dock.NodeIndex(ni)})
		}
	}
	return targets
}

// CycleFocus moves focus to the next (or previous) target
func (s *State) CycleFocus(targets []layout.Focus, reverse bool) {
	if len(targets) == 0 {
		return
	}
	currentIdx := 0
	for i, f := range targets {
		if f == s.Focus {
			currentIdx = i
			break
		}
	}
	if reverse {
		currentIdx = (currentIdx - 1 + len(targets)) % len(targets)
	} else {
		currentIdx = (currentIdx + 1) % len(targets)
	}
	s.Focus = targets[currentIdx]
}

// ClampFocus moves focus to a live node if the focused one is gone
func (s *State) ClampFocus(d *dock.DockState) {
	if d.Node(s.Focus.Surface, s.Focus.Node) != nil {
		return
	}
	// prefer another node on the same surface
	if surface := d.Surface(s.Focus.Surface); surface != nil && len(surface.Nodes) > 0 {
		s.Focus.Node = dock.NodeIndex(len(surface.Nodes) - 1)
		return
	}
	targets := FocusTargets(d)
	if len(targets) == 0 {
		s.Focus = layout.Focus{Surface: dock.MainSurface}
		return
	}
	s.Focus = targets[0]
}
