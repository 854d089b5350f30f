package dock

import "slices"

// Tab is a single page of content inside a node
type Tab struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`

	// Scroll is the first body line shown
	Scroll int `json:"scroll,omitempty"`
}

// Node is a leaf of the layout holding a strip of tabs
type Node struct {
	Tabs   []Tab    `json:"tabs"`
	Active TabIndex `json:"active"`
}

// ActiveTab returns the selected tab
func (n *Node) ActiveTab() (Tab, bool) {
	if n == nil || int(n.Active) < 0 || int(n.Active) >= len(n.Tabs) {
		return Tab{}, false
	}
	return n.Tabs[n.Active], true
}

// Selected returns the active tab for in-place edits, or nil
func (n *Node) Selected() *Tab {
	if n == nil || int(n.Active) < 0 || int(n.Active) >= len(n.Tabs) {
		return nil
	}
	return &n.Tabs[n.Active]
}

// Surface is either the main dock area or a floating window. Nodes are laid
// out left to right.
type Surface struct {
	Nodes  []*Node      `json:"nodes"`
	Window *WindowState `json:"window,omitempty"`
}

// IsFloating reports whether the surface is a floating window
func (s *Surface) IsFloating() bool {
	return s != nil && s.Window != nil
}

// DockState owns every surface of the layout. A nil entry in Surfaces is a
// removed floating window whose slot may be reused.
type DockState struct {
	Surfaces []*Surface `json:"surfaces"`
}

// NewDockState creates a layout whose main surface holds a single node
// with the given tabs
func NewDockState(tabs ...Tab) *DockState {
	main := &Surface{}
	if len(tabs) > 0 {
		main.Nodes = []*Node{{Tabs: slices.Clone(tabs)}}
	}
	return &DockState{Surfaces: []*Surface{main}}
}

// Surface returns surface i, or nil if it does not exist
func (d *DockState) Surface(i SurfaceIndex) *Surface {
	if int(i) < 0 || int(i) >= len(d.Surfaces) {
		return nil
	}
	return d.Surfaces[i]
}

// Node returns node n of surface s, or nil if it does not exist
func (d *DockState) Node(s SurfaceIndex, n NodeIndex) *Node {
	surface := d.Surface(s)
	if surface == nil || int(n) < 0 || int(n) >= len(surface.Nodes) {
		return nil
	}
	return surface.Nodes[n]
}

// AddWindow creates a floating window holding the given tabs and returns
// its index. Slots of removed windows are reused.
func (d *DockState) AddWindow(tabs ...Tab) SurfaceIndex {
	surface := &Surface{
		Nodes:  []*Node{{Tabs: slices.Clone(tabs)}},
		Window: NewWindowState(),
	}
	for i := 1; i < len(d.Surfaces); i++ {
		if d.Surfaces[i] == nil {
			d.Surfaces[i] = surface
			return SurfaceIndex(i)
		}
	}
	d.Surfaces = append(d.Surfaces, surface)
	return SurfaceIndex(len(d.Surfaces) - 1)
}

// FloatingWindows returns the indices of all live floating windows
func (d *DockState) FloatingWindows() []SurfaceIndex {
	var out []SurfaceIndex
	for i, s := range d.Surfaces {
		if s.IsFloating() {
			out = append(out, SurfaceIndex(i))
		}
	}
	return out
}

// PushTab appends a tab to node n of surface s and selects it. On a
// surface without nodes a new node is created.
func (d *DockState) PushTab(s SurfaceIndex, n NodeIndex, tab Tab) bool {
	surface := d.Surface(s)
	if surface == nil {
		return false
	}
	if len(surface.Nodes) == 0 {
		surface.Nodes = []*Node{{Tabs: []Tab{tab}}}
		return true
	}
	node := d.Node(s, n)
	if node == nil {
		return false
	}
	node.Tabs = append(node.Tabs, tab)
	node.Active = TabIndex(len(node.Tabs) - 1)
	return true
}

// SplitTab moves tab t into a new node to the right of node n and returns
// the new node's index. The source node must keep at least one tab.
func (d *DockState) SplitTab(s SurfaceIndex, n NodeIndex, t TabIndex) (NodeIndex, bool) {
	node := d.Node(s, n)
	if node == nil || len(node.Tabs) < 2 || int(t) < 0 || int(t) >= len(node.Tabs) {
		return 0, false
	}
	tab := node.Tabs[t]
	node.removeTab(t)

	surface := d.Surfaces[s]
	at := int(n) + 1
	surface.Nodes = slices.Insert(surface.Nodes, at, &Node{Tabs: []Tab{tab}})
	return NodeIndex(at), true
}

// DetachTab moves tab t out of node n into a new floating window. The
// source node or window is pruned if it ends up empty.
func (d *DockState) DetachTab(s SurfaceIndex, n NodeIndex, t TabIndex) (SurfaceIndex, bool) {
	node := d.Node(s, n)
	if node == nil || int(t) < 0 || int(t) >= len(node.Tabs) {
		return 0, false
	}
	if d.Surfaces[s].IsFloating() && len(d.Surfaces[s].Nodes) == 1 && len(node.Tabs) == 1 {
		// already alone in its own window
		return s, true
	}
	tab := node.Tabs[t]
	node.removeTab(t)
	d.prune()
	return d.AddWindow(tab), true
}

func (n *Node) removeTab(t TabIndex) {
	n.Tabs = slices.Delete(n.Tabs, int(t), int(t)+1)
	if n.Active > t || int(n.Active) >= len(n.Tabs) {
		n.Active = max(0, n.Active-1)
	}
}

// prune drops empty nodes and floating windows left without nodes, and
// clamps every node's active tab into range. The main surface is kept
// even when empty.
func (d *DockState) prune() {
	for i, surface := range d.Surfaces {
		if surface == nil {
			continue
		}
		surface.Nodes = slices.DeleteFunc(surface.Nodes, func(n *Node) bool {
			return n == nil || len(n.Tabs) == 0
		})
		for _, n := range surface.Nodes {
			n.Active = min(max(n.Active, 0), TabIndex(len(n.Tabs)-1))
		}
		if i != int(MainSurface) && len(surface.Nodes) == 0 {
			d.Surfaces[i] = nil
		}
	}
	// trailing removed slots carry nothing worth persisting
	for len(d.Surfaces) > 1 && d.Surfaces[len(d.Surfaces)-1] == nil {
		d.Surfaces = d.Surfaces[:len(d.Surfaces)-1]
	}
}
