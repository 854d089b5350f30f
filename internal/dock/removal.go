package dock

// SurfaceIndex addresses a surface in a DockState. Surface 0 is the main dock area.
type SurfaceIndex int

// NodeIndex addresses a node (leaf) within a surface
type NodeIndex int

// TabIndex addresses a tab within a node
type TabIndex int

// MainSurface is the index of the docked, non-floating surface
const MainSurface SurfaceIndex = 0

// Removal is a pending deletion recorded while the tree is being walked and
// applied once the walk is over. The set of variants is closed:
// TabRemoval, LeafRemoval and WindowRemoval.
//
// The indices must still address the intended target when the record is
// applied. Removing a tab shifts every later tab in the same node, so a
// consumer has to apply tab removals within a node from the highest index
// down. Compact does this; anything else that applies records has to as well.
type Removal interface {
	removal()
}

// TabRemoval removes one tab from one node
type TabRemoval struct {
	Surface SurfaceIndex
	Node    NodeIndex
	Tab     TabIndex
}

// LeafRemoval removes a whole node, usually one left empty
type LeafRemoval struct {
	Surface SurfaceIndex
	Node    NodeIndex
}

// WindowRemoval removes a floating surface along with its WindowState
type WindowRemoval struct {
	Surface SurfaceIndex
}

func (TabRemoval) removal()    {}
func (LeafRemoval) removal()   {}
func (WindowRemoval) removal() {}

// RemoveTab records the removal of tab t in node n of surface s
func RemoveTab(s SurfaceIndex, n NodeIndex, t TabIndex) Removal {
	return TabRemoval{Surface: s, Node: n, Tab: t}
}

// RemoveLeaf records the removal of node n of surface s
func RemoveLeaf(s SurfaceIndex, n NodeIndex) Removal {
	return LeafRemoval{Surface: s, Node: n}
}

// RemoveWindow records the removal of floating surface s
func RemoveWindow(s SurfaceIndex) Removal {
	return WindowRemoval{Surface: s}
}

// Address locates a surface, optionally narrowed to a node and a tab
type Address struct {
	Surface SurfaceIndex
	Node    *NodeIndex
	Tab     *TabIndex
}

// NewRemoval picks the variant from how much of the address is set: a
// surface alone removes the window, surface and node remove the leaf, and
// all three remove the tab. A tab without a node addresses the window.
func NewRemoval(addr Address) Removal {
	switch {
	case addr.Node != nil && addr.Tab != nil:
		return RemoveTab(addr.Surface, *addr.Node, *addr.Tab)
	case addr.Node != nil:
		return RemoveLeaf(addr.Surface, *addr.Node)
	default:
		return RemoveWindow(addr.Surface)
	}
}

// RemovalQueue collects the removals of a single frame
type RemovalQueue struct {
	pending []Removal
}

// Push records a removal
func (q *RemovalQueue) Push(r Removal) {
	q.pending = append(q.pending, r)
}

// Len returns the number of queued removals
func (q *RemovalQueue) Len() int {
	return len(q.pending)
}

// Drain returns the queued removals and empties the queue
func (q *RemovalQueue) Drain() []Removal {
	out := q.pending
	q.pending = nil
	return out
}
