package dock

import (
	"cmp"
	"fmt"
	"slices"
)

// Compact applies the removals collected during one frame. It must run
// after the traversal that produced them and before the next one starts.
//
// Tab removals go first, sorted so that tabs within a node are removed from
// the highest index down; earlier removals then never shift a tab that a
// later record still addresses. Leaves are cleared next, then windows. Node
// and surface indices stay stable until all records are applied, after which
// empty nodes and windows are pruned.
//
// Records whose indices no longer match the intended target are a caller
// bug: the result is undefined, though out-of-range records are skipped.
func (d *DockState) Compact(records []Removal) {
	var (
		tabs    []TabRemoval
		leaves  []LeafRemoval
		windows []WindowRemoval
	)
	for _, r := range records {
		switch r := r.(type) {
		case TabRemoval:
			tabs = append(tabs, r)
		case LeafRemoval:
			leaves = append(leaves, r)
		case WindowRemoval:
			windows = append(windows, r)
		default:
			panic(fmt.Sprintf("dock: unknown removal %T", r))
		}
	}

	slices.SortFunc(tabs, compareTabRemovals)
	tabs = slices.Compact(tabs)
	for _, r := range tabs {
		node := d.Node(r.Surface, r.Node)
		if node == nil || int(r.Tab) < 0 || int(r.Tab) >= len(node.Tabs) {
			continue
		}
		node.removeTab(r.Tab)
	}

	for _, r := range leaves {
		if d.Node(r.Surface, r.Node) != nil {
			d.Surfaces[r.Surface].Nodes[r.Node] = nil
		}
	}

	for _, r := range windows {
		if r.Surface == MainSurface {
			continue
		}
		if d.Surface(r.Surface) != nil {
			d.Surfaces[r.Surface] = nil
		}
	}

	d.prune()
}

// compareTabRemovals orders by surface and node ascending, tab descending
func compareTabRemovals(a, b TabRemoval) int {
	if c := cmp.Compare(a.Surface, b.Surface); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Node, b.Node); c != 0 {
		return c
	}
	return cmp.Compare(b.Tab, a.Tab)
}
