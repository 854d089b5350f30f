package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/dock/internal/config"
	"github.com/kmacinski/dock/internal/dock"
	"github.com/kmacinski/dock/internal/ui"
	"github.com/kmacinski/dock/internal/window"
)

// minimizedHeight is a border plus the tab bar
const minimizedHeight = 3

// Focus identifies the node that receives keyboard input
type Focus struct {
	Surface dock.SurfaceIndex
	Node    dock.NodeIndex
}

// Placement is where a floating window ended up this frame
type Placement struct {
	Surface   dock.SurfaceIndex
	Rect      dock.Rect
	Minimized bool
}

// Manager places and renders surfaces
type Manager struct {
	ratios      []int
	defaultSize dock.Vec2
	styles      ui.Styles

	width  int
	height int
}

// NewManager creates a new layout manager
func NewManager(cfg config.LayoutConfig, styles ui.Styles) *Manager {
	m := &Manager{styles: styles}
	m.Configure(cfg)
	return m
}

// Configure applies split ratios and the default floating window size
func (m *Manager) Configure(cfg config.LayoutConfig) {
	m.ratios = cfg.Ratios
	m.defaultSize = dock.Vec2{X: float64(cfg.WindowWidth), Y: float64(cfg.WindowHeight)}
}

// Resize updates the layout dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles swaps the styles used for rendering
func (m *Manager) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// Bounds is the area surfaces may occupy; the last row is the status bar
func (m *Manager) Bounds() dock.Rect {
	return dock.Rect{Max: dock.Pos2{X: float64(m.width), Y: float64(max(0, m.height-1))}}
}

// WindowID is the identity a floating surface is materialized under
func WindowID(s dock.SurfaceIndex) string {
	return fmt.Sprintf("dock-window-%d", s)
}

// Frame materializes every floating window once and records the rectangle
// it will be drawn at. Call it exactly once per frame, before Render.
func (m *Manager) Frame(d *dock.DockState) []Placement {
	bounds := m.Bounds()
	var placements []Placement
	for i, s := range d.FloatingWindows() {
		ws := d.Surface(s).Window
		prev := ws.Rect()
		drawn := prev != (dock.Rect{})
		spec := ws.Materialize(WindowID(s), bounds)

		cascade := dock.Pos2{X: bounds.Min.X + float64(2+3*i), Y: bounds.Min.Y + float64(1+i)}
		rect := Resolve(spec, prev, drawn, ws.IsMinimized(), cascade, m.defaultSize)
		ws.SetScreenRect(rect)

		placements = append(placements, Placement{Surface: s, Rect: rect, Minimized: ws.IsMinimized()})
	}
	return placements
}

// Resolve turns a window spec into a concrete cell-aligned rectangle.
// Position comes from the spec, else the last drawn rect, else fallback.
// Size comes from the spec, else the last drawn size, else defaultSize.
// A pinned height overrides either, and minimized windows collapse to
// their tab bar. The result is constrained to spec.Constrain.
func Resolve(spec dock.WindowSpec, prev dock.Rect, drawn, minimized bool, fallback dock.Pos2, defaultSize dock.Vec2) dock.Rect {
	pos := fallback
	size := defaultSize
	if drawn {
		pos = prev.Min
		size = prev.Size()
	}
	if spec.Position != nil {
		pos = *spec.Position
	}
	if spec.FixedSize != nil {
		size = *spec.FixedSize
	}
	if spec.MinHeight != nil {
		size.Y = math.Max(size.Y, *spec.MinHeight)
	}
	if spec.MaxHeight != nil {
		size.Y = math.Min(size.Y, *spec.MaxHeight)
	}
	if minimized {
		size.Y = minimizedHeight
	}

	size.X = math.Max(4, math.Round(size.X))
	size.Y = math.Max(minimizedHeight, math.Round(size.Y))
	pos = dock.Pos2{X: math.Round(pos.X), Y: math.Round(pos.Y)}
	return dock.RectFromMinSize(pos, size).ConstrainedTo(spec.Constrain)
}

// HitTest returns the topmost floating window under p
func HitTest(placements []Placement, p dock.Pos2) (dock.SurfaceIndex, bool) {
	for i := len(placements) - 1; i >= 0; i-- {
		if placements[i].Rect.Contains(p) {
			return placements[i].Surface, true
		}
	}
	return 0, false
}

// MainNodeAt returns the docked node drawn at column x
func (m *Manager) MainNodeAt(d *dock.DockState, x int) (dock.NodeIndex, bool) {
	return m.nodeAt(d.Surface(dock.MainSurface), m.width, x)
}

// FloatingNodeAt returns the node of the window placed at p drawn at
// screen column x
func (m *Manager) FloatingNodeAt(d *dock.DockState, p Placement, x int) (dock.NodeIndex, bool) {
	return m.nodeAt(d.Surface(p.Surface), int(p.Rect.Width()), x-int(p.Rect.Min.X))
}

// nodeAt splits width the same way renderSurface does
func (m *Manager) nodeAt(surface *dock.Surface, width, x int) (dock.NodeIndex, bool) {
	if surface == nil || len(surface.Nodes) == 0 || x < 0 || x >= width {
		return 0, false
	}
	left := 0
	for i, w := range calculateSizes(m.ratiosFor(surface), width) {
		if x < left+w {
			return dock.NodeIndex(i), true
		}
		left += w
	}
	return 0, false
}

// Render draws the main surface, overlays floating windows in placement
// order and appends the status bar
func (m *Manager) Render(d *dock.DockState, placements []Placement, focus Focus, statusBar string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := m.height - 1
	content := m.renderSurface(d, dock.MainSurface, m.width, contentHeight, focus)

	for _, p := range placements {
		w, h := int(p.Rect.Width()), int(p.Rect.Height())
		var box string
		if p.Minimized {
			box = m.renderMinimized(d, p.Surface, w, focus)
		} else {
			box = m.renderSurface(d, p.Surface, w, h, focus)
		}
		content = Overlay(content, box, int(p.Rect.Min.X), int(p.Rect.Min.Y))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m *Manager) renderSurface(d *dock.DockState, s dock.SurfaceIndex, width, height int, focus Focus) string {
	surface := d.Surface(s)
	if surface == nil || len(surface.Nodes) == 0 {
		hint := m.styles.Muted.Render("no tabs, press n to open one")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, hint)
	}

	sizes := calculateSizes(m.ratiosFor(surface), width)
	var rendered []string
	for i, node := range surface.Nodes {
		focused := focus.Surface == s && focus.Node == dock.NodeIndex(i)
		rendered = append(rendered, m.renderNode(surface, node, sizes[i], height, focused))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Manager) renderMinimized(d *dock.DockState, s dock.SurfaceIndex, width int, focus Focus) string {
	surface := d.Surface(s)
	node := surface.Nodes[0]
	style := m.nodeStyle(surface, focus.Surface == s)
	innerWidth := max(1, width-2)
	return style.Width(innerWidth).Height(1).MaxHeight(minimizedHeight).Render(m.tabBar(node, innerWidth))
}

func (m *Manager) nodeStyle(surface *dock.Surface, focused bool) lipgloss.Style {
	switch {
	case surface.IsFloating() && focused:
		return m.styles.Floating.Bold(true)
	case surface.IsFloating():
		return m.styles.Floating
	case focused:
		return m.styles.NodeFocused
	default:
		return m.styles.NodeUnfocused
	}
}

func (m *Manager) renderNode(surface *dock.Surface, node *dock.Node, width, height int, focused bool) string {
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return strings.Repeat(" ", max(0, width))
	}

	style := m.nodeStyle(surface, focused)
	body := m.tabBar(node, innerWidth)
	if tab := node.Selected(); tab != nil {
		note := window.NewNote(tab, m.styles)
		note.SetFocus(focused)
		if innerHeight > 1 {
			body += "\n" + note.View(innerWidth, innerHeight-1)
		}
	}
	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(body)
}

func (m *Manager) tabBar(node *dock.Node, width int) string {
	var parts []string
	for i, tab := range node.Tabs {
		if dock.TabIndex(i) == node.Active {
			parts = append(parts, m.styles.TabActive.Render(tab.Title))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(tab.Title))
		}
	}
	return ansi.Truncate(strings.Join(parts, ""), width, "…")
}

// ratiosFor repeats the last configured ratio for nodes beyond the list.
// Floating surfaces split evenly.
func (m *Manager) ratiosFor(surface *dock.Surface) []int {
	ratios := make([]int, len(surface.Nodes))
	for i := range ratios {
		switch {
		case surface.IsFloating() || len(m.ratios) == 0:
			ratios[i] = 1
		case i < len(m.ratios):
			ratios[i] = m.ratios[i]
		default:
			ratios[i] = m.ratios[len(m.ratios)-1]
		}
	}
	return ratios
}

func calculateSizes(ratios []int, dimension int) []int {
	total := 0
	for _, r := range ratios {
		total += r
	}

	sizes := make([]int, len(ratios))
	remaining := dimension
	for i, r := range ratios {
		if i == len(ratios)-1 {
			// Last slot gets remaining space to avoid rounding issues
			sizes[i] = remaining
		} else {
			size := (dimension * r) / total
			sizes[i] = size
			remaining -= size
		}
	}

	return sizes
}

// Overlay draws top over base with its top-left corner at column x, row y.
// Rows of top that fall outside base are dropped.
func Overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		under := baseLines[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
