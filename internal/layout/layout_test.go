package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/dock/internal/config"
	"github.com/kmacinski/dock/internal/dock"
	"github.com/kmacinski/dock/internal/ui"
)

func newTestManager(width, height int) *Manager {
	m := NewManager(config.Default.Layout, ui.DefaultStyles)
	m.Resize(width, height)
	return m
}

func ptr[T any](v T) *T { return &v }

func TestResolve(t *testing.T) {
	bounds := dock.Rect{Max: dock.Pos2{X: 100, Y: 40}}
	prev := dock.RectFromMinSize(dock.Pos2{X: 10, Y: 5}, dock.Vec2{X: 30, Y: 12})
	fallback := dock.Pos2{X: 2, Y: 1}
	def := dock.Vec2{X: 40, Y: 12}

	tests := []struct {
		name      string
		spec      dock.WindowSpec
		prev      dock.Rect
		drawn     bool
		minimized bool
		want      dock.Rect
	}{
		{
			name: "undrawn uses fallback and default size",
			spec: dock.WindowSpec{Constrain: bounds},
			want: dock.RectFromMinSize(fallback, def),
		},
		{
			name:  "drawn keeps last rect",
			spec:  dock.WindowSpec{Constrain: bounds},
			prev:  prev,
			drawn: true,
			want:  prev,
		},
		{
			name:  "queued position and size win",
			spec:  dock.WindowSpec{Constrain: bounds, Position: ptr(dock.Pos2{X: 20, Y: 8}), FixedSize: ptr(dock.Vec2{X: 10, Y: 6})},
			prev:  prev,
			drawn: true,
			want:  dock.RectFromMinSize(dock.Pos2{X: 20, Y: 8}, dock.Vec2{X: 10, Y: 6}),
		},
		{
			name:  "pinned height",
			spec:  dock.WindowSpec{Constrain: bounds, MinHeight: ptr(20.0), MaxHeight: ptr(20.0)},
			prev:  dock.RectFromMinSize(dock.Pos2{X: 10, Y: 5}, dock.Vec2{X: 30, Y: 3}),
			drawn: true,
			want:  dock.RectFromMinSize(dock.Pos2{X: 10, Y: 5}, dock.Vec2{X: 30, Y: 20}),
		},
		{
			name:      "minimized collapses",
			spec:      dock.WindowSpec{Constrain: bounds},
			prev:      prev,
			drawn:     true,
			minimized: true,
			want:      dock.RectFromMinSize(prev.Min, dock.Vec2{X: 30, Y: 3}),
		},
		{
			name: "constrained into bounds",
			spec: dock.WindowSpec{Constrain: bounds, Position: ptr(dock.Pos2{X: 95, Y: 38})},
			want: dock.RectFromMinSize(dock.Pos2{X: 60, Y: 28}, def),
		},
		{
			name: "oversized shrinks to bounds",
			spec: dock.WindowSpec{Constrain: bounds, FixedSize: ptr(dock.Vec2{X: 300, Y: 200})},
			want: bounds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.spec, tt.prev, tt.drawn, tt.minimized, fallback, def)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFrame_ConsumesOverridesAndRecordsRect(t *testing.T) {
	m := newTestManager(120, 41)
	d := dock.NewDockState(dock.Tab{Title: "main"})
	s := d.AddWindow(dock.Tab{Title: "float"})
	ws := d.Surface(s).Window
	ws.SetPosition(dock.Pos2{X: 10, Y: 20}).SetSize(dock.Vec2{X: 30, Y: 10})

	first := m.Frame(d)
	if len(first) != 1 || first[0].Surface != s {
		t.Fatalf("expected one placement for surface %d, got %+v", s, first)
	}
	want := dock.RectFromMinSize(dock.Pos2{X: 10, Y: 20}, dock.Vec2{X: 30, Y: 10})
	if first[0].Rect != want || ws.Rect() != want {
		t.Fatalf("expected %+v, got placement %+v state %+v", want, first[0].Rect, ws.Rect())
	}

	// no new overrides: the window stays where it was drawn
	second := m.Frame(d)
	if second[0].Rect != want {
		t.Fatalf("expected window to stay at %+v, got %+v", want, second[0].Rect)
	}
}

func TestFrame_RestoresExpandedHeightAfterMinimize(t *testing.T) {
	m := newTestManager(120, 41)
	d := dock.NewDockState()
	s := d.AddWindow(dock.Tab{Title: "float"})
	ws := d.Surface(s).Window
	ws.SetSize(dock.Vec2{X: 30, Y: 15})
	m.Frame(d)

	ws.SetExpandedHeight(ws.Rect().Height())
	ws.ToggleMinimized()
	if got := m.Frame(d)[0].Rect.Height(); got != minimizedHeight {
		t.Fatalf("expected minimized height %d, got %v", minimizedHeight, got)
	}

	ws.ToggleMinimized()
	ws.SetNew(true)
	if got := m.Frame(d)[0].Rect.Height(); got != 15 {
		t.Fatalf("expected restored height 15, got %v", got)
	}
	if got := m.Frame(d)[0].Rect.Height(); got != 15 {
		t.Fatalf("expected height to stay 15, got %v", got)
	}
}

func TestHitTest_TopmostWins(t *testing.T) {
	placements := []Placement{
		{Surface: 1, Rect: dock.RectFromMinSize(dock.Pos2{}, dock.Vec2{X: 10, Y: 10})},
		{Surface: 2, Rect: dock.RectFromMinSize(dock.Pos2{X: 5, Y: 5}, dock.Vec2{X: 10, Y: 10})},
	}
	if s, ok := HitTest(placements, dock.Pos2{X: 6, Y: 6}); !ok || s != 2 {
		t.Fatalf("expected surface 2, got %d (ok=%v)", s, ok)
	}
	if s, ok := HitTest(placements, dock.Pos2{X: 1, Y: 1}); !ok || s != 1 {
		t.Fatalf("expected surface 1, got %d (ok=%v)", s, ok)
	}
	if _, ok := HitTest(placements, dock.Pos2{X: 50, Y: 50}); ok {
		t.Fatalf("expected miss")
	}
}

func TestOverlay(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"
	got := Overlay(base, "XY\nZW", 2, 1)
	want := "aaaaaa\nbbXYbb\nccZWcc"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	// rows past the bottom are dropped, short rows are padded
	got = Overlay("ab\ncd", "XY\nZW", 4, 1)
	want = "ab\ncd  XY"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCalculateSizes(t *testing.T) {
	sizes := calculateSizes([]int{30, 70}, 101)
	if sizes[0] != 30 || sizes[1] != 71 {
		t.Fatalf("expected [30 71], got %v", sizes)
	}
}

func TestRender_Dimensions(t *testing.T) {
	m := newTestManager(80, 20)
	d := dock.NewDockState(dock.Tab{Title: "one", Body: "hello"}, dock.Tab{Title: "two"})
	s := d.AddWindow(dock.Tab{Title: "float"})
	d.Surface(s).Window.SetPosition(dock.Pos2{X: 40, Y: 5})

	out := m.Render(d, m.Frame(d), Focus{}, "status")
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for i, line := range lines[:19] {
		if w := ansi.StringWidth(line); w != 80 {
			t.Fatalf("line %d: expected width 80, got %d", i, w)
		}
	}
	if !strings.Contains(out, "float") || !strings.Contains(out, "hello") {
		t.Fatalf("expected floating tab and note body in output")
	}
}

func TestFloatingNodeAt_MatchesRenderedSplit(t *testing.T) {
	m := newTestManager(120, 41)
	d := dock.NewDockState()
	s := d.AddWindow(dock.Tab{Title: "a"})
	surface := d.Surface(s)
	surface.Nodes = append(surface.Nodes,
		&dock.Node{Tabs: []dock.Tab{{Title: "b"}}},
		&dock.Node{Tabs: []dock.Tab{{Title: "c"}}})
	p := Placement{Surface: s, Rect: dock.RectFromMinSize(dock.Pos2{X: 10, Y: 2}, dock.Vec2{X: 40, Y: 10})}

	// 40 columns over 3 nodes render as 13, 13, 14
	tests := []struct {
		x    int
		want dock.NodeIndex
		ok   bool
	}{
		{10, 0, true},
		{22, 0, true},
		{23, 1, true},
		{35, 1, true},
		{36, 2, true},
		{49, 2, true},
		{9, 0, false},
		{50, 0, false},
	}
	for _, tt := range tests {
		n, ok := m.FloatingNodeAt(d, p, tt.x)
		if n != tt.want || ok != tt.ok {
			t.Fatalf("column %d: expected node %d (ok=%v), got %d (ok=%v)", tt.x, tt.want, tt.ok, n, ok)
		}
	}
}

func TestConfigure_ChangesDefaultWindowSize(t *testing.T) {
	m := newTestManager(120, 41)
	cfg := config.Default.Layout
	cfg.WindowWidth = 20
	cfg.WindowHeight = 8
	m.Configure(cfg)

	d := dock.NewDockState()
	d.AddWindow(dock.Tab{Title: "float"})
	if got := m.Frame(d)[0].Rect.Size(); got != (dock.Vec2{X: 20, Y: 8}) {
		t.Fatalf("expected default size 20x8, got %+v", got)
	}
}
