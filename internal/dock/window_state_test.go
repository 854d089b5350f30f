package dock

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

var testBounds = Rect{Max: Pos2{X: 200, Y: 60}}

func TestNewWindowState_Defaults(t *testing.T) {
	w := NewWindowState()

	if got := w.Rect(); got != (Rect{}) {
		t.Fatalf("expected zero rect for undrawn window, got %+v", got)
	}
	if !w.Rect().IsFinite() {
		t.Fatalf("expected finite rect")
	}
	if w.Dragged() {
		t.Fatalf("expected new window not to be dragged")
	}
	if w.IsMinimized() {
		t.Fatalf("expected new window not to be minimized")
	}
}

func TestSetPosition_AppliedOnce(t *testing.T) {
	w := NewWindowState()
	if w.SetPosition(Pos2{X: 10, Y: 20}) != w {
		t.Fatalf("expected SetPosition to return the receiver")
	}

	first := w.Materialize("win", testBounds)
	if first.Position == nil || *first.Position != (Pos2{X: 10, Y: 20}) {
		t.Fatalf("expected position (10,20), got %v", first.Position)
	}

	second := w.Materialize("win", testBounds)
	if second.Position != nil {
		t.Fatalf("expected queued position to be consumed, got %v", *second.Position)
	}
}

func TestMaterialize_PositionAndSizeScenario(t *testing.T) {
	w := NewWindowState()
	w.SetPosition(Pos2{X: 10, Y: 20}).SetSize(Vec2{X: 300, Y: 200})

	spec := w.Materialize("win-1", testBounds)
	if spec.ID != "win-1" {
		t.Fatalf("expected id win-1, got %q", spec.ID)
	}
	if spec.TitleBar {
		t.Fatalf("expected no title bar")
	}
	if spec.Constrain != testBounds {
		t.Fatalf("expected constrain %+v, got %+v", testBounds, spec.Constrain)
	}
	if spec.Position == nil || *spec.Position != (Pos2{X: 10, Y: 20}) {
		t.Fatalf("expected position (10,20), got %v", spec.Position)
	}
	if spec.FixedSize == nil || *spec.FixedSize != (Vec2{X: 300, Y: 200}) {
		t.Fatalf("expected size (300,200), got %v", spec.FixedSize)
	}
	if w.new {
		t.Fatalf("expected new flag to be cleared after materialize")
	}

	again := w.Materialize("win-1", testBounds)
	if again.Position != nil || again.FixedSize != nil {
		t.Fatalf("expected no forced position or size, got %v %v", again.Position, again.FixedSize)
	}
}

func TestToggleMinimized_DoubleToggleRestores(t *testing.T) {
	w := NewWindowState()
	w.SetPosition(Pos2{X: 1, Y: 2}).SetSize(Vec2{X: 3, Y: 4})

	w.ToggleMinimized()
	if !w.IsMinimized() {
		t.Fatalf("expected minimized after one toggle")
	}
	w.ToggleMinimized()
	if w.IsMinimized() {
		t.Fatalf("expected double toggle to restore original value")
	}

	if _, ok := w.TakeNextPosition(); !ok {
		t.Fatalf("expected toggle to leave queued position alone")
	}
	if _, ok := w.TakeNextSize(); !ok {
		t.Fatalf("expected toggle to leave queued size alone")
	}
}

func TestMaterialize_ExpandedHeightPinsFirstFrameOnly(t *testing.T) {
	w := NewWindowState()
	w.SetExpandedHeight(42)

	first := w.Materialize("win", testBounds)
	if first.MinHeight == nil || first.MaxHeight == nil {
		t.Fatalf("expected height to be pinned on first frame")
	}
	if *first.MinHeight != 42 || *first.MaxHeight != 42 {
		t.Fatalf("expected height pinned to 42, got min=%v max=%v", *first.MinHeight, *first.MaxHeight)
	}

	second := w.Materialize("win", testBounds)
	if second.MinHeight != nil || second.MaxHeight != nil {
		t.Fatalf("expected unconstrained height on second frame")
	}
}

func TestMaterialize_ExpandedHeightIgnoredWhenNotNew(t *testing.T) {
	w := NewWindowState()
	w.Materialize("win", testBounds)

	w.SetExpandedHeight(30)
	spec := w.Materialize("win", testBounds)
	if spec.MinHeight != nil {
		t.Fatalf("expected no pin for a window that is not new")
	}
	// not consumed, so a later re-flag still sees it
	w.SetNew(true)
	spec = w.Materialize("win", testBounds)
	if spec.MinHeight == nil || *spec.MinHeight != 30 {
		t.Fatalf("expected pin to 30 after SetNew(true), got %v", spec.MinHeight)
	}
}

func TestTakeAccessors_ClearOnRead(t *testing.T) {
	w := NewWindowState()
	w.SetExpandedHeight(12)

	if h, ok := w.TakeExpandedHeight(); !ok || h != 12 {
		t.Fatalf("expected 12, got %v (ok=%v)", h, ok)
	}
	if _, ok := w.TakeExpandedHeight(); ok {
		t.Fatalf("expected expanded height to be cleared")
	}
	if _, ok := w.TakeNextPosition(); ok {
		t.Fatalf("expected no queued position")
	}
	if _, ok := w.TakeNextSize(); ok {
		t.Fatalf("expected no queued size")
	}
}

func TestSetScreenRect_DropsNonFinite(t *testing.T) {
	w := NewWindowState()
	w.SetScreenRect(Rect{Min: Pos2{X: 1, Y: 1}, Max: Pos2{X: 5, Y: 5}})
	if w.Rect().Width() != 4 {
		t.Fatalf("expected width 4, got %v", w.Rect().Width())
	}

	w.SetScreenRect(Rect{Min: Pos2{X: math.Inf(1), Y: math.Inf(1)}, Max: Pos2{X: math.Inf(-1), Y: math.Inf(-1)}})
	if w.Rect() != (Rect{}) {
		t.Fatalf("expected infinite rect to be discarded, got %+v", w.Rect())
	}
}

func TestWindowState_JSONRoundTrip(t *testing.T) {
	undrawn := NewWindowState()
	data, err := json.Marshal(undrawn)
	if err != nil {
		t.Fatalf("marshal undrawn: %v", err)
	}
	if !strings.Contains(string(data), `"screen_rect":null`) {
		t.Fatalf("expected null screen_rect, got %s", data)
	}

	w := NewWindowState()
	w.SetScreenRect(Rect{Min: Pos2{X: 2, Y: 3}, Max: Pos2{X: 40, Y: 20}})
	w.SetDragged(true)
	w.SetPosition(Pos2{X: 7, Y: 8})
	w.SetExpandedHeight(17)
	w.ToggleMinimized()
	w.SetNew(false)

	data, err = json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got WindowState
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Rect() != w.Rect() || !got.Dragged() || !got.IsMinimized() || got.new {
		t.Fatalf("round trip mismatch: %s", data)
	}
	if p, ok := got.TakeNextPosition(); !ok || p != (Pos2{X: 7, Y: 8}) {
		t.Fatalf("expected queued position to survive, got %v", p)
	}
	if h, ok := got.TakeExpandedHeight(); !ok || h != 17 {
		t.Fatalf("expected expanded height 17, got %v", h)
	}
}

func TestWindowState_UnmarshalDefaultsNew(t *testing.T) {
	var w WindowState
	if err := json.Unmarshal([]byte(`{"minimized":true}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !w.new {
		t.Fatalf("expected missing new field to default to true")
	}
	if w.Rect() != (Rect{}) {
		t.Fatalf("expected zero rect")
	}
}
