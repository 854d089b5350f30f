package dock

import "encoding/json"

// WindowState holds the state of a floating window that has to survive
// between frames. It doubles as a handle: callers queue a position or size
// with SetPosition/SetSize and the next Materialize applies it.
type WindowState struct {
	// area the window last took up; nil until it has been drawn
	screenRect *Rect
	dragged    bool

	nextPosition *Pos2
	nextSize     *Vec2

	// height before the window was fully collapsed
	expandedHeight *float64

	// true for the first frame after creation or re-expansion
	new       bool
	minimized bool
}

// WindowSpec describes how a floating window should be drawn this frame.
// It is built by Materialize and is only valid for one frame.
type WindowSpec struct {
	ID        string
	TitleBar  bool
	Constrain Rect

	Position  *Pos2
	FixedSize *Vec2
	MinHeight *float64
	MaxHeight *float64
}

// NewWindowState creates the state for a window that has never been drawn
func NewWindowState() *WindowState {
	return &WindowState{new: true}
}

// SetPosition queues a position in screen coordinates for the next frame
func (w *WindowState) SetPosition(position Pos2) *WindowState {
	w.nextPosition = &position
	return w
}

// SetSize queues a size for the next frame
func (w *WindowState) SetSize(size Vec2) *WindowState {
	w.nextSize = &size
	return w
}

// Rect returns the area this window occupies. A window that has not been
// drawn yet reports the zero Rect.
func (w *WindowState) Rect() Rect {
	if w.screenRect == nil {
		return Rect{}
	}
	return *w.screenRect
}

// Dragged reports whether the window was dragged during the last frame
func (w *WindowState) Dragged() bool {
	return w.dragged
}

// IsMinimized reports whether the window is collapsed to its tab bar
func (w *WindowState) IsMinimized() bool {
	return w.minimized
}

// ToggleMinimized flips the minimized flag. Pending position and size are
// left alone.
func (w *WindowState) ToggleMinimized() {
	w.minimized = !w.minimized
}

// SetExpandedHeight records the height to restore on re-expansion
func (w *WindowState) SetExpandedHeight(height float64) *WindowState {
	w.expandedHeight = &height
	return w
}

// SetNew marks the window as new so the next Materialize pins its height
func (w *WindowState) SetNew(isNew bool) *WindowState {
	w.new = isNew
	return w
}

// SetScreenRect records where the window was actually drawn. Non-finite
// rectangles are discarded.
func (w *WindowState) SetScreenRect(r Rect) *WindowState {
	if !r.IsFinite() {
		w.screenRect = nil
		return w
	}
	w.screenRect = &r
	return w
}

// SetDragged records whether the window was dragged during the frame
func (w *WindowState) SetDragged(dragged bool) *WindowState {
	w.dragged = dragged
	return w
}

// TakeNextPosition returns and clears the queued position
func (w *WindowState) TakeNextPosition() (Pos2, bool) {
	if w.nextPosition == nil {
		return Pos2{}, false
	}
	p := *w.nextPosition
	w.nextPosition = nil
	return p, true
}

// TakeNextSize returns and clears the queued size
func (w *WindowState) TakeNextSize() (Vec2, bool) {
	if w.nextSize == nil {
		return Vec2{}, false
	}
	s := *w.nextSize
	w.nextSize = nil
	return s, true
}

// TakeExpandedHeight returns and clears the cached expanded height
func (w *WindowState) TakeExpandedHeight() (float64, bool) {
	if w.expandedHeight == nil {
		return 0, false
	}
	h := *w.expandedHeight
	w.expandedHeight = nil
	return h, true
}

// Materialize builds this frame's WindowSpec. Queued position and size are
// consumed. On the first frame after creation or SetNew(true) a cached
// expanded height is consumed and pins the height, so a re-expanded window
// does not flash at its default size. The new flag is always cleared.
func (w *WindowState) Materialize(id string, bounds Rect) WindowSpec {
	isNew := w.new
	spec := WindowSpec{
		ID:        id,
		TitleBar:  false,
		Constrain: bounds,
	}

	if position, ok := w.TakeNextPosition(); ok {
		spec.Position = &position
	}
	if size, ok := w.TakeNextSize(); ok {
		spec.FixedSize = &size
	}
	if isNew {
		if height, ok := w.TakeExpandedHeight(); ok {
			spec.MinHeight = &height
			spec.MaxHeight = &height
		}
	}

	w.new = false
	return spec
}

type windowStateJSON struct {
	ScreenRect     *Rect    `json:"screen_rect"`
	Dragged        bool     `json:"dragged"`
	NextPosition   *Pos2    `json:"next_position"`
	NextSize       *Vec2    `json:"next_size"`
	ExpandedHeight *float64 `json:"expanded_height"`
	New            bool     `json:"new"`
	Minimized      bool     `json:"minimized"`
}

// MarshalJSON encodes the state as named fields. An undrawn window encodes
// screen_rect as null.
func (w *WindowState) MarshalJSON() ([]byte, error) {
	return json.Marshal(windowStateJSON{
		ScreenRect:     w.screenRect,
		Dragged:        w.dragged,
		NextPosition:   w.nextPosition,
		NextSize:       w.nextSize,
		ExpandedHeight: w.expandedHeight,
		New:            w.new,
		Minimized:      w.minimized,
	})
}

// UnmarshalJSON decodes the form written by MarshalJSON
func (w *WindowState) UnmarshalJSON(data []byte) error {
	// fields missing from the input keep NewWindowState defaults
	raw := windowStateJSON{New: true}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = WindowState{
		dragged:        raw.Dragged,
		nextPosition:   raw.NextPosition,
		nextSize:       raw.NextSize,
		expandedHeight: raw.ExpandedHeight,
		new:            raw.New,
		minimized:      raw.Minimized,
	}
	if raw.ScreenRect != nil {
		w.SetScreenRect(*raw.ScreenRect)
	}
	return nil
}
