package dock

import "math"

// Pos2 is a point in screen coordinates, measured in terminal cells
type Pos2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 is a size or offset in terminal cells
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle spanning Min to Max
type Rect struct {
	Min Pos2 `json:"min"`
	Max Pos2 `json:"max"`
}

// RectFromMinSize builds a rectangle from its top-left corner and size
func RectFromMinSize(origin Pos2, size Vec2) Rect {
	return Rect{Min: origin, Max: Pos2{X: origin.X + size.X, Y: origin.Y + size.Y}}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns width and height as a vector
func (r Rect) Size() Vec2 { return Vec2{X: r.Width(), Y: r.Height()} }

// IsFinite reports whether every coordinate is a finite number
func (r Rect) IsFinite() bool {
	for _, v := range [...]float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the rectangle (max edges exclusive)
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// ConstrainedTo shrinks r to fit inside bounds, then shifts it so no edge
// falls outside.
func (r Rect) ConstrainedTo(bounds Rect) Rect {
	size := Vec2{
		X: math.Min(r.Width(), bounds.Width()),
		Y: math.Min(r.Height(), bounds.Height()),
	}
	origin := r.Min
	origin.X = math.Max(bounds.Min.X, math.Min(origin.X, bounds.Max.X-size.X))
	origin.Y = math.Max(bounds.Min.Y, math.Min(origin.Y, bounds.Max.Y-size.Y))
	return RectFromMinSize(origin, size)
}
