package flow

// Vec2 is a 2D point, used by hosts for hit testing against the rectangles
// the flow and its scroll pane report.
type Vec2 struct {
	X, Y float32
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Orientation identifies one of the two screen axes.
type Orientation uint8

const (
	// Horizontal is the X axis.
	Horizontal Orientation = iota
	// Vertical is the Y axis.
	Vertical
)

// String returns the axis name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// indexRange is a half-open range of item indices [Start, End).
type indexRange struct {
	Start, End int
}

func (r indexRange) len() int {
	return r.End - r.Start
}

// hole is a tagged optional range of item indices that lie inside the
// nominal rendered span but have no cell. The range fields are only
// meaningful when present is set.
type hole struct {
	present    bool
	start, end int // [start, end), item indices
}

func (h hole) len() int {
	if !h.present {
		return 0
	}
	return h.end - h.start
}

func someHole(start, end int) hole {
	return hole{present: true, start: start, end: end}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
