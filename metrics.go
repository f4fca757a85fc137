package flow

// scrollable is the orientation-free face of a Flow: estimates and scroll
// operations expressed in length/breadth terms. metrics implementations map
// these onto the horizontal and vertical host axes.
type scrollable interface {
	TotalLengthEstimate() float32
	TotalBreadthEstimate() float32
	LengthPositionEstimate() float32
	BreadthPositionEstimate() float32
	SetLengthPosition(pos float32)
	SetBreadthPosition(pos float32)
	ScrollLength(delta float32)
	ScrollBreadth(delta float32)
}

// metrics is the geometry adapter for one flow orientation. "Length" is the
// scroll axis, "breadth" the cross axis; the windowing algorithm is written
// once against this interface and instantiated with one of the two
// implementations below.
type metrics interface {
	contentBias() Orientation

	length(r Rect) float32
	breadth(r Rect) float32
	minY(r Rect) float32
	maxY(r Rect) float32

	minBreadth(c Cell) float32
	prefBreadth(c Cell) float32
	prefLength(c Cell, breadth float32) float32

	resizeRelocate(c Cell, b0, l0, breadth, length float32)
	relocate(c Cell, b0, l0 float32)

	widthEstimate(s scrollable) float32
	heightEstimate(s scrollable) float32
	horizontalPosition(s scrollable) float32
	verticalPosition(s scrollable) float32
	setHorizontalPosition(s scrollable, pos float32)
	setVerticalPosition(s scrollable, pos float32)
	scrollHorizontally(s scrollable, delta float32)
	scrollVertically(s scrollable, delta float32)
}

func cellLength(m metrics, c Cell) float32 { return m.length(c.Bounds()) }
func cellMinY(m metrics, c Cell) float32   { return m.minY(c.Bounds()) }
func cellMaxY(m metrics, c Cell) float32   { return m.maxY(c.Bounds()) }

// verticalMetrics describes a vertical flow: cells stack top to bottom, the
// length axis is Y and the breadth axis is X.
type verticalMetrics struct{}

func (verticalMetrics) contentBias() Orientation { return Horizontal }

func (verticalMetrics) length(r Rect) float32  { return r.H }
func (verticalMetrics) breadth(r Rect) float32 { return r.W }
func (verticalMetrics) minY(r Rect) float32    { return r.Y }
func (verticalMetrics) maxY(r Rect) float32    { return r.Y + r.H }

func (verticalMetrics) minBreadth(c Cell) float32  { return c.MinWidth() }
func (verticalMetrics) prefBreadth(c Cell) float32 { return c.PrefWidth(-1) }
func (verticalMetrics) prefLength(c Cell, breadth float32) float32 {
	return c.PrefHeight(breadth)
}

func (verticalMetrics) resizeRelocate(c Cell, b0, l0, breadth, length float32) {
	c.Resize(breadth, length)
	c.Relocate(b0, l0)
}

func (verticalMetrics) relocate(c Cell, b0, l0 float32) {
	c.Relocate(b0, l0)
}

func (verticalMetrics) widthEstimate(s scrollable) float32  { return s.TotalBreadthEstimate() }
func (verticalMetrics) heightEstimate(s scrollable) float32 { return s.TotalLengthEstimate() }

func (verticalMetrics) horizontalPosition(s scrollable) float32 { return s.BreadthPositionEstimate() }
func (verticalMetrics) verticalPosition(s scrollable) float32   { return s.LengthPositionEstimate() }

func (verticalMetrics) setHorizontalPosition(s scrollable, pos float32) { s.SetBreadthPosition(pos) }
func (verticalMetrics) setVerticalPosition(s scrollable, pos float32)   { s.SetLengthPosition(pos) }

func (verticalMetrics) scrollHorizontally(s scrollable, delta float32) { s.ScrollBreadth(delta) }
func (verticalMetrics) scrollVertically(s scrollable, delta float32)   { s.ScrollLength(delta) }

// horizontalMetrics describes a horizontal flow: cells stack left to right,
// the length axis is X and the breadth axis is Y.
type horizontalMetrics struct{}

func (horizontalMetrics) contentBias() Orientation { return Vertical }

func (horizontalMetrics) length(r Rect) float32  { return r.W }
func (horizontalMetrics) breadth(r Rect) float32 { return r.H }
func (horizontalMetrics) minY(r Rect) float32    { return r.X }
func (horizontalMetrics) maxY(r Rect) float32    { return r.X + r.W }

func (horizontalMetrics) minBreadth(c Cell) float32  { return c.MinHeight() }
func (horizontalMetrics) prefBreadth(c Cell) float32 { return c.PrefHeight(-1) }
func (horizontalMetrics) prefLength(c Cell, breadth float32) float32 {
	return c.PrefWidth(breadth)
}

func (horizontalMetrics) resizeRelocate(c Cell, b0, l0, breadth, length float32) {
	c.Resize(length, breadth)
	c.Relocate(l0, b0)
}

func (horizontalMetrics) relocate(c Cell, b0, l0 float32) {
	c.Relocate(l0, b0)
}

func (horizontalMetrics) widthEstimate(s scrollable) float32  { return s.TotalLengthEstimate() }
func (horizontalMetrics) heightEstimate(s scrollable) float32 { return s.TotalBreadthEstimate() }

func (horizontalMetrics) horizontalPosition(s scrollable) float32 { return s.LengthPositionEstimate() }
func (horizontalMetrics) verticalPosition(s scrollable) float32   { return s.BreadthPositionEstimate() }

func (horizontalMetrics) setHorizontalPosition(s scrollable, pos float32) { s.SetLengthPosition(pos) }
func (horizontalMetrics) setVerticalPosition(s scrollable, pos float32)   { s.SetBreadthPosition(pos) }

func (horizontalMetrics) scrollHorizontally(s scrollable, delta float32) { s.ScrollLength(delta) }
func (horizontalMetrics) scrollVertically(s scrollable, delta float32)   { s.ScrollBreadth(delta) }
