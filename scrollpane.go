package flow

// ScrollBar is the value model of one scrollbar. The engine keeps the model
// in sync with the flow's estimates; rendering the bar and translating input
// gestures into SetHorizontalValue/SetVerticalValue calls is the host's
// business.
type ScrollBar struct {
	Min, Max      float32
	Value         float32 // position in content-total units, within [Min, Max]
	VisibleAmount float32 // viewport extent along the bar's axis

	UnitIncrement  float32 // one scroll step, in position units
	BlockIncrement float32 // one page, in position units

	Visible bool
}

// ThumbSpan returns the start offset and size of the scrollbar thumb on a
// track of the given extent.
func (b *ScrollBar) ThumbSpan(trackLen float32) (start, size float32) {
	if b.Max <= b.Min || b.Max <= b.VisibleAmount {
		return 0, trackLen
	}
	size = b.VisibleAmount / b.Max * trackLen
	if size > trackLen {
		size = trackLen
	}
	start = b.Value / b.Max * (trackLen - size)
	return start, size
}

const (
	defaultBarThickness = 12
	unitIncrementPixels = 13
)

// PaneOption configures a ScrollPane.
type PaneOption func(*paneConfig)

type paneConfig struct {
	barThickness float32
}

// WithBarThickness sets how many pixels of the pane each visible scrollbar
// occupies. The default is 12.
func WithBarThickness(t float32) PaneOption {
	return func(c *paneConfig) { c.barThickness = t }
}

// ScrollPane couples a Flow with a horizontal and a vertical scrollbar
// model. Each visible bar takes a slice of the pane, which shrinks the
// flow's viewport, which in turn can change whether the other bar is
// needed; Layout settles this with a bounded fixed-point iteration.
type ScrollPane[T any, C Cell] struct {
	flow *Flow[T, C]

	hbar, vbar    ScrollBar
	barThickness  float32
	width, height float32
	content       Rect
}

// NewScrollPane wraps the given flow. Call Layout before reading the bar
// models or content rectangle.
func NewScrollPane[T any, C Cell](f *Flow[T, C], opts ...PaneOption) *ScrollPane[T, C] {
	cfg := paneConfig{barThickness: defaultBarThickness}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ScrollPane[T, C]{flow: f, barThickness: cfg.barThickness}
}

// Flow returns the wrapped flow.
func (p *ScrollPane[T, C]) Flow() *Flow[T, C] { return p.flow }

// HBar returns the horizontal scrollbar model.
func (p *ScrollPane[T, C]) HBar() *ScrollBar { return &p.hbar }

// VBar returns the vertical scrollbar model.
func (p *ScrollPane[T, C]) VBar() *ScrollBar { return &p.vbar }

// ContentRect returns the rectangle the flow's viewport occupies within the
// pane.
func (p *ScrollPane[T, C]) ContentRect() Rect { return p.content }

// HBarRect returns the rectangle of the horizontal scrollbar, zero when the
// bar is hidden.
func (p *ScrollPane[T, C]) HBarRect() Rect {
	if !p.hbar.Visible {
		return Rect{}
	}
	return Rect{X: 0, Y: p.height - p.barThickness, W: p.content.W, H: p.barThickness}
}

// VBarRect returns the rectangle of the vertical scrollbar, zero when the
// bar is hidden.
func (p *ScrollPane[T, C]) VBarRect() Rect {
	if !p.vbar.Visible {
		return Rect{}
	}
	return Rect{X: p.width - p.barThickness, Y: 0, W: p.barThickness, H: p.content.H}
}

// Layout sizes the flow's viewport and the scrollbars within the given
// outer bounds.
func (p *ScrollPane[T, C]) Layout(width, height float32) {
	p.width, p.height = width, height

	// allow 3 iterations:
	// - the first might result in need of one scrollbar
	// - the second might result in need of the other scrollbar,
	//   as a result of limited space due to the first one
	// - the third iteration should lead to a fixed point
	p.layoutPass(3)
	p.syncBars()
}

func (p *ScrollPane[T, C]) layoutPass(limit int) {
	vbarVisible := p.vbar.Visible
	hbarVisible := p.hbar.Visible

	vbarWidth := float32(0)
	if vbarVisible {
		vbarWidth = p.barThickness
	}
	hbarHeight := float32(0)
	if hbarVisible {
		hbarHeight = p.barThickness
	}

	w := p.width - vbarWidth
	h := p.height - hbarHeight

	p.flow.Resize(w, h)
	p.content = Rect{W: w, H: h}

	p.vbar.Visible = p.flow.HeightEstimate() > p.height
	p.hbar.Visible = p.flow.WidthEstimate() > p.width

	if p.vbar.Visible != vbarVisible || p.hbar.Visible != hbarVisible {
		// the need for scrollbars changed, start over
		if limit > 1 {
			p.layoutPass(limit - 1)
			return
		}
		// layout didn't settle: accept the approximation
		flowLogger.Debug("scrollbar layout did not settle")
	}

	p.hbar.VisibleAmount = w
	p.vbar.VisibleAmount = h
}

// SetHorizontalValue scrolls to the given horizontal scrollbar value.
func (p *ScrollPane[T, C]) SetHorizontalValue(v float32) {
	p.flow.SetHorizontalPosition(v)
	p.syncBars()
}

// SetVerticalValue scrolls to the given vertical scrollbar value.
func (p *ScrollPane[T, C]) SetVerticalValue(v float32) {
	p.flow.SetVerticalPosition(v)
	p.syncBars()
}

// Scroll scrolls the content by the given wheel deltas. Positive deltas
// move the content backward, matching wheel conventions.
func (p *ScrollPane[T, C]) Scroll(dx, dy float32) {
	p.flow.ScrollVertically(dy)
	p.flow.ScrollHorizontally(dx)
	p.syncBars()
}

// syncBars refreshes the bar models from the flow's estimates.
func (p *ScrollPane[T, C]) syncBars() {
	p.hbar.Min = 0
	p.vbar.Min = 0
	p.hbar.Max = p.flow.WidthEstimate()
	p.vbar.Max = p.flow.HeightEstimate()
	p.hbar.Value = p.flow.HorizontalPosition()
	p.vbar.Value = p.flow.VerticalPosition()
	p.hbar.UnitIncrement = unitIncrement(p.hbar.Max, p.hbar.VisibleAmount)
	p.vbar.UnitIncrement = unitIncrement(p.vbar.Max, p.vbar.VisibleAmount)
	p.hbar.BlockIncrement = p.hbar.VisibleAmount
	p.vbar.BlockIncrement = p.vbar.VisibleAmount
}

// unitIncrement maps one wheel notch to position units so that it scrolls a
// fixed number of pixels regardless of content size.
func unitIncrement(max, visible float32) float32 {
	if max > visible {
		return unitIncrementPixels / (max - visible) * max
	}
	return 0
}
