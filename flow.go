package flow

import (
	"fmt"
	"log/slog"
	"os"
)

// flowLogLevel controls the log level for flow debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var flowLogLevel = new(slog.LevelVar)

// flowLogger is the logger for flow debugging.
var flowLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: flowLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the package.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		flowLogLevel.Set(slog.LevelDebug)
	} else {
		flowLogLevel.Set(slog.LevelInfo)
	}
}

const defaultPrefCellCount = 20

// Option configures a Flow instance.
type Option func(*flowConfig)

type flowConfig struct {
	prefCellCount int
}

// WithPrefCellCount sets how many cells participate in preferred-length
// queries (PrefWidth of a horizontal flow, PrefHeight of a vertical one).
// The default is 20.
func WithPrefCellCount(n int) Option {
	return func(c *flowConfig) { c.prefCellCount = n }
}

// Flow virtualizes an ordered sequence of items as visual cells. Only the
// items in and around the viewport have a cell at any time, so rendering
// work and memory stay proportional to the viewport size rather than the
// item count.
//
// A Flow observes its Items sequence and reacts to mutations incrementally;
// it never reflows content it does not have to. All operations are
// synchronous and must run on the host's event loop: the type is not safe
// for concurrent use.
type Flow[T any, C Cell] struct {
	items   *Items[T]
	factory CellFactory[T, C]
	met     metrics
	tracker *breadthTracker
	pool    cellPool[C]

	// viewport bounds, set by Resize
	width, height float32

	// cells holds the rendered window. Cell i corresponds to item
	// renderedFrom+i for items before the hole and renderedFrom+i+hole.len()
	// for items after it. Visible cells form a contiguous sub-run.
	cells         []C
	renderedFrom  int
	hole          hole
	visibleLength float32 // sum of length extents of visible cells
	breadthOffset float32 // cross-axis scroll offset, always <= 0

	prefCellCount int

	totalBreadthEst lazyFloat32
	totalLengthEst  lazyFloat32
	breadthPosEst   lazyFloat32
	lengthOffsetEst lazyFloat32
	lengthPosEst    lazyFloat32
}

// NewVertical creates a flow that stacks cells top to bottom and scrolls
// along the Y axis.
func NewVertical[T any, C Cell](items *Items[T], factory CellFactory[T, C], opts ...Option) *Flow[T, C] {
	return newFlow(items, factory, verticalMetrics{}, opts)
}

// NewHorizontal creates a flow that stacks cells left to right and scrolls
// along the X axis.
func NewHorizontal[T any, C Cell](items *Items[T], factory CellFactory[T, C], opts ...Option) *Flow[T, C] {
	return newFlow(items, factory, horizontalMetrics{}, opts)
}

func newFlow[T any, C Cell](items *Items[T], factory CellFactory[T, C], met metrics, opts []Option) *Flow[T, C] {
	cfg := flowConfig{prefCellCount: defaultPrefCellCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Flow[T, C]{
		items:         items,
		factory:       factory,
		met:           met,
		tracker:       newBreadthTracker(items.Len()),
		prefCellCount: cfg.prefCellCount,
	}

	f.totalBreadthEst.compute = f.computeTotalBreadth
	f.totalLengthEst.compute = f.computeTotalLength
	f.breadthPosEst.compute = f.computeBreadthPosition
	f.lengthOffsetEst.compute = f.computeLengthOffset
	f.lengthPosEst.compute = f.computeLengthPosition

	items.OnChange(f.itemsReplaced)

	return f
}

// Items returns the observed sequence.
func (f *Flow[T, C]) Items() *Items[T] {
	return f.items
}

// Orientation returns the scroll axis of the flow.
func (f *Flow[T, C]) Orientation() Orientation {
	if f.met.contentBias() == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ContentBias returns the axis whose extent influences the preferred extent
// of the other one: Horizontal for a vertical flow (cell heights depend on
// the available width) and Vertical for a horizontal flow.
func (f *Flow[T, C]) ContentBias() Orientation {
	return f.met.contentBias()
}

// Width returns the viewport width last set by Resize.
func (f *Flow[T, C]) Width() float32 { return f.width }

// Height returns the viewport height last set by Resize.
func (f *Flow[T, C]) Height() float32 { return f.height }

// Resize sets the viewport bounds. Visible cells are re-laid out if the new
// cross-axis extent changes how broad they should be, the window is refilled
// to cover the new viewport and all derived estimates are invalidated.
func (f *Flow[T, C]) Resize(width, height float32) {
	oldBounds := Rect{W: f.width, H: f.height}
	newBounds := Rect{W: width, H: height}
	f.width, f.height = width, height

	oldBreadth := f.met.breadth(oldBounds)
	newBreadth := f.met.breadth(newBounds)
	minBreadth := f.maxKnownBreadth()
	breadth := maxf(minBreadth, newBreadth)

	flowLogger.Debug("flow resize", "width", width, "height", height)

	if oldBreadth != newBreadth {
		if oldBreadth <= minBreadth && newBreadth <= minBreadth {
			// cells already span minBreadth, nothing changes
		} else {
			f.resizeVisibleCells(breadth)
		}
	}

	if breadth+f.breadthOffset < newBreadth { // empty space at the far edge
		f.shiftVisibleCellsByBreadth(newBreadth - (breadth + f.breadthOffset))
	}

	f.fillViewport(0)
	f.invalidateEstimates()
}

// PrefWidth returns the preferred width of the whole flow for the given
// height (pass a negative height for "unconstrained").
func (f *Flow[T, C]) PrefWidth(height float32) float32 {
	switch f.met.contentBias() {
	case Horizontal: // vertical flow
		return f.computePrefBreadth()
	default: // horizontal flow
		return f.computePrefLength(height)
	}
}

// PrefHeight returns the preferred height of the whole flow for the given
// width (pass a negative width for "unconstrained").
func (f *Flow[T, C]) PrefHeight(width float32) float32 {
	switch f.met.contentBias() {
	case Horizontal: // vertical flow
		return f.computePrefLength(width)
	default: // horizontal flow
		return f.computePrefBreadth()
	}
}

func (f *Flow[T, C]) computePrefBreadth() float32 {
	// take the maximum over rendered cells, but first make sure
	// there is a reasonable sample to take the maximum of
	f.ensureRenderedCells(10)
	pref := float32(0)
	for _, c := range f.cells {
		pref = maxf(pref, f.met.prefBreadth(c))
	}
	return pref
}

func (f *Flow[T, C]) computePrefLength(breadth float32) float32 {
	n := f.prefCellCount
	f.ensureRenderedCells(n)
	sum := float32(0)
	for i, c := range f.cells {
		if i >= n {
			break
		}
		sum += f.met.prefLength(c, breadth)
	}
	return sum
}

// ensureRenderedCells renders cells adjacent to the current window until at
// least n exist or the sequence is exhausted.
func (f *Flow[T, C]) ensureRenderedCells(n int) {
	for i := len(f.cells); i < n; i++ {
		switch {
		case f.hole.present:
			f.mustRender(f.hole.start)
		case f.renderedFrom > 0:
			f.mustRender(f.renderedFrom - 1)
		case f.renderedFrom+len(f.cells) < f.items.Len():
			f.mustRender(f.renderedFrom + len(f.cells))
		default:
			return
		}
	}
}

// VisibleCells returns the currently visible cells in item order. The
// returned slice is freshly allocated; mutating it does not affect the flow.
func (f *Flow[T, C]) VisibleCells() []C {
	var out []C
	for _, c := range f.cells {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// VisibleCell returns the cell currently displaying the given item, or an
// error if that item has no visible cell.
func (f *Flow[T, C]) VisibleCell(itemIdx int) (C, error) {
	var zero C
	if itemIdx < f.renderedFrom {
		return zero, fmt.Errorf("flow: item %d is not visible", itemIdx)
	}

	var cell C
	if f.hole.present {
		switch {
		case itemIdx < f.hole.start:
			cell = f.cells[itemIdx-f.renderedFrom]
		case itemIdx < f.hole.end:
			return zero, fmt.Errorf("flow: item %d is not visible", itemIdx)
		case itemIdx < f.renderedFrom+f.hole.len()+len(f.cells):
			cell = f.cells[itemIdx-f.hole.len()-f.renderedFrom]
		default:
			return zero, fmt.Errorf("flow: item %d is not visible", itemIdx)
		}
	} else {
		if itemIdx >= f.renderedFrom+len(f.cells) {
			return zero, fmt.Errorf("flow: item %d is not visible", itemIdx)
		}
		cell = f.cells[itemIdx-f.renderedFrom]
	}

	if !cell.Visible() {
		return zero, fmt.Errorf("flow: item %d is not visible", itemIdx)
	}
	return cell, nil
}

// FirstVisibleIndex returns the index of the first item with a visible cell,
// or -1 when nothing is visible.
func (f *Flow[T, C]) FirstVisibleIndex() int {
	if !f.hasVisibleCells() {
		return -1
	}
	return f.firstVisibleRange().Start
}

// WidthEstimate returns the estimated total content width.
func (f *Flow[T, C]) WidthEstimate() float32 { return f.met.widthEstimate(f) }

// HeightEstimate returns the estimated total content height.
func (f *Flow[T, C]) HeightEstimate() float32 { return f.met.heightEstimate(f) }

// HorizontalPosition returns the horizontal scroll position estimate in
// content-total units.
func (f *Flow[T, C]) HorizontalPosition() float32 { return f.met.horizontalPosition(f) }

// VerticalPosition returns the vertical scroll position estimate in
// content-total units.
func (f *Flow[T, C]) VerticalPosition() float32 { return f.met.verticalPosition(f) }

// SetHorizontalPosition scrolls to the given horizontal position,
// expressed in content-total units.
func (f *Flow[T, C]) SetHorizontalPosition(pos float32) { f.met.setHorizontalPosition(f, pos) }

// SetVerticalPosition scrolls to the given vertical position,
// expressed in content-total units.
func (f *Flow[T, C]) SetVerticalPosition(pos float32) { f.met.setVerticalPosition(f, pos) }

// ScrollHorizontally scrolls the content by delta pixels along the X axis.
func (f *Flow[T, C]) ScrollHorizontally(delta float32) { f.met.scrollHorizontally(f, delta) }

// ScrollVertically scrolls the content by delta pixels along the Y axis.
func (f *Flow[T, C]) ScrollVertically(delta float32) { f.met.scrollVertically(f, delta) }

// length returns the viewport extent along the scroll axis.
func (f *Flow[T, C]) length() float32 {
	return f.met.length(Rect{W: f.width, H: f.height})
}

// breadth returns the viewport extent across the scroll axis.
func (f *Flow[T, C]) breadth() float32 {
	return f.met.breadth(Rect{W: f.width, H: f.height})
}

func (f *Flow[T, C]) maxKnownBreadth() float32 {
	return f.tracker.maxKnownBreadth()
}
