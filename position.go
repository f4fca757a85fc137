package flow

import "math"

// The position estimator converts between pixel offsets and normalized
// scroll positions on both axes. The exact total content extent is generally
// unknown, so totals are extrapolated from the cells currently rendered.
// All derived values are memoized with an explicit stale flag: mutation
// invalidates, the next read recomputes.

// lazyFloat32 is a memoized float32 with an explicit stale flag.
type lazyFloat32 struct {
	valid   bool
	value   float32
	compute func() float32
}

func (l *lazyFloat32) get() float32 {
	if !l.valid {
		l.value = l.compute()
		l.valid = true
	}
	return l.value
}

func (l *lazyFloat32) invalidate() {
	l.valid = false
}

func (f *Flow[T, C]) invalidateEstimates() {
	f.totalBreadthEst.invalidate()
	f.totalLengthEst.invalidate()
	f.breadthPosEst.invalidate()
	f.lengthOffsetEst.invalidate()
	f.lengthPosEst.invalidate()
}

// TotalBreadthEstimate returns the estimated total content extent across
// the scroll axis: the maximum cell breadth observed so far.
func (f *Flow[T, C]) TotalBreadthEstimate() float32 {
	return f.totalBreadthEst.get()
}

// TotalLengthEstimate returns the estimated total content extent along the
// scroll axis: the average visible cell length extrapolated over the item
// count, or 0 when nothing is visible.
func (f *Flow[T, C]) TotalLengthEstimate() float32 {
	return f.totalLengthEst.get()
}

// BreadthPositionEstimate returns the cross-axis scroll position in
// content-total units.
func (f *Flow[T, C]) BreadthPositionEstimate() float32 {
	return f.breadthPosEst.get()
}

// LengthPositionEstimate returns the scroll-axis position in content-total
// units.
func (f *Flow[T, C]) LengthPositionEstimate() float32 {
	return f.lengthPosEst.get()
}

func (f *Flow[T, C]) computeTotalBreadth() float32 {
	return f.maxKnownBreadth()
}

func (f *Flow[T, C]) computeTotalLength() float32 {
	visible := 0
	for _, c := range f.cells {
		if c.Visible() {
			visible++
		}
	}
	if visible == 0 {
		return 0
	}
	return f.visibleLength / float32(visible) * float32(f.items.Len())
}

func (f *Flow[T, C]) computeBreadthPosition() float32 {
	if f.items.Len() == 0 {
		return 0
	}
	if f.maxKnownBreadth() <= f.breadth() {
		return 0
	}
	return f.breadthPixelsToPosition(-f.breadthOffset)
}

func (f *Flow[T, C]) computeLengthOffset() float32 {
	if f.items.Len() == 0 {
		return 0
	}

	total := f.totalLengthEst.get()
	if total <= f.length() {
		return 0
	}

	avgLen := total / float32(f.items.Len())
	beforeVisible := float32(f.firstVisibleRange().Start) * avgLen
	return beforeVisible - f.visibleCellsMinY()
}

func (f *Flow[T, C]) computeLengthPosition() float32 {
	return f.pixelsToPosition(f.lengthOffsetEst.get())
}

// SetLengthPosition scrolls along the length axis to the given position in
// content-total units.
func (f *Flow[T, C]) SetLengthPosition(pos float32) {
	f.setLengthOffset(f.positionToPixels(pos))
}

// SetBreadthPosition scrolls across the length axis to the given position in
// content-total units.
func (f *Flow[T, C]) SetBreadthPosition(pos float32) {
	f.setBreadthOffset(f.breadthPositionToPixels(pos))
}

// ScrollLength scrolls the content by delta pixels along the length axis.
// A positive delta moves the content forward (toward smaller offsets),
// matching scroll-wheel conventions.
func (f *Flow[T, C]) ScrollLength(delta float32) {
	f.setLengthOffset(f.lengthOffsetEst.get() - delta)
}

// ScrollBreadth scrolls the content by delta pixels across the length axis.
func (f *Flow[T, C]) ScrollBreadth(delta float32) {
	f.setBreadthOffset(-f.breadthOffset - delta)
}

// setLengthOffset scrolls to the given pixel offset, clamped to the
// scrollable range. A jump shorter than one viewport shifts the visible
// cells directly; a longer one discards the window and re-seeds at the
// estimated target item.
func (f *Flow[T, C]) setLengthOffset(pixels float32) {
	total := f.totalLengthEst.get()
	length := f.length()
	max := maxf(total-length, 0)
	current := f.lengthOffsetEst.get()

	if pixels > max {
		pixels = max
	}
	if pixels < 0 {
		pixels = 0
	}

	diff := pixels - current
	if float32(math.Abs(float64(diff))) < length { // distance less than one screen
		f.shiftVisibleCellsByLength(-diff)
		f.fillViewport(0)
	} else {
		f.goToY(pixels)
	}

	f.totalBreadthEst.invalidate()
	f.totalLengthEst.invalidate()
	f.lengthOffsetEst.invalidate()
	f.lengthPosEst.invalidate()
}

// setBreadthOffset scrolls to the given cross-axis pixel offset, clamped to
// the scrollable range.
func (f *Flow[T, C]) setBreadthOffset(pixels float32) {
	total := f.totalBreadthEst.get()
	breadth := f.breadth()
	max := maxf(total-breadth, 0)
	current := -f.breadthOffset

	if pixels > max {
		pixels = max
	}
	if pixels < 0 {
		pixels = 0
	}

	if pixels != current {
		f.shiftVisibleCellsByBreadth(current - pixels)
		f.breadthPosEst.invalidate()
	}
}

// goToY jumps directly to the given pixel offset: it guesses the first
// visible item from the average cell length, discards all rendered cells and
// seeds a fresh window at the guessed item with the sub-item remainder as
// its offset.
func (f *Flow[T, C]) goToY(pixels float32) {
	if f.items.Len() == 0 {
		return
	}

	total := f.totalLengthEst.get()
	avgLen := total / float32(f.items.Len())
	if avgLen == 0 {
		return
	}
	first := int(pixels / avgLen)
	firstOffset := -float32(math.Mod(float64(pixels), float64(avgLen)))

	flowLogger.Debug("direct jump", "pixels", pixels, "first", first)

	// remove all cells
	f.cullFrom(f.renderedFrom)

	if first < f.items.Len() {
		f.placeInitialAt(first, firstOffset)
	} else {
		f.placeInitialAtEnd(f.items.Len() - 1)
	}
	f.fill()
}

func (f *Flow[T, C]) pixelsToPosition(pixels float32) float32 {
	total := f.totalLengthEst.get()
	length := f.length()
	if total > length {
		return pixels / (total - length) * total
	}
	return 0
}

func (f *Flow[T, C]) positionToPixels(pos float32) float32 {
	total := f.totalLengthEst.get()
	length := f.length()
	if total > 0 && total > length {
		return pos / total * (total - length)
	}
	return 0
}

func (f *Flow[T, C]) breadthPixelsToPosition(pixels float32) float32 {
	total := f.totalBreadthEst.get()
	breadth := f.breadth()
	if total > breadth {
		return pixels / (total - breadth) * total
	}
	return 0
}

func (f *Flow[T, C]) breadthPositionToPixels(pos float32) float32 {
	total := f.totalBreadthEst.get()
	breadth := f.breadth()
	if total > 0 && total > breadth {
		return pos / total * (total - breadth)
	}
	return 0
}
