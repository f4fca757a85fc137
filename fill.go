package flow

// The viewport filler restores the covering invariant: starting from at
// least one visible cell it extends the visible run backward and forward
// until the viewport is covered, repeats the fill whenever a newly observed
// cell grows the known maximum breadth (preferred lengths generally depend
// on breadth), resolves any pending hole, and finally culls every rendered
// cell that ended up outside the viewport.

// fillViewport covers the viewport, seeding a cell first if nothing is
// visible. The hint names the item to seed with when the window is
// completely empty; it is clamped into range.
func (f *Flow[T, C]) fillViewport(ifEmptyStartWith int) {
	if !f.hasVisibleCells() {
		switch {
		case f.hole.present:
			// there is a hole in rendered cells;
			// place its first item at the start of the viewport
			f.shrinkHoleFromLeft(0)
		case len(f.cells) > 0:
			// there are at least some rendered cells, place the first one at 0
			f.placeCellAt(f.renderedFrom, f.cells[0], 0)
		case f.items.Len() > 0:
			idx := clampi(ifEmptyStartWith, 0, f.items.Len()-1)
			f.placeInitialAtStart(idx)
		default:
			return
		}
	}

	f.fill()
}

// fill covers the viewport starting from the existing visible run.
func (f *Flow[T, C]) fill() {
	if !f.hasVisibleCells() {
		panic("flow: need a visible cell to start from")
	}

	breadth := maxf(f.maxKnownBreadth(), f.breadth())

	for {
		f.fillViewportOnce()

		if f.maxKnownBreadth() > breadth { // broader cell encountered
			breadth = f.maxKnownBreadth()
			f.resizeVisibleCells(breadth)
		} else {
			break
		}
	}

	// cull, but first eliminate the hole
	if f.hole.present {
		h := f.hole
		if h.start > f.renderedFrom {
			cellBeforeHole := f.cells[h.start-1-f.renderedFrom]
			if !cellBeforeHole.Visible() || cellMaxY(f.met, cellBeforeHole) <= 0 {
				f.cullBefore(h.end)
			} else {
				f.cullFrom(h.start)
			}
		} else {
			f.cullBefore(h.end)
		}
	}
	f.cullBeforeViewport()
	f.cullAfterViewport()
}

func (f *Flow[T, C]) cullBeforeViewport() {
	if f.hole.present {
		panic("flow: unexpected hole")
	}

	// find the first cell inside the viewport
	i := 0
	for ; i < len(f.cells); i++ {
		c := f.cells[i]
		if c.Visible() && cellMaxY(f.met, c) > 0 {
			break
		}
	}

	f.cullBefore(f.renderedFrom + i)
}

func (f *Flow[T, C]) cullAfterViewport() {
	if f.hole.present {
		panic("flow: unexpected hole")
	}

	// find the first cell after the viewport. A cell whose start jumps back
	// behind the end of its predecessor still carries a position from before
	// the last mutation; it is logically past the covering run and cullable
	// even though its stale bounds fall inside the viewport.
	i := 0
	prevMaxY := float32(0)
	for ; i < len(f.cells); i++ {
		c := f.cells[i]
		if !c.Visible() || cellMinY(f.met, c) >= f.length() {
			break
		}
		if i > 0 && cellMinY(f.met, c)+positionSlack < prevMaxY {
			break
		}
		prevMaxY = cellMaxY(f.met, c)
	}

	f.cullFrom(f.renderedFrom + i)
}

// positionSlack absorbs float32 rounding when comparing cell edges.
const positionSlack = 0.25

// fillViewportOnce expands the visible run until the viewport is covered or
// the sequence is exhausted at both ends.
func (f *Flow[T, C]) fillViewportOnce() {
	visibleRange := f.firstVisibleRange()
	firstVisible := visibleRange.Start
	lastVisible := visibleRange.End - 1

	// fill backward until 0 is covered
	minY := cellMinY(f.met, f.mustVisibleCell(firstVisible))
	for minY > 0 {
		if firstVisible > 0 {
			firstVisible--
			cell := f.placeEndAt(firstVisible, minY)
			minY = cellMinY(f.met, cell)
		} else {
			// cannot render before item 0: close the gap by shifting
			f.shiftVisibleCellsByLength(-minY)
			minY = 0
		}
	}

	// fill forward until the end of the viewport is covered
	length := f.length()
	maxY := cellMaxY(f.met, f.mustVisibleCell(lastVisible))
	for maxY < length {
		if lastVisible < f.items.Len()-1 {
			lastVisible++
			cell := f.placeAt(lastVisible, maxY)
			maxY = cellMaxY(f.met, cell)
		} else {
			break
		}
	}

	// sequence exhausted before the viewport end: consume backward slack
	leftToFill := length - maxY
	if leftToFill > 0 {
		for -minY < leftToFill && firstVisible > 0 {
			firstVisible--
			cell := f.placeEndAt(firstVisible, minY)
			minY = cellMinY(f.met, cell)
		}
		shift := minf(-minY, leftToFill)
		f.shiftVisibleCellsByLength(shift)
	}
}

// shrinkHoleFromLeft renders the first item of the hole and places it at the
// given position along the length axis.
func (f *Flow[T, C]) shrinkHoleFromLeft(placeAtY float32) {
	itemIdx := f.hole.start
	cellIdx := itemIdx - f.renderedFrom
	cell := f.renderAt(itemIdx, cellIdx)
	f.placeCellAt(itemIdx, cell, placeAtY)
	if f.hole.len() == 1 {
		f.hole = hole{}
	} else {
		f.hole = someHole(itemIdx+1, f.hole.end)
	}
}

// placeCellAt sizes the cell for the current breadth and positions its start
// at y.
func (f *Flow[T, C]) placeCellAt(itemIdx int, cell C, y float32) {
	f.tracker.reportBreadth(itemIdx, f.met.minBreadth(cell))
	breadth := maxf(f.maxKnownBreadth(), f.breadth())
	length := f.met.prefLength(cell, breadth)
	f.layoutCell(cell, y, breadth, length)
}

// placeCellEndAt sizes the cell for the current breadth and positions its
// end at endY.
func (f *Flow[T, C]) placeCellEndAt(itemIdx int, cell C, endY float32) {
	f.tracker.reportBreadth(itemIdx, f.met.minBreadth(cell))
	breadth := maxf(f.maxKnownBreadth(), f.breadth())
	length := f.met.prefLength(cell, breadth)
	f.layoutCell(cell, endY-length, breadth, length)
}

func (f *Flow[T, C]) placeAt(itemIdx int, y float32) C {
	cell := f.mustRender(itemIdx)
	f.placeCellAt(itemIdx, cell, y)
	return cell
}

func (f *Flow[T, C]) placeEndAt(itemIdx int, endY float32) C {
	cell := f.mustRender(itemIdx)
	f.placeCellEndAt(itemIdx, cell, endY)
	return cell
}

func (f *Flow[T, C]) placeInitialAt(itemIdx int, y float32) {
	cell := f.renderInitial(itemIdx)
	f.placeCellAt(itemIdx, cell, y)
}

func (f *Flow[T, C]) placeInitialAtStart(itemIdx int) {
	f.placeInitialAt(itemIdx, 0)
}

func (f *Flow[T, C]) placeInitialAtEnd(itemIdx int) {
	cell := f.renderInitial(itemIdx)
	f.placeCellAt(itemIdx, cell, f.length()-cellLength(f.met, cell))
}

// layoutCell makes the cell visible at the given length-axis position and
// keeps visibleLength in sync incrementally.
func (f *Flow[T, C]) layoutCell(cell C, l0, breadth, length float32) {
	if cell.Visible() {
		f.visibleLength -= cellLength(f.met, cell)
	} else {
		cell.SetVisible(true)
	}
	f.visibleLength += length
	f.met.resizeRelocate(cell, f.breadthOffset, l0, breadth, length)
}

func (f *Flow[T, C]) shiftVisibleCellsByLength(shift float32) {
	for _, c := range f.cells {
		if c.Visible() {
			f.met.relocate(c, f.breadthOffset, cellMinY(f.met, c)+shift)
		}
	}
}

func (f *Flow[T, C]) shiftVisibleCellsByBreadth(shift float32) {
	f.breadthOffset += shift
	for _, c := range f.cells {
		if c.Visible() {
			f.met.relocate(c, f.breadthOffset, cellMinY(f.met, c))
		}
	}
}

// resizeVisibleCells re-lays out every visible cell at the given breadth,
// recomputing lengths, since preferred length generally depends on breadth.
func (f *Flow[T, C]) resizeVisibleCells(breadth float32) {
	if f.hole.present {
		panic("flow: unexpected hole in rendered cells")
	}

	y := f.visibleCellsMinY()
	for _, c := range f.cells {
		if c.Visible() {
			length := f.met.prefLength(c, breadth)
			f.layoutCell(c, y, breadth, length)
			y += length
		}
	}
}

func (f *Flow[T, C]) visibleCellsMinY() float32 {
	for _, c := range f.cells {
		if c.Visible() {
			return cellMinY(f.met, c)
		}
	}
	return 0
}
