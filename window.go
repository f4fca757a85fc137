package flow

import "fmt"

// This file maintains the rendered window: which contiguous (possibly holed)
// range of items currently has a cell, and how cells map to item indices.
// A hole is carved by an insertion inside already-rendered content and must
// be resolved by the viewport filler before the next sequence mutation.

// render ensures the given item has a rendered cell and returns it. Legal
// indices are those inside the nominal rendered span, immediately adjacent
// to it on either side, or at either end of the hole; anything else is
// rejected with an error.
func (f *Flow[T, C]) render(index int) (C, error) {
	var zero C
	renderedTo := f.renderedFrom + len(f.cells) + f.hole.len()

	switch {
	case index < f.renderedFrom-1:
		return zero, fmt.Errorf("flow: cannot render %d: rendered cells start at %d", index, f.renderedFrom)

	case index == f.renderedFrom-1:
		cell := f.renderAt(index, 0)
		f.renderedFrom--
		return cell, nil

	case index == renderedTo:
		return f.renderAt(index, len(f.cells)), nil

	case index > renderedTo:
		return zero, fmt.Errorf("flow: cannot render %d: rendered cells end at %d", index, renderedTo)

	case f.hole.present:
		h := f.hole
		switch {
		case index < h.start:
			return f.cells[index-f.renderedFrom], nil
		case index >= h.end:
			return f.cells[index-f.renderedFrom-h.len()], nil
		case index == h.start:
			cell := f.renderAt(index, index-f.renderedFrom)
			if h.len() == 1 {
				f.hole = hole{}
			} else {
				f.hole = someHole(index+1, h.end)
			}
			return cell, nil
		case index == h.end-1:
			cell := f.renderAt(index, h.start-f.renderedFrom)
			f.hole = someHole(h.start, h.end-1)
			return cell, nil
		default:
			return zero, fmt.Errorf("flow: cannot render %d inside hole [%d, %d)", index, h.start, h.end)
		}

	default:
		return f.cells[index-f.renderedFrom], nil
	}
}

// mustRender is render for internal callers that have already established
// the index is legal.
func (f *Flow[T, C]) mustRender(index int) C {
	cell, err := f.render(index)
	if err != nil {
		panic(err.Error())
	}
	return cell
}

// renderInitial seeds the window with its very first cell.
func (f *Flow[T, C]) renderInitial(index int) C {
	if len(f.cells) != 0 {
		panic("flow: there are some rendered cells already")
	}

	f.renderedFrom = index
	f.visibleLength = 0

	return f.renderAt(index, 0)
}

// renderAt creates a cell for the given item and inserts it at the given
// position in the cell slice. The cell starts out invisible; it becomes
// visible when the filler positions it.
func (f *Flow[T, C]) renderAt(index, cellInsertPos int) C {
	item := f.items.At(index)
	cell := f.createCell(index, item)
	cell.SetVisible(false)
	f.cells = append(f.cells, cell)
	copy(f.cells[cellInsertPos+1:], f.cells[cellInsertPos:])
	f.cells[cellInsertPos] = cell
	return cell
}

// createCell obtains a cell from the pool or the factory. A pooled cell is
// offered to the factory as a reuse candidate; if the factory declines by
// returning a different instance, the candidate is disposed.
func (f *Flow[T, C]) createCell(index int, item T) C {
	if pooled, ok := f.pool.poll(); ok {
		cell := f.factory.ReuseCell(index, item, pooled)
		if any(cell) != any(pooled) {
			f.factory.DisposeCell(pooled)
		}
		return cell
	}
	return f.factory.CreateCell(index, item)
}

// addToPool retires a cell from the window into the pool.
func (f *Flow[T, C]) addToPool(cell C) {
	if cell.Visible() {
		f.visibleLength -= cellLength(f.met, cell)
	}
	f.factory.ResetCell(cell)
	f.pool.add(cell)
}

// cullFrom removes every rendered cell for items at or after pos. A cull
// that reaches into the hole truncates it; one that reaches before it
// clears it. A zero-length hole is never left behind.
func (f *Flow[T, C]) cullFrom(pos int) {
	if f.hole.present {
		h := f.hole
		switch {
		case pos >= h.end:
			f.dropCellsFrom(pos - h.len() - f.renderedFrom)
		case pos > h.start:
			f.dropCellsFrom(h.start - f.renderedFrom)
			f.hole = someHole(h.start, pos)
		default:
			f.dropCellsFrom(pos - f.renderedFrom)
			f.hole = hole{}
		}
	} else {
		f.dropCellsFrom(pos - f.renderedFrom)
	}
}

// cullBefore removes every rendered cell for items before pos.
func (f *Flow[T, C]) cullBefore(pos int) {
	if f.hole.present {
		h := f.hole
		switch {
		case pos <= h.start:
			f.dropCellsBefore(pos - f.renderedFrom)
		case pos < h.end:
			f.dropCellsBefore(h.start - f.renderedFrom)
			f.hole = someHole(pos, h.end)
		default:
			f.dropCellsBefore(pos - h.len() - f.renderedFrom)
			f.hole = hole{}
		}
	} else {
		f.dropCellsBefore(pos - f.renderedFrom)
	}

	f.renderedFrom = pos
}

func (f *Flow[T, C]) dropCellsFrom(cellIdx int) {
	f.dropCellRange(cellIdx, len(f.cells))
}

func (f *Flow[T, C]) dropCellsBefore(cellIdx int) {
	f.dropCellRange(0, cellIdx)
}

func (f *Flow[T, C]) dropCellRange(from, to int) {
	for _, c := range f.cells[from:to] {
		f.addToPool(c)
	}
	f.cells = append(f.cells[:from], f.cells[to:]...)
}

// itemsReplaced reacts to a sequence mutation: the removeCount items at pos
// were replaced by addedCount new ones. It adjusts the window bookkeeping,
// keeps the breadth tracker in lockstep, refills the viewport and
// invalidates the derived estimates.
func (f *Flow[T, C]) itemsReplaced(pos, removed, added int) {
	flowLogger.Debug("items replaced", "pos", pos, "removed", removed, "added", added)

	f.applyItemsChange(pos, removed, added)
	f.fillViewport(pos)
	f.invalidateEstimates()
}

// applyItemsChange performs the window bookkeeping for a mutation. A
// mutation arriving while a hole is still unresolved is a contract violation
// by the integration and fails loudly.
func (f *Flow[T, C]) applyItemsChange(pos, removed, added int) {
	if f.hole.present {
		panic("flow: change in items before hole was closed")
	}

	f.tracker.itemsReplaced(pos, removed, added)

	switch {
	case pos >= f.renderedFrom+len(f.cells):
		// entirely after the rendered span, no cell effect

	case pos+removed <= f.renderedFrom:
		// entirely before the rendered span, just shift indices
		f.renderedFrom += added - removed
		f.restampFrom(0)

	case pos > f.renderedFrom && pos+removed < f.renderedFrom+len(f.cells) && added > 0:
		// strictly inside, at least one cell retained on both sides;
		// the retained tail no longer touches the head: a hole opens
		f.dropCellRange(pos-f.renderedFrom, pos+removed-f.renderedFrom)
		f.hole = someHole(pos, pos+added)
		f.restampFrom(pos - f.renderedFrom)

	case pos > f.renderedFrom:
		// overlaps or splits the tail. A pure removal strictly inside the
		// window is folded into this case: retaining the tail would keep its
		// cells at positions no longer adjacent to the head, and the filler
		// only extends the visible run at its ends.
		f.dropCellsFrom(pos - f.renderedFrom)

	case pos+removed >= f.renderedFrom+len(f.cells):
		// covers the whole rendered span
		f.dropCellsFrom(0)
		f.renderedFrom = 0
		f.visibleLength = 0

	default:
		// overlaps the head
		f.dropCellsBefore(pos + removed - f.renderedFrom)
		f.renderedFrom = pos + added
		f.restampFrom(0)
	}
}

// restampFrom pushes the current index mapping back into the retained cells
// starting at the given cell slot.
func (f *Flow[T, C]) restampFrom(cellIdx int) {
	for i := cellIdx; i < len(f.cells); i++ {
		itemIdx := f.renderedFrom + i
		if f.hole.present && itemIdx >= f.hole.start {
			itemIdx += f.hole.len()
		}
		f.factory.UpdateIndex(f.cells[i], itemIdx)
	}
}

func (f *Flow[T, C]) hasVisibleCells() bool {
	for _, c := range f.cells {
		if c.Visible() {
			return true
		}
	}
	return false
}

// mustVisibleCell returns the visible cell for an item the caller knows is
// visible.
func (f *Flow[T, C]) mustVisibleCell(itemIdx int) C {
	cell, err := f.VisibleCell(itemIdx)
	if err != nil {
		panic(err.Error())
	}
	return cell
}

// firstVisibleRange returns the contiguous run of visible item indices.
// There must be at least one rendered cell.
func (f *Flow[T, C]) firstVisibleRange() indexRange {
	if len(f.cells) == 0 {
		panic("flow: no rendered cells")
	}

	if f.hole.present {
		if rng, ok := f.visibleRangeIn(0, f.hole.start-f.renderedFrom); ok {
			return indexRange{rng.Start + f.renderedFrom, rng.End + f.renderedFrom}
		}
		if rng, ok := f.visibleRangeIn(f.hole.start-f.renderedFrom, len(f.cells)); ok {
			off := f.hole.len() + f.renderedFrom
			return indexRange{rng.Start + off, rng.End + off}
		}
		panic("flow: no visible cells")
	}

	if rng, ok := f.visibleRangeIn(0, len(f.cells)); ok {
		return indexRange{rng.Start + f.renderedFrom, rng.End + f.renderedFrom}
	}
	panic("flow: no visible cells")
}

// visibleRangeIn scans cell slots [from, to) for a run of visible cells and
// returns it in slot coordinates.
func (f *Flow[T, C]) visibleRangeIn(from, to int) (indexRange, bool) {
	a := from
	for ; a < to; a++ {
		if f.cells[a].Visible() {
			break
		}
	}
	if a == to {
		return indexRange{}, false
	}
	b := a + 1
	for ; b < to; b++ {
		if !f.cells[b].Visible() {
			break
		}
	}
	return indexRange{a, b}, true
}
