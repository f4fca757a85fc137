package flow

import "testing"

// newSizedFlow builds a vertical flow over n integer items with a fresh
// recording factory and fills a width x height viewport.
func newSizedFlow(t *testing.T, n int, rf *recordingFactory, width, height float32) *Flow[int, *fixedCell] {
	t.Helper()
	f := NewVertical[int, *fixedCell](intItems(n), rf)
	f.Resize(width, height)
	checkWindowInvariants(t, f)
	return f
}

// checkViewportCovered verifies the visible cells tile the viewport without
// gaps or overlaps, starting at or above 0 and ending at or below the given
// extent when the content is long enough.
func checkViewportCovered(t *testing.T, f *Flow[int, *fixedCell]) {
	t.Helper()

	visible := f.VisibleCells()
	if len(visible) == 0 {
		t.Fatalf("no visible cells")
	}

	first := visible[0]
	if first.bounds.Y > positionSlack {
		t.Fatalf("viewport top uncovered: first visible cell starts at %g", first.bounds.Y)
	}

	y := first.bounds.Y
	for i, c := range visible {
		if diff := c.bounds.Y - y; diff > positionSlack || diff < -positionSlack {
			t.Fatalf("cell %d starts at %g, want %g", i, c.bounds.Y, y)
		}
		y += c.bounds.H
	}

	last := visible[len(visible)-1]
	end := last.bounds.Y + last.bounds.H
	if end < f.Height()-positionSlack && f.firstVisibleRange().End < f.Items().Len() {
		t.Fatalf("viewport bottom uncovered: visible cells end at %g of %g", end, f.Height())
	}
}

func TestResizeFillsViewport(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	visible := f.VisibleCells()
	if len(visible) != 10 {
		t.Fatalf("got %d visible cells, want 10", len(visible))
	}
	if got := f.FirstVisibleIndex(); got != 0 {
		t.Fatalf("FirstVisibleIndex() = %d, want 0", got)
	}
	for i, c := range visible {
		if c.bounds.Y != float32(i*10) {
			t.Fatalf("cell %d at y=%g, want %d", i, c.bounds.Y, i*10)
		}
		if c.bounds.H != 10 {
			t.Fatalf("cell %d height %g, want 10", i, c.bounds.H)
		}
		if c.bounds.W != 100 {
			t.Fatalf("cell %d width %g, want viewport breadth 100", i, c.bounds.W)
		}
	}
	if rf.created != 10 {
		t.Fatalf("created %d cells for a 10-cell viewport", rf.created)
	}
	checkViewportCovered(t, f)
}

func TestResizeEmptySequence(t *testing.T) {
	rf := &recordingFactory{}
	f := NewVertical[int, *fixedCell](intItems(0), rf)
	f.Resize(100, 100)

	if len(f.cells) != 0 {
		t.Fatalf("rendered %d cells for an empty sequence", len(f.cells))
	}
	if got := f.FirstVisibleIndex(); got != -1 {
		t.Fatalf("FirstVisibleIndex() = %d, want -1", got)
	}
}

func TestResizeShorterViewportCulls(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	f.Resize(100, 50)
	checkWindowInvariants(t, f)

	if got := len(f.VisibleCells()); got != 5 {
		t.Fatalf("got %d visible cells after shrink, want 5", got)
	}
	if got := f.pool.size(); got != 5 {
		t.Fatalf("pool holds %d cells, want the 5 culled ones", got)
	}

	// growing back reuses the pooled cells instead of creating new ones
	created := rf.created
	f.Resize(100, 100)
	checkWindowInvariants(t, f)

	if got := len(f.VisibleCells()); got != 10 {
		t.Fatalf("got %d visible cells after regrow, want 10", got)
	}
	if rf.created != created {
		t.Fatalf("created %d new cells, want all from the pool", rf.created-created)
	}
	checkViewportCovered(t, f)
}

func TestInsertIntoViewportResolvesHole(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	// carves a hole [3, 8) in the rendered window; the refill triggered by
	// the mutation must resolve it and cull back down to one viewport
	f.Items().InsertAt(3, -1, -2, -3, -4, -5)
	checkWindowInvariants(t, f)

	if f.hole.present {
		t.Fatalf("hole [%d, %d) survived the refill", f.hole.start, f.hole.end)
	}
	if got := len(f.VisibleCells()); got != 10 {
		t.Fatalf("got %d visible cells, want 10", got)
	}
	if got := f.FirstVisibleIndex(); got != 0 {
		t.Fatalf("FirstVisibleIndex() = %d, want 0", got)
	}
	checkViewportCovered(t, f)

	// items 3..7 are the inserted ones
	for idx := 3; idx < 8; idx++ {
		cell, err := f.VisibleCell(idx)
		if err != nil {
			t.Fatalf("VisibleCell(%d): %v", idx, err)
		}
		if cell.index != idx {
			t.Fatalf("cell for item %d stamped %d", idx, cell.index)
		}
	}
}

func TestRemoveVisibleItemsClosesGap(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	f.Items().RemoveRange(2, 5)
	checkWindowInvariants(t, f)

	if got := len(f.VisibleCells()); got != 10 {
		t.Fatalf("got %d visible cells, want 10", got)
	}
	checkViewportCovered(t, f)
}

func TestRemoveAllResetsWindow(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 50, rf, 100, 100)

	f.Items().RemoveRange(0, 50)

	if len(f.cells) != 0 {
		t.Fatalf("%d cells rendered after removing everything", len(f.cells))
	}
	if f.renderedFrom != 0 || f.visibleLength != 0 {
		t.Fatalf("window not reset: renderedFrom=%d visibleLength=%g",
			f.renderedFrom, f.visibleLength)
	}
	if got := f.FirstVisibleIndex(); got != -1 {
		t.Fatalf("FirstVisibleIndex() = %d, want -1", got)
	}

	// a later append seeds a fresh window
	f.Items().Append(0, 1, 2)
	checkWindowInvariants(t, f)
	if got := len(f.VisibleCells()); got != 3 {
		t.Fatalf("got %d visible cells after append, want 3", got)
	}
	checkViewportCovered(t, f)
}

func TestRemoveFirstItemShiftsContentToTop(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 3, rf, 100, 100)

	f.Items().RemoveRange(0, 1)
	checkWindowInvariants(t, f)

	visible := f.VisibleCells()
	if len(visible) != 2 {
		t.Fatalf("got %d visible cells, want 2", len(visible))
	}
	if visible[0].bounds.Y != 0 {
		t.Fatalf("content starts at y=%g, want 0", visible[0].bounds.Y)
	}
}

func TestRemoveTailWhileScrolledToBottom(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 12, rf, 100, 100)

	// scroll to the very bottom: items 2..11 fill the viewport
	f.SetVerticalPosition(f.HeightEstimate())
	checkWindowInvariants(t, f)
	if got := f.FirstVisibleIndex(); got != 2 {
		t.Fatalf("FirstVisibleIndex() = %d after scrolling to bottom, want 2", got)
	}

	// removing the last 4 items leaves only 80px of content; the fill pulls
	// earlier items back in and shifts everything flush with the top
	f.Items().RemoveRange(8, 12)
	checkWindowInvariants(t, f)

	visible := f.VisibleCells()
	if len(visible) != 8 {
		t.Fatalf("got %d visible cells, want all 8 remaining", len(visible))
	}
	if got := f.FirstVisibleIndex(); got != 0 {
		t.Fatalf("FirstVisibleIndex() = %d, want 0", got)
	}
	if visible[0].bounds.Y != 0 {
		t.Fatalf("content starts at y=%g, want 0", visible[0].bounds.Y)
	}
	last := visible[len(visible)-1]
	if end := last.bounds.Y + last.bounds.H; end != 80 {
		t.Fatalf("content ends at y=%g, want 80", end)
	}
}

func TestBroadCellForcesRelayout(t *testing.T) {
	rf := &recordingFactory{
		widthFor: func(index int) float32 {
			if index == 5 {
				return 200
			}
			return 1
		},
	}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	// discovering item 5's breadth mid-fill must re-lay out the whole run
	for i, c := range f.VisibleCells() {
		if c.bounds.W != 200 {
			t.Fatalf("visible cell %d has width %g, want 200", i, c.bounds.W)
		}
	}
	if got := f.WidthEstimate(); got != 200 {
		t.Fatalf("WidthEstimate() = %g, want 200", got)
	}
	checkViewportCovered(t, f)
}

func TestContentShorterThanViewport(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 3, rf, 100, 100)

	visible := f.VisibleCells()
	if len(visible) != 3 {
		t.Fatalf("got %d visible cells, want 3", len(visible))
	}
	if visible[0].bounds.Y != 0 {
		t.Fatalf("content starts at y=%g, want 0", visible[0].bounds.Y)
	}
	if got := f.VerticalPosition(); got != 0 {
		t.Fatalf("VerticalPosition() = %g for short content, want 0", got)
	}
}
