package flow

import "testing"

// fixedCell is a test cell with constant preferred sizes.
type fixedCell struct {
	index int

	minW, minH   float32
	prefW, prefH float32

	bounds  Rect
	visible bool
}

func (c *fixedCell) MinWidth() float32                { return c.minW }
func (c *fixedCell) MinHeight() float32               { return c.minH }
func (c *fixedCell) PrefWidth(height float32) float32 { return c.prefW }
func (c *fixedCell) PrefHeight(width float32) float32 { return c.prefH }

func (c *fixedCell) Resize(width, height float32) {
	c.bounds.W, c.bounds.H = width, height
}

func (c *fixedCell) Relocate(x, y float32) {
	c.bounds.X, c.bounds.Y = x, y
}

func (c *fixedCell) Bounds() Rect            { return c.bounds }
func (c *fixedCell) Visible() bool           { return c.visible }
func (c *fixedCell) SetVisible(visible bool) { c.visible = visible }

// recordingFactory builds fixedCells and counts factory interactions.
type recordingFactory struct {
	heightFor func(index int) float32 // nil means constant 10
	widthFor  func(index int) float32 // nil means constant 1
	decline   bool                    // decline every reuse candidate

	created, reused, disposed, resets int
}

func (rf *recordingFactory) newCell(index int) *fixedCell {
	h := float32(10)
	if rf.heightFor != nil {
		h = rf.heightFor(index)
	}
	w := float32(1)
	if rf.widthFor != nil {
		w = rf.widthFor(index)
	}
	return &fixedCell{index: index, minW: w, minH: h, prefW: w, prefH: h}
}

func (rf *recordingFactory) CreateCell(index int, item int) *fixedCell {
	rf.created++
	return rf.newCell(index)
}

func (rf *recordingFactory) ReuseCell(index int, item int, candidate *fixedCell) *fixedCell {
	if rf.decline {
		rf.created++
		return rf.newCell(index)
	}
	rf.reused++
	fresh := rf.newCell(index)
	candidate.index = fresh.index
	candidate.minW, candidate.minH = fresh.minW, fresh.minH
	candidate.prefW, candidate.prefH = fresh.prefW, fresh.prefH
	return candidate
}

func (rf *recordingFactory) ResetCell(cell *fixedCell) {
	rf.resets++
	cell.index = -1
}

func (rf *recordingFactory) DisposeCell(cell *fixedCell) {
	rf.disposed++
}

func (rf *recordingFactory) UpdateIndex(cell *fixedCell, newIndex int) {
	cell.index = newIndex
}

// intItems returns a sequence of n items whose values equal their initial
// indices.
func intItems(n int) *Items[int] {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	return NewItems(elems...)
}

// checkWindowInvariants verifies the index-to-cell mapping, the hole shape
// and the contiguity of the visible run.
func checkWindowInvariants(t *testing.T, f *Flow[int, *fixedCell]) {
	t.Helper()

	if f.hole.present {
		if f.hole.len() <= 0 {
			t.Fatalf("hole [%d, %d) is empty", f.hole.start, f.hole.end)
		}
		if f.hole.start < f.renderedFrom {
			t.Fatalf("hole [%d, %d) outside span starting at %d",
				f.hole.start, f.hole.end, f.renderedFrom)
		}
		spanEnd := f.renderedFrom + len(f.cells) + f.hole.len()
		if f.hole.end > spanEnd {
			t.Fatalf("hole [%d, %d) outside span ending at %d",
				f.hole.start, f.hole.end, spanEnd)
		}
	}

	for i, c := range f.cells {
		want := f.renderedFrom + i
		if f.hole.present && want >= f.hole.start {
			want += f.hole.len()
		}
		if c.index != want {
			t.Fatalf("cell slot %d bound to item %d, want %d", i, c.index, want)
		}
	}

	runs := 0
	inRun := false
	for _, c := range f.cells {
		if c.visible && !inRun {
			runs++
			inRun = true
		} else if !c.visible {
			inRun = false
		}
	}
	if runs > 1 {
		t.Fatalf("visible cells form %d runs, want at most 1", runs)
	}
}

// renderRange renders the items [from, to) one by one, seeding the window
// with the first one.
func renderRange(t *testing.T, f *Flow[int, *fixedCell], from, to int) {
	t.Helper()
	f.renderInitial(from)
	for i := from + 1; i < to; i++ {
		if _, err := f.render(i); err != nil {
			t.Fatalf("render(%d): %v", i, err)
		}
	}
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
