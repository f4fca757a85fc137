package flow

import "testing"

func approx(t *testing.T, got, want, tol float32, what string) {
	t.Helper()
	if diff := got - want; diff > tol || diff < -tol {
		t.Fatalf("%s = %g, want %g (±%g)", what, got, want, tol)
	}
}

func TestEstimatesUniformContent(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	// 10px cells extrapolate exactly
	approx(t, f.HeightEstimate(), 10000, 0.01, "HeightEstimate()")
	approx(t, f.VerticalPosition(), 0, 0.01, "VerticalPosition()")
}

func TestSetVerticalPositionLongJump(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	// jumping by much more than one viewport discards the window and
	// re-seeds it at the estimated target item
	f.SetVerticalPosition(5000)
	checkWindowInvariants(t, f)

	if got := f.FirstVisibleIndex(); got != 495 {
		t.Fatalf("FirstVisibleIndex() = %d, want 495", got)
	}
	approx(t, f.VerticalPosition(), 5000, 1, "VerticalPosition()")
	checkViewportCovered(t, f)
}

func TestSetVerticalPositionClampsPastEnd(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	f.SetVerticalPosition(25000)
	checkWindowInvariants(t, f)

	if got := f.FirstVisibleIndex(); got != 990 {
		t.Fatalf("FirstVisibleIndex() = %d, want 990", got)
	}
	approx(t, f.VerticalPosition(), f.HeightEstimate(), 1, "VerticalPosition()")
	checkViewportCovered(t, f)
}

func TestScrollVerticallyByWheelDelta(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	// wheel-down is a negative delta and moves the content up
	f.ScrollVertically(-30)
	checkWindowInvariants(t, f)

	if got := f.FirstVisibleIndex(); got != 3 {
		t.Fatalf("FirstVisibleIndex() = %d after scrolling down 30px, want 3", got)
	}
	cell, err := f.VisibleCell(3)
	if err != nil {
		t.Fatalf("VisibleCell(3): %v", err)
	}
	approx(t, cell.bounds.Y, 0, 0.01, "first visible cell y")

	f.ScrollVertically(30)
	checkWindowInvariants(t, f)
	if got := f.FirstVisibleIndex(); got != 0 {
		t.Fatalf("FirstVisibleIndex() = %d after scrolling back, want 0", got)
	}
}

func TestHorizontalScrollOfBroadContent(t *testing.T) {
	rf := &recordingFactory{
		widthFor: func(index int) float32 { return 300 },
	}
	f := newSizedFlow(t, 100, rf, 100, 100)

	approx(t, f.WidthEstimate(), 300, 0.01, "WidthEstimate()")
	approx(t, f.HorizontalPosition(), 0, 0.01, "HorizontalPosition()")

	f.ScrollHorizontally(-50)
	approx(t, f.HorizontalPosition(), 75, 0.01, "HorizontalPosition()")
	for _, c := range f.VisibleCells() {
		approx(t, c.bounds.X, -50, 0.01, "cell x")
	}

	f.SetHorizontalPosition(0)
	approx(t, f.HorizontalPosition(), 0, 0.01, "HorizontalPosition()")
	for _, c := range f.VisibleCells() {
		approx(t, c.bounds.X, 0, 0.01, "cell x")
	}
}

func TestHorizontalScrollClampsToContent(t *testing.T) {
	rf := &recordingFactory{
		widthFor: func(index int) float32 { return 300 },
	}
	f := newSizedFlow(t, 100, rf, 100, 100)

	// scrollable range is 300 - 100 = 200px
	f.ScrollHorizontally(-1000)
	approx(t, f.HorizontalPosition(), 300, 0.01, "HorizontalPosition()")
	for _, c := range f.VisibleCells() {
		approx(t, c.bounds.X, -200, 0.01, "cell x")
	}
}

func TestShortContentHasNoScrollRange(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 3, rf, 100, 100)

	f.SetVerticalPosition(50)
	checkWindowInvariants(t, f)

	approx(t, f.VerticalPosition(), 0, 0.01, "VerticalPosition()")
	if got := f.FirstVisibleIndex(); got != 0 {
		t.Fatalf("FirstVisibleIndex() = %d, want 0", got)
	}
}

func TestZeroLengthCellsDoNotLoop(t *testing.T) {
	rf := &recordingFactory{
		heightFor: func(index int) float32 { return 0 },
	}
	f := NewVertical[int, *fixedCell](intItems(5), rf)
	f.Resize(100, 100)

	// zero-length content can never cover the viewport; the fill must
	// terminate and derived positions stay at 0
	f.SetVerticalPosition(50)
	approx(t, f.HeightEstimate(), 0, 0.01, "HeightEstimate()")
	approx(t, f.VerticalPosition(), 0, 0.01, "VerticalPosition()")
}

func TestPositionPixelMapsAreInverse(t *testing.T) {
	rf := &recordingFactory{}
	f := newSizedFlow(t, 1000, rf, 100, 100)

	for _, px := range []float32{0, 123.5, 4950, 9900} {
		pos := f.pixelsToPosition(px)
		approx(t, f.positionToPixels(pos), px, 0.05, "positionToPixels(pixelsToPosition)")
	}
}

func TestOrientationAxisMapping(t *testing.T) {
	rf := &recordingFactory{}
	v := NewVertical[int, *fixedCell](intItems(10), rf)
	if v.Orientation() != Vertical || v.ContentBias() != Horizontal {
		t.Fatalf("vertical flow: orientation %v bias %v", v.Orientation(), v.ContentBias())
	}

	h := NewHorizontal[int, *fixedCell](intItems(10), &recordingFactory{})
	if h.Orientation() != Horizontal || h.ContentBias() != Vertical {
		t.Fatalf("horizontal flow: orientation %v bias %v", h.Orientation(), h.ContentBias())
	}
}

func TestHorizontalFlowLaysOutAlongX(t *testing.T) {
	// for a horizontal flow the length axis is X: each 1px-wide cell
	// contributes its preferred width to the run
	rf := &recordingFactory{}
	f := NewHorizontal[int, *fixedCell](intItems(100), rf)
	f.Resize(100, 40)
	checkWindowInvariants(t, f)

	visible := f.VisibleCells()
	if len(visible) == 0 {
		t.Fatalf("no visible cells")
	}
	x := float32(0)
	for i, c := range visible {
		approx(t, c.bounds.X, x, 0.01, "cell x")
		if c.bounds.H != 40 {
			t.Fatalf("cell %d height %g, want viewport breadth 40", i, c.bounds.H)
		}
		x += c.bounds.W
	}
	approx(t, f.WidthEstimate(), 100, 0.01, "WidthEstimate()")
}
