package flow

import "math"

var nan32 = float32(math.NaN())

func isNaN32(f float32) bool {
	return f != f
}

// breadthTracker records, per item index, the last observed minimum
// cross-axis size of that item's cell. The running maximum over all known
// slots estimates the total cross-axis content extent.
//
// The maximum is maintained incrementally while observations only grow it.
// Removing the item that holds the maximum marks it stale instead of
// recomputing eagerly; the next read performs a full scan. Removals of the
// maximum holder are rare, so the scan amortizes well.
type breadthTracker struct {
	breadths []float32 // NaN means not known
	max      float32   // NaN means needs recomputing
}

func newBreadthTracker(size int) *breadthTracker {
	t := &breadthTracker{breadths: make([]float32, size)}
	for i := range t.breadths {
		t.breadths[i] = nan32
	}
	return t
}

func (t *breadthTracker) reportBreadth(itemIdx int, breadth float32) {
	t.breadths[itemIdx] = breadth
	if !isNaN32(t.max) && breadth > t.max {
		t.max = breadth
	}
}

func (t *breadthTracker) itemsReplaced(pos, removed, added int) {
	for _, b := range t.breadths[pos : pos+removed] {
		if b == t.max {
			t.max = nan32
			break
		}
	}

	next := make([]float32, 0, len(t.breadths)-removed+added)
	next = append(next, t.breadths[:pos]...)
	for i := 0; i < added; i++ {
		next = append(next, nan32)
	}
	next = append(next, t.breadths[pos+removed:]...)
	t.breadths = next
}

func (t *breadthTracker) maxKnownBreadth() float32 {
	if isNaN32(t.max) {
		max := float32(0)
		for _, b := range t.breadths {
			if !isNaN32(b) && b > max {
				max = b
			}
		}
		t.max = max
	}
	return t.max
}
