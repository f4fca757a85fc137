package flow

import "testing"

// bruteMaxBreadth recomputes the maximum over known slots the slow way, as
// a reference for the tracker's cached value.
func bruteMaxBreadth(tr *breadthTracker) float32 {
	max := float32(0)
	for _, b := range tr.breadths {
		if !isNaN32(b) && b > max {
			max = b
		}
	}
	return max
}

func TestBreadthTrackerIncrementalMax(t *testing.T) {
	tr := newBreadthTracker(4)
	if got := tr.maxKnownBreadth(); got != 0 {
		t.Fatalf("max of all-unknown slots = %v, want 0", got)
	}

	tr.reportBreadth(0, 120)
	tr.reportBreadth(1, 300)
	tr.reportBreadth(2, 200)

	if got := tr.maxKnownBreadth(); got != 300 {
		t.Fatalf("max = %v, want 300", got)
	}
	if isNaN32(tr.max) {
		t.Errorf("growth-only reports invalidated the cached max")
	}
}

func TestBreadthTrackerRemovalOfMaxHolder(t *testing.T) {
	tr := newBreadthTracker(5)
	tr.reportBreadth(0, 120)
	tr.reportBreadth(1, 300)
	tr.reportBreadth(2, 200)
	tr.reportBreadth(4, 80)
	tr.maxKnownBreadth()

	tr.itemsReplaced(1, 1, 0) // removes the slot holding 300

	if !isNaN32(tr.max) {
		t.Fatalf("removing the max holder did not invalidate the cached max")
	}
	got := tr.maxKnownBreadth()
	if want := bruteMaxBreadth(tr); got != want {
		t.Fatalf("recomputed max = %v, brute-force scan says %v", got, want)
	}
	if got != 200 {
		t.Errorf("max = %v, want 200", got)
	}

	// a report arriving while the max is stale must not be lost
	tr.itemsReplaced(0, 2, 0) // drops 120 and 200, cache goes stale again
	tr.reportBreadth(0, 250)
	got = tr.maxKnownBreadth()
	if want := bruteMaxBreadth(tr); got != want || got != 250 {
		t.Errorf("max = %v, want 250 (brute force: %v)", got, want)
	}
}

func TestBreadthTrackerRemovalOfOtherHolder(t *testing.T) {
	tr := newBreadthTracker(3)
	tr.reportBreadth(0, 120)
	tr.reportBreadth(1, 300)
	tr.reportBreadth(2, 200)
	tr.maxKnownBreadth()

	tr.itemsReplaced(2, 1, 2) // drops 200, inserts two unknown slots

	if isNaN32(tr.max) {
		t.Errorf("removing a non-max holder invalidated the cached max")
	}
	if got := tr.maxKnownBreadth(); got != 300 {
		t.Errorf("max = %v, want 300", got)
	}
	if len(tr.breadths) != 4 {
		t.Fatalf("len(breadths) = %d, want 4", len(tr.breadths))
	}
	if !isNaN32(tr.breadths[2]) || !isNaN32(tr.breadths[3]) {
		t.Errorf("inserted slots are not unknown: %v", tr.breadths)
	}
}
