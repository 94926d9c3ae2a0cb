package engine

import "testing"

func TestPriceLevel_FIFOOrder(t *testing.T) {
	l := newPriceLevel(100000)
	l.pushBack(&resting{id: 1, remaining: 10})
	l.pushBack(&resting{id: 2, remaining: 20})

	if f := l.front(); f == nil || f.id != 1 {
		t.Fatalf("front() = %+v, want id=1 (first in)", f)
	}
	if l.totalQty != 30 || l.count != 2 {
		t.Fatalf("totalQty=%d count=%d, want 30, 2", l.totalQty, l.count)
	}
}

func TestPriceLevel_RemoveElemMidQueue(t *testing.T) {
	l := newPriceLevel(100000)
	l.pushBack(&resting{id: 1, remaining: 10})
	e2 := l.pushBack(&resting{id: 2, remaining: 20})
	l.pushBack(&resting{id: 3, remaining: 30})

	l.removeElem(e2)
	if l.count != 2 || l.totalQty != 40 {
		t.Fatalf("after removing mid-queue element: count=%d totalQty=%d, want 2, 40", l.count, l.totalQty)
	}
	if f := l.front(); f.id != 1 {
		t.Fatalf("front() = %+v, want id=1 unaffected by removing id=2", f)
	}
}

func TestPriceLevel_EmptyAfterDraining(t *testing.T) {
	l := newPriceLevel(100000)
	e := l.pushBack(&resting{id: 1, remaining: 10})
	if l.empty() {
		t.Fatalf("empty() = true before any removal")
	}
	l.removeElem(e)
	if !l.empty() {
		t.Fatalf("empty() = false after removing the only resting order")
	}
}

func TestPriceLevel_ReduceTracksPartialFill(t *testing.T) {
	l := newPriceLevel(100000)
	l.pushBack(&resting{id: 1, remaining: 10})
	l.reduce(4)
	if l.totalQty != 6 {
		t.Fatalf("totalQty = %d, want 6 after reducing by 4", l.totalQty)
	}
	if l.count != 1 {
		t.Fatalf("count = %d, want 1: reduce accounts for a partial fill, it does not detach", l.count)
	}
}
