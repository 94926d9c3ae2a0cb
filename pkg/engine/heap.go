package engine

import "container/heap"

// tickHeap is a self-indexed binary heap over resident price ticks: each
// tick also lives in an index map back to its slot, so heap.Remove can be
// handed the slot of an arbitrary tick directly instead of linear-scanning
// the slice for it first. less decides the ordering — greater-than for the
// bid side's max-heap, less-than for the ask side's min-heap — so one type
// serves both sides of the book, generalizing the teacher's separate
// MaxPriceHeap/MinPriceHeap.
type tickHeap struct {
	ticks []int64
	index map[int64]int
	less  func(a, b int64) bool
}

func newTickHeap(less func(a, b int64) bool) *tickHeap {
	return &tickHeap{index: make(map[int64]int), less: less}
}

func (h tickHeap) Len() int { return len(h.ticks) }

func (h tickHeap) Less(i, j int) bool { return h.less(h.ticks[i], h.ticks[j]) }

func (h tickHeap) Swap(i, j int) {
	h.ticks[i], h.ticks[j] = h.ticks[j], h.ticks[i]
	h.index[h.ticks[i]] = i
	h.index[h.ticks[j]] = j
}

func (h *tickHeap) Push(x any) {
	tick := x.(int64)
	h.index[tick] = len(h.ticks)
	h.ticks = append(h.ticks, tick)
}

func (h *tickHeap) Pop() any {
	old := h.ticks
	n := len(old)
	tick := old[n-1]
	h.ticks = old[:n-1]
	delete(h.index, tick)
	return tick
}

// insert adds a tick that is not already resident.
func (h *tickHeap) insert(tick int64) {
	heap.Push(h, tick)
}

// remove drops a resident tick in O(log n) via its tracked slot, rather
// than the O(n) scan a plain container/heap without an index requires.
func (h *tickHeap) remove(tick int64) {
	i, ok := h.index[tick]
	if !ok {
		return
	}
	heap.Remove(h, i)
}

// peek returns the extremum tick without removing it.
func (h *tickHeap) peek() (int64, bool) {
	if len(h.ticks) == 0 {
		return 0, false
	}
	return h.ticks[0], true
}

func (h *tickHeap) contains(tick int64) bool {
	_, ok := h.index[tick]
	return ok
}
