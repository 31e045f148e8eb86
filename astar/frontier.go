package astar

import (
	"container/heap"
	"iter"
)

// Frontier is the open set of a search: cells discovered but not yet
// finalized, ordered by (f, h, insertion order).
//
// Only the ordering keys are stored; the Engine owns the authoritative
// costs and keeps keys in sync. h is fixed at insertion, so DecreaseCost
// only lowers f. Insertion order survives DecreaseCost.
//
// Every error returned by a Frontier wraps ErrInvariantViolation.
type Frontier interface {
	// Len returns the number of members.
	Len() int
	// Contains reports whether id is a member.
	Contains(id int) bool
	// Insert inserts id with keys f and h. ErrAlreadyMember if present.
	Insert(id, f, h int) error
	// DecreaseCost lowers the f key of a member. ErrNotMember if absent,
	// ErrNotDecreasing if f is not strictly lower than the stored key or
	// h differs from the stored h.
	DecreaseCost(id, f, h int) error
	// Reset removes all members and restarts the insertion sequence.
	Reset()
	// ExtractMin removes and returns the member with the smallest (f, h, seq).
	// ErrFrontierEmpty if there are no members.
	ExtractMin() (int, error)
	// Key returns the stored keys of id.
	Key(id int) (f, h int, ok bool)
	// All yields the members in unspecified order.
	All() iter.Seq[int]
}

// newFrontier returns an empty frontier of the given kind for n cell ids.
func newFrontier(kind FrontierKind, n int) Frontier {
	if kind == FrontierLinear {
		return NewLinearFrontier(n)
	}
	return NewHeapFrontier(n)
}

// entry is one frontier member.
type entry struct {
	id   int
	f, h int
	seq  uint64 // insertion order; kept across DecreaseCost
}

// less orders entries by f, then h, then earliest insertion.
func (a entry) less(b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// entryHeap implements heap.Interface over entries and maintains pos,
// the heap index of every cell id (-1 when absent).
type entryHeap struct {
	entries []entry
	pos     []int
}

func (h *entryHeap) Len() int           { return len(h.entries) }
func (h *entryHeap) Less(i, j int) bool { return h.entries[i].less(h.entries[j]) }
func (h *entryHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].id] = i
	h.pos[h.entries[j].id] = j
}

// Push appends x; called by heap.Push only.
func (h *entryHeap) Push(x interface{}) {
	e := x.(entry)
	h.pos[e.id] = len(h.entries)
	h.entries = append(h.entries, e)
}

// Pop removes the last element; called by heap.Pop only.
func (h *entryHeap) Pop() interface{} {
	last := len(h.entries) - 1
	e := h.entries[last]
	h.entries = h.entries[:last]
	h.pos[e.id] = -1
	return e
}

// HeapFrontier is an indexable binary min-heap.
//
// Complexity: Insert, DecreaseCost and ExtractMin are O(log n); Contains and Key are O(1).
type HeapFrontier struct {
	h   entryHeap
	seq uint64
}

// NewHeapFrontier returns an empty heap frontier for cell ids in [0, n).
func NewHeapFrontier(n int) *HeapFrontier {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &HeapFrontier{h: entryHeap{pos: pos}}
}

// Len implements Frontier.
func (q *HeapFrontier) Len() int { return q.h.Len() }

// Contains implements Frontier.
func (q *HeapFrontier) Contains(id int) bool {
	return id >= 0 && id < len(q.h.pos) && q.h.pos[id] >= 0
}

// Insert implements Frontier.
func (q *HeapFrontier) Insert(id, f, h int) error {
	if q.Contains(id) {
		return ErrAlreadyMember
	}
	heap.Push(&q.h, entry{id: id, f: f, h: h, seq: q.seq})
	q.seq++
	return nil
}

// DecreaseCost implements Frontier.
func (q *HeapFrontier) DecreaseCost(id, f, h int) error {
	if !q.Contains(id) {
		return ErrNotMember
	}
	i := q.h.pos[id]
	if f >= q.h.entries[i].f || h != q.h.entries[i].h {
		return ErrNotDecreasing
	}
	q.h.entries[i].f = f
	heap.Fix(&q.h, i)
	return nil
}

// Reset implements Frontier.
func (q *HeapFrontier) Reset() {
	for _, e := range q.h.entries {
		q.h.pos[e.id] = -1
	}
	q.h.entries = q.h.entries[:0]
	q.seq = 0
}

// ExtractMin implements Frontier.
func (q *HeapFrontier) ExtractMin() (int, error) {
	if q.h.Len() == 0 {
		return -1, ErrFrontierEmpty
	}
	return heap.Pop(&q.h).(entry).id, nil
}

// Key implements Frontier.
func (q *HeapFrontier) Key(id int) (f, h int, ok bool) {
	if !q.Contains(id) {
		return 0, 0, false
	}
	e := q.h.entries[q.h.pos[id]]
	return e.f, e.h, true
}

// All implements Frontier.
func (q *HeapFrontier) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range q.h.entries {
			if !yield(e.id) {
				return
			}
		}
	}
}
