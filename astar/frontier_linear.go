package astar

import "iter"

// LinearFrontier is an unordered open set that scans all members on ExtractMin.
// It orders exactly like HeapFrontier and serves small grids and
// cross-checking.
//
// Complexity: Insert, DecreaseCost, Contains and Key are O(1); ExtractMin is O(n).
type LinearFrontier struct {
	entries []entry
	pos     []int
	seq     uint64
}

// NewLinearFrontier returns an empty linear frontier for cell ids in [0, n).
func NewLinearFrontier(n int) *LinearFrontier {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &LinearFrontier{pos: pos}
}

// Len implements Frontier.
func (q *LinearFrontier) Len() int { return len(q.entries) }

// Contains implements Frontier.
func (q *LinearFrontier) Contains(id int) bool {
	return id >= 0 && id < len(q.pos) && q.pos[id] >= 0
}

// Insert implements Frontier.
func (q *LinearFrontier) Insert(id, f, h int) error {
	if q.Contains(id) {
		return ErrAlreadyMember
	}
	q.pos[id] = len(q.entries)
	q.entries = append(q.entries, entry{id: id, f: f, h: h, seq: q.seq})
	q.seq++
	return nil
}

// DecreaseCost implements Frontier.
func (q *LinearFrontier) DecreaseCost(id, f, h int) error {
	if !q.Contains(id) {
		return ErrNotMember
	}
	e := &q.entries[q.pos[id]]
	if f >= e.f || h != e.h {
		return ErrNotDecreasing
	}
	e.f = f
	return nil
}

// Reset implements Frontier.
func (q *LinearFrontier) Reset() {
	for _, e := range q.entries {
		q.pos[e.id] = -1
	}
	q.entries = q.entries[:0]
	q.seq = 0
}

// ExtractMin implements Frontier.
func (q *LinearFrontier) ExtractMin() (int, error) {
	if len(q.entries) == 0 {
		return -1, ErrFrontierEmpty
	}
	best := 0
	for i := 1; i < len(q.entries); i++ {
		if q.entries[i].less(q.entries[best]) {
			best = i
		}
	}
	id := q.entries[best].id

	// swap-remove; the moved entry keeps its seq so order is unaffected
	last := len(q.entries) - 1
	q.entries[best] = q.entries[last]
	q.pos[q.entries[best].id] = best
	q.entries = q.entries[:last]
	q.pos[id] = -1
	return id, nil
}

// Key implements Frontier.
func (q *LinearFrontier) Key(id int) (f, h int, ok bool) {
	if !q.Contains(id) {
		return 0, 0, false
	}
	e := q.entries[q.pos[id]]
	return e.f, e.h, true
}

// All implements Frontier.
func (q *LinearFrontier) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range q.entries {
			if !yield(e.id) {
				return
			}
		}
	}
}
