package astar

import (
	"fmt"
	"iter"
)

// Walk yields cell ids from the goal back to the start by following parent
// links. It is lazy, finite and restartable: each range over the returned
// sequence walks the chain again.
//
// Errors are yielded as the final pair with id -1:
//   - ErrNotFound if the goal has not been finalized.
//   - ErrBrokenPath if a cell has no parent before the start is reached, or
//     the chain is longer than the number of cells (a cycle).
//
// Complexity: O(path length) per walk.
func (e *Engine) Walk() iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if !e.state[e.goal].finalized {
			yield(-1, ErrNotFound)
			return
		}
		id := e.goal
		for range len(e.state) {
			if !yield(id, nil) || id == e.start {
				return
			}
			parent := e.state[id].parent
			if parent < 0 {
				yield(-1, fmt.Errorf("%w: cell %d has no parent", ErrBrokenPath, id))
				return
			}
			id = parent
		}
		yield(-1, fmt.Errorf("%w: chain exceeds %d cells", ErrBrokenPath, len(e.state)))
	}
}

// Reconstruct returns the path as cell ids in goal→start order.
func (e *Engine) Reconstruct() ([]int, error) {
	var path []int
	for id, err := range e.Walk() {
		if err != nil {
			return nil, err
		}
		path = append(path, id)
	}
	return path, nil
}
