package astar

import (
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// verify checks that the engine state and the frontier agree. It is O(n)
// and runs after every step when WithInvariantChecks is set.
//
// Checked:
//   - every open cell is discovered, not finalized, not an obstacle, and its
//     frontier keys equal its (f, h) with f == g + h;
//   - every discovered, non-finalized cell is open;
//   - every discovered cell other than the start has a finalized 8-neighbor parent;
//   - the frontier size equals the number of open cells.
func (e *Engine) verify() error {
	open := 0
	for id := range e.state {
		st := &e.state[id]
		member := e.frontier.Contains(id)

		if member {
			open++
			switch {
			case !st.discovered || st.finalized:
				return fmt.Errorf("%w: cell %d on frontier but discovered=%t finalized=%t",
					ErrInvariantViolation, id, st.discovered, st.finalized)
			case e.g.Obstacle(id):
				return fmt.Errorf("%w: obstacle cell %d on frontier", ErrInvariantViolation, id)
			case st.f != F(st.g, st.h):
				return fmt.Errorf("%w: cell %d f=%d != g+h=%d", ErrInvariantViolation, id, st.f, st.g+st.h)
			}
			f, h, _ := e.frontier.Key(id)
			if f != st.f || h != st.h {
				return fmt.Errorf("%w: cell %d frontier key (%d,%d) != state (%d,%d)",
					ErrInvariantViolation, id, f, h, st.f, st.h)
			}
		} else if st.discovered && !st.finalized {
			return fmt.Errorf("%w: discovered cell %d missing from frontier", ErrInvariantViolation, id)
		}

		if st.discovered && id != e.start {
			p := st.parent
			if p < 0 || !e.state[p].finalized {
				return fmt.Errorf("%w: cell %d parent %d not finalized", ErrInvariantViolation, id, p)
			}
			if _, ok := e.g.Step(e.g.Coordinate(p), e.g.Coordinate(id), grid.Conn8, true); !ok {
				return fmt.Errorf("%w: cell %d parent %d not adjacent", ErrInvariantViolation, id, p)
			}
		}
	}
	if open != e.frontier.Len() {
		return fmt.Errorf("%w: frontier holds %d cells, %d open", ErrInvariantViolation, e.frontier.Len(), open)
	}
	return nil
}
