package astar

// Test bridge for package astar_test: exposes the consistency checker and a
// way to corrupt parent links without widening the public API.

// Verify runs the full engine/frontier consistency check.
func (e *Engine) Verify() error { return e.verify() }

// SetParentForTest overwrites the parent link of cell id.
func (e *Engine) SetParentForTest(id, parent int) { e.state[id].parent = parent }
