// Package astar finds a shortest-cost route between two cells of a grid.Grid
// using the A* best-first search algorithm.
//
// Overview:
//
//   - Movement is 8-directional by default (grid.Conn8) with distinct
//     adjacent and diagonal step costs (10 and 14 by default, approximating
//     √2×10 without fractional costs), or 4-directional (grid.Conn4).
//   - The heuristic is octile distance under Conn8 and Manhattan distance
//     under Conn4; both are admissible and consistent for
//     Adjacent ≤ Diagonal ≤ 2×Adjacent, so the returned path is optimal.
//   - The frontier (open set) is an indexable binary heap: O(log n) insert,
//     decrease-key and extract-min. A linear-scan frontier with identical
//     ordering is available for small grids and cross-checks.
//
// State machine:
//
//	Running ──goal finalized──▶ Found
//	   │ ────frontier empty───▶ Unreachable
//	   │ ────iteration cap────▶ Aborted
//	   └─────invariant error──▶ Failed
//
// Each Step finalizes one cell: the start cell is finalized on construction;
// every later step expands the most recently finalized cell (never the
// goal), then extracts the frontier minimum (lowest f, then lowest h, then
// earliest inserted) and finalizes it.
//
// Ownership:
//
//   - The grid.Grid is static and shared read-only. All mutable search state
//     (g, h, f, parent, flags) lives in the Engine, indexed by cell id, so
//     several engines may search the same grid concurrently.
//   - Cross-references are integer cell ids only.
//   - The frontier stores ordering keys plus a reverse index; it never owns
//     costs. WithInvariantChecks verifies after every step that frontier keys
//     match the engine state.
//
// Relaxation:
//
//	When an open cell is reached by a cheaper path, its g, f (= g + h) and
//	parent are updated eagerly before the frontier key is decreased; h is
//	computed once at discovery and never changes.
//
// Corner cutting:
//
//	By default a diagonal step may pass between two blocked cells, as in the
//	reference behavior. WithCornerCutting(false) forbids a diagonal step when
//	either of the two orthogonal cells it passes is blocked.
//
// Errors:
//
//   - ErrConfiguration family (ErrNilGrid, ErrOutOfBounds, ErrStartBlocked,
//     ErrGoalBlocked, ErrBadCosts): rejected before the search starts.
//   - ErrAborted: the iteration cap was reached; re-run with a higher cap.
//   - ErrInvariantViolation family (ErrFrontierEmpty, ErrAlreadyMember,
//     ErrNotMember, ErrNotDecreasing, ErrBrokenPath): a logic defect; fatal.
//   - Unreachable is a Status, not an error.
//
// Thread safety:
//
//   - An Engine is single-threaded and synchronous. Do not share one Engine
//     between goroutines; create one Engine per search instead.
package astar
