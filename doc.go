// Package astargrid is a step-wise A* path search over rectangular 2-D
// grids with adjacent/diagonal step costs, an observable search state
// and a small CLI to run or step through searches.
//
// 🚀 What is astargrid?
//
//	A search engine you can drive one iteration at a time:
//		• Grid topology: cells, boundary classes, obstacles, legal moves
//		• Cost model: integer adjacent/diagonal costs, octile/Manhattan heuristics
//		• Frontier: indexed binary heap with decrease-cost, plus a linear reference
//		• Engine: Step/Run/Reset, Found/Unreachable/Aborted/Failed statuses
//		• Path reconstruction: parent-chain walk with cycle and orphan detection
//		• Tooling: obstacle layouts, ASCII/lipgloss rendering, Prometheus metrics
//
// ✨ Why choose astargrid?
//
//   - Deterministic – ties break on f, then h, then insertion order
//   - Observable – per-cell CellView, hooks and zap logging on every run
//   - Checked – optional invariant verification after every iteration
//   - Cross-validated – a Dijkstra sweep over the same move rules
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      - cells, coordinates, boundary classes, obstacles, move legality, regions
//	astar/     - cost model, frontier, engine state machine, path reconstruction
//	dijkstra/  - single-source distances over the same grid rules
//	layout/    - reproducible obstacle patterns (checker, wall, random, ...)
//	render/    - ASCII, styled and cost-table views of a search
//	metrics/   - Prometheus collectors fed by engine hooks
//	cmd/astargrid - run, step and inspect commands
//
// Quick ASCII example (3×3, centre blocked, corner cutting allowed):
//
//	| @ & A |
//	| A # & |
//	| . A @ |
//
//	'@' finalized endpoint, '&' path, 'A' open, '#' obstacle.
//
//	go get github.com/katalvlaran/astargrid
package astargrid
