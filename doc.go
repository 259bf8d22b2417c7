// Package crucible is the root of a small toolkit for least-cost routing on
// weighted grids under run-length movement constraints.
//
// 🚀 What is inside?
//
//   - gridgraph/  — immutable cost grid, digit-text parser, bounds and cost queries
//   - movement/   — headings, augmented search states and the run-length transition rule
//   - pathsearch/ — generic best-first engine (Dijkstra / A*) with lazy deletion
//   - crucible/   — the heat-loss query, admissible heuristic and multi-regime Solve
//   - cmd/crucible — CLI: `crucible solve input.txt`
//
// Quick ASCII example:
//
//	2 4 1 3
//	3 2 1 5
//	3 2 5 5
//
// A crucible entering these blocks from the top-left must move between
// MinRun and MaxRun cells in a heading before turning; the search state is
// therefore (cell, heading, run) rather than just the cell.
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
