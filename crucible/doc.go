// Package crucible finds the least heat loss for a crucible pushed across a
// city-block cost grid, where the crucible cannot turn too early nor run
// straight for too long.
//
// The package glues three pieces together:
//
//	gridgraph.CostGrid   — the read-only cost map;
//	movement.Model       — the run-length-constrained transition rule;
//	pathsearch.Search    — the best-first engine.
//
// A Query names the start and target cells and the Constraints. MinHeatLoss
// answers one query; Solve answers one query per Regime concurrently over the
// same grid. The heuristic is Manhattan distance × the grid's smallest cell
// cost, which never overestimates, so every reported cost is optimal.
//
// Unreachable targets are ordinary outcomes: MinHeatLoss returns ErrNoPath
// and Solve reports Found=false.
package crucible
