// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/crucible.
package gridgraph

import "fmt"

// Position addresses a single cell by row and column.
// A Position is valid for a grid iff 0 ≤ Row < rows and 0 ≤ Col < cols.
type Position struct {
	Row, Col int
}

// Add returns the position shifted by (dr, dc). The result may be out of bounds.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CostGrid is an immutable rectangular matrix of non-negative traversal costs.
// cells is stored row-major; Rows×Cols == len(cells).
// minCost caches the smallest weight for heuristic scaling.
type CostGrid struct {
	rows, cols int
	cells      []int
	minCost    int
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
