package gridgraph

import "math"

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// indexed as values[row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost
// if any weight is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	// 1) At least one row and one column.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	// 2) Every row matches the first.
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// 3) Copy row-major, rejecting negatives and tracking the cheapest cell.
	cells := make([]int, 0, rows*cols)
	minCost := math.MaxInt
	for r, row := range values {
		for c, w := range row {
			if w < 0 {
				return nil, &ParseError{Line: r + 1, Column: c + 1, Err: ErrNegativeCost}
			}
			if w < minCost {
				minCost = w
			}
			cells = append(cells, w)
		}
	}

	return &CostGrid{rows: rows, cols: cols, cells: cells, minCost: minCost}, nil
}

// Dimensions returns the number of rows and columns.
func (g *CostGrid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cost returns the traversal weight of the cell at p.
// p must be in bounds; callers guard with InBounds.
// Complexity: O(1).
func (g *CostGrid) Cost(p Position) int {
	return g.cells[g.Index(p)]
}

// MinCost returns the smallest weight in the grid. Multiplying a step count by
// MinCost never overestimates the cost of those steps.
func (g *CostGrid) MinCost() int {
	return g.minCost
}

// Origin returns the top-left position.
func (g *CostGrid) Origin() Position {
	return Position{}
}

// Corner returns the bottom-right position.
func (g *CostGrid) Corner() Position {
	return Position{Row: g.rows - 1, Col: g.cols - 1}
}

// Index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *CostGrid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// PositionOf converts a row-major index back to a Position.
// Complexity: O(1).
func (g *CostGrid) PositionOf(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Rows returns a deep copy of the weights as values[row][col].
func (g *CostGrid) Rows() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}

	return out
}
