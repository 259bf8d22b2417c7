// Package gridgraph holds the weighted cell grid that path searches run on.
//
// What:
//
//   - CostGrid wraps a rectangular matrix of non-negative integer weights.
//   - Parse / ParseReader build a grid from digit text, one row per line.
//   - Cost, InBounds and Dimensions answer the only questions a search asks.
//
// Why:
//
//   - The grid is built once and then shared read-only by any number of
//     searches, so it never exposes a mutator.
//   - Weights are stored row-major in a single slice; Index / PositionOf
//     convert between the flat index and a Position.
//
// Complexity:
//
//   - Parse:        O(W×H) time and memory.
//   - Cost/InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonDigit:       a character outside '0'..'9' in grid text.
//   - ErrNegativeCost:   a negative weight passed to NewCostGrid.
//
// Text errors are returned as *ParseError carrying the 1-based line and column;
// errors.Is(err, ErrNonDigit) still matches.
package gridgraph
