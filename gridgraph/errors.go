package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNonDigit indicates a character outside '0'..'9' in grid text.
	ErrNonDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrNegativeCost indicates a cell weight below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
)

// ParseError reports where grid text was malformed.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
