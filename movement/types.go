package movement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors for constraint validation.
var (
	// ErrBadMinRun indicates MinRun < 1.
	ErrBadMinRun = errors.New("movement: MinRun must be at least 1")
	// ErrBadMaxRun indicates MaxRun < 1.
	ErrBadMaxRun = errors.New("movement: MaxRun must be at least 1")
	// ErrRunRange indicates MinRun > MaxRun.
	ErrRunRange = errors.New("movement: MinRun must not exceed MaxRun")
	// ErrNilGrid indicates a Model was requested without a grid.
	ErrNilGrid = errors.New("movement: grid is nil")
	// ErrRunViolation indicates a path whose runs break the constraints.
	ErrRunViolation = errors.New("movement: run length outside constraints")
)

// Constraints bounds how many consecutive cells may be crossed in one heading.
type Constraints struct {
	MinRun int // moves required before a turn is allowed
	MaxRun int // moves allowed before a turn is forced
}

// Loose and Strict are the two regimes of the crucible puzzle.
var (
	Loose  = Constraints{MinRun: 1, MaxRun: 3}
	Strict = Constraints{MinRun: 4, MaxRun: 10}
)

// Validate checks 1 ≤ MinRun ≤ MaxRun.
func (c Constraints) Validate() error {
	switch {
	case c.MinRun < 1:
		return fmt.Errorf("%w: got %d", ErrBadMinRun, c.MinRun)
	case c.MaxRun < 1:
		return fmt.Errorf("%w: got %d", ErrBadMaxRun, c.MaxRun)
	case c.MinRun > c.MaxRun:
		return fmt.Errorf("%w: %d > %d", ErrRunRange, c.MinRun, c.MaxRun)
	}

	return nil
}

func (c Constraints) String() string {
	return fmt.Sprintf("%d..%d", c.MinRun, c.MaxRun)
}

// State is a search vertex: position plus the directional memory needed to
// enforce Constraints. Equality is by all three fields.
type State struct {
	Pos     gridgraph.Position
	Heading Heading
	Run     int // consecutive moves in Heading that led to Pos, ≥ 1
}

func (s State) String() string {
	return fmt.Sprintf("%v%s%d", s.Pos, s.Heading.Arrow(), s.Run)
}

// Step is one legal transition out of a State.
type Step struct {
	State State
	Cost  int // cost of the cell entered
}
