package movement

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Model applies Constraints to moves on a CostGrid. It holds no mutable state
// and may be shared by concurrent searches.
type Model struct {
	grid *gridgraph.CostGrid
	cons Constraints
}

// NewModel validates c and binds it to g.
func NewModel(g *gridgraph.CostGrid, c Constraints) (*Model, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &Model{grid: g, cons: c}, nil
}

// Constraints returns the run-length bounds of m.
func (m *Model) Constraints() Constraints { return m.cons }

// Grid returns the grid m moves on.
func (m *Model) Grid() *gridgraph.CostGrid { return m.grid }

// Successors appends the legal next steps of s to dst and returns it.
// Order: straight, left turn, right turn.
func (m *Model) Successors(s State, dst []Step) []Step {
	if s.Run < m.cons.MaxRun {
		dst = m.appendStep(dst, s.Pos, s.Heading, s.Run+1)
	}
	if s.Run >= m.cons.MinRun {
		dst = m.appendStep(dst, s.Pos, s.Heading.RotateLeft(), 1)
		dst = m.appendStep(dst, s.Pos, s.Heading.RotateRight(), 1)
	}

	return dst
}

func (m *Model) appendStep(dst []Step, from gridgraph.Position, h Heading, run int) []Step {
	to := from.Add(h.Delta())
	if !m.grid.InBounds(to) {
		return dst
	}

	return append(dst, Step{
		State: State{Pos: to, Heading: h, Run: run},
		Cost:  m.grid.Cost(to),
	})
}

// StateSpace returns rows×cols×4×MaxRun, an upper bound on distinct states.
func (m *Model) StateSpace() int {
	rows, cols := m.grid.Dimensions()

	return rows * cols * len(Headings) * m.cons.MaxRun
}

// ValidateRuns checks a path of consecutive states against c.
// Every run that ends in a turn must satisfy MinRun ≤ run ≤ MaxRun; the final
// run only has to respect MaxRun. The first state is treated as the start and
// its own Run counts toward the first run.
func ValidateRuns(path []State, c Constraints) error {
	if len(path) == 0 {
		return nil
	}
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if cur.Run > c.MaxRun {
			return fmt.Errorf("%w: run %d at %v exceeds %d", ErrRunViolation, cur.Run, cur.Pos, c.MaxRun)
		}
		if cur.Heading == prev.Heading {
			if cur.Run != prev.Run+1 {
				return fmt.Errorf("%w: run %d at %v does not follow %d", ErrRunViolation, cur.Run, cur.Pos, prev.Run)
			}
			continue
		}
		if cur.Run != 1 {
			return fmt.Errorf("%w: turn into %v starts at run %d", ErrRunViolation, cur.Pos, cur.Run)
		}
		if prev.Run < c.MinRun {
			return fmt.Errorf("%w: turned at %v after %d moves, need %d", ErrRunViolation, prev.Pos, prev.Run, c.MinRun)
		}
	}

	return nil
}
