package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
	"github.com/katalvlaran/crucible/pathsearch"
)

var defaultHeadings = []movement.Heading{movement.Right, movement.Down}

// MinHeatLoss returns the cheapest route for q on g.
//
// The search starts from one state per heading in q.Headings, each at cost 0
// with Run 1, and stops at the first popped state standing on q.Target,
// whatever its heading or run (see WithFinalRun). A Start equal to Target
// costs 0.
//
// Errors: ErrNilGrid, ErrOutOfBounds, ErrBadHeading, constraint validation
// errors from the movement package, ErrNoPath, and
// pathsearch.ErrExpansionLimit when a budget was set with WithMaxExpansions.
func MinHeatLoss(g *gridgraph.CostGrid, q Query, opts ...Option) (Route, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return Route{}, ErrNilGrid
	}
	if !g.InBounds(q.Start) {
		return Route{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, q.Start)
	}
	if !g.InBounds(q.Target) {
		return Route{}, fmt.Errorf("%w: target %v", ErrOutOfBounds, q.Target)
	}
	m, err := movement.NewModel(g, q.Constraints)
	if err != nil {
		return Route{}, err
	}

	headings := q.Headings
	if len(headings) == 0 {
		headings = defaultHeadings
	}
	starts := make([]movement.State, 0, len(headings))
	for _, h := range headings {
		if !h.Valid() {
			return Route{}, fmt.Errorf("%w: %d", ErrBadHeading, h)
		}
		starts = append(starts, movement.State{Pos: q.Start, Heading: h, Run: 1})
	}

	p := pathsearch.Problem[movement.State]{
		Starts:     starts,
		Successors: successorsOf(m),
		IsGoal: func(s movement.State) bool {
			return s.Pos == q.Target && (!o.finalRun || s.Run >= q.Constraints.MinRun)
		},
	}
	if !o.noHeuristic {
		p.Heuristic = ManhattanHeuristic(g, q.Target)
	}

	var sopts []pathsearch.Option
	if o.path {
		sopts = append(sopts, pathsearch.WithReturnPath())
	}
	if o.maxExpansions > 0 {
		sopts = append(sopts, pathsearch.WithMaxExpansions(o.maxExpansions))
	}

	res, err := pathsearch.Search(p, sopts...)
	if err != nil {
		if errors.Is(err, pathsearch.ErrNoPath) {
			return Route{Expanded: res.Expanded}, fmt.Errorf("%w from %v to %v under %v: %w",
				ErrNoPath, q.Start, q.Target, q.Constraints, err)
		}

		return Route{Expanded: res.Expanded}, err
	}

	return Route{HeatLoss: int(res.Cost), Steps: res.Path, Expanded: res.Expanded}, nil
}

// ManhattanHeuristic estimates the heat still to lose as the Manhattan
// distance to target times the cheapest cell in g. Every remaining step enters
// a cell costing at least that much, so the estimate is a lower bound.
func ManhattanHeuristic(g *gridgraph.CostGrid, target gridgraph.Position) func(movement.State) int64 {
	scale := int64(g.MinCost())

	return func(s movement.State) int64 {
		return int64(s.Pos.Manhattan(target)) * scale
	}
}

// successorsOf adapts a movement.Model to the engine's successor signature.
func successorsOf(m *movement.Model) func(movement.State, []pathsearch.Successor[movement.State]) []pathsearch.Successor[movement.State] {
	var steps []movement.Step

	return func(s movement.State, buf []pathsearch.Successor[movement.State]) []pathsearch.Successor[movement.State] {
		steps = m.Successors(s, steps[:0])
		for _, st := range steps {
			buf = append(buf, pathsearch.Successor[movement.State]{State: st.State, Cost: int64(st.Cost)})
		}

		return buf
	}
}
