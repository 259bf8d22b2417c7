package crucible

import (
	"errors"
	"time"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Sentinel errors.
var (
	// ErrNilGrid indicates a nil *gridgraph.CostGrid.
	ErrNilGrid = errors.New("crucible: grid is nil")
	// ErrOutOfBounds indicates a start or target outside the grid.
	ErrOutOfBounds = errors.New("crucible: position outside grid")
	// ErrNoPath indicates that no legal route reaches the target.
	// It also matches pathsearch.ErrNoPath under errors.Is.
	ErrNoPath = errors.New("crucible: no path")
	// ErrBadHeading indicates a Query heading outside Up, Right, Down, Left.
	ErrBadHeading = errors.New("crucible: invalid heading")
	// ErrNoRegimes indicates Solve was called without any regime.
	ErrNoRegimes = errors.New("crucible: at least one regime is required")
)

// Query is one shortest-route question against a grid.
type Query struct {
	Start       gridgraph.Position
	Target      gridgraph.Position
	Constraints movement.Constraints
	// Headings the crucible may leave Start with; each seeds a state with
	// Run 1. Empty means Right and Down.
	Headings []movement.Heading
}

// CornerToCorner returns the puzzle query: top-left to bottom-right under c.
func CornerToCorner(g *gridgraph.CostGrid, c movement.Constraints) Query {
	return Query{Start: g.Origin(), Target: g.Corner(), Constraints: c}
}

// Route is the answer to a Query.
type Route struct {
	HeatLoss int              // total cost of the cells entered after Start
	Steps    []movement.State // Start state … goal state; nil unless WithPath
	Expanded int              // states finalized by the search
}

// Positions returns the cells visited by r in order.
func (r Route) Positions() []gridgraph.Position {
	out := make([]gridgraph.Position, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Pos
	}

	return out
}

// Regime is a named set of Constraints.
type Regime struct {
	Name        string
	Constraints movement.Constraints
}

// DefaultRegimes returns the loose 1..3 and strict 4..10 regimes.
func DefaultRegimes() []Regime {
	return []Regime{
		{Name: "loose", Constraints: movement.Loose},
		{Name: "strict", Constraints: movement.Strict},
	}
}

// Outcome reports the result of one Regime in Solve.
type Outcome struct {
	Regime  Regime
	Found   bool  // false when the target is unreachable under Regime
	Route   Route // zero unless Found
	Elapsed time.Duration
}

// options configures MinHeatLoss and Solve.
type options struct {
	path          bool
	maxExpansions int
	noHeuristic   bool
	finalRun      bool
}

// Option tunes a search.
type Option func(*options)

// WithPath records the route so Route.Steps is populated.
func WithPath() Option {
	return func(o *options) { o.path = true }
}

// WithMaxExpansions aborts a search after n finalized states.
// n ≤ 0 means no budget.
func WithMaxExpansions(n int) Option {
	return func(o *options) { o.maxExpansions = n }
}

// WithFinalRun only accepts the target when the crucible has moved at least
// MinRun cells in its last heading, i.e. it can stop there. By default the
// last run is unconstrained. A Start equal to Target is then reachable only
// when MinRun is 1.
func WithFinalRun() Option {
	return func(o *options) { o.finalRun = true }
}

// WithoutHeuristic runs plain Dijkstra instead of A*.
func WithoutHeuristic() Option {
	return func(o *options) { o.noHeuristic = true }
}
