// Package pathsearch implements best-first shortest-path search on implicit graphs.
//
// The engine is Dijkstra's algorithm ordered by cost + heuristic, i.e. A*.
// States are any comparable value; the caller supplies start states, a
// successor function, a goal predicate and an optional admissible heuristic.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Frontier ties on priority are broken by insertion order.
//   - The goal test runs when a state is popped, not when it is pushed; only then is its cost final.
//   - A negative step cost aborts the run with ErrNegativeStep.
package pathsearch

import (
	"container/heap"
	"fmt"
)

// Search runs a best-first search over p and returns the cheapest path cost
// from any start state to the first goal state popped from the frontier.
//
// Preconditions and validation (in order):
//  1. p.Starts must be non-empty (ErrNoStart).
//  2. p.Successors must be non-nil (ErrNilSuccessors).
//  3. p.IsGoal must be non-nil (ErrNilGoal).
//
// A start state that already satisfies IsGoal yields Cost 0.
// When no goal is reachable, Search returns ErrNoPath together with a Result
// whose Expanded and Pushed counters describe the exhausted run.
//
// Complexity (V = reachable states, E = their successors):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Search[S comparable](p Problem[S], opts ...Option) (Result[S], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the problem
	if len(p.Starts) == 0 {
		return Result[S]{}, ErrNoStart
	}
	if p.Successors == nil {
		return Result[S]{}, ErrNilSuccessors
	}
	if p.IsGoal == nil {
		return Result[S]{}, ErrNilGoal
	}
	if p.Heuristic == nil {
		p.Heuristic = zeroHeuristic[S]
	}

	// 3) Prepare per-run state; nothing here outlives the call.
	r := &runner[S]{
		p:       p,
		options: cfg,
		dist:    make(map[S]int64),
		closed:  make(map[S]bool),
		pq:      make(statePQ[S], 0, len(p.Starts)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	r.init()

	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	p       Problem[S]
	options Options
	dist    map[S]int64    // best known cumulative cost per state
	prev    map[S]S        // predecessor on the best known path; nil unless ReturnPath
	closed  map[S]bool     // finalized states
	pq      statePQ[S]     // min-heap ordered by (key, seq)
	buf     []Successor[S] // scratch for Successors
	seq     uint64

	expanded int
	pushed   int
}

// init seeds the frontier with every distinct start state at cost 0.
func (r *runner[S]) init() {
	heap.Init(&r.pq)
	for _, s := range r.p.Starts {
		// 1) Duplicate starts collapse to one entry.
		if _, seen := r.dist[s]; seen {
			continue
		}
		// 2) Every start is seeded at cost 0.
		r.dist[s] = 0
		r.push(s, 0)
	}
}

// push inserts state with cumulative cost g, keyed by g + heuristic(state).
func (r *runner[S]) push(state S, g int64) {
	heap.Push(&r.pq, &stateItem[S]{
		state: state,
		cost:  g,
		key:   g + r.p.Heuristic(state),
		seq:   r.seq,
	})
	r.seq++
	r.pushed++
}

// process is the main loop: pop the lowest-keyed entry, drop it if stale,
// stop at a goal, otherwise finalize and relax it.
func (r *runner[S]) process() (Result[S], error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem[S])
		u, g := item.state, item.cost

		// 1) Lazy deletion: skip finalized states and entries superseded by a cheaper push.
		if r.closed[u] || g > r.dist[u] {
			continue
		}

		// 2) Enforce the expansion budget before finalizing anything new.
		if r.expanded >= r.options.MaxExpansions {
			return r.result(), fmt.Errorf("%w: %d states finalized", ErrExpansionLimit, r.expanded)
		}

		// 3) g is now final for u.
		r.closed[u] = true
		r.expanded++

		// 4) First goal popped is optimal for an admissible heuristic.
		if r.p.IsGoal(u) {
			res := r.result()
			res.Cost = g
			res.Goal = u
			if r.prev != nil {
				res.Path = r.path(u)
			}

			return res, nil
		}

		// 5) Relax successors.
		if err := r.relax(u, g); err != nil {
			return r.result(), err
		}
	}

	return r.result(), ErrNoPath
}

// relax pushes every successor of u whose cost through u beats its best known cost.
func (r *runner[S]) relax(u S, g int64) error {
	// 1) Reuse the successor buffer across expansions.
	r.buf = r.p.Successors(u, r.buf[:0])

	var nd int64
	for _, s := range r.buf {
		// 2) Negative steps break the finalization invariant.
		if s.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeStep, u, s.State, s.Cost)
		}
		// 3) Finalized states never improve.
		if r.closed[s.State] {
			continue
		}

		// 4) Prune beyond MaxDistance.
		nd = g + s.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		// 5) Strictly better only, so equal-cost duplicates are never pushed.
		if old, ok := r.dist[s.State]; ok && nd >= old {
			continue
		}

		// 6) Record the improvement and queue it.
		r.dist[s.State] = nd
		if r.prev != nil {
			r.prev[s.State] = u
		}
		r.push(s.State, nd)
	}

	return nil
}

// path walks predecessors back from goal to a start and returns them in travel order.
func (r *runner[S]) path(goal S) []S {
	path := []S{goal}
	for cur := goal; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner[S]) result() Result[S] {
	return Result[S]{Expanded: r.expanded, Pushed: r.pushed}
}

func zeroHeuristic[S comparable](S) int64 { return 0 }

// stateItem is one frontier entry.
type stateItem[S comparable] struct {
	state S
	cost  int64  // cumulative cost from a start
	key   int64  // cost + heuristic(state)
	seq   uint64 // insertion order, breaks key ties
}

// statePQ is a min-heap of *stateItem ordered by key, then seq.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ[S comparable] []*stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less orders by key, falling back to insertion order.
func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *stateItem.
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
