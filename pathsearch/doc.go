// Package pathsearch provides a generic best-first shortest-path engine
// (Dijkstra, or A* when given a heuristic) over graphs that are never
// materialized: states are generated on demand by a successor function.
//
// Overview:
//
//   - Search[S] accepts any comparable state type, so callers can fold extra
//     memory (heading, run length, keys collected, …) into the vertex identity.
//   - A min-heap keyed by cost + heuristic always expands the most promising state.
//   - A per-run map of best known costs provides lazy deletion: stale heap
//     entries are skipped when popped instead of being removed eagerly.
//
// When to use:
//
//   - Grid and puzzle searches whose vertex set is too large or too
//     constraint-dependent to build up front.
//   - Any single- or multi-source query with non-negative step costs.
//
// Key features:
//
//   - Multiple start states, each seeded at cost 0.
//   - Goal predicate instead of a fixed target vertex.
//   - WithReturnPath: predecessor tracking and path reconstruction.
//   - WithMaxExpansions: defensive budget on finalized states.
//   - WithMaxDistance: ignore anything costlier than a cap.
//
// Optimality:
//
// The first goal popped is optimal when every step cost is ≥ 0 and the
// heuristic never overestimates the remaining cost. A nil heuristic is the
// constant 0, which is always admissible.
//
// Thread safety:
//
//   - Each Search call owns its frontier and cost maps; nothing is shared.
//   - Concurrent Search calls are safe as long as the successor, goal and
//     heuristic functions only read shared data.
//
// Example usage:
//
//	res, err := pathsearch.Search(pathsearch.Problem[string]{
//	    Starts:     []string{"A"},
//	    Successors: next,
//	    IsGoal:     func(s string) bool { return s == "Z" },
//	}, pathsearch.WithReturnPath())
//	if errors.Is(err, pathsearch.ErrNoPath) {
//	    // unreachable
//	}
package pathsearch
