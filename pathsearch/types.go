// Package pathsearch defines core types and configuration options
// for best-first (Dijkstra / A*) search over implicit state graphs.
//
// Options:
//
//	– ReturnPath:    if true, Result.Path holds the states from a start to the goal.
//	– MaxExpansions: optional cap on finalized states; exceeding it aborts the run.
//	– MaxDistance:   optional cap on cumulative cost; frontier entries beyond it are dropped.
//
// Errors (sentinel):
//
//	– ErrNoStart          if Problem.Starts is empty.
//	– ErrNilSuccessors    if Problem.Successors is nil.
//	– ErrNilGoal          if Problem.IsGoal is nil.
//	– ErrNoPath           if the frontier empties before a goal state is popped.
//	– ErrNegativeStep     if a successor reports a negative step cost.
//	– ErrExpansionLimit   if MaxExpansions states were finalized without reaching a goal.
//	– ErrBadMaxExpansions if MaxExpansions <= 0.
//	– ErrBadMaxDistance   if MaxDistance < 0.
package pathsearch

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNoStart indicates that the problem has no initial state.
	ErrNoStart = errors.New("pathsearch: at least one start state is required")

	// ErrNilSuccessors indicates a nil successor function.
	ErrNilSuccessors = errors.New("pathsearch: successor function is nil")

	// ErrNilGoal indicates a nil goal predicate.
	ErrNilGoal = errors.New("pathsearch: goal predicate is nil")

	// ErrNoPath indicates the frontier was exhausted without reaching a goal.
	ErrNoPath = errors.New("pathsearch: no path to goal")

	// ErrNegativeStep indicates a successor with a negative step cost.
	ErrNegativeStep = errors.New("pathsearch: negative step cost encountered")

	// ErrExpansionLimit indicates the MaxExpansions budget ran out.
	ErrExpansionLimit = errors.New("pathsearch: expansion limit reached")

	// ErrBadMaxExpansions indicates MaxExpansions was set to zero or a negative value.
	ErrBadMaxExpansions = errors.New("pathsearch: MaxExpansions must be positive")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("pathsearch: MaxDistance must be non-negative")
)

// Successor is one outgoing edge of a state: the next state and the cost of the step.
type Successor[S comparable] struct {
	State S
	Cost  int64
}

// Problem describes one search. The zero Heuristic turns the run into plain Dijkstra.
//
// Successors receives a scratch slice (length 0) it may append to and return;
// the engine reuses it between expansions, so implementations must not retain it.
type Problem[S comparable] struct {
	Starts     []S
	Successors func(state S, buf []Successor[S]) []Successor[S]
	IsGoal     func(state S) bool
	// Heuristic estimates the remaining cost from a state. It must never
	// overestimate, otherwise the first goal popped may not be the cheapest.
	Heuristic func(state S) int64
}

// Result is the outcome of a successful search.
type Result[S comparable] struct {
	Cost     int64 // cumulative cost of the cheapest path found
	Goal     S     // the goal state that was popped
	Path     []S   // start … Goal; nil unless WithReturnPath
	Expanded int   // states finalized (popped and expanded)
	Pushed   int   // frontier insertions, including the starts
}

// Options configures the behavior of Search.
//
// ReturnPath    – if true, Result.Path is populated.
// MaxExpansions – abort with ErrExpansionLimit after this many finalized states.
//
//	Must be > 0. Default is math.MaxInt (no budget).
//
// MaxDistance   – entries whose cumulative cost exceeds this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	ReturnPath    bool
	MaxExpansions int
	MaxDistance   int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables predecessor tracking so Result.Path can be rebuilt.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxExpansions sets a budget on the number of finalized states.
// Must pass a positive value; otherwise it panics with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithMaxDistance sets a cap on cumulative cost.
// Must pass a non-negative value; otherwise it panics with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no path, no budget and no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxExpansions: math.MaxInt,
		MaxDistance:   math.MaxInt64,
	}
}
