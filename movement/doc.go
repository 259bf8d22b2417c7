// Package movement models an agent that must keep its heading for a bounded
// number of cells before it may turn.
//
// A State is the augmented search vertex: the cell the agent stands on, the
// heading it arrived with, and how many consecutive moves it has made in that
// heading. Two states that differ only in run length are different vertices,
// because they allow different futures.
//
// Model.Successors enumerates the legal next states under Constraints:
//
//   - straight: same heading, Run+1, only while Run < MaxRun;
//   - turn left / right: 90° rotation, Run reset to 1, only once Run ≥ MinRun;
//   - reversal is never produced;
//   - targets outside the grid are pruned, so every successor is in bounds.
//
// The step cost of a successor is the cost of the cell it enters.
package movement
