// Package routing is a small single-vehicle routing solver.
//
// Its surface follows the usual operations-research layout:
//
//   - IndexManager maps the solver's flat index space to application node ids
//     through lookup tables built once at construction.
//   - Model holds registered transit callbacks and the arc cost evaluator.
//   - SolveWithParameters runs a time-bounded search and returns an Assignment,
//     or an error wrapping ErrNoSolution.
//   - Assignment exposes the successor of every index and the objective value.
//
// The search builds a first solution (path cheapest arc by default) and improves
// it with 2-opt and or-opt moves until no improving move is left, the time
// limit expires or the context is cancelled. Costs are integral.
package routing
