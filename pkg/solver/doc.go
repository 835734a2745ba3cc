// Package solver implements the three clique-search strategies: an exact
// branch-and-bound solver and two heuristics (greedy coloring and tabu
// search), all behind one [Solver] interface so harnesses can iterate over
// them polymorphically.
//
// # Contract
//
// Every solver takes a read-only [graph.Graph] and a target clique size:
//
//	result, err := s.Solve(ctx, g, target)
//
// target > 0 asks for a clique of exactly that size (search stops at the
// first hit); target == 0 asks for the maximum clique. A missing clique is
// not an error: the solver returns Found=false and a nil err. The only
// error a solve can return is ctx.Err() - cancellation is checked at every
// branch-and-bound node and every tabu iteration, and a cancelled solve
// still carries its incumbent in the result.
//
// # Validity invariant
//
// A result with Found=true has always been re-checked with [Validate]
// against the graph. Heuristics can assemble incompatible candidates
// internally; the re-validation guarantees no invalid clique ever escapes
// a solver.
//
// # Determinism
//
//   - [Exact] and [Greedy] are fully deterministic for a fixed graph.
//   - [Tabu] owns a private seeded generator; pin TabuOptions.Seed for
//     reproducible runs. There is no process-global random state.
//
// Solvers are single-threaded and keep no shared state; distinct instances
// may run concurrently on the same graph.
package solver
