// Package knapsack solves the 0/1 knapsack maximization problem over any
// item type: given an ordered collection of items, a cost and a value
// extractor and a non-negative budget, it returns a subset of maximal total
// value whose total cost stays within the budget.
//
// 🚀 What is in the box?
//
//	Two exact strategies behind one interface (core.Solver):
//		• bb/    : depth-first branch-and-bound with a fractional bound
//		• pareto/: dynamic programming over a Pareto frontier of
//		          (cost, value) states
//
//	Shared building blocks:
//		• core/    : the persistent Solution chain, options, stop guard, errors
//		• floatcmp/: epsilon-tolerant float comparison (Epsilon = 1e-10)
//		• loader/  : problem files (plain text or YAML)
//		• cmd/knapsack: a command-line driver
//
// ✨ Guarantees:
//
//   - Feasible: TotalCost never exceeds the budget by more than Epsilon.
//   - Optimal: both strategies agree on TotalValue within Epsilon.
//   - Additive: TotalCost and TotalValue equal the sums over Items().
//   - Stoppable: a context, a soft time limit or a checkpoint callback
//     ends a run early with the best solution found so far.
//
// This package only picks a strategy by name:
//
//	best, err := knapsack.MaximizeValue(knapsack.ParetoFrontier,
//		items, costOf, valueOf, budget,
//		core.WithTimeLimit(2*time.Second))
//
// Use bb.New or pareto.New directly when a strategy-specific method is
// needed (e.g. pareto's Frontier).
package knapsack
