// Package pareto solves the 0/1 knapsack problem with dynamic programming
// over a Pareto frontier of (cost, value) states instead of a cost-indexed
// table.
//
// 🚀 Idea
//
//	After k items have been processed, the frontier holds every
//	non-dominated (cost, value) combination achievable with those k items
//	within the budget, ordered by ascending cost. Non-dominated means value
//	strictly grows with cost along the list, so the last entry is the
//	answer: the highest value that still fits.
//
// ✨ Folding one item (cost c, value v):
//
//  1. Spawn candidates: the implicit empty solution plus every frontier
//     entry whose cost + c still fits, each extended by the item. Costs are
//     ascending, so the first entry that does not fit ends the scan and the
//     candidates come out cost-ascending too.
//  2. Merge frontier and candidates in ONE left-to-right sweep by ascending
//     cost. Equal costs (within floatcmp.Epsilon) keep the higher value.
//     An entry is admitted only if its value strictly exceeds the last
//     admitted value (the empty solution being the initial sentinel); that
//     single rule drops every dominated entry while sweeping.
//
// Complexity:
//
//   - Per item: O(F) where F is the frontier size.
//   - F is bounded by the number of distinct achievable costs (exponential
//     in the worst case, like a cost-indexed table), but adapts to the
//     actual spread of the instance instead of the full cost range, and
//     works for fractional costs.
//
// Unlike the branch-and-bound solver, items are processed in input order
// and zero-cost items are accepted (no density is needed). Items() of the
// answer therefore lists the chosen items in input order.
//
// Usage:
//
//	s := pareto.New(items, costOf, valueOf, core.WithOnFold(func(i, size int) {
//		log.Printf("item %d: frontier %d", i, size)
//	}))
//	best, err := s.MaximizeValue(budget)
//	front, err := s.Frontier(budget) // the whole trade-off curve
package pareto
