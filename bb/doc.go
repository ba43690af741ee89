// Package bb solves the 0/1 knapsack problem exactly with a depth-first
// Branch-and-Bound search pruned by a fractional-relaxation upper bound.
//
// Rationale (succinct):
//  1. Every extractor is called once per item; cost, value and density
//     (value/cost) are cached in a dense slice to keep the hot loop free of
//     closure calls.
//  2. Items are ordered by descending density (stable on input order). The
//     search decides items in that order, and the bound walks the remaining
//     suffix in the same order, so the best densities fill the budget first.
//  3. Search: iterative DFS over an explicit stack of frames
//     (index, side, solution). "take" is explored before "skip". A skip
//     branch is entered only if
//     current.value + estimate(suffix, remaining budget) > best.value + eps.
//  4. Bound: the fractional relaxation. Walk the suffix adding whole items;
//     the first item that no longer fits contributes only the fraction of its
//     value that fits. Taking a fraction is something no 0/1 solution can do,
//     so the estimate never under-estimates any feasible completion.
//  5. Backtracking is implicit: partial solutions are immutable core.Solution
//     nodes shared by pointer, so a skip frame simply reuses its parent.
//  6. Stop checks: the optional checkpoint runs once per decision node;
//     context and time limit are polled every 4096 nodes.
//
// Complexity:
//   - Worst case O(2ⁿ) decision nodes; pruning usually removes most of them.
//   - Per node: O(1) for take, O(n) for the bound of a skip.
//   - Memory: O(n) stack frames + O(n) items + the live Solution nodes.
//
// Usage:
//
//	s := bb.New(items, costOf, valueOf)
//	best, err := s.MaximizeValue(7)
//	if err != nil {
//		// core.ErrNegativeBudget, core.ErrZeroCost, ...
//	}
//	fmt.Println(best.TotalCost(), best.TotalValue(), best.Items())
//
// Items() reports the selected items in decision order, i.e. by descending
// density, not in input order.
package bb
