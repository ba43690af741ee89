// Package core defines the data model shared by every knapsack solver:
// the persistent Solution chain, the Extractor function type, the Solver
// contract, functional Options with their cooperative stop Guard, run Stats
// and the sentinel errors.
//
// Solution chain:
//
//	root ── a ── b ── d      (leaf 1: items a, b, d)
//	          └── c          (leaf 2: items a, c)
//
// Each node stores a pointer to its parent, the appended item and the running
// totals. Nodes are immutable once created, so any number of search branches
// may share a prefix without copying it, and backtracking needs no undo step:
// a search simply keeps using the parent pointer it already holds.
//
// Invariants:
//
//   - node.TotalCost()  == parent.TotalCost()  + cost(item)
//   - node.TotalValue() == parent.TotalValue() + value(item)
//   - ExtendWithin never creates a node whose cost exceeds the limit by more
//     than floatcmp.Epsilon; the budget is enforced at construction.
//
// Options (shared by bb and pareto):
//
//	WithContext(ctx)          – cancellation, checked on a sparse cadence
//	WithTimeLimit(d)          – soft deadline, checked on the same cadence
//	WithCheckpoint(fn)        – caller-owned stop predicate, every decision
//	WithOnImprove(fn)         – incumbent improvements (branch-and-bound)
//	WithOnFold(fn)            – frontier size after each item (pareto)
//	WithStats(dst)            – receive run counters when the call returns
//
// Errors:
//
//	ErrNegativeBudget   – cost limit < 0 or NaN.
//	ErrNilExtractor     – cost or value extractor is nil.
//	ErrZeroCost         – zero-cost item where a density is required.
//	ErrOptionViolation  – an Option received a meaningless value.
//	ErrTimeLimit        – the soft deadline elapsed; the incumbent is returned.
//	ErrInterrupted      – checkpoint or context stopped the run; the incumbent is returned.
package core
