// SPDX-License-Identifier: MIT
// Package core: shared function types and the solver contract.

package core

import "errors"

// Sentinel errors shared by the solver packages.
var (
	// ErrNegativeBudget indicates a cost limit that is negative or NaN.
	ErrNegativeBudget = errors.New("knapsack: cost limit must be a non-negative number")

	// ErrNilExtractor indicates that the cost or value extractor is nil.
	ErrNilExtractor = errors.New("knapsack: cost and value extractors must be non-nil")

	// ErrZeroCost indicates an item whose cost is zero (or negative) where the
	// algorithm ranks items by value/cost density.
	ErrZeroCost = errors.New("knapsack: item cost must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("knapsack: invalid option supplied")

	// ErrTimeLimit indicates that the soft time budget elapsed before the
	// search completed. The best solution found so far accompanies it.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrInterrupted indicates that a checkpoint callback or a context stopped
	// the search. The best solution found so far accompanies it.
	ErrInterrupted = errors.New("knapsack: search interrupted")
)

// Extractor reads one numeric attribute (cost or value) of an item.
// Extractors must be pure: the same item always yields the same number.
type Extractor[I any] func(I) float64

// Solver is implemented by every strategy. Implementations hold only
// immutable configuration, so a Solver may serve concurrent calls.
type Solver[I any] interface {
	// MaximizeValue returns a subset of maximal total value whose total cost
	// does not exceed costLimit.
	MaximizeValue(costLimit float64) (*Solution[I], error)
}

// ValidateInput performs the checks both solvers share before searching.
//
// Complexity: O(1).
func ValidateInput[I any](cost, value Extractor[I], costLimit float64) error {
	if cost == nil || value == nil {
		return ErrNilExtractor
	}
	// NaN fails the comparison as well, hence the negated form.
	if !(costLimit >= 0) {
		return ErrNegativeBudget
	}

	return nil
}
