// SPDX-License-Identifier: MIT
// Package knapsack: strategy dispatcher.

package knapsack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/bb"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/pareto"
)

// ErrUnsupportedAlgorithm is returned for an Algorithm value or name that
// names no strategy.
var ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

// Algorithm selects a solving strategy.
//
//   - BranchAndBound: depth-first search over take/skip decisions pruned by
//     the fractional bound. Rejects zero-cost items. Fast on uncorrelated
//     data, exponential on strongly correlated data.
//   - ParetoFrontier: frontier DP in input order. Memory grows with the
//     number of distinct non-dominated costs.
type Algorithm int

const (
	// BranchAndBound is the default strategy.
	BranchAndBound Algorithm = iota

	// ParetoFrontier is the frontier DP strategy.
	ParetoFrontier
)

var algorithmNames = map[Algorithm]string{
	BranchAndBound: "bb",
	ParetoFrontier: "pareto",
}

// String returns the short name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive;
// "branch-and-bound" and "frontier" are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bb", "branch-and-bound":
		return BranchAndBound, nil
	case "pareto", "frontier":
		return ParetoFrontier, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// New builds the solver for algo. The solver validates its inputs lazily,
// on MaximizeValue, exactly like bb.New and pareto.New.
func New[I any](algo Algorithm, items []I, cost, value core.Extractor[I], opts ...core.Option) (core.Solver[I], error) {
	switch algo {
	case BranchAndBound:
		return bb.New(items, cost, value, opts...), nil
	case ParetoFrontier:
		return pareto.New(items, cost, value, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}

// MaximizeValue is New followed by MaximizeValue(costLimit).
//
// Errors: ErrUnsupportedAlgorithm, plus those of the selected solver.
func MaximizeValue[I any](algo Algorithm, items []I, cost, value core.Extractor[I], costLimit float64, opts ...core.Option) (*core.Solution[I], error) {
	s, err := New(algo, items, cost, value, opts...)
	if err != nil {
		return nil, err
	}

	return s.MaximizeValue(costLimit)
}
