// SPDX-License-Identifier: MIT
// Package core: the persistent, structurally shared Solution chain.

package core

import "github.com/katalvlaran/knapsack/floatcmp"

// Solution is one node of an append-only history of "take" decisions.
//
// The zero value is not useful; start from Empty and grow with Extend or
// ExtendWithin. A *Solution is immutable and safe to share between search
// branches and goroutines.
type Solution[I any] struct {
	previous   *Solution[I]
	item       I
	totalCost  float64
	totalValue float64
	depth      int // number of items on the chain
}

// Empty returns a root solution: no parent, no item, zero totals.
func Empty[I any]() *Solution[I] {
	return &Solution[I]{}
}

// Extend returns a child of s that additionally holds item.
// It never checks a budget; see ExtendWithin.
//
// Complexity: O(1) time, one allocation.
func (s *Solution[I]) Extend(item I, cost, value float64) *Solution[I] {
	return &Solution[I]{
		previous:   s,
		item:       item,
		totalCost:  s.totalCost + cost,
		totalValue: s.totalValue + value,
		depth:      s.depth + 1,
	}
}

// ExtendWithin is Extend guarded by the budget: it returns (nil, false) when
// the extended cost would exceed costLimit by more than floatcmp.Epsilon.
//
// Complexity: O(1) time, at most one allocation.
func (s *Solution[I]) ExtendWithin(item I, cost, value, costLimit float64) (*Solution[I], bool) {
	if floatcmp.Greater(s.totalCost+cost, costLimit) {
		return nil, false
	}

	return s.Extend(item, cost, value), true
}

// TotalCost is the summed cost of all items on the chain.
func (s *Solution[I]) TotalCost() float64 { return s.totalCost }

// TotalValue is the summed value of all items on the chain.
func (s *Solution[I]) TotalValue() float64 { return s.totalValue }

// Len is the number of items on the chain.
func (s *Solution[I]) Len() int { return s.depth }

// IsEmpty reports whether s is a root (holds no item).
func (s *Solution[I]) IsEmpty() bool { return s.previous == nil }

// Previous returns the parent node, or nil for a root.
func (s *Solution[I]) Previous() *Solution[I] { return s.previous }

// Item returns the item appended by this node; ok is false for a root.
func (s *Solution[I]) Item() (item I, ok bool) {
	if s.previous == nil {
		return item, false
	}

	return s.item, true
}

// Items materializes the chain in selection order (root to leaf).
// The returned slice is fresh; callers may modify it.
//
// Complexity: O(Len) time and space, iterative (no recursion on depth).
func (s *Solution[I]) Items() []I {
	items := make([]I, s.depth)
	i := s.depth - 1
	for n := s; n.previous != nil; n = n.previous {
		items[i] = n.item
		i--
	}

	return items
}
