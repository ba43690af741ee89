package bb

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/floatcmp"
)

// engine holds the search state of one MaximizeValue call.
// We use a dedicated engine struct (instead of closures) to keep the hot-path
// state explicit and the helpers testable.
type engine[I any] struct {
	ordered   []weightedItem[I] // descending density
	limit     float64
	guard     *core.Guard
	onImprove func(cost, value float64)

	stack []frame[I]
	best  *core.Solution[I] // incumbent; nil until the first offer
	stats core.Stats
}

// MaximizeValue returns a subset of maximal total value whose total cost
// does not exceed costLimit (within floatcmp.Epsilon).
//
// An empty item list yields the empty solution. When a checkpoint, the
// context or the time limit stops the search, the best solution found so far
// (never nil) is returned together with core.ErrInterrupted or
// core.ErrTimeLimit.
//
// Errors:
//   - core.ErrOptionViolation if an Option was invalid.
//   - core.ErrNilExtractor if cost or value is nil.
//   - core.ErrNegativeBudget if costLimit < 0 or NaN.
//   - core.ErrZeroCost if some item has a non-positive cost.
func (s *Solver[I]) MaximizeValue(costLimit float64) (*core.Solution[I], error) {
	if err := s.opts.Err(); err != nil {
		return nil, err
	}
	if err := core.ValidateInput(s.cost, s.value, costLimit); err != nil {
		return nil, err
	}
	ordered, err := s.orderByDensity()
	if err != nil {
		return nil, err
	}

	e := engine[I]{
		ordered:   ordered,
		limit:     costLimit,
		guard:     s.opts.NewGuard(),
		onImprove: s.opts.OnImprove,
		stack:     make([]frame[I], 0, 2*len(ordered)+1),
	}
	best, err := e.run()
	e.stats.Elapsed = e.guard.Elapsed()
	s.opts.Publish(e.stats)

	return best, err
}

// orderByDensity caches cost/value/density and sorts by descending density.
// The sort uses the exact order: the admissibility of estimateValue relies on
// the suffix being truly density-descending.
//
// Complexity: O(n log n).
func (s *Solver[I]) orderByDensity() ([]weightedItem[I], error) {
	ordered := make([]weightedItem[I], len(s.items))
	var c, v float64
	for i, it := range s.items {
		c, v = s.cost(it), s.value(it)
		if !floatcmp.GreaterZero(c) {
			return nil, fmt.Errorf("%w: item %d has cost %g", core.ErrZeroCost, i, c)
		}
		ordered[i] = weightedItem[I]{item: it, cost: c, value: v, density: v / c}
	}
	slices.SortStableFunc(ordered, func(a, b weightedItem[I]) int {
		return cmp.Compare(b.density, a.density)
	})

	return ordered, nil
}

// run drives the explicit stack until it is exhausted or a stop fires.
func (e *engine[I]) run() (*core.Solution[I], error) {
	root := core.Empty[I]()
	if len(e.ordered) == 0 {
		return root, nil
	}

	e.push(0, sideTake, root)
	var f frame[I]
	for len(e.stack) > 0 {
		if err := e.guard.Step(); err != nil {
			return e.incumbent(root), err
		}
		f = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.stats.Nodes++

		switch f.side {
		case sideTake:
			e.exploreTake(f)
		case sideSkip:
			e.exploreSkip(f)
		}
		if len(e.stack) > e.stats.MaxStack {
			e.stats.MaxStack = len(e.stack)
		}
	}

	return e.incumbent(root), nil
}

// exploreTake tries to include ordered[f.index] on top of f.sol.
//
//   - Does not fit: f.sol is a complete candidate (nothing is reconsidered
//     in this branch), then only the skip branch remains.
//   - Fits at the last index: the child is a complete candidate; skipping
//     the last item cannot do better than taking it.
//   - Fits earlier: queue the skip sibling, then descend into the child.
//     The child is pushed last so it is explored first.
func (e *engine[I]) exploreTake(f frame[I]) {
	if f.index >= len(e.ordered) {
		e.offer(f.sol)

		return
	}
	it := &e.ordered[f.index]
	next, ok := f.sol.ExtendWithin(it.item, it.cost, it.value, e.limit)
	if !ok {
		e.offer(f.sol)
		e.push(f.index, sideSkip, f.sol)

		return
	}
	if f.index+1 == len(e.ordered) {
		e.offer(next)

		return
	}
	e.push(f.index, sideSkip, f.sol)
	e.push(f.index+1, sideTake, next)
}

// exploreSkip excludes ordered[f.index] and descends only if the optimistic
// bound of the remaining suffix can still beat the incumbent.
func (e *engine[I]) exploreSkip(f frame[I]) {
	next := f.index + 1
	if next >= len(e.ordered) {
		e.offer(f.sol)

		return
	}
	bound := f.sol.TotalValue() + e.estimateValue(next, e.limit-f.sol.TotalCost())
	if e.best == nil || floatcmp.Greater(bound, e.best.TotalValue()) {
		e.push(next, sideTake, f.sol)
	}
}

// offer replaces the incumbent only when s is strictly better.
func (e *engine[I]) offer(s *core.Solution[I]) {
	if e.best != nil && !floatcmp.Greater(s.TotalValue(), e.best.TotalValue()) {
		return
	}
	e.best = s
	e.stats.Improvements++
	e.onImprove(s.TotalCost(), s.TotalValue())
}

func (e *engine[I]) push(index int, sd side, sol *core.Solution[I]) {
	e.stack = append(e.stack, frame[I]{index: index, side: sd, sol: sol})
}

// incumbent returns the best solution so far, falling back to root.
func (e *engine[I]) incumbent(root *core.Solution[I]) *core.Solution[I] {
	if e.best == nil {
		return root
	}

	return e.best
}
