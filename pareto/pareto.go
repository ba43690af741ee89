package pareto

import (
	"slices"

	"github.com/katalvlaran/knapsack/core"
)

// Solver is the Pareto-frontier strategy. It holds only the inputs and the
// options; every call builds a fresh frontier.
type Solver[I any] struct {
	items []I
	cost  core.Extractor[I]
	value core.Extractor[I]
	opts  core.Options
}

var _ core.Solver[int] = (*Solver[int])(nil)

// New returns a Solver over items, processed in the given order.
func New[I any](items []I, cost, value core.Extractor[I], opts ...core.Option) *Solver[I] {
	return &Solver[I]{
		items: items,
		cost:  cost,
		value: value,
		opts:  core.NewOptions(opts...),
	}
}

// MaximizeValue returns a subset of maximal total value whose total cost
// does not exceed costLimit (within floatcmp.Epsilon): the last entry of the
// final frontier, or the empty solution when no item fits.
//
// When a checkpoint, the context or the time limit stops the run, the best
// solution over the items folded so far is returned with core.ErrInterrupted
// or core.ErrTimeLimit.
//
// Errors:
//   - core.ErrOptionViolation if an Option was invalid.
//   - core.ErrNilExtractor if cost or value is nil.
//   - core.ErrNegativeBudget if costLimit < 0 or NaN.
func (s *Solver[I]) MaximizeValue(costLimit float64) (*core.Solution[I], error) {
	f, err := s.run(costLimit)
	if f == nil {
		return nil, err
	}

	return f.best(), err
}

// Frontier returns the whole final frontier: every non-dominated
// (cost, value) trade-off within costLimit, by ascending cost and value.
// The empty solution is implicit and not included. Errors as MaximizeValue;
// on a stop the partial frontier is returned.
func (s *Solver[I]) Frontier(costLimit float64) ([]*core.Solution[I], error) {
	f, err := s.run(costLimit)
	if f == nil {
		return nil, err
	}

	return slices.Clone(f.entries), err
}

// run folds every item into a fresh frontier. A nil frontier means the
// inputs were rejected before any work.
func (s *Solver[I]) run(costLimit float64) (*frontier[I], error) {
	if err := s.opts.Err(); err != nil {
		return nil, err
	}
	if err := core.ValidateInput(s.cost, s.value, costLimit); err != nil {
		return nil, err
	}

	var (
		f     = newFrontier[I](costLimit)
		guard = s.opts.NewGuard()
		stats core.Stats
		err   error
	)
	for i, it := range s.items {
		if err = guard.Check(); err != nil {
			break
		}
		stats.Nodes += f.fold(it, s.cost(it), s.value(it))
		stats.Items++
		if len(f.entries) > stats.FrontierPeak {
			stats.FrontierPeak = len(f.entries)
		}
		s.opts.OnFold(i, len(f.entries))
	}
	stats.Elapsed = guard.Elapsed()
	s.opts.Publish(stats)

	return f, err
}
