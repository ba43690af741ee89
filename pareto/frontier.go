package pareto

import (
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/floatcmp"
)

// frontier is the cost-ascending, value-ascending list of non-dominated
// solutions of one run. It double-buffers its backing arrays so a fold
// allocates only the new Solution nodes.
type frontier[I any] struct {
	root    *core.Solution[I]
	limit   float64
	entries []*core.Solution[I]
	scratch []*core.Solution[I] // next entries are merged here
	cands   []*core.Solution[I]
}

func newFrontier[I any](limit float64) *frontier[I] {
	return &frontier[I]{root: core.Empty[I](), limit: limit}
}

// best is the last entry, or the root when nothing fits.
func (f *frontier[I]) best() *core.Solution[I] {
	if len(f.entries) == 0 {
		return f.root
	}

	return f.entries[len(f.entries)-1]
}

// fold merges the extensions of every entry by item into the frontier and
// returns how many candidates were spawned.
//
// Complexity: O(F) time; the buffers are reused between folds.
func (f *frontier[I]) fold(item I, cost, value float64) int {
	cands := f.cands[:0]
	if s, ok := f.root.ExtendWithin(item, cost, value, f.limit); ok {
		cands = append(cands, s)
		for _, e := range f.entries {
			if s, ok = e.ExtendWithin(item, cost, value, f.limit); !ok {
				break // entries are cost-ascending: nothing later fits either
			}
			cands = append(cands, s)
		}
	}
	f.cands = cands
	if len(cands) == 0 {
		return 0
	}

	var (
		entries = f.entries
		merged  = f.scratch[:0]
		i, j    int
		s       *core.Solution[I]
	)
	for i < len(entries) || j < len(cands) {
		switch {
		case j == len(cands):
			s = entries[i]
			i++
		case i == len(entries):
			s = cands[j]
			j++
		case floatcmp.Less(cands[j].TotalCost(), entries[i].TotalCost()):
			s = cands[j]
			j++
		case floatcmp.Less(entries[i].TotalCost(), cands[j].TotalCost()):
			s = entries[i]
			i++
		default:
			// Same cost: the higher value wins, the existing entry on a tie.
			s = entries[i]
			if floatcmp.Greater(cands[j].TotalValue(), s.TotalValue()) {
				s = cands[j]
			}
			i++
			j++
		}
		merged = f.admit(merged, s)
	}

	clear(entries[:cap(entries)]) // drop references held by the spare buffer
	f.scratch = entries[:0]
	f.entries = merged
	clear(f.cands)

	return len(cands)
}

// admit appends s to out unless it is dominated by the last admitted entry
// (or by the empty solution). An admitted entry with the same cost as the
// last one replaces it.
func (f *frontier[I]) admit(out []*core.Solution[I], s *core.Solution[I]) []*core.Solution[I] {
	last := f.root
	if len(out) > 0 {
		last = out[len(out)-1]
	}
	if !floatcmp.Greater(s.TotalValue(), last.TotalValue()) {
		return out
	}
	if len(out) > 0 && !floatcmp.Less(last.TotalCost(), s.TotalCost()) {
		out[len(out)-1] = s

		return out
	}

	return append(out, s)
}
