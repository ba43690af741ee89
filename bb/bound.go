package bb

import "github.com/katalvlaran/knapsack/floatcmp"

// estimateValue is the fractional-relaxation bound of ordered[index:] under
// the given remaining budget.
//
// Each walked item is charged in full (value added, cost subtracted). As soon
// as the remaining budget is used up, the signed remainder scales back the
// last item: remaining is then ≤ 0 and remaining·value/cost removes exactly
// the overshooting fraction of that item.
//
// Because the suffix is density-descending, no 0/1 selection of the suffix
// within the same budget can exceed this value.
//
// Complexity: O(n − index).
func (e *engine[I]) estimateValue(index int, remaining float64) float64 {
	var total float64
	for i := index; i < len(e.ordered); i++ {
		it := &e.ordered[i]
		remaining -= it.cost
		total += it.value
		if floatcmp.LessOrEqualZero(remaining) {
			return total + remaining*it.value/it.cost
		}
	}

	return total
}
