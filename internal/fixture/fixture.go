// Package fixture provides deterministic knapsack instances, a seeded random
// generator and an exhaustive oracle shared by the solver tests.
package fixture

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// Item is a plain weight/value pair used throughout the tests.
type Item struct {
	Weight float64
	Value  float64
}

// Weight and Value are the extractors for Item.
var (
	Weight core.Extractor[Item] = func(it Item) float64 { return it.Weight }
	Value  core.Extractor[Item] = func(it Item) float64 { return it.Value }
)

// Scenario is a named instance with a known optimum.
type Scenario struct {
	Name      string
	Items     []Item
	Budget    float64
	WantCost  float64
	WantValue float64
	WantIdx   []int // indices into Items of the optimal subset
}

// Scenarios returns fresh copies of the reference instances.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:      "four items budget 7",
			Items:     []Item{{2, 16}, {3, 19}, {4, 23}, {5, 28}},
			Budget:    7,
			WantCost:  7,
			WantValue: 44,
			WantIdx:   []int{0, 3},
		},
		{
			Name:      "three items budget 10",
			Items:     []Item{{5, 45}, {8, 48}, {3, 35}},
			Budget:    10,
			WantCost:  8,
			WantValue: 80,
			WantIdx:   []int{0, 2},
		},
	}
}

// Pick returns items[idx...] in the order of idx.
func Pick(items []Item, idx []int) []Item {
	out := make([]Item, len(idx))
	for i, k := range idx {
		out[i] = items[k]
	}

	return out
}

// Random draws n items with integer weights in [1, maxWeight] and integer
// values in [1, maxValue]. Integer data keeps optima exact.
func Random(rng *rand.Rand, n, maxWeight, maxValue int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Weight: float64(1 + rng.Intn(maxWeight)),
			Value:  float64(1 + rng.Intn(maxValue)),
		}
	}

	return items
}

// RandomReal draws n items with fractional weights in (0.1, maxWeight] and
// fractional values in [0, maxValue).
func RandomReal(rng *rand.Rand, n int, maxWeight, maxValue float64) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Weight: 0.1 + rng.Float64()*(maxWeight-0.1),
			Value:  rng.Float64() * maxValue,
		}
	}

	return items
}

// Correlated draws n items whose value tracks the weight closely, the
// classic hard case for density-based bounds.
func Correlated(rng *rand.Rand, n, maxWeight int) []Item {
	items := make([]Item, n)
	for i := range items {
		w := float64(1 + rng.Intn(maxWeight))
		items[i] = Item{Weight: w, Value: w + float64(maxWeight)/10}
	}

	return items
}

// BruteForce enumerates every subset and returns the best value and cost.
// Ties on value keep the cheaper subset. Intended for len(items) ≤ 20.
//
// Complexity: O(n·2ⁿ).
func BruteForce(items []Item, budget float64) (value, cost float64) {
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		var c, v float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				c += items[i].Weight
				v += items[i].Value
			}
		}
		if c > budget+1e-9 {
			continue
		}
		if v > value || (v == value && c < cost) {
			value, cost = v, c
		}
	}

	return value, cost
}
