// Package pareto_test validates the Pareto-frontier solver.
// Focus:
//  1. Reference scenarios, degenerate inputs and zero-cost items.
//  2. Strict sentinels on malformed inputs.
//  3. Optimality against the exhaustive oracle on seeded random instances.
//  4. The exported frontier is non-dominated and ends at the optimum.
//  5. Cooperative stopping, hooks and stats.
package pareto_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/floatcmp"
	"github.com/katalvlaran/knapsack/internal/fixture"
	"github.com/katalvlaran/knapsack/pareto"
)

const tol = 1e-9

func TestPareto_Scenarios(t *testing.T) {
	for _, sc := range fixture.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			got, err := pareto.New(sc.Items, fixture.Weight, fixture.Value).MaximizeValue(sc.Budget)
			require.NoError(t, err)
			assert.InDelta(t, sc.WantCost, got.TotalCost(), tol)
			assert.InDelta(t, sc.WantValue, got.TotalValue(), tol)
			// Items come back in input order.
			assert.Equal(t, fixture.Pick(sc.Items, sc.WantIdx), got.Items())
		})
	}
}

func TestPareto_EmptyItems(t *testing.T) {
	got, err := pareto.New([]fixture.Item{}, fixture.Weight, fixture.Value).MaximizeValue(5)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Zero(t, got.TotalCost())
	assert.Zero(t, got.TotalValue())
	assert.Empty(t, got.Items())
}

func TestPareto_NothingFits(t *testing.T) {
	items := []fixture.Item{{Weight: 4, Value: 10}, {Weight: 6, Value: 12}}
	got, err := pareto.New(items, fixture.Weight, fixture.Value).MaximizeValue(3)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	front, err := pareto.New(items, fixture.Weight, fixture.Value).Frontier(3)
	require.NoError(t, err)
	assert.Empty(t, front)
}

// TestPareto_ZeroCostAndZeroValue shows zero-cost items are always taken and
// zero-value items never are (the empty solution dominates them).
func TestPareto_ZeroCostAndZeroValue(t *testing.T) {
	items := []fixture.Item{{Weight: 0, Value: 5}, {Weight: 3, Value: 0}, {Weight: 2, Value: 7}}
	got, err := pareto.New(items, fixture.Weight, fixture.Value).MaximizeValue(2)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.TotalValue(), tol)
	assert.Equal(t, []fixture.Item{{Weight: 0, Value: 5}, {Weight: 2, Value: 7}}, got.Items())

	got, err = pareto.New([]fixture.Item{{Weight: 1, Value: 0}, {Weight: 2, Value: 0}}, fixture.Weight, fixture.Value).MaximizeValue(5)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestPareto_Errors_StrictSentinels(t *testing.T) {
	items := []fixture.Item{{Weight: 1, Value: 1}}

	_, err := pareto.New(items, fixture.Weight, fixture.Value).MaximizeValue(-0.5)
	assert.ErrorIs(t, err, core.ErrNegativeBudget)

	_, err = pareto.New(items, fixture.Weight, fixture.Value).MaximizeValue(math.NaN())
	assert.ErrorIs(t, err, core.ErrNegativeBudget)

	_, err = pareto.New(items, fixture.Weight, nil).MaximizeValue(1)
	assert.ErrorIs(t, err, core.ErrNilExtractor)

	_, err = pareto.New(items, fixture.Weight, fixture.Value, core.WithTimeLimit(-5)).Frontier(1)
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

func TestPareto_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 150; round++ {
		n := 1 + rng.Intn(14)
		var items []fixture.Item
		switch round % 3 {
		case 0:
			items = fixture.Random(rng, n, 20, 50)
		case 1:
			items = fixture.RandomReal(rng, n, 10, 30)
		default:
			items = fixture.Correlated(rng, n, 30)
		}
		budget := float64(rng.Intn(60))
		want, _ := fixture.BruteForce(items, budget)

		got, err := pareto.New(items, fixture.Weight, fixture.Value).MaximizeValue(budget)
		require.NoError(t, err)
		assert.True(t, floatcmp.LessOrEqual(got.TotalCost(), budget))
		require.InDelta(t, want, got.TotalValue(), 1e-6, "round %d: items=%v budget=%g", round, items, budget)
	}
}

// TestPareto_FrontierShape checks the exported frontier is strictly
// ascending in cost and value, feasible, additive, and ends at the optimum.
func TestPareto_FrontierShape(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	items := fixture.Random(rng, 12, 15, 40)
	const budget = 45.0

	front, err := pareto.New(items, fixture.Weight, fixture.Value).Frontier(budget)
	require.NoError(t, err)
	require.NotEmpty(t, front)

	for k, s := range front {
		assert.True(t, floatcmp.LessOrEqual(s.TotalCost(), budget))
		var c, v float64
		for _, it := range s.Items() {
			c += it.Weight
			v += it.Value
		}
		assert.InDelta(t, c, s.TotalCost(), tol)
		assert.InDelta(t, v, s.TotalValue(), tol)
		if k > 0 {
			assert.True(t, floatcmp.Less(front[k-1].TotalCost(), s.TotalCost()), "cost ascending at %d", k)
			assert.True(t, floatcmp.Less(front[k-1].TotalValue(), s.TotalValue()), "value ascending at %d", k)
		}
	}

	want, _ := fixture.BruteForce(items, budget)
	assert.InDelta(t, want, front[len(front)-1].TotalValue(), tol)

	// Every frontier point is itself optimal for its own cost as a budget.
	for _, s := range front {
		opt, _ := fixture.BruteForce(items, s.TotalCost())
		assert.InDelta(t, opt, s.TotalValue(), tol)
	}
}

// TestPareto_HooksAndStats observes one OnFold per item.
func TestPareto_HooksAndStats(t *testing.T) {
	items := fixture.Random(rand.New(rand.NewSource(8)), 20, 30, 30)
	var (
		indices []int
		sizes   []int
		stats   core.Stats
	)
	s := pareto.New(items, fixture.Weight, fixture.Value,
		core.WithOnFold(func(i, size int) {
			indices = append(indices, i)
			sizes = append(sizes, size)
		}),
		core.WithStats(&stats),
	)
	_, err := s.MaximizeValue(100)
	require.NoError(t, err)

	require.Len(t, indices, len(items))
	for i := range indices {
		assert.Equal(t, i, indices[i])
	}
	assert.Equal(t, len(items), stats.Items)
	assert.Positive(t, stats.Nodes)
	assert.Equal(t, slicesMax(sizes), stats.FrontierPeak)
}

func slicesMax(xs []int) int {
	m := 0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}

	return m
}

// TestPareto_Checkpoint stops after three items; the answer is optimal for
// that prefix.
func TestPareto_Checkpoint(t *testing.T) {
	sc := fixture.Scenarios()[0]
	calls := 0
	stop := func() bool {
		calls++

		return calls <= 3
	}

	got, err := pareto.New(sc.Items, fixture.Weight, fixture.Value, core.WithCheckpoint(stop)).MaximizeValue(sc.Budget)
	assert.ErrorIs(t, err, core.ErrInterrupted)
	require.NotNil(t, got)
	want, _ := fixture.BruteForce(sc.Items[:3], sc.Budget)
	assert.InDelta(t, want, got.TotalValue(), tol)
}

func TestPareto_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := fixture.Scenarios()[1]

	got, err := pareto.New(sc.Items, fixture.Weight, fixture.Value, core.WithContext(ctx)).MaximizeValue(sc.Budget)
	assert.ErrorIs(t, err, core.ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, got)
	assert.True(t, got.IsEmpty(), "stopped before the first item")
}
