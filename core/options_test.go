package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
)

// TestDefaultOptions verifies defaults are usable without any Option.
func TestDefaultOptions(t *testing.T) {
	o := core.DefaultOptions()
	require.NotNil(t, o.Ctx)
	assert.Zero(t, o.TimeLimit)
	assert.True(t, o.Checkpoint())
	assert.NotPanics(t, func() { o.OnImprove(1, 2) })
	assert.NotPanics(t, func() { o.OnFold(0, 1) })
	assert.Nil(t, o.Stats)
	assert.NoError(t, o.Err())
}

// TestOptions_NilIgnored checks nil arguments keep the defaults.
func TestOptions_NilIgnored(t *testing.T) {
	//nolint:staticcheck // nil context on purpose
	o := core.NewOptions(
		core.WithContext(nil),
		core.WithCheckpoint(nil),
		core.WithOnImprove(nil),
		core.WithOnFold(nil),
		core.WithStats(nil),
		nil,
	)
	assert.NotNil(t, o.Ctx)
	assert.True(t, o.Checkpoint())
	assert.NoError(t, o.Err())
}

// TestWithTimeLimit_Negative records a violation rather than panicking.
func TestWithTimeLimit_Negative(t *testing.T) {
	o := core.NewOptions(core.WithTimeLimit(-time.Second), core.WithTimeLimit(-time.Minute))
	assert.ErrorIs(t, o.Err(), core.ErrOptionViolation)
	assert.Contains(t, o.Err().Error(), "-1s", "first violation is kept")
}

// TestGuard_Checkpoint stops on the first false answer.
func TestGuard_Checkpoint(t *testing.T) {
	calls := 0
	o := core.NewOptions(core.WithCheckpoint(func() bool {
		calls++

		return calls < 3
	}))
	g := o.NewGuard()
	assert.NoError(t, g.Step())
	assert.NoError(t, g.Step())
	assert.ErrorIs(t, g.Step(), core.ErrInterrupted)
}

// TestGuard_ContextCancelled surfaces the context error wrapped in ErrInterrupted.
func TestGuard_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.NewOptions(core.WithContext(ctx)).NewGuard()

	err := g.Check()
	assert.ErrorIs(t, err, core.ErrInterrupted)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestGuard_SparsePolling shows Step only polls the context on its cadence.
func TestGuard_SparsePolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.NewOptions(core.WithContext(ctx)).NewGuard()

	var err error
	steps := 0
	for err == nil {
		err = g.Step()
		steps++
	}
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4096, steps)
}

// TestGuard_TimeLimit reports ErrTimeLimit after the deadline.
func TestGuard_TimeLimit(t *testing.T) {
	g := core.NewOptions(core.WithTimeLimit(time.Millisecond)).NewGuard()
	time.Sleep(5 * time.Millisecond)
	assert.ErrorIs(t, g.Check(), core.ErrTimeLimit)
	assert.GreaterOrEqual(t, g.Elapsed(), time.Millisecond)
}

// TestPublish writes into the sink only when one is configured.
func TestPublish(t *testing.T) {
	var dst core.Stats
	core.NewOptions(core.WithStats(&dst)).Publish(core.Stats{Nodes: 7, MaxStack: 3})
	assert.Equal(t, 7, dst.Nodes)
	assert.Equal(t, 3, dst.MaxStack)

	assert.NotPanics(t, func() { core.DefaultOptions().Publish(core.Stats{Nodes: 1}) })
}
