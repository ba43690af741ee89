// SPDX-License-Identifier: MIT
// Package core: functional options shared by the solver packages.
//
// Contract:
//   - Option constructors never panic; a meaningless value (e.g. a negative
//     time limit) is recorded and surfaced as ErrOptionViolation when the
//     solver is invoked.
//   - nil callbacks and nil contexts are ignored and keep the defaults.
//   - Options are applied in order; the last one wins.

package core

import (
	"context"
	"fmt"
	"time"
)

// Option configures a solver via functional arguments.
type Option func(*Options)

// Options holds the run policy and observation hooks of a solver.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// TimeLimit is a soft wall-clock budget per MaximizeValue call.
	// Zero means unlimited.
	TimeLimit time.Duration

	// Checkpoint is inspected once per decision node (branch-and-bound) or
	// once per item (pareto). Returning false stops the search.
	Checkpoint func() bool

	// OnImprove is called whenever the branch-and-bound incumbent improves.
	OnImprove func(cost, value float64)

	// OnFold is called after the pareto solver folded the item at index into
	// its frontier, with the resulting frontier length.
	OnFold func(index, frontierLen int)

	// Stats, when non-nil, receives the run counters as the call returns.
	Stats *Stats

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no time limit
//   - no-op hooks and an always-continue checkpoint
//   - no stats sink.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		TimeLimit:  0,
		Checkpoint: func() bool { return true },
		OnImprove:  func(float64, float64) {},
		OnFold:     func(int, int) {},
		Stats:      nil,
		err:        nil,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Err returns the first violation recorded while applying options.
func (o Options) Err() error { return o.err }

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit sets a soft time budget.
//
//	d > 0:  stop with ErrTimeLimit once d has elapsed
//	d == 0: explicit "no limit"
//	d < 0:  invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.record(fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d))

			return
		}
		o.TimeLimit = d
	}
}

// WithCheckpoint registers a stop predicate; returning false ends the
// search with ErrInterrupted.
func WithCheckpoint(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Checkpoint = fn
		}
	}
}

// WithOnImprove registers a callback for incumbent improvements.
func WithOnImprove(fn func(cost, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithOnFold registers a callback run after each item is folded into the
// pareto frontier.
func WithOnFold(fn func(index, frontierLen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFold = fn
		}
	}
}

// WithStats asks the solver to write its run counters into dst.
func WithStats(dst *Stats) Option {
	return func(o *Options) {
		if dst != nil {
			o.Stats = dst
		}
	}
}

// record keeps the first violation only.
func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}
