// SPDX-License-Identifier: MIT
// Package core: cooperative stop checks and run counters.

package core

import (
	"fmt"
	"time"
)

// pollMask sets the sparse cadence of context and deadline checks: they run
// once every pollMask+1 steps, keeping the hot loop free of clock reads.
const pollMask = 4095

// Guard evaluates the stop conditions of one MaximizeValue call.
// A Guard is single-use and not safe for concurrent use.
type Guard struct {
	opts        Options
	start       time.Time
	deadline    time.Time
	useDeadline bool
	steps       int
}

// NewGuard starts the clock for one run governed by o.
func (o Options) NewGuard() *Guard {
	g := &Guard{opts: o, start: time.Now()}
	if o.TimeLimit > 0 {
		g.useDeadline = true
		g.deadline = g.start.Add(o.TimeLimit)
	}

	return g
}

// Step is called once per decision node. The checkpoint runs every time;
// context and deadline are polled on the sparse cadence.
func (g *Guard) Step() error {
	g.steps++
	if !g.opts.Checkpoint() {
		return ErrInterrupted
	}
	if g.steps&pollMask != 0 {
		return nil
	}

	return g.poll()
}

// Check runs every stop condition immediately. It suits coarse-grained
// loops where one iteration is expensive.
func (g *Guard) Check() error {
	g.steps++
	if !g.opts.Checkpoint() {
		return ErrInterrupted
	}

	return g.poll()
}

// Elapsed is the wall time since NewGuard.
func (g *Guard) Elapsed() time.Duration { return time.Since(g.start) }

func (g *Guard) poll() error {
	if err := g.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if g.useDeadline && time.Now().After(g.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// Stats are the counters of one MaximizeValue call.
type Stats struct {
	// Nodes is the number of decision nodes popped (branch-and-bound) or
	// candidate solutions spawned (pareto).
	Nodes int

	// MaxStack is the peak depth of the explicit search stack (branch-and-bound).
	MaxStack int

	// Improvements counts incumbent replacements (branch-and-bound).
	Improvements int

	// Items is the number of items folded into the frontier (pareto).
	Items int

	// FrontierPeak is the largest frontier observed (pareto).
	FrontierPeak int

	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}

// Publish copies s into the sink configured by WithStats, if any.
func (o Options) Publish(s Stats) {
	if o.Stats != nil {
		*o.Stats = s
	}
}
