package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/loader"
)

// foldLogEvery is the cadence of frontier progress records.
const foldLogEvery = 10

type solveFlags struct {
	algo      string
	budget    float64
	timeLimit time.Duration
	maxItems  int
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more problem files",
		Long: `Solves every problem file and prints one tab-separated line per file:
name, algorithm, total weight, total value, number of chosen items, status.

A run stopped by --time-limit reports its best solution so far with status
"timeout" and the remaining files are still solved.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := knapsack.ParseAlgorithm(f.algo)
			if err != nil {
				return err
			}
			var budget *float64
			if cmd.Flags().Changed("budget") {
				budget = &f.budget
			}
			for _, path := range args {
				if err := a.solveFile(cmd.Context(), cmd.OutOrStdout(), path, algo, budget, f); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&f.algo, "algo", knapsack.BranchAndBound.String(), "Algorithm: bb or pareto")
	cmd.Flags().Float64Var(&f.budget, "budget", 0, "Override the capacity of every file")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", 0, "Soft time limit per file (0 = none)")
	cmd.Flags().IntVar(&f.maxItems, "max-items", 0, "Skip problems with more items than this (0 = no limit)")

	return cmd
}

func (a *app) solveFile(ctx context.Context, out io.Writer, path string, algo knapsack.Algorithm, budget *float64, f *solveFlags) error {
	p, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	capacity := p.Capacity
	if budget != nil {
		capacity = *budget
	}
	log := a.logger.With("problem", p.Name, "algo", algo.String())
	if f.maxItems > 0 && len(p.Items) > f.maxItems {
		log.Info("skipping problem", "items", len(p.Items), "max_items", f.maxItems)
		fmt.Fprintf(out, "%s\t%s\t-\t-\t-\tskipped\n", p.Name, algo)

		return nil
	}
	log.Info("solving", "capacity", capacity, "items", len(p.Items))

	sol, stats, err := a.run(ctx, log, algo, p, capacity, f.timeLimit)
	status := "optimal"
	switch {
	case errors.Is(err, core.ErrTimeLimit):
		log.Warn("time limit reached, reporting best solution so far", "time_limit", f.timeLimit)
		status = "timeout"
	case err != nil:
		return fmt.Errorf("%s: %w", p.Name, err)
	}

	log.Info("solution",
		"weight", sol.TotalCost(),
		"value", sol.TotalValue(),
		"items", sol.Len(),
		"nodes", stats.Nodes,
		"max_stack", stats.MaxStack,
		"frontier_peak", stats.FrontierPeak,
		"elapsed", stats.Elapsed,
	)
	fmt.Fprintf(out, "%s\t%s\t%g\t%g\t%d\t%s\n", p.Name, algo, sol.TotalCost(), sol.TotalValue(), sol.Len(), status)

	return nil
}

// run solves p with progress hooks wired to log at debug level.
func (a *app) run(ctx context.Context, log *slog.Logger, algo knapsack.Algorithm, p *loader.Problem, capacity float64, timeLimit time.Duration) (*core.Solution[loader.Item], core.Stats, error) {
	var stats core.Stats
	n := len(p.Items)
	sol, err := knapsack.MaximizeValue(algo, p.Items, loader.Weight, loader.Value, capacity,
		core.WithContext(ctx),
		core.WithTimeLimit(timeLimit),
		core.WithStats(&stats),
		core.WithOnImprove(func(cost, value float64) {
			log.Debug("improved", "weight", cost, "value", value)
		}),
		core.WithOnFold(func(i, size int) {
			if (i+1)%foldLogEvery == 0 || i == n-1 {
				log.Debug("folded", "item", i+1, "of", n, "frontier", size)
			}
		}),
	)

	return sol, stats, err
}
