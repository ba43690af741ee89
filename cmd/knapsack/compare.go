package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/floatcmp"
	"github.com/katalvlaran/knapsack/loader"
)

var errMismatch = errors.New("solvers disagree")

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE...",
		Short: "Solve every file with both algorithms and check they agree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var failed int
			for _, path := range args {
				p, err := loader.LoadFile(path)
				if err != nil {
					return err
				}
				log := a.logger.With("problem", p.Name)

				bbSol, bbStats, err := a.run(cmd.Context(), log.With("algo", "bb"), knapsack.BranchAndBound, p, p.Capacity, 0)
				if err != nil {
					return fmt.Errorf("%s: bb: %w", p.Name, err)
				}
				prSol, prStats, err := a.run(cmd.Context(), log.With("algo", "pareto"), knapsack.ParetoFrontier, p, p.Capacity, 0)
				if err != nil {
					return fmt.Errorf("%s: pareto: %w", p.Name, err)
				}

				status := "ok"
				if !floatcmp.Equal(bbSol.TotalValue(), prSol.TotalValue()) {
					status = "MISMATCH"
					failed++
					log.Error("solvers disagree", "bb", bbSol.TotalValue(), "pareto", prSol.TotalValue())
				}
				log.Info("compared",
					"value", prSol.TotalValue(),
					"bb_nodes", bbStats.Nodes, "bb_elapsed", bbStats.Elapsed,
					"pareto_peak", prStats.FrontierPeak, "pareto_elapsed", prStats.Elapsed,
				)
				fmt.Fprintf(out, "%s\t%g\t%g\t%s\n", p.Name, bbSol.TotalValue(), prSol.TotalValue(), status)
			}
			if failed > 0 {
				return fmt.Errorf("%w on %d of %d files", errMismatch, failed, len(args))
			}

			return nil
		},
	}
}
