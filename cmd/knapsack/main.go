// Command knapsack solves 0/1 knapsack problem files with the strategies of
// github.com/katalvlaran/knapsack.
//
//	knapsack solve --algo pareto data/ks_30_0 data/cargo.yaml
//	knapsack compare data/*
//	knapsack version
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
