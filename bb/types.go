package bb

import "github.com/katalvlaran/knapsack/core"

// Solver is the branch-and-bound strategy. It holds only the inputs and the
// options; every MaximizeValue call builds fresh search state.
type Solver[I any] struct {
	items []I
	cost  core.Extractor[I]
	value core.Extractor[I]
	opts  core.Options
}

var _ core.Solver[int] = (*Solver[int])(nil)

// New returns a Solver over items. The slice is read, never modified; the
// caller must not mutate it while a call is running.
func New[I any](items []I, cost, value core.Extractor[I], opts ...core.Option) *Solver[I] {
	return &Solver[I]{
		items: items,
		cost:  cost,
		value: value,
		opts:  core.NewOptions(opts...),
	}
}

// weightedItem caches the extractor results of one item.
type weightedItem[I any] struct {
	item    I
	cost    float64
	value   float64
	density float64
}

// side tells which branch of a decision a frame still has to explore.
type side uint8

const (
	sideTake side = iota // include ordered[index]
	sideSkip             // exclude ordered[index]
)

// frame is one pending decision on the explicit DFS stack.
type frame[I any] struct {
	index int
	side  side
	sol   *core.Solution[I]
}
