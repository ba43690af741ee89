package bb_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/bb"
)

// ExampleSolver_MaximizeValue packs a 7-unit bag from four parcels.
//
// Scenario:
//
//	parcel  weight  value  density
//	A       2       16     8.00
//	B       3       19     6.33
//	C       4       23     5.75
//	D       5       28     5.60
//
// The greedy density order would take A+B (value 35) and stop; the search
// proves A+D (value 44) optimal.
func ExampleSolver_MaximizeValue() {
	type parcel struct {
		name          string
		weight, value float64
	}
	parcels := []parcel{{"A", 2, 16}, {"B", 3, 19}, {"C", 4, 23}, {"D", 5, 28}}

	s := bb.New(parcels,
		func(p parcel) float64 { return p.weight },
		func(p parcel) float64 { return p.value },
	)
	best, err := s.MaximizeValue(7)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	var names []string
	for _, p := range best.Items() {
		names = append(names, p.name)
	}
	fmt.Println(strings.Join(names, " "))
	fmt.Printf("weight=%.0f value=%.0f\n", best.TotalCost(), best.TotalValue())
	// Output:
	// A D
	// weight=7 value=44
}
