// Package loader reads knapsack problems from files.
//
// Two formats are understood:
//
//   - Plain text: a header line "n capacity" followed by one "value weight"
//     pair per line. Only the first n item lines are read; blank lines are
//     ignored anywhere.
//
//     4 7
//     16 2
//     19 3
//
//   - YAML, decoded strictly (unknown fields are rejected):
//
//     name: parcels
//     capacity: 7
//     items:
//     - {weight: 2, value: 16}
//     - {weight: 3, value: 19}
//
// Every problem is validated before it is returned: the capacity is finite
// and non-negative, every weight finite and strictly positive, every value
// finite and non-negative.
package loader

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformed indicates a line or document that cannot be parsed.
	ErrMalformed = errors.New("loader: malformed input")

	// ErrItemCount indicates a negative item count or fewer item lines than
	// announced by the header.
	ErrItemCount = errors.New("loader: item count mismatch")

	// ErrInvalidItem indicates a non-finite or non-positive weight, or a
	// non-finite or negative value.
	ErrInvalidItem = errors.New("loader: invalid item")

	// ErrInvalidCapacity indicates a non-finite or negative capacity.
	ErrInvalidCapacity = errors.New("loader: invalid capacity")
)

// Item is one weighted, valued object of a problem file.
type Item struct {
	Weight float64 `yaml:"weight"`
	Value  float64 `yaml:"value"`
}

// Weight is the cost extractor for Item.
func Weight(it Item) float64 { return it.Weight }

// Value is the value extractor for Item.
func Value(it Item) float64 { return it.Value }

// Problem is a knapsack instance: a capacity and the items in file order.
type Problem struct {
	Name     string  `yaml:"name,omitempty"`
	Capacity float64 `yaml:"capacity"`
	Items    []Item  `yaml:"items"`
}

// Validate checks the capacity and every item.
func (p *Problem) Validate() error {
	if !finite(p.Capacity) || p.Capacity < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidCapacity, p.Capacity)
	}
	for i, it := range p.Items {
		if !finite(it.Weight) || it.Weight <= 0 {
			return fmt.Errorf("%w: item %d has weight %g", ErrInvalidItem, i, it.Weight)
		}
		if !finite(it.Value) || it.Value < 0 {
			return fmt.Errorf("%w: item %d has value %g", ErrInvalidItem, i, it.Value)
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
