// SPDX-License-Identifier: MIT
// Package floatcmp provides epsilon-tolerant ordering over float64 values.
//
// Every cost and value comparison made by the knapsack solvers is routed
// through this package. A raw `a > b` on accumulated sums is not stable:
// after a long chain of additions two mathematically equal totals may differ
// in the last bits, which would trigger spurious incumbent replacements or
// mis-ordered frontier insertions. The predicates here only report a strict
// relation when the gap exceeds Epsilon.
//
// Contract (a, b finite):
//
//	Greater(a, b)        ⇔ a > b + Epsilon
//	Less(a, b)           ⇔ a < b − Epsilon
//	GreaterOrEqual(a, b) ⇔ a > b − Epsilon
//	LessOrEqual(a, b)    ⇔ a < b + Epsilon
//	IsZero(a)            ⇔ −Epsilon < a < Epsilon
//	Equal(a, b)          ⇔ IsZero(a − b)
//
// NaN compares false with everything, so every predicate returns false when
// either argument is NaN.
package floatcmp

// Epsilon is the absolute tolerance shared by all predicates.
const Epsilon = 1e-10

// Less reports whether a is smaller than b by more than Epsilon.
func Less(a, b float64) bool { return a < b-Epsilon }

// Greater reports whether a exceeds b by more than Epsilon.
func Greater(a, b float64) bool { return a > b+Epsilon }

// LessOrEqual reports whether a is not greater than b (within Epsilon).
func LessOrEqual(a, b float64) bool { return a < b+Epsilon }

// GreaterOrEqual reports whether a is not less than b (within Epsilon).
func GreaterOrEqual(a, b float64) bool { return a > b-Epsilon }

// IsZero reports whether |a| < Epsilon.
func IsZero(a float64) bool { return GreaterOrEqualZero(a) && LessOrEqualZero(a) }

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float64) bool { return IsZero(a - b) }

// LessZero reports whether a < −Epsilon.
func LessZero(a float64) bool { return a < -Epsilon }

// GreaterZero reports whether a > Epsilon.
func GreaterZero(a float64) bool { return a > Epsilon }

// LessOrEqualZero reports whether a < Epsilon.
func LessOrEqualZero(a float64) bool { return a < Epsilon }

// GreaterOrEqualZero reports whether a > −Epsilon.
func GreaterOrEqualZero(a float64) bool { return a > -Epsilon }

// Compare is the three-way form of the predicates above: -1 when Less(a, b),
// +1 when Greater(a, b), 0 otherwise.
//
// The induced "equality" is not transitive, so Compare must not be used as a
// sort key where an exact order is required.
func Compare(a, b float64) int {
	switch {
	case Less(a, b):
		return -1
	case Greater(a, b):
		return 1
	default:
		return 0
	}
}
