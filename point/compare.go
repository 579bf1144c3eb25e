// SPDX-License-Identifier: MIT
// Package: paretopath/point
//
// compare.go — ε-tolerant componentwise, dominance and lexicographic orders.
//
// All comparators assume len(a) == len(b); callers inside this module
// guarantee it after validation, so the hot path carries no dimension checks.

package point

// LessEq reports a[i] <= b[i]+eps for every objective i.
func LessEq(a, b Point, eps float64) bool {
	for i := range a {
		if a[i] > b[i]+eps {
			return false
		}
	}

	return true
}

// Less reports a[i] < b[i]-eps for every objective i (strict in all components).
func Less(a, b Point, eps float64) bool {
	for i := range a {
		if !(a[i] < b[i]-eps) {
			return false
		}
	}

	return true
}

// Equal reports |a[i]-b[i]| <= eps for every objective i.
func Equal(a, b Point, eps float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}

	return true
}

// Dominates reports whether a Pareto-dominates b: a is no worse than b in every
// objective and strictly better (beyond eps) in at least one.
func Dominates(a, b Point, eps float64) bool {
	return LessEq(a, b, eps) && !LessEq(b, a, eps)
}

// Comparable reports whether one of a, b is componentwise no worse than the other.
func Comparable(a, b Point, eps float64) bool {
	return LessEq(a, b, eps) || LessEq(b, a, eps)
}

// LexLess reports whether a precedes b lexicographically: at the first
// objective where the two differ by more than eps, a is smaller.
func LexLess(a, b Point, eps float64) bool {
	return Compare(a, b, eps) < 0
}

// LexLessEq reports LexLess(a, b) or Equal(a, b).
func LexLessEq(a, b Point, eps float64) bool {
	return Compare(a, b, eps) <= 0
}

// Compare is the three-way lexicographic order: -1 if a < b, +1 if a > b,
// 0 if every component agrees within eps. Suitable for slices.SortFunc.
func Compare(a, b Point, eps float64) int {
	for i := range a {
		switch {
		case a[i] < b[i]-eps:
			return -1
		case a[i] > b[i]+eps:
			return 1
		}
	}

	return 0
}
