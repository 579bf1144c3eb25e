// Package point provides Point, the fixed-dimension real vector used as a
// multi-objective path cost, together with the ε-tolerant comparators that
// drive Pareto pruning.
//
// A Point is a plain []float64. Arithmetic helpers return fresh slices and
// never mutate their receivers unless the name says so (AddInPlace).
//
// Comparators:
//
//	LessEq(a, b, eps)     a[i] <= b[i]+eps for every i
//	Less(a, b, eps)       a[i] <  b[i]-eps for every i
//	Equal(a, b, eps)      |a[i]-b[i]| <= eps for every i
//	Dominates(a, b, eps)  LessEq(a, b) and not LessEq(b, a)
//	LexLess(a, b, eps)    first differing component (beyond eps) is smaller in a
//
// Dominance is consistent with LessEq: a dominates b iff a is componentwise
// no worse than b and b is not componentwise no worse than a. With eps = 0 this
// is the textbook definition (≤ everywhere, < somewhere).
//
// Complexity: every operation is O(d) time; allocating helpers use O(d) space.
package point
