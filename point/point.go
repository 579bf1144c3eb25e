// SPDX-License-Identifier: MIT
// Package: paretopath/point
//
// point.go — Point type, constructors and arithmetic.
//
// Contract:
//   • Binary operations require equal dimensions and panic otherwise; mixing
//     dimensions is a programmer error that the solver rejects earlier with
//     an error.
//   • Constructors never alias caller storage unless documented.

package point

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is an ordered vector of d objective values.
type Point []float64

// New returns the zero Point of dimension d. Panics if d < 0.
func New(d int) Point {
	if d < 0 {
		panic(fmt.Sprintf("point: New(d=%d) negative dimension", d))
	}

	return make(Point, d)
}

// Of returns a Point holding a copy of vs.
func Of(vs ...float64) Point {
	p := make(Point, len(vs))
	copy(p, vs)

	return p
}

// Fill returns a Point of dimension d with every component set to v.
func Fill(d int, v float64) Point {
	p := New(d)
	for i := range p {
		p[i] = v
	}

	return p
}

// Dim returns the number of objectives.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p. A nil Point clones to nil.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	mustSameDim("Add", p, q)
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}

	return out
}

// AddInPlace sets p to p+q and returns p.
func (p Point) AddInPlace(q Point) Point {
	mustSameDim("AddInPlace", p, q)
	for i := range p {
		p[i] += q[i]
	}

	return p
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	mustSameDim("Sub", p, q)
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out
}

// Scale returns s·p.
func (p Point) Scale(s float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] * s
	}

	return out
}

// Neg returns -p.
func (p Point) Neg() Point { return p.Scale(-1) }

// Dot returns the inner product Σ p[i]·q[i].
func (p Point) Dot(q Point) float64 {
	mustSameDim("Dot", p, q)
	var s float64
	for i := range p {
		s += p[i] * q[i]
	}

	return s
}

// Sum returns Σ p[i]. Used as the scalarized priority of label-setting.
func (p Point) Sum() float64 {
	var s float64
	for _, v := range p {
		s += v
	}

	return s
}

// IsFinite reports whether no component is NaN or ±Inf.
func (p Point) IsFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// IsNonNegative reports whether every component is >= 0 (NaN fails).
func (p Point) IsNonNegative() bool {
	for _, v := range p {
		if !(v >= 0) {
			return false
		}
	}

	return true
}

// String renders p as "(v0, v1, ...)" using the shortest float formatting.
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// mustSameDim panics with a tagged message when dimensions differ.
func mustSameDim(op string, p, q Point) {
	if len(p) != len(q) {
		panic(fmt.Sprintf("point: %s dimension mismatch %d != %d", op, len(p), len(q)))
	}
}
