/*
Package roots computes all roots of a polynomial with real coefficients.
Root finding is reduced to an eigenvalue problem on a companion matrix.

This package holds the numeric basics shared by the sub-packages: predicates
for "nearly zero" numbers, a value type for roots and helpers to compare sets
of roots. The root-finding pipeline lives in package polyn:

	rs := polyn.Roots([]float64{1, -10, 31, -30})   // (x-2)(x-3)(x-5)

Package companion builds the companion matrix, package eigen provides the
eigenvalue solver, package rootplot draws roots in the complex plane.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package roots

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'roots'
func tracer() tracing.Trace {
	return tracing.Select("roots")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Root Data Type ========================================================

// Root is a root of a polynomial, i.e. a complex number.
type Root complex128

// Zero is the root at the origin, produced for every trailing zero coefficient.
var Zero = R(0, 0)

// R is a quick notation for contructing a root from floats.
func R(re, im float64) Root {
	return Root(complex(re, im))
}

// C2R returns a root from a complex number. NaN and Inf are mapped to Zero.
func C2R(c complex128) Root {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created root for complex.NaN")
		return Zero
	}
	return Root(c)
}

// Pretty Stringer for roots.
func (r Root) String() string {
	if r.Im() < 0 {
		return fmt.Sprintf("%g-%gi", r.Re(), -r.Im())
	}
	return fmt.Sprintf("%g+%gi", r.Re(), r.Im())
}

// C returns a root as a complex number.
func (r Root) C() complex128 {
	return complex128(r)
}

// Re is the real part of a root.
func (r Root) Re() float64 {
	return real(r.C())
}

// Im is the imaginary part of a root.
func (r Root) Im() float64 {
	return imag(r.C())
}

// Zap rounds real part and imaginary part to Epsilon.
func (r Root) Zap() Root {
	return R(Zap(r.Re()), Zap(r.Im()))
}

// IsZero is a predicate: is this root (nearly) at the origin?
func (r Root) IsZero() bool {
	return r.Equal(Zero)
}

// IsReal is a predicate: is the imaginary part of r (nearly) 0?
func (r Root) IsReal() bool {
	return Is0(r.Im())
}

// Equal compares two roots within Epsilon, part by part.
func (r Root) Equal(r2 Root) bool {
	return Is0(r.Re()-r2.Re()) && Is0(r.Im()-r2.Im())
}

// Wrap converts a slice of complex numbers to roots.
func Wrap(cs []complex128) []Root {
	rs := make([]Root, len(cs))
	for i, c := range cs {
		rs[i] = C2R(c)
	}
	return rs
}

// === Sets of Roots =========================================================

// SameRoots compares two sets of roots, disregarding order. Every root in want
// has to be matched by a distinct root in got, with distance at most tol.
// Roots are matched greedily, nearest first.
func SameRoots(got, want []complex128, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	used := make([]bool, len(got))
	for _, w := range want {
		best, dist := -1, math.Inf(1)
		for i, g := range got {
			if used[i] {
				continue
			}
			if d := cmplx.Abs(g - w); d < dist {
				best, dist = i, d
			}
		}
		if best < 0 || dist > tol {
			tracer().Debugf("root %v unmatched, nearest distance %g", Root(w), dist)
			return false
		}
		used[best] = true
	}
	return true
}

// SortRoots sorts roots by real part, then by imaginary part.
// Root-finding never sorts; this is for presentation.
func SortRoots(rs []complex128) {
	sort.SliceStable(rs, func(i, j int) bool {
		if real(rs[i]) != real(rs[j]) {
			return real(rs[i]) < real(rs[j])
		}
		return imag(rs[i]) < imag(rs[j])
	})
}

// CountZeros returns the number of roots exactly at the origin.
func CountZeros(rs []complex128) int {
	n := 0
	for _, r := range rs {
		if r == 0 {
			n++
		}
	}
	return n
}
