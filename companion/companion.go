// Package companion builds companion matrices for polynomials.
/*
For a polynomial

	p(x) = a0·x^d + a1·x^(d-1) + … + ad     (a0 ≠ 0)

the companion matrix is the d×d matrix

	⎡ 0  0  …  0  -ad/a0     ⎤
	⎢ 1  0  …  0  -a(d-1)/a0 ⎥
	⎢ 0  1  …  0  …          ⎥
	⎣ 0  0  …  1  -a1/a0     ⎦

Its characteristic polynomial is p(x)/a0, i.e. its eigenvalues are exactly
the roots of p. The matrix is upper Hessenberg already.

Very small leading coefficients a0 relative to the other coefficients
amplify rounding errors. This is inherent to the method and not corrected.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package companion

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/mat"
)

// tracer writes to trace with key 'roots'
func tracer() tracing.Trace {
	return tracing.Select("roots")
}

// ErrZeroLeading indicates a coefficient sequence with leading coefficient 0.
// Sequences have to be normalized before building a companion matrix.
var ErrZeroLeading = errors.New("companion: leading coefficient is zero")

// Degree returns the effective degree of a normalized coefficient sequence,
// which is -1 for an empty sequence.
func Degree(reduced []float64) int {
	return len(reduced) - 1
}

// Build creates the companion matrix for a normalized coefficient sequence
// (highest degree first, reduced[0] ≠ 0).
//
// Polynomials of degree ≤ 1 do not get a matrix: Build returns (nil, nil).
func Build(reduced []float64) (*mat.Dense, error) {
	d := Degree(reduced)
	if d <= 1 {
		return nil, nil
	}
	a0 := reduced[0]
	if a0 == 0 {
		return nil, fmt.Errorf("%w: %v", ErrZeroLeading, reduced)
	}
	m := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		m.Set(i, i-1, 1)
	}
	// coefficient k ends up in row d-k of the last column
	for k := 1; k <= d; k++ {
		m.Set(d-k, d-1, -(reduced[k] / a0))
	}
	tracing.With(tracer()).Dump("companion", mat.Formatted(m))
	return m, nil
}
