// Package eigen computes eigenvalues of dense, real, non-symmetric matrices.
/*
The central function is Decompose, which reduces a square matrix to a real
Schur form, i.e. an upper quasi-triangular matrix T with 1×1 and 2×2 blocks
on its diagonal. Every 1×1 block is a real eigenvalue, every 2×2 block holds
a pair of complex-conjugate eigenvalues.

The reduction runs in two phases:

	(1) Householder reduction to upper Hessenberg form
	(2) Francis double-shift QR sweeps on the active Hessenberg block,
	    deflating whenever a subdiagonal element becomes negligible

Clients control convergence by a tolerance and by an iteration budget. A
subdiagonal element h(l,l-1) is considered negligible if

	|h(l,l-1)| ≤ tol · ( |h(l-1,l-1)| + |h(l,l)| )

The budget counts QR sweeps over the whole decomposition. If it is used up,
Decompose reports ErrNoConvergence instead of returning half-baked results.

The matrix is neither balanced nor are eigenvectors accumulated. Both are not
needed for polynomial root finding.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package eigen

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/mat"
)

// tracer writes to trace with key 'roots'
func tracer() tracing.Trace {
	return tracing.Select("roots")
}

var (
	// ErrEmpty indicates a matrix without rows or columns.
	ErrEmpty = errors.New("eigen: empty matrix")
	// ErrNotSquare indicates a matrix with rows != columns.
	ErrNotSquare = errors.New("eigen: matrix is not square")
	// ErrNotFinite indicates a matrix containing NaN or Inf.
	ErrNotFinite = errors.New("eigen: matrix has non-finite entry")
	// ErrNoConvergence indicates that the iteration budget has been exhausted.
	ErrNoConvergence = errors.New("eigen: decomposition did not converge")
)

// NoConvergenceError is returned by solvers when the QR iteration did not
// converge. It unwraps to ErrNoConvergence.
type NoConvergenceError struct {
	Iterations int // sweeps performed
	Remaining  int // number of eigenvalues not yet found
}

func (e *NoConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations, %d eigenvalues remaining",
		ErrNoConvergence.Error(), e.Iterations, e.Remaining)
}

// Unwrap makes errors.Is(err, ErrNoConvergence) work.
func (e *NoConvergenceError) Unwrap() error {
	return ErrNoConvergence
}

// Schur is the result of a successful decomposition.
type Schur struct {
	t      *mat.Dense   // quasi-triangular factor
	values []complex128 // eigenvalues in diagonal order
	iter   int          // QR sweeps needed
}

// T returns the upper quasi-triangular factor.
func (s *Schur) T() *mat.Dense {
	return s.t
}

// ComplexEigenvalues returns the eigenvalues in the order of the diagonal of T.
// Complex-conjugate pairs are adjacent, positive imaginary part first.
func (s *Schur) ComplexEigenvalues() []complex128 {
	ev := make([]complex128, len(s.values))
	copy(ev, s.values)
	return ev
}

// Iterations returns the number of QR sweeps performed.
func (s *Schur) Iterations() int {
	return s.iter
}

// Decompose computes the real Schur form of a, which is left unchanged.
// tol is the relative size below which subdiagonal elements are considered
// zero; a tolerance below machine epsilon is raised to machine epsilon.
// maxIter limits the total number of QR sweeps.
func Decompose(a mat.Matrix, tol float64, maxIter int) (*Schur, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmpty
	}
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, r, c)
	}
	h := make([][]float64, r)
	for i := range h {
		h[i] = mat.Row(nil, i, a)
		for j, x := range h[i] {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w at (%d,%d)", ErrNotFinite, i, j)
			}
		}
	}
	if tol < epsilon {
		tol = epsilon
	}
	toHessenberg(h)
	w := &wilkinson{h: h, n: r, tol: tol, budget: maxIter}
	if err := w.hqr(); err != nil {
		tracer().Errorf("Schur decomposition of %d×%d matrix failed: %v", r, r, err)
		return nil, err
	}
	t := mat.NewDense(r, r, nil)
	for i := range h {
		t.SetRow(i, h[i])
	}
	tracer().Debugf("Schur decomposition of %d×%d matrix took %d iterations", r, r, w.iter)
	return &Schur{t: t, values: w.values, iter: w.iter}, nil
}

const epsilon = 0x1p-52

// toHessenberg reduces h to upper Hessenberg form by Householder similarity
// transforms, in place.
func toHessenberg(h [][]float64) {
	n := len(h)
	v := make([]float64, n)
	for k := 0; k < n-2; k++ {
		var alpha float64
		for i := k + 1; i < n; i++ {
			alpha += h[i][k] * h[i][k]
		}
		if alpha == 0 {
			continue // column already reduced
		}
		alpha = math.Sqrt(alpha)
		if h[k+1][k] > 0 {
			alpha = -alpha
		}
		// v = x - alpha·e1, for x = h[k+1:n][k]
		var vv float64
		for i := k + 1; i < n; i++ {
			v[i] = h[i][k]
		}
		v[k+1] -= alpha
		for i := k + 1; i < n; i++ {
			vv += v[i] * v[i]
		}
		if vv == 0 {
			continue
		}
		// H·A, H = I - 2vvᵀ/vᵀv, affecting rows k+1…n-1
		for j := k; j < n; j++ {
			var s float64
			for i := k + 1; i < n; i++ {
				s += v[i] * h[i][j]
			}
			f := 2 * s / vv
			for i := k + 1; i < n; i++ {
				h[i][j] -= f * v[i]
			}
		}
		// A·H, affecting columns k+1…n-1
		for i := 0; i < n; i++ {
			var s float64
			for j := k + 1; j < n; j++ {
				s += h[i][j] * v[j]
			}
			f := 2 * s / vv
			for j := k + 1; j < n; j++ {
				h[i][j] -= f * v[j]
			}
		}
		h[k+1][k] = alpha
		for i := k + 2; i < n; i++ {
			h[i][k] = 0
		}
	}
}
