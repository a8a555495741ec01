package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver is an eigenvalue solver for general real square matrices.
// Implementations return ErrNoConvergence (possibly wrapped) if they give up.
type Solver interface {
	Eigenvalues(a mat.Matrix) ([]complex128, error)
}

// Default tolerance and iteration budget for the QR solver.
const (
	DefaultTolerance     = 0.000001
	DefaultMaxIterations = 10000
)

// QR solves for eigenvalues with Decompose. A zero Tolerance or MaxIterations
// selects the respective default.
type QR struct {
	Tolerance     float64
	MaxIterations int
}

// Eigenvalues is part of interface Solver.
func (s QR) Eigenvalues(a mat.Matrix) ([]complex128, error) {
	tol, iter := s.Tolerance, s.MaxIterations
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if iter <= 0 {
		iter = DefaultMaxIterations
	}
	schur, err := Decompose(a, tol, iter)
	if err != nil {
		return nil, err
	}
	return schur.ComplexEigenvalues(), nil
}

func (s QR) String() string {
	return fmt.Sprintf("qr(tol=%g,maxiter=%d)", s.Tolerance, s.MaxIterations)
}

// Lapack solves for eigenvalues with gonum's LAPACK port (Dgeev). It uses
// LAPACK's own convergence criteria; there is no tolerance to set.
type Lapack struct{}

// Eigenvalues is part of interface Solver.
func (Lapack) Eigenvalues(a mat.Matrix) ([]complex128, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmpty
	}
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotSquare, r, c)
	}
	if err := checkFinite(a); err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		tracer().Errorf("LAPACK eigen factorization of %d×%d matrix failed", r, r)
		return nil, &NoConvergenceError{Remaining: r}
	}
	return eig.Values(nil), nil
}

func (Lapack) String() string {
	return "lapack"
}

func checkFinite(a mat.Matrix) error {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x := a.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w at (%d,%d)", ErrNotFinite, i, j)
			}
		}
	}
	return nil
}
