package polyn

import (
	"errors"
	"fmt"

	"github.com/npillmayer/roots/companion"
	"github.com/npillmayer/roots/eigen"
)

// ErrRootsOmitted is returned by FindRoots if some roots could not be found.
// Errors returned by FindRoots wrap this error and the solver's error.
var ErrRootsOmitted = errors.New("roots omitted")

// Config controls root finding.
type Config struct {
	Tolerance     float64      // convergence tolerance for the eigenvalue solver
	MaxIterations int          // iteration budget for the eigenvalue solver
	Linear        bool         // solve degree-1 polynomials directly
	Solver        eigen.Solver // nil selects eigen.QR with Tolerance and MaxIterations
}

// DefaultConfig returns the configuration used by FindRoots clients
// who do not care: tolerance 1e-6, at most 10000 QR iterations,
// degree-1 polynomials solved directly.
func DefaultConfig() Config {
	return Config{
		Tolerance:     eigen.DefaultTolerance,
		MaxIterations: eigen.DefaultMaxIterations,
		Linear:        true,
	}
}

func (conf Config) solver() eigen.Solver {
	if conf.Solver != nil {
		return conf.Solver
	}
	return eigen.QR{Tolerance: conf.Tolerance, MaxIterations: conf.MaxIterations}
}

// Result is the outcome of FindRoots.
type Result struct {
	Roots     []complex128 // roots found, solver order, roots at 0 last
	Degree    int          // effective degree after stripping leading zeros, -1 for p = 0
	ZeroRoots int          // number of roots at 0 from trailing zero coefficients
	Omitted   int          // number of roots not determined
}

// Complete is true if all roots of the polynomial have been found.
func (r Result) Complete() bool {
	return r.Omitted == 0
}

// Roots returns all roots of a polynomial, given by its coefficients, highest
// degree first:
//
//	p(x) = coeffs[0]·xⁿ⁻¹ + … + coeffs[n-2]·x + coeffs[n-1]
//
// Every trailing zero coefficient yields a root 0, appended at the end.
// The other roots are the eigenvalues of the companion matrix, in the order
// the solver reports them.
//
// Roots never fails. If the eigenvalue solver does not converge, the
// corresponding roots are silently left out; roots at 0 are still
// returned. Clients who need to tell "no roots" from "not converged" should
// use FindRoots.
//
// BUG(norbert@pillmayer.com): After stripping zeros, polynomials of degree 1
// yield no root, e.g. Roots([]float64{2, -4}) is empty. FindRoots with
// Config.Linear set solves them.
func Roots(coeffs []float64) []complex128 {
	conf := DefaultConfig()
	conf.Linear = false
	res, err := FindRoots(coeffs, conf)
	if err != nil {
		T().Infof("%v", err)
	}
	return res.Roots
}

// FindRoots finds the roots of a polynomial, given by its coefficients
// (highest degree first, see Roots).
//
// If the eigenvalue solver does not converge, FindRoots returns a partial result
// (roots at 0 only) together with an error wrapping ErrRootsOmitted and
// eigen.ErrNoConvergence. The zero polynomial and non-zero constants have no
// roots and are not an error.
func FindRoots(coeffs []float64, conf Config) (Result, error) {
	if IsDegenerate(coeffs) {
		T().Debugf("zero polynomial, no roots")
		return Result{Roots: []complex128{}, Degree: -1}, nil
	}
	norm := Normalize(coeffs)
	d := norm.Degree()
	res := Result{Degree: d + norm.ZeroRoots, ZeroRoots: norm.ZeroRoots}
	var nonzero []complex128
	var err error
	switch {
	case d <= 0: // non-zero constant: no roots
	case d == 1:
		if conf.Linear {
			nonzero = []complex128{complex(-norm.Reduced[1]/norm.Reduced[0], 0)}
		} else {
			T().Debugf("linear factor %v left unsolved", norm.Reduced)
			res.Omitted = 1
		}
	default:
		if nonzero, err = eigenRoots(norm.Reduced, conf.solver()); err != nil {
			res.Omitted = d
			err = fmt.Errorf("%w: %d roots of %v: %w", ErrRootsOmitted, d, FromCoefficients(norm.Reduced), err)
		}
	}
	res.Roots = make([]complex128, 0, len(nonzero)+norm.ZeroRoots)
	res.Roots = append(res.Roots, nonzero...)
	for i := 0; i < norm.ZeroRoots; i++ {
		res.Roots = append(res.Roots, 0)
	}
	return res, err
}

// eigenRoots finds the roots of a normalized polynomial of degree ≥ 2 as the
// eigenvalues of its companion matrix.
func eigenRoots(reduced []float64, solver eigen.Solver) ([]complex128, error) {
	m, err := companion.Build(reduced)
	if err != nil {
		return nil, err
	}
	ev, err := solver.Eigenvalues(m)
	if err != nil {
		T().Errorf("eigenvalue solver failed for degree %d: %v", companion.Degree(reduced), err)
		return nil, err
	}
	return ev, nil
}
