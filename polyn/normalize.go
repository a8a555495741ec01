package polyn

// IsDegenerate is a predicate: does a coefficient sequence represent the
// zero polynomial? This is the case for an empty sequence or if every
// coefficient is exactly 0. No tolerance is applied.
func IsDegenerate(coeffs []float64) bool {
	for _, c := range coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Normalized is a coefficient sequence with leading and trailing zeros stripped.
type Normalized struct {
	Reduced   []float64 // first element is the leading coefficient ≠ 0
	ZeroRoots int       // number of trailing zeros stripped, i.e. roots at 0
}

// Degree is the effective degree of the reduced polynomial, or -1 if there
// are no coefficients left.
func (n Normalized) Degree() int {
	return len(n.Reduced) - 1
}

// Normalize strips leading zeros (high-order padding, which does not raise the
// degree) and trailing zeros (each of them a root at 0) from a coefficient
// sequence, highest degree first. Zero tests are exact.
//
// The input is not modified; Reduced is a fresh slice. For degenerate input
// the result is empty, with ZeroRoots = 0.
func Normalize(coeffs []float64) Normalized {
	n := len(coeffs)
	tz := 0 // trailing zeros, scanning from the constant term
	for tz < n && coeffs[n-1-tz] == 0 {
		tz++
	}
	lz := 0 // leading zeros, scanning from the highest degree
	for lz < n-tz && coeffs[lz] == 0 {
		lz++
	}
	if lz+tz >= n {
		return Normalized{}
	}
	reduced := make([]float64, n-lz-tz)
	copy(reduced, coeffs[lz:n-tz])
	T().Debugf("normalized %d coefficients: %d leading, %d trailing zeros stripped", n, lz, tz)
	return Normalized{Reduced: reduced, ZeroRoots: tz}
}
