package eigen

import "math"

// wilkinson holds the state of a Francis double-shift QR iteration on an
// upper Hessenberg matrix.
type wilkinson struct {
	h      [][]float64  // Hessenberg matrix, becomes quasi-triangular
	n      int          // order of h
	tol    float64      // relative deflation tolerance
	budget int          // max. number of QR sweeps
	iter   int          // QR sweeps performed
	values []complex128 // eigenvalue i belongs to diagonal position i
}

// hqr finds all eigenvalues of w.h, working from the bottom of the matrix
// upwards. The active block is h[l…nn][l…nn]; it shrinks by one or two rows
// whenever a 1×1 or 2×2 block splits off.
func (w *wilkinson) hqr() error {
	h, n := w.h, w.n
	w.values = make([]complex128, n)
	var anorm float64
	for i := 0; i < n; i++ {
		for j := max(i-1, 0); j < n; j++ {
			anorm += math.Abs(h[i][j])
		}
	}
	var t float64 // sum of exceptional shifts applied to the active block
	nn := n - 1
	for nn >= 0 {
		its := 0 // sweeps on the current active block
		for {
			l := w.deflationPoint(nn, anorm)
			x := h[nn][nn]
			if l == nn { // 1×1 block
				h[nn][nn] += t
				w.values[nn] = complex(x+t, 0)
				nn--
				break
			}
			y := h[nn-1][nn-1]
			ww := h[nn][nn-1] * h[nn-1][nn]
			if l == nn-1 { // 2×2 block
				p := 0.5 * (y - x)
				q := p*p + ww
				z := math.Sqrt(math.Abs(q))
				h[nn][nn] += t
				h[nn-1][nn-1] += t
				x += t
				if q >= 0 { // real pair
					z = p + sign(z, p)
					w.values[nn-1] = complex(x+z, 0)
					w.values[nn] = w.values[nn-1]
					if z != 0 {
						w.values[nn] = complex(x-ww/z, 0)
					}
				} else { // complex-conjugate pair
					w.values[nn-1] = complex(x+p, z)
					w.values[nn] = complex(x+p, -z)
				}
				nn -= 2
				break
			}
			if w.iter >= w.budget {
				return &NoConvergenceError{Iterations: w.iter, Remaining: nn + 1}
			}
			if its > 0 && its%10 == 0 { // stalled: exceptional shift
				tracer().Debugf("exceptional shift at row %d after %d sweeps", nn, its)
				t += x
				for i := 0; i <= nn; i++ {
					h[i][i] -= x
				}
				s := math.Abs(h[nn][nn-1]) + math.Abs(h[nn-1][nn-2])
				x = 0.75 * s
				y = x
				ww = -0.4375 * s * s
			}
			its++
			w.iter++
			w.sweep(l, nn, x, y, ww)
		}
	}
	return nil
}

// deflationPoint looks for a negligible subdiagonal element in the active
// block ending at row nn. It returns the first row of the unreduced block.
func (w *wilkinson) deflationPoint(nn int, anorm float64) int {
	h := w.h
	l := nn
	for ; l > 0; l-- {
		s := math.Abs(h[l-1][l-1]) + math.Abs(h[l][l])
		if s == 0 {
			s = anorm
		}
		if math.Abs(h[l][l-1]) <= w.tol*s {
			h[l][l-1] = 0
			break
		}
	}
	return l
}

// sweep performs one implicit double-shift QR step on the block h[l…nn].
// The shifts are the eigenvalues of the trailing 2×2 matrix, given by
// their sum x+y and product-term ww.
func (w *wilkinson) sweep(l, nn int, x, y, ww float64) {
	h := w.h
	var p, q, r, z float64
	// find two consecutive small subdiagonal elements
	m := nn - 2
	for ; m >= l; m-- {
		z = h[m][m]
		r = x - z
		s := y - z
		p = (r*s-ww)/h[m+1][m] + h[m][m+1]
		q = h[m+1][m+1] - z - r - s
		r = h[m+2][m+1]
		s = math.Abs(p) + math.Abs(q) + math.Abs(r)
		p /= s
		q /= s
		r /= s
		if m == l {
			break
		}
		u := math.Abs(h[m][m-1]) * (math.Abs(q) + math.Abs(r))
		v := math.Abs(p) * (math.Abs(h[m-1][m-1]) + math.Abs(z) + math.Abs(h[m+1][m+1]))
		if u <= epsilon*v {
			break
		}
	}
	for i := m; i < nn-1; i++ {
		h[i+2][i] = 0
		if i != m {
			h[i+2][i-1] = 0
		}
	}
	// chase the bulge down the subdiagonal
	for k := m; k < nn; k++ {
		if k != m {
			p = h[k][k-1]
			q = h[k+1][k-1]
			r = 0
			if k+1 != nn {
				r = h[k+2][k-1]
			}
			if x = math.Abs(p) + math.Abs(q) + math.Abs(r); x != 0 {
				p /= x
				q /= x
				r /= x
			}
		}
		s := sign(math.Sqrt(p*p+q*q+r*r), p)
		if s == 0 {
			continue
		}
		if k == m {
			if l != m {
				h[k][k-1] = -h[k][k-1]
			}
		} else { // the reflection annihilates the bulge in column k-1
			h[k][k-1] = -s * x
			h[k+1][k-1] = 0
			if k+1 != nn {
				h[k+2][k-1] = 0
			}
		}
		p += s
		x = p / s
		y = q / s
		z = r / s
		q /= p
		r /= p
		for j := k; j < w.n; j++ { // row transformation
			p = h[k][j] + q*h[k+1][j]
			if k+1 != nn {
				p += r * h[k+2][j]
				h[k+2][j] -= p * z
			}
			h[k+1][j] -= p * y
			h[k][j] -= p * x
		}
		mmin := min(nn, k+3)
		for i := 0; i <= mmin; i++ { // column transformation
			p = x*h[i][k] + y*h[i][k+1]
			if k+1 != nn {
				p += z * h[i][k+2]
				h[i][k+2] -= p * r
			}
			h[i][k+1] -= p * q
			h[i][k] -= p
		}
	}
}

// sign returns |a| with the sign of b, treating b = -0 as positive.
func sign(a, b float64) float64 {
	if b >= 0 {
		return math.Abs(a)
	}
	return -math.Abs(a)
}
