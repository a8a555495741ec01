// Package polyn is for polynomials in one variable and for finding their roots.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/roots"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return gtrace.EquationsTracer
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅x^I
//
// I > 0
type X struct {
	I int     // exponent of x
	C float64 // coefficient
}

// New creates a polynomial, given the constant term and further terms.
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(x) = 5x² + 2/3x + 8
func New(c float64, tms ...X) (Polynomial, error) { // construct a polynomial
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("term exponent must be at least 1, skipping it")
		} else {
			p.SetTerm(t.I, t.C)
		}
	}
	return p, err
}

// Polynomial is a type for polynomials in one variable
//
//	c + a.1 x + a.2 x² + ... a.n xⁿ .
//
// We store the coefficients only, keyed by exponent. Key 0 is the constant term,
// which is always present. Other terms are present only if their coefficient is
// not 0. We store the coefficients in a TreeMap (sorted map).
type Polynomial struct {
	terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.terms.Put(0, c) // initialize with constant term (at position 0)
	return p
}

// FromCoefficients creates a polynomial from a dense coefficient sequence,
// highest degree first. The last element is the constant term.
// Leading zeros do not contribute to the degree.
func FromCoefficients(coeffs []float64) Polynomial {
	p := NewConstantPolynomial(0)
	n := len(coeffs)
	for k, c := range coeffs {
		p.SetTerm(n-1-k, c)
	}
	return p
}

func (p *Polynomial) checkTerms() {
	if p.terms == nil {
		p.terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for term xⁱ within a Polynomial.
// For i=0, sets the constant term. Setting a coefficient to 0 removes the term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	if i > 0 && scale == 0 {
		p.terms.Remove(i)
	} else {
		p.terms.Put(i, scale)
	}
	return p
}

// GetCoeffForTerm gets the coefficient for term xⁱ.
//
// Example:
//
//	p = x + 3x²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	p.checkTerms()
	if sc, found := p.terms.Get(i); found {
		return sc.(float64)
	}
	return 0.0
}

// GetConstantValue returns the constant term of a polynomial.
func (p Polynomial) GetConstantValue() float64 {
	return p.GetCoeffForTerm(0)
}

// Exponents returns the exponents of all terms present, in ascending order.
func (p Polynomial) Exponents() []int {
	p.checkTerms()
	keys := p.terms.Keys()
	exps := make([]int, len(keys))
	for k, key := range keys {
		exps[k] = key.(int)
	}
	return exps
}

// TermCount returns the number of terms present, including the constant term.
func (p Polynomial) TermCount() int {
	p.checkTerms()
	return p.terms.Size()
}

// Degree returns the highest exponent with a non-zero coefficient.
// The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	if p.IsZero() {
		return -1
	}
	key, _ := p.terms.Max()
	return key.(int)
}

// LeadingCoeff returns the coefficient of the highest-degree term.
func (p Polynomial) LeadingCoeff() float64 {
	p.checkTerms()
	_, value := p.terms.Max()
	return value.(float64)
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	return p.GetCoeffForTerm(0), p.TermCount() == 1
}

// IsZero checks wether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	c, isconst := p.IsConstant()
	return isconst && c == 0
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return p.terms != nil
}

// Coefficients returns the dense coefficient sequence of p, highest degree
// first, i.e. the input format of Roots. The zero polynomial yields [0].
func (p Polynomial) Coefficients() []float64 {
	d := p.Degree()
	if d < 0 {
		return []float64{0}
	}
	coeffs := make([]float64, d+1)
	it := p.terms.Iterator()
	for it.Next() {
		coeffs[d-it.Key().(int)] = it.Value().(float64)
	}
	return coeffs
}

// Eval evaluates p at z, using Horner's scheme.
func (p Polynomial) Eval(z complex128) complex128 {
	var v complex128
	for _, c := range p.Coefficients() {
		v = v*z + complex(c, 0)
	}
	return v
}

// CopyPolynomial makes a copy of a numeric Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0.0) // will become our return value
	p.checkTerms()
	it := p.terms.Iterator()
	for it.Next() { // copy all terms of p into p1
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	p1 := p.CopyPolynomial() // will become our return value
	p2.checkTerms()
	it := p2.terms.Iterator()
	for it.Next() { // inspect all terms of p2
		pos := it.Key().(int)
		p1.SetTerm(pos, p1.GetCoeffForTerm(pos)+it.Value().(float64))
	}
	return p1
}

// Multiply multiplies two Polynomials. Returns a new Polynomial.
func (p Polynomial) Multiply(p2 Polynomial) Polynomial {
	p.checkTerms()
	p2.checkTerms()
	p1 := NewConstantPolynomial(0.0)
	it := p.terms.Iterator()
	for it.Next() {
		i, a := it.Key().(int), it.Value().(float64)
		it2 := p2.terms.Iterator()
		for it2.Next() {
			j, b := it2.Key().(int), it2.Value().(float64)
			p1.SetTerm(i+j, p1.GetCoeffForTerm(i+j)+a*b)
		}
	}
	return p1
}

// Zap eliminates all terms with coefficient ≈ 0 from a polynomial.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	for _, pos := range p.Exponents() { // inspect terms
		if roots.Is0(p.GetCoeffForTerm(pos)) {
			p.SetTerm(pos, 0) // constant term stays, set to 0
		}
	}
	return p
}

// Roots returns all roots of p. See function Roots.
func (p Polynomial) Roots() []complex128 {
	return Roots(p.Coefficients())
}

// String creates a readable string representation for a Polynomial,
// highest degree first, e.g.
//
//	x^3 - 10x^2 + 31x - 30
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var buffer bytes.Buffer
	it := p.terms.Iterator()
	first := true
	for it.End(); it.Prev(); {
		pos, scale := it.Key().(int), it.Value().(float64)
		if scale == 0 { // only possible for constant term
			continue
		}
		if first {
			if scale < 0 {
				buffer.WriteString("-")
			}
			first = false
		} else if scale < 0 {
			buffer.WriteString(" - ")
		} else {
			buffer.WriteString(" + ")
		}
		a := math.Abs(scale)
		if a != 1 || pos == 0 {
			buffer.WriteString(fmt.Sprintf("%g", a))
		}
		switch {
		case pos == 1:
			buffer.WriteString("x")
		case pos > 1:
			buffer.WriteString(fmt.Sprintf("x^%d", pos))
		}
	}
	return buffer.String()
}
