package companion

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestBuildCubic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, err := Build([]float64{1, -10, 31, -30})
	assert.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{
		0, 0, 30,
		1, 0, -31,
		0, 1, 10,
	})
	assert.True(t, mat.Equal(want, m), "got\n%v", mat.Formatted(m))
}

func TestBuildNormalizesByLeadingCoefficient(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, err := Build([]float64{3.2, 2.0, 1.0})
	assert.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.InDelta(t, -1.0/3.2, m.At(0, 1), 1e-15)
	assert.InDelta(t, -2.0/3.2, m.At(1, 1), 1e-15)
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(0, 0))
}

func TestBuildStructure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	coeffs := []float64{2, 4, 6, 8, 10, 12}
	m, err := Build(coeffs)
	assert.NoError(t, err)
	d := Degree(coeffs)
	assert.Equal(t, 5, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d-1; j++ {
			if i == j+1 {
				assert.Equal(t, 1.0, m.At(i, j), "subdiagonal (%d,%d)", i, j)
			} else {
				assert.Equal(t, 0.0, m.At(i, j), "entry (%d,%d)", i, j)
			}
		}
	}
	// last column, top to bottom: constant term first
	assert.Equal(t, []float64{-6, -5, -4, -3, -2}, mat.Col(nil, d-1, m))
}

func TestBuildSmallDegrees(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range [][]float64{nil, {5}, {2, -4}} {
		m, err := Build(c)
		assert.NoError(t, err)
		assert.Nil(t, m, "no matrix for degree %d", Degree(c))
	}
}

func TestBuildRejectsZeroLeading(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Build([]float64{0, 1, 2})
	assert.ErrorIs(t, err, ErrZeroLeading)
}
