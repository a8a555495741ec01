package polyn

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIsDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, IsDegenerate(nil))
	assert.True(t, IsDegenerate([]float64{}))
	assert.True(t, IsDegenerate([]float64{0, 0, 0}))
	assert.False(t, IsDegenerate([]float64{0, 1e-300, 0}), "zero test must be exact")
	assert.False(t, IsDegenerate([]float64{5}))
}

func TestNormalizeStripsZeros(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := []float64{0, 0, 1, 0, -4, 0, 0, 0}
	n := Normalize(input)
	assert.Equal(t, []float64{1, 0, -4}, n.Reduced)
	assert.Equal(t, 3, n.ZeroRoots)
	assert.Equal(t, 2, n.Degree())
	assert.Equal(t, []float64{0, 0, 1, 0, -4, 0, 0, 0}, input, "input must not be modified")
}

func TestNormalizeNothingToStrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := []float64{3.2, 2, 1}
	n := Normalize(input)
	assert.Equal(t, input, n.Reduced)
	assert.Equal(t, 0, n.ZeroRoots)
	n.Reduced[0] = 99
	assert.Equal(t, 3.2, input[0], "reduced sequence must be a copy")
}

func TestNormalizeBoundaries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	n := Normalize([]float64{0, 0, 0})
	assert.Empty(t, n.Reduced)
	assert.Equal(t, 0, n.ZeroRoots)
	assert.Equal(t, -1, n.Degree())
	n = Normalize(nil)
	assert.Equal(t, -1, n.Degree())
	n = Normalize([]float64{0, 7, 0})
	assert.Equal(t, []float64{7}, n.Reduced)
	assert.Equal(t, 1, n.ZeroRoots)
	assert.Equal(t, 0, n.Degree())
}
