package roots

import (
	"math/cmplx"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.False(t, Is0(0.001))
	assert.Equal(t, 0.0, Zap(-0.00000001))
	assert.Equal(t, 0.5, Zap(0.5))
}

func TestRootBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := R(3, 2)
	q := R(-3, -2)
	if !(r + q).IsZero() {
		t.Errorf("Expected r + q to be (0,0), is %v", r+q)
	}
	assert.Equal(t, "3+2i", r.String())
	assert.Equal(t, "-3-2i", q.String())
	assert.False(t, r.IsReal())
	assert.True(t, R(7, 0.00000001).IsReal())
}

func TestRootFromNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Zero, C2R(cmplx.NaN()))
	assert.Equal(t, Zero, C2R(cmplx.Inf()))
	rs := Wrap([]complex128{1 + 1i, 2, cmplx.NaN()})
	assert.Len(t, rs, 3)
	assert.Equal(t, 2.0, rs[1].Re())
	assert.True(t, rs[2].IsZero())
}

func TestRootEqualIsSymmetric(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a is nearly 0 in its real part, b is not
	a := R(0.00000005, 1)
	b := R(0.00000012, 1)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	c := R(-0.00000003, 1)
	assert.False(t, b.Equal(c), "parts differ by more than Epsilon")
	assert.False(t, c.Equal(b))
}

func TestSameRootsIgnoresOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	got := []complex128{5.0000001, 2, 3 - 0.0000001i}
	want := []complex128{2, 3, 5}
	assert.True(t, SameRoots(got, want, 1e-6))
	assert.False(t, SameRoots(got, []complex128{2, 3, 6}, 1e-6))
	assert.False(t, SameRoots(got, want[:2], 1e-6))
}

func TestSameRootsMatchesDistinctly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// one got-root must not satisfy two wanted roots
	got := []complex128{1, 4}
	want := []complex128{1, 1}
	assert.False(t, SameRoots(got, want, 1e-6))
	assert.True(t, SameRoots([]complex128{0, 0}, []complex128{0, 0}, 0))
}

func TestSortRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rs := []complex128{5, -1 + 2i, -1 - 2i, 0}
	SortRoots(rs)
	assert.Equal(t, []complex128{-1 - 2i, -1 + 2i, 0, 5}, rs)
	assert.Equal(t, 1, CountZeros(rs))
}
