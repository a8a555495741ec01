package rootplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	xys := Points([]complex128{2, complex(-1, 3), complex(math.NaN(), 0), complex(0, math.Inf(1))})
	assert.Len(t, xys, 2)
	assert.Equal(t, -1.0, xys[1].X)
	assert.Equal(t, 3.0, xys[1].Y)
	assert.InDelta(t, 1.1*math.Sqrt(10), Radius(xys), 1e-12)
	assert.InDelta(t, 1.1, Radius(nil), 1e-12)
}

func TestPartition(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	onAxis, offAxis := Partition([]complex128{2, complex(-0.3125, 0.4635), complex(-0.3125, -0.4635),
		complex(5, 0.00000001), complex(math.NaN(), 1)})
	assert.Len(t, onAxis, 2)
	assert.Len(t, offAxis, 2)
	assert.Equal(t, 5.0, onAxis[1].X)
}

func TestPlotWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := Plot([]complex128{5, complex(-0.3125, 0.4635)}, "p(x)")
	assert.NoError(t, err)
	assert.Equal(t, "p(x)", p.Title.Text)
	assert.InDelta(t, -5.5, p.X.Min, 1e-12)
	assert.InDelta(t, 5.5, p.Y.Max, 1e-12)
}

func TestSave(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	for _, rs := range [][]complex128{nil, {2, 3, 5}, {1i, -1i}} {
		file := filepath.Join(dir, "roots.png")
		err := Save(rs, "roots", file, 4*vg.Inch, 4*vg.Inch)
		assert.NoError(t, err)
		info, err := os.Stat(file)
		if assert.NoError(t, err) {
			assert.Greater(t, info.Size(), int64(0))
		}
	}
	err := Save([]complex128{1}, "roots", filepath.Join(dir, "roots.unknown"), vg.Inch, vg.Inch)
	assert.Error(t, err)
}
