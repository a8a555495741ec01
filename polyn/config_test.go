package polyn

import (
	"testing"

	"github.com/npillmayer/roots/eigen"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, DefaultConfig(), ConfigFrom(nil))
	assert.Equal(t, DefaultConfig(), ConfigFrom(testconfig.Conf{}))
}

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := ConfigFrom(testconfig.Conf{
		"roots.tolerance":     "1e-10",
		"roots.maxiterations": 500,
		"roots.linear":        false,
		"roots.solver":        "LAPACK",
	})
	assert.Equal(t, 1e-10, conf.Tolerance)
	assert.Equal(t, 500, conf.MaxIterations)
	assert.False(t, conf.Linear)
	assert.Equal(t, eigen.Lapack{}, conf.Solver)
}

func TestConfigFromInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := ConfigFrom(testconfig.Conf{
		"roots.tolerance":     "fast",
		"roots.maxiterations": "-3",
		"roots.solver":        "jacobi",
	})
	assert.Equal(t, DefaultConfig(), conf)
}

func TestConfigDrivesFindRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := testconfig.Conf{}
	c.Set("roots.linear", "false")
	res, err := FindRoots([]float64{2, -4}, ConfigFrom(c))
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Omitted)
	c.Set("roots.linear", "true")
	res, err = FindRoots([]float64{2, -4}, ConfigFrom(c))
	assert.NoError(t, err)
	assert.Equal(t, []complex128{2}, res.Roots)
}
