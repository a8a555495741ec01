package polyn

import (
	"strconv"
	"strings"

	"github.com/npillmayer/roots/eigen"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyTolerance     = "roots.tolerance"     // float, > 0
	KeyMaxIterations = "roots.maxiterations" // int, > 0
	KeyLinear        = "roots.linear"        // bool
	KeySolver        = "roots.solver"        // "qr" or "lapack"
)

// ConfigFrom creates a root finding configuration from an application
// configuration. Keys not set or holding invalid values leave the defaults of
// DefaultConfig in place.
func ConfigFrom(conf schuko.Configuration) Config {
	c := DefaultConfig()
	if conf == nil {
		return c
	}
	if conf.IsSet(KeyTolerance) {
		s := conf.GetString(KeyTolerance)
		if tol, err := strconv.ParseFloat(s, 64); err == nil && tol > 0 {
			c.Tolerance = tol
		} else {
			T().Errorf("config: invalid %s = %q, using %g", KeyTolerance, s, c.Tolerance)
		}
	}
	if conf.IsSet(KeyMaxIterations) {
		if n := conf.GetInt(KeyMaxIterations); n > 0 {
			c.MaxIterations = n
		} else {
			T().Errorf("config: invalid %s, using %d", KeyMaxIterations, c.MaxIterations)
		}
	}
	if conf.IsSet(KeyLinear) {
		c.Linear = conf.GetBool(KeyLinear)
	}
	if conf.IsSet(KeySolver) {
		switch s := strings.ToLower(conf.GetString(KeySolver)); s {
		case "qr", "":
			c.Solver = nil
		case "lapack":
			c.Solver = eigen.Lapack{}
		default:
			T().Errorf("config: unknown %s = %q, using QR", KeySolver, s)
		}
	}
	return c
}
