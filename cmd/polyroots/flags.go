package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/roots/eigen"
	"github.com/npillmayer/roots/polyn"
	"github.com/npillmayer/schuko"
)

var errHelp = flag.ErrHelp

// options holds the parsed command line.
type options struct {
	conf       schuko.Configuration // root finding settings, see polyn.ConfigFrom
	coeffs     []float64
	sort       bool
	residuals  bool
	plot       string
	traceLevel string
}

// flagKeys maps configuration keys to the flags providing them.
var flagKeys = map[string]string{
	polyn.KeyTolerance:     "tol",
	polyn.KeyMaxIterations: "maxiter",
	polyn.KeyLinear:        "linear",
	polyn.KeySolver:        "solver",
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("polyroots", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("solver", "qr", "eigenvalue solver: qr, lapack")
	fs.Float64("tol", eigen.DefaultTolerance, "convergence tolerance of the QR solver")
	fs.Int("maxiter", eigen.DefaultMaxIterations, "iteration budget of the QR solver")
	fs.Bool("linear", true, "solve degree-1 polynomials directly")
	opts := &options{}
	fs.BoolVar(&opts.sort, "sort", false, "sort roots by real part, then imaginary part")
	fs.BoolVar(&opts.residuals, "residuals", false, "print |p(z)| for every root z")
	fs.StringVar(&opts.plot, "plot", "", "write a plot of the roots to `file`")
	fs.StringVar(&opts.traceLevel, "trace", "error", "trace level: error, info, debug")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: polyroots [flags] [--] c0 c1 … cn")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch strings.ToLower(opts.traceLevel) {
	case "error", "info", "debug":
	default:
		return nil, fmt.Errorf("invalid trace level %q", opts.traceLevel)
	}
	switch s := fs.Lookup("solver").Value.String(); s {
	case "qr", "lapack":
	default:
		return nil, fmt.Errorf("unknown solver %q", s)
	}
	if tol := fs.Lookup("tol").Value.(flag.Getter).Get().(float64); tol <= 0 {
		return nil, fmt.Errorf("tolerance must be positive, is %g", tol)
	}
	if n := fs.Lookup("maxiter").Value.(flag.Getter).Get().(int); n <= 0 {
		return nil, fmt.Errorf("iteration budget must be positive, is %d", n)
	}
	coeffs, err := parseCoefficients(fs.Args())
	if err != nil {
		return nil, err
	}
	opts.coeffs = coeffs
	opts.conf = newFlagConfig(fs)
	return opts, nil
}

// parseCoefficients reads coefficients from arguments, each holding one or
// more comma-separated numbers.
func parseCoefficients(args []string) ([]float64, error) {
	var coeffs []float64
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			c, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coefficient %q", s)
			}
			coeffs = append(coeffs, c)
		}
	}
	if len(coeffs) == 0 {
		return nil, errors.New("no coefficients given")
	}
	return coeffs, nil
}

// flagConfig presents command line flags as a schuko.Configuration.
// Flags left at their defaults count as not set.
type flagConfig struct {
	fs  *flag.FlagSet
	set map[string]bool
}

var _ schuko.Configuration = flagConfig{}

func newFlagConfig(fs *flag.FlagSet) flagConfig {
	c := flagConfig{fs: fs, set: make(map[string]bool)}
	fs.Visit(func(f *flag.Flag) {
		c.set[f.Name] = true
	})
	return c
}

func (c flagConfig) InitDefaults() {}

func (c flagConfig) IsSet(key string) bool {
	name, ok := flagKeys[key]
	return ok && c.set[name]
}

func (c flagConfig) GetString(key string) string {
	if name, ok := flagKeys[key]; ok {
		return c.fs.Lookup(name).Value.String()
	}
	return ""
}

func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (c flagConfig) IsInteractive() bool { return false }
