// Command polyroots prints the roots of a polynomial.
//
// Usage:
//
//	polyroots [flags] [--] c0 c1 … cn
//
// Coefficients are given highest degree first, i.e. c0·xⁿ + … + cn.
// A single argument may hold several coefficients, separated by commas.
// Put "--" in front of the coefficients if the first one is negative.
//
// Flags:
//
//	-solver     eigenvalue solver: qr, lapack (default: qr)
//	-tol        convergence tolerance of the QR solver (default: 1e-6)
//	-maxiter    iteration budget of the QR solver (default: 10000)
//	-linear     solve degree-1 polynomials directly (default: true)
//	-sort       sort roots by real part, then imaginary part
//	-residuals  print |p(z)| for every root z
//	-plot       write a plot of the roots to a file (png, svg, pdf)
//	-trace      trace level: error, info, debug (default: error)
//
// Exit status is 0 if all roots have been found, 1 if some are missing and
// 2 for invalid arguments.
package main

import (
	"fmt"
	"io"
	"math/cmplx"
	"os"

	"github.com/npillmayer/roots"
	"github.com/npillmayer/roots/polyn"
	"github.com/npillmayer/roots/rootplot"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"gonum.org/v1/plot/vg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == errHelp {
			return 0
		}
		fmt.Fprintf(stderr, "polyroots: %v\n", err)
		return 2
	}
	setupTracing(opts.traceLevel, stderr)

	conf := polyn.ConfigFrom(opts.conf)
	p := polyn.FromCoefficients(opts.coeffs)
	tracing.Select("roots").Infof("p(x) = %v, solver %s", p, opts.conf.GetString(polyn.KeySolver))
	res, err := polyn.FindRoots(opts.coeffs, conf)
	if opts.sort {
		roots.SortRoots(res.Roots)
	}
	for _, r := range roots.Wrap(res.Roots) {
		if opts.residuals {
			fmt.Fprintf(stdout, "%s\t|p(z)| = %.3g\n", format(r), cmplx.Abs(p.Eval(r.C())))
		} else {
			fmt.Fprintln(stdout, format(r))
		}
	}
	if opts.plot != "" {
		title := fmt.Sprintf("roots of %v", p)
		if perr := rootplot.Save(res.Roots, title, opts.plot, 5*vg.Inch, 5*vg.Inch); perr != nil {
			fmt.Fprintf(stderr, "polyroots: %v\n", perr)
			return 1
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "polyroots: %v\n", err)
		return 1
	}
	if !res.Complete() {
		fmt.Fprintf(stderr, "polyroots: %d of %d roots not determined\n", res.Omitted, res.Degree)
		return 1
	}
	return 0
}

// format prints a root with 8 significant digits, zapping parts ≈ 0.
func format(r roots.Root) string {
	r = r.Zap()
	return fmt.Sprintf("%.8g%+.8gi", r.Re(), r.Im())
}

// setupTracing routes the 'roots' trace and the equations trace to a Go logger.
func setupTracing(level string, w io.Writer) {
	adapter := gologadapter.GetAdapter()
	if err := gtrace.CreateTracers(adapter); err != nil {
		fmt.Fprintf(w, "polyroots: %v\n", err)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	l := tracing.TraceLevelFromString(level)
	for _, t := range []tracing.Trace{tracing.Select("roots"), gtrace.EquationsTracer} {
		t.SetOutput(w)
		t.SetTraceLevel(l)
	}
}
