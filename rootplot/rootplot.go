// Package rootplot draws roots of polynomials in the complex plane.
/*
Real roots are drawn as circles, complex roots as triangles. The unit
circle is drawn for orientation.
The plot window is square and centered at the origin, so roots of equal
magnitude appear on a common circle.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rootplot

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/roots"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tiff
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// tracer writes to trace with key 'roots'
func tracer() tracing.Trace {
	return tracing.Select("roots")
}

// circleSegments is the number of line segments approximating the unit circle.
const circleSegments = 96

// Points converts roots to plot coordinates (Re, Im). Roots with NaN or
// infinite parts are skipped.
func Points(rs []complex128) plotter.XYs {
	xys := make(plotter.XYs, 0, len(rs))
	for _, z := range rs {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			tracer().Infof("cannot plot root %v", z)
			continue
		}
		xys = append(xys, plotter.XY{X: real(z), Y: imag(z)})
	}
	return xys
}

// Partition splits plottable roots into real ones and the others, using
// roots.Root.IsReal.
func Partition(rs []complex128) (onAxis, offAxis plotter.XYs) {
	for _, xy := range Points(rs) {
		if roots.R(xy.X, xy.Y).IsReal() {
			onAxis = append(onAxis, xy)
		} else {
			offAxis = append(offAxis, xy)
		}
	}
	return
}

// Radius returns the half-width of the plot window for roots: 10% more than
// the largest magnitude, at least 1.1.
func Radius(xys plotter.XYs) float64 {
	r := 1.0
	for _, xy := range xys {
		r = math.Max(r, math.Hypot(xy.X, xy.Y))
	}
	return 1.1 * r
}

// Plot creates a scatter plot of roots in the complex plane. Real roots are
// drawn as circles, complex roots as triangles.
func Plot(rs []complex128, title string) (*plot.Plot, error) {
	xys := Points(rs)
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	r := Radius(xys)
	p.X.Min, p.X.Max = -r, r
	p.Y.Min, p.Y.Max = -r, r
	p.Add(plotter.NewGrid())
	unit, err := plotter.NewLine(unitCircle())
	if err != nil {
		return nil, err
	}
	unit.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(unit)
	onAxis, offAxis := Partition(rs)
	for _, group := range []struct {
		xys   plotter.XYs
		glyph draw.GlyphDrawer
	}{
		{onAxis, draw.CircleGlyph{}},
		{offAxis, draw.TriangleGlyph{}},
	} {
		if len(group.xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(group.xys)
		if err != nil {
			return nil, fmt.Errorf("roots plot: %w", err)
		}
		s.GlyphStyle.Shape = group.glyph
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}
	tracer().Debugf("plotting %d roots, window ±%.3g", len(xys), r)
	return p, nil
}

// Save plots roots and writes the plot to file. The image format is derived
// from the file extension: png, jpg, tif, svg or pdf.
func Save(rs []complex128, title, file string, w, h vg.Length) error {
	p, err := Plot(rs, title)
	if err != nil {
		return err
	}
	if err = p.Save(w, h, file); err != nil {
		tracer().Errorf("cannot save roots plot: %v", err)
		return err
	}
	return nil
}

func unitCircle() plotter.XYs {
	xys := make(plotter.XYs, circleSegments+1)
	for i := range xys {
		phi := 2 * math.Pi * float64(i) / circleSegments
		xys[i].X, xys[i].Y = math.Cos(phi), math.Sin(phi)
	}
	return xys
}
