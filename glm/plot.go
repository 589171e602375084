// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// curvePoints is the number of points Fit draws on its plot.
const curvePoints = 100

// DefaultStyle returns a dashed black line 2 points wide.
func DefaultStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.Black,
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(6), vg.Points(3)},
	}
}

// Curve returns the prediction curve of a model fitted with Fit,
// sampled at n evenly spaced points between the smallest and largest
// regressor values.
func (r *Result) Curve(n int) (plotter.XYs, error) {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), r.xmin, r.xmax)
	ys, err := r.Predict(xs...)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return xys, nil
}

// AddCurve draws the prediction curve of r, sampled at n points, on p
// with the given line style.
func (r *Result) AddCurve(p *plot.Plot, n int, style draw.LineStyle) error {
	xys, err := r.Curve(n)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle = style
	p.Add(line)
	return nil
}
