// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smooth implements smoothing of regularly sampled series:
// weighted rolling means and tophat kernel convolution.
//
// NaN marks a missing value in both inputs and outputs.
package smooth // import "github.com/arnaupujol/stat-tools/smooth"

import (
	"fmt"
	"math"

	"github.com/arnaupujol/stat-tools/stats"
	"gonum.org/v1/gonum/mat"
)

// Options configures a rolling mean.
type Options struct {
	// Size is the number of points in the window.
	Size int

	// Center labels each window by its central point instead of
	// its last point. For an even Size the window extends one
	// point further into the past.
	Center bool

	// Window is the window function weighting the points.
	Window Window

	// Sigma is the width of a Gaussian window relative to half the
	// window size. Zero selects 0.4.
	Sigma float64

	// MinPeriods is the minimum number of finite points needed in
	// a window to produce a value. Zero means Size, so any missing
	// point, including beyond the ends of the series, yields NaN.
	MinPeriods int
}

// DefaultOptions returns a centered 15-point boxcar window.
func DefaultOptions() Options {
	return Options{Size: 15, Center: true, Window: Boxcar}
}

// Rolling returns the rolling weighted mean of xs. Element i of the
// result is Σ w·x / Σ w over the finite points of the window at i, or
// NaN if it holds fewer than opts.MinPeriods finite points.
func Rolling(xs []float64, opts Options) ([]float64, error) {
	if opts.Size < 1 {
		return nil, fmt.Errorf("window size %d: %w", opts.Size, stats.ErrInvalidArgument)
	}
	minPeriods := opts.MinPeriods
	if minPeriods == 0 {
		minPeriods = opts.Size
	}
	if minPeriods < 0 || minPeriods > opts.Size {
		return nil, fmt.Errorf("min periods %d for window size %d: %w", opts.MinPeriods, opts.Size, stats.ErrInvalidArgument)
	}
	w, err := opts.Window.weights(opts.Size, opts.Sigma)
	if err != nil {
		return nil, err
	}

	offset := opts.Size - 1
	if opts.Center {
		offset = opts.Size / 2
	}
	out := make([]float64, len(xs))
	for i := range xs {
		var sum, norm float64
		n := 0
		for k, wk := range w {
			j := i - offset + k
			if j < 0 || j >= len(xs) || math.IsNaN(xs[j]) {
				continue
			}
			sum += wk * xs[j]
			norm += wk
			n++
		}
		if n < minPeriods || norm == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / norm
		}
	}
	return out, nil
}

// RollingColumns applies Rolling to each column of m.
func RollingColumns(m mat.Matrix, opts Options) (*mat.Dense, error) {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		s, err := Rolling(mat.Col(col, j, m), opts)
		if err != nil {
			return nil, err
		}
		out.SetCol(j, s)
	}
	return out, nil
}
