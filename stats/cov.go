// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// VecCov returns the covariance between the vector variables x and y.
//
// x and y hold realizations of an m-dimensional vector, one per row,
// so they must have the same number of columns. A single vector is a
// 1×m matrix. Each input is centered on its grand mean and the
// covariance is the mean of all entries of x·yᵀ. If normed is true,
// the result is divided by the square root of the product of the
// auto-covariances of x and y, giving a value in [-1, 1].
func VecCov(x, y mat.Matrix, normed bool) (float64, error) {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xc != yc {
		return nan, fmt.Errorf("covariance of %d- and %d-vectors: %w", xc, yc, ErrShapeMismatch)
	}
	if xr == 0 || yr == 0 || xc == 0 {
		return nan, ErrSampleSize
	}

	dx, dy := centered(x), centered(y)
	cov := meanProduct(dx, dy)
	if !normed {
		return cov, nil
	}
	return cov / math.Sqrt(meanProduct(dx, dx)*meanProduct(dy, dy)), nil
}

// VecCovMat returns the n×n covariance matrix between the vector
// variables x[i] and y[j]. Each x[i] and y[j] holds l realizations of
// an m-dimensional vector, as for VecCov.
func VecCovMat(x, y []mat.Matrix, normed bool) (*mat.Dense, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("covariance matrix of %d and %d variables: %w", len(x), len(y), ErrShapeMismatch)
	}
	if len(x) == 0 {
		return nil, ErrSampleSize
	}

	cov := mat.NewDense(len(x), len(y), nil)
	for i := range x {
		for j := range y {
			c, err := VecCov(x[i], y[j], normed)
			if err != nil {
				return nil, fmt.Errorf("variables %d, %d: %w", i, j, err)
			}
			cov.Set(i, j, c)
		}
	}
	return cov, nil
}

// centered returns a copy of m minus its grand mean.
func centered(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	mean := mat.Sum(m) / float64(r*c)
	var d mat.Dense
	d.Apply(func(_, _ int, v float64) float64 { return v - mean }, m)
	return &d
}

func meanProduct(a, b *mat.Dense) float64 {
	var p mat.Dense
	p.Mul(a, b.T())
	r, c := p.Dims()
	return mat.Sum(&p) / float64(r*c)
}
