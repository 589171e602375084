// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decomp implements linear dimensionality reduction of data
// matrices: SVD whitening and principal component analysis.
//
// Data matrices hold one object per row and one property per column.
package decomp // import "github.com/arnaupujol/stat-tools/decomp"

import (
	"errors"
	"fmt"
	"math"

	"github.com/arnaupujol/stat-tools/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrSingular is returned when the data does not span all of
	// its property dimensions, so it cannot be whitened.
	ErrSingular = errors.New("data matrix is singular")

	// ErrFactorize is returned when a matrix decomposition fails
	// to converge.
	ErrFactorize = errors.New("matrix factorization failed")
)

// singularTol is the smallest singular value, relative to the
// largest, that Whiten accepts.
const singularTol = 1e-12

// Whiten whitens the data matrix x using the singular value
// decomposition of R = xᵀx = U S Vᵀ.
//
// It returns the whitening transform P = S^(-1/2) Uᵀ and the whitened
// data xw = x Pᵀ, for which xwᵀxw is the identity. Note that R is not
// centered: x should already be centered if whitening of the
// covariance is intended.
func Whiten(x mat.Matrix) (xw, p *mat.Dense, err error) {
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, nil, stats.ErrSampleSize
	}

	var rr mat.Dense
	rr.Mul(x.T(), x)
	var svd mat.SVD
	if !svd.Factorize(&rr, mat.SVDFull) {
		return nil, nil, fmt.Errorf("SVD of %d×%d matrix: %w", c, c, ErrFactorize)
	}
	s := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	inv := make([]float64, c)
	for i, v := range s {
		if v <= s[0]*singularTol {
			return nil, nil, fmt.Errorf("singular value %d is %g: %w", i, v, ErrSingular)
		}
		inv[i] = 1 / math.Sqrt(v)
	}

	p = new(mat.Dense)
	p.Mul(mat.NewDiagDense(c, inv), u.T())
	xw = new(mat.Dense)
	xw.Mul(x, p.T())
	return xw, p, nil
}

// PCAResult is the result of a principal component analysis.
type PCAResult struct {
	// Projected is the centered data projected onto the principal
	// components, one column per component.
	Projected *mat.Dense

	// Values are the variances along each component and Vectors
	// holds the components as columns, in the order the
	// eigendecomposition produced them. Components are not ranked
	// by variance.
	Values  []float64
	Vectors *mat.Dense

	// Means are the column means removed before the projection.
	Means []float64
}

// PCA centers the columns of x, computes their covariance matrix
// xᵀx/(n-1) and projects the centered data onto its eigenvectors.
func PCA(x mat.Matrix) (*PCAResult, error) {
	r, c := x.Dims()
	if r < 2 || c == 0 {
		return nil, stats.ErrSampleSize
	}

	means := make([]float64, c)
	col := make([]float64, r)
	for j := range means {
		means[j] = stat.Mean(mat.Col(col, j, x), nil)
	}
	var xc mat.Dense
	xc.Apply(func(_, j int, v float64) float64 { return v - means[j] }, x)

	cov := mat.NewSymDense(c, nil)
	stat.CovarianceMatrix(cov, &xc, nil)

	var es mat.EigenSym
	if !es.Factorize(cov, true) {
		return nil, fmt.Errorf("eigendecomposition of %d×%d covariance: %w", c, c, ErrFactorize)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(&xc, &vecs)
	return &PCAResult{
		Projected: &proj,
		Values:    es.Values(nil),
		Vectors:   &vecs,
		Means:     means,
	}, nil
}
