// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ChiSquare returns the mean chi-square value between two measured
// variables v1 and v2 with errors e1 and e2:
//
//	mean((v1-v2)² / (e1²+e2²))
//
// If useErr is false, the errors are ignored and this is the mean
// squared difference. All four slices must have the same length even
// when the errors are unused. Entries where either variable (or,
// with useErr, either error) is not finite are skipped.
func ChiSquare(v1, e1, v2, e2 []float64, useErr bool) (float64, error) {
	n := len(v1)
	if len(e1) != n || len(v2) != n || len(e2) != n {
		return nan, fmt.Errorf("chi-square of %d, %d, %d and %d values: %w", n, len(e1), len(v2), len(e2), ErrShapeMismatch)
	}

	var sum float64
	var used int
	for i := range v1 {
		if !finite(v1[i]) || !finite(v2[i]) {
			continue
		}
		d := v1[i] - v2[i]
		if useErr {
			if !finite(e1[i]) || !finite(e2[i]) {
				continue
			}
			sum += d * d / (e1[i]*e1[i] + e2[i]*e2[i])
		} else {
			sum += d * d
		}
		used++
	}
	if used == 0 {
		return nan, fmt.Errorf("chi-square: no finite entries: %w", ErrSampleSize)
	}
	return sum / float64(used), nil
}

// ChiSquareMat is like ChiSquare, but for matrix-shaped variables.
// All four matrices must have the same dimensions.
func ChiSquareMat(v1, e1, v2, e2 mat.Matrix, useErr bool) (float64, error) {
	r, c := v1.Dims()
	for _, m := range []mat.Matrix{e1, v2, e2} {
		if mr, mc := m.Dims(); mr != r || mc != c {
			return nan, fmt.Errorf("chi-square of %d×%d and %d×%d matrices: %w", r, c, mr, mc, ErrShapeMismatch)
		}
	}
	return ChiSquare(flatten(v1), flatten(e1), flatten(v2), flatten(e2), useErr)
}

func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
