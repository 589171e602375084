// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"fmt"
	"math"

	"github.com/arnaupujol/stat-tools/stats"
	"gonum.org/v1/gonum/mat"
)

// Tophat1D convolves xs with a normalized tophat kernel of 2*radius+1
// points.
//
// Points beyond the ends of xs are taken to be 0. NaN points are
// interpolated: the kernel is renormalized over the non-NaN points it
// covers. A point whose whole kernel covers NaNs stays NaN.
func Tophat1D(xs []float64, radius int) ([]float64, error) {
	if radius < 0 {
		return nil, fmt.Errorf("tophat radius %d: %w", radius, stats.ErrInvalidArgument)
	}
	out := make([]float64, len(xs))
	for i := range xs {
		var sum, norm float64
		for j := i - radius; j <= i+radius; j++ {
			if j >= 0 && j < len(xs) {
				if math.IsNaN(xs[j]) {
					continue
				}
				sum += xs[j]
			}
			norm++
		}
		out[i] = convolved(sum, norm)
	}
	return out, nil
}

// Tophat2D convolves m with a normalized circular tophat kernel
// covering the points within radius of the center, using the same
// boundary and NaN rules as Tophat1D.
func Tophat2D(m mat.Matrix, radius float64) (*mat.Dense, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("tophat radius %g: %w", radius, stats.ErrInvalidArgument)
	}
	type offset struct{ di, dj int }
	var kernel []offset
	ext := int(math.Floor(radius))
	for di := -ext; di <= ext; di++ {
		for dj := -ext; dj <= ext; dj++ {
			if float64(di*di+dj*dj) <= radius*radius {
				kernel = append(kernel, offset{di, dj})
			}
		}
	}

	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum, norm float64
			for _, k := range kernel {
				ii, jj := i+k.di, j+k.dj
				if ii >= 0 && ii < r && jj >= 0 && jj < c {
					v := m.At(ii, jj)
					if math.IsNaN(v) {
						continue
					}
					sum += v
				}
				norm++
			}
			out.Set(i, j, convolved(sum, norm))
		}
	}
	return out, nil
}

func convolved(sum, norm float64) float64 {
	if norm == 0 {
		return math.NaN()
	}
	return sum / norm
}
