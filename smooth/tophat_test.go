// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"math"
	"testing"

	"github.com/arnaupujol/stat-tools/stats"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTophat1D(t *testing.T) {
	got, err := Tophat1D([]float64{3, 3, 3, 3}, 1)
	require.NoError(t, err)
	// The ends see one zero-filled point.
	requireSeries(t, []float64{2, 3, 3, 2}, got)

	got, err = Tophat1D([]float64{0, 0, 9, 0, 0}, 1)
	require.NoError(t, err)
	requireSeries(t, []float64{0, 3, 3, 3, 0}, got)

	// NaNs are interpolated from their neighbours.
	got, err = Tophat1D([]float64{3, nan, 5, 1}, 1)
	require.NoError(t, err)
	requireSeries(t, []float64{1.5, 4, 3, 2}, got)

	got, err = Tophat1D([]float64{1, 2}, 0)
	require.NoError(t, err)
	requireSeries(t, []float64{1, 2}, got)

	_, err = Tophat1D([]float64{1}, -1)
	require.ErrorIs(t, err, stats.ErrInvalidArgument)
}

func TestTophat2D(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 5, 0,
		0, 0, 0,
	})
	// Radius 1 covers the center and its 4 direct neighbours.
	got, err := Tophat2D(m, 1)
	require.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 1, 1,
		0, 1, 0,
	})
	require.True(t, mat.EqualApprox(want, got, 1e-12), "got %v", mat.Formatted(got))

	m.Set(0, 0, math.NaN())
	got, err = Tophat2D(m, 1)
	require.NoError(t, err)
	// (0,0) sees 2 out-of-range points, its NaN, and 2 zeros.
	require.InDelta(t, 0, got.At(0, 0), 1e-12)
	// (1,0) sees 1 out-of-range point, the NaN, 0, 5 and 0.
	require.InDelta(t, 5.0/4, got.At(1, 0), 1e-12)

	_, err = Tophat2D(m, -1)
	require.ErrorIs(t, err, stats.ErrInvalidArgument)
}
