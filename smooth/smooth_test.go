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

var nan = math.NaN()

func requireSeries(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), "element %d: want NaN, got %v", i, got[i])
			continue
		}
		require.InDelta(t, want[i], got[i], 1e-12, "element %d", i)
	}
}

func TestRollingBoxcar(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}

	got, err := Rolling(xs, Options{Size: 3})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, nan, 2, 3, 4, 5}, got)

	got, err = Rolling(xs, Options{Size: 3, Center: true})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, 2, 3, 4, 5, nan}, got)

	// Even windows reach one point further back.
	got, err = Rolling(xs, Options{Size: 4, Center: true})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, nan, 2.5, 3.5, 4.5, nan}, got)

	got, err = Rolling(xs, Options{Size: 3, Center: true, MinPeriods: 1})
	require.NoError(t, err)
	requireSeries(t, []float64{1.5, 2, 3, 4, 5, 5.5}, got)
}

func TestRollingMissing(t *testing.T) {
	xs := []float64{1, nan, 3, 4, 5}
	got, err := Rolling(xs, Options{Size: 3})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, nan, nan, nan, 4}, got)

	got, err = Rolling(xs, Options{Size: 3, MinPeriods: 2})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, nan, 2, 3.5, 4}, got)
}

func TestRollingWindowsPreserveConstants(t *testing.T) {
	xs := make([]float64, 40)
	for i := range xs {
		xs[i] = 7
	}
	for _, w := range []Window{Boxcar, Triang, Hann, Hamming, Blackman, Gaussian} {
		opts := DefaultOptions()
		opts.Window = w
		got, err := Rolling(xs, opts)
		require.NoError(t, err, w.String())
		for i := 7; i < len(xs)-7; i++ {
			require.InDelta(t, 7, got[i], 1e-9, "%v window at %d", w, i)
		}
		require.True(t, math.IsNaN(got[0]), "%v window at 0", w)
	}
}

func TestRollingWeighted(t *testing.T) {
	// A centered triangular window is symmetric, so a linear
	// series is unchanged.
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	got, err := Rolling(xs, Options{Size: 5, Center: true, Window: Triang})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, nan, 2, 3, 4, nan, nan}, got)
}

func TestTriangWeights(t *testing.T) {
	for n, want := range map[int][]float64{
		1: {1},
		2: {0.5, 0.5},
		3: {0.5, 1, 0.5},
		4: {0.25, 0.75, 0.75, 0.25},
		5: {1.0 / 3, 2.0 / 3, 1, 2.0 / 3, 1.0 / 3},
	} {
		got, err := Triang.weights(n, 0)
		require.NoError(t, err)
		require.InDeltaSlice(t, want, got, 1e-12, "size %d", n)
	}
}

func TestRollingTriangSmallSizes(t *testing.T) {
	got, err := Rolling([]float64{0, 0, 4, 0, 0}, Options{Size: 3, Center: true, Window: Triang, MinPeriods: 1})
	require.NoError(t, err)
	requireSeries(t, []float64{0, 1, 2, 1, 0}, got)

	got, err = Rolling([]float64{2, 4, 6}, Options{Size: 2, Window: Triang})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, 3, 5}, got)
}

func TestRollingErrors(t *testing.T) {
	_, err := Rolling([]float64{1}, Options{})
	require.ErrorIs(t, err, stats.ErrInvalidArgument)
	_, err = Rolling([]float64{1}, Options{Size: 2, MinPeriods: 3})
	require.ErrorIs(t, err, stats.ErrInvalidArgument)
	_, err = Rolling([]float64{1}, Options{Size: 2, Window: Window(42)})
	require.Error(t, err)
}

func TestParseWindow(t *testing.T) {
	for _, w := range []Window{Boxcar, Triang, Hann, Hamming, Blackman, Gaussian} {
		got, err := ParseWindow(w.String())
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	got, err := ParseWindow("BOXCAR")
	require.NoError(t, err)
	require.Equal(t, Boxcar, got)
	_, err = ParseWindow("kaiser")
	require.Error(t, err)
	require.Equal(t, "Window(9)", Window(9).String())
}

func TestRollingColumns(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	got, err := RollingColumns(m, Options{Size: 2})
	require.NoError(t, err)
	requireSeries(t, []float64{nan, 1.5, 2.5, 3.5}, mat.Col(nil, 0, got))
	requireSeries(t, []float64{nan, 15, 25, 35}, mat.Col(nil, 1, got))
}
