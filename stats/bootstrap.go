// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// BootstrapResample returns a resample of xs with replacement. The
// result has the same length as xs.
func BootstrapResample(xs []float64, rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, ErrNoSource
	}
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = xs[rng.IntN(len(xs))]
	}
	return out, nil
}

// BootstrapResampleRows returns a resample with replacement of the
// rows of m, keeping the values of each row together.
func BootstrapResampleRows(m mat.Matrix, rng *rand.Rand) (*mat.Dense, error) {
	if rng == nil {
		return nil, ErrNoSource
	}
	r, c := m.Dims()
	if r == 0 {
		return nil, ErrSampleSize
	}
	out := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		out.SetRow(i, mat.Row(row, rng.IntN(r), m))
	}
	return out, nil
}

// BootstrapResult is the result of a Bootstrap estimate of the mean.
type BootstrapResult struct {
	// Mean is the mean of the original data.
	Mean float64

	// Err is the Bootstrap error of Mean: the population standard
	// deviation of the resample means.
	Err float64

	// ResampleMean is the mean over all resample means.
	ResampleMean float64
}

// BootstrapMeanErr estimates the mean of xs and its error from nrands
// Bootstrap resamples.
func BootstrapMeanErr(xs []float64, nrands int, rng *rand.Rand) (BootstrapResult, error) {
	if len(xs) == 0 {
		return BootstrapResult{nan, nan, nan}, ErrSampleSize
	}
	if nrands < 1 {
		return BootstrapResult{nan, nan, nan}, fmt.Errorf("%d Bootstrap resamples: %w", nrands, ErrInvalidArgument)
	}

	means := make([]float64, nrands)
	for i := range means {
		r, err := BootstrapResample(xs, rng)
		if err != nil {
			return BootstrapResult{nan, nan, nan}, err
		}
		means[i] = Mean(r)
	}
	s := Sample{Xs: means}
	return BootstrapResult{
		Mean:         Mean(xs),
		Err:          s.PopStdDev(),
		ResampleMean: s.Mean(),
	}, nil
}

// PearsonResult is the Bootstrap estimate of a Pearson correlation.
type PearsonResult struct {
	// N is the number of (x, y) pairs.
	N int

	// R is the Pearson correlation coefficient of the original
	// sample and P its two-sided p-value under the null hypothesis
	// of no correlation.
	R, P float64

	// Err is the population standard deviation of the resampled
	// correlation coefficients.
	Err float64

	// CI95 and CI68 are the 95% and 68% confidence intervals taken
	// from the sorted resampled coefficients by nearest rank, at
	// indices floor(nrands*0.05), floor(nrands*0.95) and
	// floor(nrands*0.32), floor(nrands*0.68), clamped to the kept
	// resamples.
	CI95, CI68 [2]float64

	// Resamples is the number of resamples with a defined
	// coefficient. A resample that repeats a single point has an
	// undefined coefficient and is dropped.
	Resamples int
}

// BootstrapPearson computes the Pearson correlation of x and y and
// estimates its error and confidence intervals from nrands Bootstrap
// resamples of the (x, y) pairs.
func BootstrapPearson(x, y []float64, nrands int, rng *rand.Rand) (PearsonResult, error) {
	res := PearsonResult{N: len(x), R: nan, P: nan, Err: nan}
	if len(x) != len(y) {
		return res, fmt.Errorf("correlation of %d and %d values: %w", len(x), len(y), ErrShapeMismatch)
	}
	if len(x) < 2 {
		return res, ErrSampleSize
	}
	if nrands < 1 {
		return res, fmt.Errorf("%d Bootstrap resamples: %w", nrands, ErrInvalidArgument)
	}
	if rng == nil {
		return res, ErrNoSource
	}

	res.R = stat.Correlation(x, y, nil)
	res.P = pearsonP(res.R, len(x))

	rs := make([]float64, 0, nrands)
	rx, ry := make([]float64, len(x)), make([]float64, len(y))
	for i := 0; i < nrands; i++ {
		for j := range rx {
			k := rng.IntN(len(x))
			rx[j], ry[j] = x[k], y[k]
		}
		if r := stat.Correlation(rx, ry, nil); !math.IsNaN(r) {
			rs = append(rs, r)
		}
	}
	res.Resamples = len(rs)
	if len(rs) == 0 {
		return res, fmt.Errorf("no resample has a defined correlation: %w", ErrSampleSize)
	}

	s := (&Sample{Xs: rs}).Sort()
	res.Err = s.PopStdDev()
	res.CI95 = rankCI(s.Xs, nrands, 0.05, 0.95)
	res.CI68 = rankCI(s.Xs, nrands, 0.32, 0.68)
	return res, nil
}

// rankCI returns the interval of the sorted values rs drawn from
// nrands resamples at nearest-rank indices floor(nrands*lo) and
// floor(nrands*hi).
func rankCI(rs []float64, nrands int, lo, hi float64) [2]float64 {
	at := func(q float64) float64 {
		return rs[clampIndex(int(math.Floor(float64(nrands)*q)), len(rs))]
	}
	return [2]float64{at(lo), at(hi)}
}

// pearsonP returns the two-sided p-value of correlation r over n
// pairs using the t statistic with n-2 degrees of freedom.
func pearsonP(r float64, n int) float64 {
	switch {
	case math.IsNaN(r):
		return nan
	case n <= 2:
		return 1
	case math.Abs(r) >= 1:
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	return 2 * (1 - StudentsTDist{V: df}.CDF(math.Abs(t)))
}
