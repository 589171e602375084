// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the Sample s.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the (possibly weighted) sum of the Sample s.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Mean returns the arithmetic mean of the Sample s. It returns NaN
// for an empty sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// Variance returns the sample variance of s, using Bessel's
// correction.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of s.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// PopVariance returns the population variance of s, that is, the
// mean squared deviation from the mean without Bessel's correction.
func (s Sample) PopVariance() float64 {
	w := s.Weight()
	if len(s.Xs) == 0 || w == 0 {
		return nan
	}
	m := s.Mean()
	var ss float64
	for i, x := range s.Xs {
		d := x - m
		if s.Weights == nil {
			ss += d * d
		} else {
			ss += s.Weights[i] * d * d
		}
	}
	return ss / w
}

// PopStdDev returns the population standard deviation of s.
func (s Sample) PopStdDev() float64 {
	return math.Sqrt(s.PopVariance())
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is weighted, this ignores samples with zero weight.
//
// This is constant time if s.Sorted and there are no zero-weighted
// values.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Weights == nil {
		if s.Sorted {
			return s.Xs[0], s.Xs[len(s.Xs)-1]
		}
		return floats.Min(s.Xs), floats.Max(s.Xs)
	}

	min, max = inf, -inf
	for i, x := range s.Xs {
		if s.Weights[i] == 0 {
			continue
		}
		min, max = math.Min(min, x), math.Max(max, x)
	}
	if math.IsInf(min, 1) {
		return nan, nan
	}
	return
}

// Percentile returns the pctileth value from the Sample, linearly
// interpolating between order statistics. pctile will be capped to
// the range [0, 1].
//
// This is constant time if s.Sorted and s.Weights == nil.
func (s Sample) Percentile(pctile float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	pctile = math.Max(0, math.Min(1, pctile))
	return stat.Quantile(pctile, stat.LinInterp, s.Xs, s.Weights)
}

// NearestRank returns the order statistic at index floor(q*N) of the
// unweighted Sample s, with the index clamped to the sample. No
// interpolation is done, so ties and rounding truncate downward.
func (s Sample) NearestRank(q float64) float64 {
	if s.Weights != nil {
		panic("NearestRank on a weighted sample")
	}
	n := len(s.Xs)
	if n == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Xs[clampIndex(int(math.Floor(float64(n)*q)), n)]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)

	weights := []float64(nil)
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}

	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		stat.SortWeighted(s.Xs, s.Weights)
	}
	s.Sorted = true
	return s
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return Sample{Xs: xs}.Mean()
}

// PopStdDev returns the population standard deviation of xs.
func PopStdDev(xs []float64) float64 {
	return Sample{Xs: xs}.PopStdDev()
}
