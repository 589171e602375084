// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleNearestRank(t *testing.T) {
	s := Sample{Xs: []float64{40, 15, 50, 20, 35}}
	testFunc(t, "NearestRank", s.NearestRank, map[float64]float64{
		-1:   15,
		0:    15,
		0.19: 15,
		0.2:  20,
		0.5:  35,
		0.99: 50,
		1:    50,
		2:    50,
	})
	if s.Sorted || s.Xs[0] != 40 {
		t.Errorf("NearestRank modified its receiver: %v", s.Xs)
	}
}

func TestSamplePercentile(t *testing.T) {
	s := Sample{Xs: []float64{40, 15, 50, 20, 35}}
	testFunc(t, "Percentile", s.Percentile, map[float64]float64{
		-1: 15,
		0:  15,
		1:  50,
		2:  50,
	})
	if !math.IsNaN((Sample{}).Percentile(0.5)) {
		t.Errorf("want NaN percentile of empty sample")
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if got := s.Mean(); got != 5 {
		t.Errorf("want mean 5, got %v", got)
	}
	if got := s.PopStdDev(); !aeq(2, got) {
		t.Errorf("want population std dev 2, got %v", got)
	}
	if got := s.Variance(); !aeq(32.0/7, got) {
		t.Errorf("want variance %v, got %v", 32.0/7, got)
	}

	w := Sample{Xs: []float64{1, 3}, Weights: []float64{3, 1}}
	if got := w.Mean(); got != 1.5 {
		t.Errorf("want weighted mean 1.5, got %v", got)
	}
	if got := w.PopVariance(); !aeq(0.75, got) {
		t.Errorf("want weighted population variance 0.75, got %v", got)
	}

	for _, f := range []func() float64{Sample{}.Mean, Sample{}.PopStdDev, Sample{Xs: []float64{1}}.Variance} {
		if got := f(); !math.IsNaN(got) {
			t.Errorf("want NaN for too small sample, got %v", got)
		}
	}
}

func TestSampleBounds(t *testing.T) {
	lo, hi := Sample{Xs: []float64{3, -1, 7}}.Bounds()
	if lo != -1 || hi != 7 {
		t.Errorf("want [-1,7], got [%v,%v]", lo, hi)
	}
	lo, hi = Sample{Xs: []float64{3, -1, 7}, Weights: []float64{1, 0, 1}}.Bounds()
	if lo != 3 || hi != 7 {
		t.Errorf("want [3,7] ignoring zero weight, got [%v,%v]", lo, hi)
	}
}

func TestSampleSortWeighted(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	s.Sort()
	for i, want := range []float64{1, 2, 3} {
		if s.Xs[i] != want || s.Weights[i] != want*10 {
			t.Errorf("element %d: want %v@%v, got %v@%v", i, want, want*10, s.Xs[i], s.Weights[i])
		}
	}
}
