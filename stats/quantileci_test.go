// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestQuantileCI(t *testing.T) {
	check := func(n int, q, conf float64, wantLo, wantHi int, wantConf float64) {
		t.Helper()
		ci, err := NewQuantileCI(n, q, conf)
		if err != nil {
			t.Fatalf("NewQuantileCI(%d, %v, %v): %v", n, q, conf, err)
		}
		if ci.Lo != wantLo || ci.Hi != wantHi || !aeq(wantConf, ci.Confidence) {
			t.Errorf("NewQuantileCI(%d, %v, %v) = [%d, %d] at %v, want [%d, %d] at %v",
				n, q, conf, ci.Lo, ci.Hi, ci.Confidence, wantLo, wantHi, wantConf)
		}
	}

	// Binomial(5, 0.5) is 1, 5, 10, 10, 5, 1 over 32. Summing
	// 10+10+5+5 leaves the tails out.
	check(5, 0.5, 0.9, 0, 4, 30.0/32)
	// The tails are needed for 95%.
	check(5, 0.5, 0.95, -1, 4, 31.0/32)
	check(5, 0.5, 0.99, -1, 5, 1)
	check(5, 0.5, 1, -1, 5, 1)
	// Equal modes at k=2 and k=3 are resolved to the left.
	check(5, 0.5, 0.3, 1, 2, 10.0/32)
	// Extreme quantiles put all mass at one end.
	check(4, 0, 0.9, -1, 0, 1)
	check(4, 1, 0.9, 3, 4, 1)
}

func TestQuantileCIBounds(t *testing.T) {
	s := Sample{Xs: []float64{5, 3, 1, 4, 2}}
	ci, err := NewQuantileCI(5, 0.5, 0.9)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, err := ci.Bounds(s)
	if err != nil || lo != 1 || hi != 5 {
		t.Errorf("Bounds = %v, %v, %v, want 1, 5, nil", lo, hi, err)
	}

	ci, _ = NewQuantileCI(5, 0.5, 0.95)
	lo, hi, _ = ci.Bounds(s)
	if !math.IsInf(lo, -1) || hi != 5 {
		t.Errorf("Bounds = %v, %v, want -Inf, 5", lo, hi)
	}

	if _, _, err := ci.Bounds(Sample{Xs: []float64{1, 2}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("want ErrShapeMismatch, got %v", err)
	}
}

func TestQuantileCIErrors(t *testing.T) {
	if _, err := NewQuantileCI(0, 0.5, 0.9); !errors.Is(err, ErrSampleSize) {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
	for _, args := range [][2]float64{{-0.1, 0.9}, {1.1, 0.9}, {0.5, 0}, {0.5, 1.5}, {nan, 0.9}} {
		if _, err := NewQuantileCI(10, args[0], args[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewQuantileCI(10, %v, %v): want ErrInvalidArgument, got %v", args[0], args[1], err)
		}
	}
}
