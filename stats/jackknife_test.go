// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestJackKnife(t *testing.T) {
	check := func(full []float64, jk [][]float64, want []float64) {
		t.Helper()
		got, err := JackKnife(full, jk)
		if err != nil {
			t.Fatalf("JackKnife(%v, %v): %v", full, jk, err)
		}
		if len(got) != len(want) {
			t.Fatalf("want %v, got %v", want, got)
		}
		for i := range want {
			if !aeq(want[i], got[i]) {
				t.Errorf("want %v, got %v", want, got)
			}
		}
	}

	check([]float64{5}, [][]float64{{5}, {5}, {5}}, []float64{0})
	// n=2: sqrt(1/2 * (1 + 1)) = 1.
	check([]float64{0}, [][]float64{{1}, {-1}}, []float64{1})
	// Bins are independent; n counts subsamples, not bins.
	check([]float64{0, 10}, [][]float64{{1, 10}, {-1, 10}}, []float64{1, 0})

	if _, err := JackKnife([]float64{1, 2}, [][]float64{{1}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("want ErrShapeMismatch, got %v", err)
	}
	if _, err := JackKnife([]float64{1}, nil); !errors.Is(err, ErrSampleSize) {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
}

func TestJackKnifeIndices(t *testing.T) {
	for _, tc := range []struct{ n, jk int }{{10, 5}, {11, 3}, {50, 50}, {101, 10}} {
		for _, randOrder := range []bool{false, true} {
			ids, err := JackKnifeIndices(tc.n, tc.jk, randOrder, newRand(1))
			if err != nil {
				t.Fatalf("JackKnifeIndices(%d, %d): %v", tc.n, tc.jk, err)
			}
			if len(ids) != tc.n {
				t.Fatalf("want %d indices, got %d", tc.n, len(ids))
			}
			counts := make([]int, tc.jk)
			for _, id := range ids {
				if id < 0 || id >= tc.jk {
					t.Fatalf("index %d out of range [0,%d)", id, tc.jk)
				}
				counts[id]++
			}
			size := tc.n / tc.jk
			extra := tc.n % tc.jk
			for g, c := range counts {
				if c < size || c > size+extra {
					t.Errorf("n=%d jk=%d: group %d has %d elements, want [%d,%d]", tc.n, tc.jk, g, c, size, size+extra)
				}
			}
			if !randOrder && tc.n%tc.jk == 0 {
				for i, id := range ids {
					if id != i/size {
						t.Fatalf("ordered indices: element %d in group %d, want %d", i, id, i/size)
					}
				}
			}
		}
	}

	for _, jk := range []int{-1, 0, 1, 11} {
		if _, err := JackKnifeIndices(10, jk, true, newRand(1)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("jkNum=%d: want ErrInvalidArgument, got %v", jk, err)
		}
	}
	if _, err := JackKnifeIndices(10, 2, true, nil); !errors.Is(err, ErrNoSource) {
		t.Errorf("want ErrNoSource, got %v", err)
	}
}

func TestMeanErrJK(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = 5
	}
	mean, stderr, err := MeanErrJK(xs, 10, true, newRand(2))
	if err != nil {
		t.Fatal(err)
	}
	if mean != 5 || stderr != 0 {
		t.Errorf("constant sample: want 5±0, got %v±%v", mean, stderr)
	}

	// With jkNum = n the Jack-Knife error of the mean equals the
	// standard error s/sqrt(n).
	xs = []float64{1, 4, 2, 8, 5, 7, 3, 6}
	mean, stderr, err = MeanErrJK(xs, len(xs), true, newRand(3))
	if err != nil {
		t.Fatal(err)
	}
	s := Sample{Xs: xs}
	if want := s.StdDev() / math.Sqrt(float64(len(xs))); !aeq(want, stderr) {
		t.Errorf("want error %v, got %v", want, stderr)
	}
	if mean != 4.5 {
		t.Errorf("want mean 4.5, got %v", mean)
	}

	// Same seed, same answer.
	_, err1, _ := MeanErrJK(xs, 3, true, newRand(4))
	_, err2, _ := MeanErrJK(xs, 3, true, newRand(4))
	if err1 != err2 || err1 < 0 {
		t.Errorf("want reproducible non-negative error, got %v and %v", err1, err2)
	}

	if _, _, err := MeanErrJK(xs, 0, true, newRand(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}
