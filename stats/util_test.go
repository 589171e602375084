// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// testDiscreteCDF checks that the CDF of dist is the running sum of
// its PMF over [lo, hi].
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist, lo, hi float64) {
	t.Helper()
	sum := 0.0
	for x := lo; x <= hi; x += dist.Step() {
		sum += dist.PMF(x)
		if got := dist.CDF(x); !aeq(sum, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, sum, got)
		}
	}
	if got := dist.CDF(lo - dist.Step()); got != 0 {
		t.Errorf("want %s(%v)=0, got %v", name, lo-dist.Step(), got)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}
