// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1:   0,
			0:    0.32768,
			1:    0.4096,
			2:    0.2048,
			2.5:  0.2048,
			3:    0.0512,
			4:    0.0064,
			5:    math.Pow(dist.P, 5),
			6:    0,
			1000: 0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist, 0, 5)

	// A Bernoulli trial has variance p(1-p).
	if got := (BinomialDist{N: 1, P: 0.3}).Variance(); !aeq(0.21, got) {
		t.Errorf("want Bernoulli variance 0.21, got %v", got)
	}

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestPoissonDist(t *testing.T) {
	dist := PoissonDist{Lambda: 2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1:  0,
			0:   math.Exp(-2),
			1:   2 * math.Exp(-2),
			2:   2 * math.Exp(-2),
			2.9: 2 * math.Exp(-2),
			3:   4.0 / 3 * math.Exp(-2),
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist, 0, 12)
	if dist.Mean() != 2 || dist.Variance() != 2 {
		t.Errorf("want mean and variance 2, got %v and %v", dist.Mean(), dist.Variance())
	}
}

func TestNormalDist(t *testing.T) {
	testFunc(t, "StdNormal.CDF", StdNormal.CDF, map[float64]float64{
		0:  0.5,
		1:  0.8413447460685429,
		-1: 0.15865525393145707,
	})
	testFunc(t, "StdNormal.InvCDF", StdNormal.InvCDF, map[float64]float64{
		0.5: 0,
		2:   math.NaN(),
	})
	testFunc(t, "Sig2Pow", Sig2Pow, map[float64]float64{
		0: 0,
		1: 0.6826894921370859,
		2: 0.9544997361036416,
		3: 0.9973002039367398,
	})
	for _, sig := range []float64{0.5, 1, 2.5} {
		want := StdNormal.CDF(sig) - StdNormal.CDF(-sig)
		if got := Sig2Pow(sig); !aeq(want, got) {
			t.Errorf("Sig2Pow(%v): want %v, got %v", sig, want, got)
		}
	}
}

func TestStudentsTDist(t *testing.T) {
	d := StudentsTDist{V: 10}
	if got := d.CDF(0); !aeq(0.5, got) {
		t.Errorf("want CDF(0)=0.5, got %v", got)
	}
	// Two-sided 95% critical value for 10 degrees of freedom.
	if got := d.InvCDF(0.975); math.Abs(got-2.228138851986274) > 1e-6 {
		t.Errorf("want InvCDF(0.975)=2.2281, got %v", got)
	}
}
