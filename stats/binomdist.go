// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	switch d.P {
	case 0:
		if ki == 0 {
			return 1
		}
		return 0
	case 1:
		if ki == d.N {
			return 1
		}
		return 0
	}
	// Sum logs so large N neither overflows nor underflows.
	lc := combin.LogGeneralizedBinomial(float64(d.N), float64(ki))
	return math.Exp(lc + float64(ki)*math.Log(d.P) + float64(d.N-ki)*math.Log1p(-d.P))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d. The caller must apply a continuity
// correction: b.CDF(k) maps to n.CDF(k+0.5).
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
