// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

func (n NormalDist) uv() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.uv().Prob(x)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.uv().CDF(x)
}

func (n NormalDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return n.uv().Quantile(p)
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// Sig2Pow returns the confidence level of a two-sided interval sig
// standard deviations wide on each side of the mean of a normal
// distribution. For example, Sig2Pow(1) ≈ 0.6827.
func Sig2Pow(sig float64) float64 {
	return math.Erf(sig / math.Sqrt2)
}

// StudentsTDist is a Student's t-distribution with V degrees of
// freedom.
type StudentsTDist struct {
	V float64
}

func (t StudentsTDist) uv() distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.V}
}

func (t StudentsTDist) PDF(x float64) float64 {
	return t.uv().Prob(x)
}

func (t StudentsTDist) CDF(x float64) float64 {
	return t.uv().CDF(x)
}

func (t StudentsTDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return t.uv().Quantile(p)
}

func (t StudentsTDist) Bounds() (float64, float64) {
	return -4, 4
}
