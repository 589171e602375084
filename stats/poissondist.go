// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonDist is a Poisson distribution with rate Lambda.
type PoissonDist struct {
	Lambda float64
}

func (d PoissonDist) uv() distuv.Poisson {
	return distuv.Poisson{Lambda: d.Lambda}
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return d.uv().Prob(k)
}

// CDF is the probability of k or fewer events.
func (d PoissonDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return d.uv().CDF(k)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 {
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	return d.Lambda
}
