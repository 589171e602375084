// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"fmt"
	"math"

	"github.com/arnaupujol/stat-tools/stats"
)

// A Family is the response distribution of a generalized linear
// model together with its link function η = g(μ).
type Family interface {
	// Name and LinkName describe the family for summaries.
	Name() string
	LinkName() string

	// Link returns η = g(μ), InvLink returns μ = g⁻¹(η), and
	// LinkDeriv returns g'(μ).
	Link(mu float64) float64
	InvLink(eta float64) float64
	LinkDeriv(mu float64) float64

	// Variance returns the variance of a response with mean mu.
	Variance(mu float64) float64

	// UnitDeviance is the deviance contribution of a response y
	// with fitted mean mu.
	UnitDeviance(y, mu float64) float64

	// LogLike is the log-likelihood of a response y given mean mu.
	LogLike(y, mu float64) float64

	// StartMu returns the initial mean estimate for a response y
	// in a sample with mean ybar.
	StartMu(y, ybar float64) float64

	// CheckResponse reports whether y is a valid response.
	CheckResponse(y float64) error
}

// Poisson returns the Poisson family with the canonical log link.
// Responses are non-negative counts (or rates).
func Poisson() Family { return poisson{} }

// Binomial returns the binomial family with the canonical logit link.
// Responses are proportions of success in [0, 1], one trial each.
func Binomial() Family { return binomial{} }

// minMu keeps fitted means away from the edges of their support.
const minMu = 1e-10

type poisson struct{}

func (poisson) Name() string     { return "Poisson" }
func (poisson) LinkName() string { return "log" }

func (poisson) Link(mu float64) float64 { return math.Log(mu) }

func (poisson) InvLink(eta float64) float64 {
	return math.Max(math.Exp(eta), minMu)
}

func (poisson) LinkDeriv(mu float64) float64 { return 1 / mu }

func (poisson) Variance(mu float64) float64 {
	return stats.PoissonDist{Lambda: mu}.Variance()
}

func (poisson) UnitDeviance(y, mu float64) float64 {
	return 2 * (xlogy(y, y/mu) - (y - mu))
}

func (poisson) LogLike(y, mu float64) float64 {
	lg, _ := math.Lgamma(y + 1)
	return xlogy(y, mu) - mu - lg
}

func (poisson) StartMu(y, ybar float64) float64 { return math.Max((y+ybar)/2, minMu) }

func (poisson) CheckResponse(y float64) error {
	if !(y >= 0) || math.IsInf(y, 0) {
		return fmt.Errorf("Poisson response %g: %w", y, ErrInvalidResponse)
	}
	return nil
}

type binomial struct{}

func (binomial) Name() string     { return "Binomial" }
func (binomial) LinkName() string { return "logit" }

func (binomial) Link(mu float64) float64 { return math.Log(mu / (1 - mu)) }

func (binomial) InvLink(eta float64) float64 {
	mu := 1 / (1 + math.Exp(-eta))
	return math.Min(math.Max(mu, minMu), 1-minMu)
}

func (binomial) LinkDeriv(mu float64) float64 { return 1 / (mu * (1 - mu)) }

func (binomial) Variance(mu float64) float64 {
	return stats.BinomialDist{N: 1, P: mu}.Variance()
}

func (binomial) UnitDeviance(y, mu float64) float64 {
	return 2 * (xlogy(y, y/mu) + xlogy(1-y, (1-y)/(1-mu)))
}

func (binomial) LogLike(y, mu float64) float64 {
	return xlogy(y, mu) + xlogy(1-y, 1-mu)
}

func (binomial) StartMu(y, _ float64) float64 { return (y + 0.5) / 2 }

func (binomial) CheckResponse(y float64) error {
	if !(y >= 0 && y <= 1) {
		return fmt.Errorf("binomial response %g: %w", y, ErrInvalidResponse)
	}
	return nil
}

// xlogy returns x·log(y), defined as 0 when x is 0.
func xlogy(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}
