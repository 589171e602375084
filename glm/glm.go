// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glm fits generalized linear models by iteratively
// reweighted least squares (IRLS).
//
// The Poisson family models counts and the binomial family models
// proportions of success. Fit regresses a response on a single
// variable plus an intercept and can draw the fitted prediction curve
// on a gonum plot; FitMatrix accepts an arbitrary design matrix.
package glm // import "github.com/arnaupujol/stat-tools/glm"

import (
	"errors"
	"fmt"
	"math"

	"github.com/arnaupujol/stat-tools/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrInvalidResponse is returned when a response is outside
	// the support of the family.
	ErrInvalidResponse = errors.New("response outside family support")

	// ErrSingular is returned when the weighted design matrix is
	// not positive definite, for example because regressors are
	// collinear.
	ErrSingular = errors.New("singular design matrix")
)

const (
	defaultMaxIter = 100
	defaultTol     = 1e-8
)

// Options controls fitting and reporting of a model. The zero value
// fits silently with default tolerances.
type Options struct {
	// MaxIter bounds the number of IRLS iterations. Zero means 100.
	MaxIter int

	// Tol is the change in deviance, relative to the deviance or
	// absolute when the deviance is below 1, at which IRLS stops.
	// Zero means 1e-8.
	Tol float64

	// Verbose logs the fit summary to Logger, or to zap's global
	// logger if Logger is nil.
	Verbose bool
	Logger  *zap.Logger

	// Plot, if not nil, receives the prediction curve of a model
	// fitted with Fit, drawn with Style. A zero Style is replaced
	// by DefaultStyle.
	Plot  *plot.Plot
	Style draw.LineStyle
}

// Fit fits the model y ~ fam(b0 + b1·x). Params[0] of the result is
// the intercept and Params[1] the slope.
func Fit(x, y []float64, fam Family, opts *Options) (*Result, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d regressor values for %d responses: %w", len(x), len(y), stats.ErrShapeMismatch)
	}
	if len(x) == 0 {
		return nil, stats.ErrSampleSize
	}
	design := mat.NewDense(len(x), 2, nil)
	for i, xi := range x {
		design.SetRow(i, []float64{1, xi})
	}

	res, err := fit(design, y, fam, opts, []string{"const", "x1"})
	if err != nil {
		return nil, err
	}
	res.intercept = true
	res.xmin, res.xmax = floats.Min(x), floats.Max(x)
	res.NullDeviance = nullDeviance(y, fam)

	if opts != nil && opts.Plot != nil {
		style := opts.Style
		if style.Width == 0 {
			style = DefaultStyle()
		}
		if err := res.AddCurve(opts.Plot, curvePoints, style); err != nil {
			return nil, err
		}
	}
	if opts != nil && opts.Verbose {
		res.log(opts.Logger)
	}
	return res, nil
}

// FitMatrix fits the model y ~ fam(x·β). x must include a column of
// ones if an intercept is wanted.
func FitMatrix(x mat.Matrix, y []float64, fam Family, opts *Options) (*Result, error) {
	_, p := x.Dims()
	names := make([]string, p)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	res, err := fit(x, y, fam, opts, names)
	if err != nil {
		return nil, err
	}
	if opts != nil && opts.Verbose {
		res.log(opts.Logger)
	}
	return res, nil
}

func fit(x mat.Matrix, y []float64, fam Family, opts *Options, names []string) (*Result, error) {
	n, p := x.Dims()
	if len(y) != n {
		return nil, fmt.Errorf("%d design rows for %d responses: %w", n, len(y), stats.ErrShapeMismatch)
	}
	if n <= p {
		return nil, fmt.Errorf("%d observations for %d parameters: %w", n, p, stats.ErrSampleSize)
	}
	for _, yi := range y {
		if err := fam.CheckResponse(yi); err != nil {
			return nil, err
		}
	}
	maxIter, tol := defaultMaxIter, defaultTol
	if opts != nil {
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
		if opts.Tol > 0 {
			tol = opts.Tol
		}
	}

	ybar := stats.Mean(y)
	mu := make([]float64, n)
	for i, yi := range y {
		mu[i] = fam.StartMu(yi, ybar)
	}
	dev := deviance(y, mu, fam)

	res := &Result{Family: fam, NObs: n, DfModel: p - 1, DfResid: n - p, names: names}
	beta := mat.NewVecDense(p, nil)
	eta := mat.NewVecDense(n, nil)
	for res.Iterations < maxIter {
		res.Iterations++

		w := make([]float64, n)
		z := make([]float64, n)
		for i, m := range mu {
			d := fam.LinkDeriv(m)
			w[i] = 1 / (d * d * fam.Variance(m))
			z[i] = fam.Link(m) + (y[i]-m)*d
		}
		if err := solveWLS(beta, x, w, z); err != nil {
			return nil, err
		}

		eta.MulVec(x, beta)
		for i := range mu {
			mu[i] = fam.InvLink(eta.AtVec(i))
		}
		prev := dev
		dev = deviance(y, mu, fam)
		// Relative to the deviance, but absolute near zero so that
		// exact fits converge.
		if math.Abs(dev-prev) <= tol*math.Max(1, math.Abs(dev)) {
			res.Converged = true
			break
		}
	}

	// The covariance of the estimates is the inverse Fisher
	// information at the fitted means.
	w := make([]float64, n)
	for i, m := range mu {
		d := fam.LinkDeriv(m)
		w[i] = 1 / (d * d * fam.Variance(m))
	}
	var chol mat.Cholesky
	if !chol.Factorize(weightedGram(x, w)) {
		return nil, ErrSingular
	}
	res.Cov = mat.NewSymDense(p, nil)
	if err := chol.InverseTo(res.Cov); err != nil {
		return nil, fmt.Errorf("covariance of estimates: %w", err)
	}

	res.Params = make([]float64, p)
	res.StdErr = make([]float64, p)
	for j := range res.Params {
		res.Params[j] = beta.AtVec(j)
		res.StdErr[j] = math.Sqrt(res.Cov.At(j, j))
	}
	res.Mu = mu
	res.Deviance = dev
	for i, m := range mu {
		r := y[i] - m
		res.PearsonChi2 += r * r / fam.Variance(m)
		res.LogLike += fam.LogLike(y[i], m)
	}
	res.AIC = -2*res.LogLike + 2*float64(p)
	return res, nil
}

// weightedGram returns xᵀ diag(w) x.
func weightedGram(x mat.Matrix, w []float64) *mat.SymDense {
	n, p := x.Dims()
	g := mat.NewSymDense(p, nil)
	row := make([]float64, p)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				g.SetSym(a, b, g.At(a, b)+w[i]*row[a]*row[b])
			}
		}
	}
	return g
}

// solveWLS solves the weighted least squares problem
// xᵀ diag(w) x β = xᵀ diag(w) z into beta.
func solveWLS(beta *mat.VecDense, x mat.Matrix, w, z []float64) error {
	n, p := x.Dims()
	rhs := mat.NewVecDense(p, nil)
	row := make([]float64, p)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		for a := 0; a < p; a++ {
			rhs.SetVec(a, rhs.AtVec(a)+w[i]*row[a]*z[i])
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(weightedGram(x, w)) {
		return ErrSingular
	}
	return chol.SolveVecTo(beta, rhs)
}

func deviance(y, mu []float64, fam Family) float64 {
	var d float64
	for i := range y {
		d += fam.UnitDeviance(y[i], mu[i])
	}
	return d
}

// nullDeviance is the deviance of the intercept-only model, whose
// fitted mean under a canonical link is the sample mean.
func nullDeviance(y []float64, fam Family) float64 {
	ybar := stats.Mean(y)
	mu := make([]float64, len(y))
	for i := range mu {
		mu[i] = fam.InvLink(fam.Link(ybar))
	}
	return deviance(y, mu, fam)
}
