// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glm

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/arnaupujol/stat-tools/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Result is a fitted generalized linear model.
type Result struct {
	Family Family

	// Params are the estimated coefficients and StdErr their
	// standard errors. Cov is the covariance matrix of Params.
	Params []float64
	StdErr []float64
	Cov    *mat.SymDense

	// Mu are the fitted means of the responses.
	Mu []float64

	// Deviance is the deviance of the fit. NullDeviance is the
	// deviance of the intercept-only model and is only set by Fit.
	Deviance     float64
	NullDeviance float64
	PearsonChi2  float64
	LogLike      float64
	AIC          float64

	Iterations int
	Converged  bool

	NObs, DfModel, DfResid int

	names      []string
	intercept  bool
	xmin, xmax float64
}

// errNotSimple is returned for single-regressor operations on a
// model fitted with FitMatrix.
var errNotSimple = errors.New("glm: model not fitted with Fit, use PredictMatrix")

// Predict returns the predicted mean response at each x of a model
// fitted with Fit.
func (r *Result) Predict(x ...float64) ([]float64, error) {
	if !r.intercept {
		return nil, errNotSimple
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = r.Family.InvLink(r.Params[0] + r.Params[1]*xi)
	}
	return out, nil
}

// PredictMatrix returns the predicted mean response for each row of
// the design matrix x, which must have one column per parameter.
func (r *Result) PredictMatrix(x mat.Matrix) ([]float64, error) {
	n, p := x.Dims()
	if p != len(r.Params) {
		return nil, fmt.Errorf("%d design columns for %d parameters: %w", p, len(r.Params), stats.ErrShapeMismatch)
	}
	var eta mat.VecDense
	eta.MulVec(x, mat.NewVecDense(p, r.Params))
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Family.InvLink(eta.AtVec(i))
	}
	return out, nil
}

// ZValues returns the Wald statistic Params[i]/StdErr[i] of each
// parameter.
func (r *Result) ZValues() []float64 {
	z := make([]float64, len(r.Params))
	for i := range z {
		z[i] = r.Params[i] / r.StdErr[i]
	}
	return z
}

// PValues returns the two-sided p-value of each Wald statistic under
// a standard normal null distribution.
func (r *Result) PValues() []float64 {
	p := r.ZValues()
	for i, z := range p {
		p[i] = 2 * stats.StdNormal.CDF(-math.Abs(z))
	}
	return p
}

// Summary returns a text table describing the fit.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generalized Linear Model: %s (%s link)\n", r.Family.Name(), r.Family.LinkName())
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "No. Observations:\t%d\tDf Residuals:\t%d\tDf Model:\t%d\n", r.NObs, r.DfResid, r.DfModel)
	fmt.Fprintf(tw, "Iterations:\t%d\tConverged:\t%v\t\t\n", r.Iterations, r.Converged)
	fmt.Fprintf(tw, "Deviance:\t%.6g\tPearson chi2:\t%.6g\t\t\n", r.Deviance, r.PearsonChi2)
	fmt.Fprintf(tw, "Log-Likelihood:\t%.6g\tAIC:\t%.6g\t\t\n", r.LogLike, r.AIC)
	tw.Flush()

	b.WriteString("\n")
	tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tcoef\tstd err\tz\tP>|z|\t\n")
	z, p := r.ZValues(), r.PValues()
	for i, name := range r.names {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.3f\t%.3f\t\n", name, r.Params[i], r.StdErr[i], z[i], p[i])
	}
	tw.Flush()
	return b.String()
}

func (r *Result) log(logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("fitted generalized linear model",
		zap.String("family", r.Family.Name()),
		zap.Int("observations", r.NObs),
		zap.Int("iterations", r.Iterations),
		zap.Bool("converged", r.Converged),
		zap.Float64s("params", r.Params),
		zap.Float64s("stdErr", r.StdErr),
		zap.Float64("deviance", r.Deviance),
		zap.Float64("aic", r.AIC))
	if !r.Converged {
		logger.Warn("IRLS did not converge", zap.Int("iterations", r.Iterations))
	}
	logger.Sugar().Info("\n" + r.Summary())
}
