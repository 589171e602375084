// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arnaupujol/stat-tools/glm"
	"github.com/arnaupujol/stat-tools/stats"
)

func runChi2(e *env, args []string) error {
	flags := e.newFlagSet("chi2")
	file := flags.String("file", "-", "CSV `file` to read, - for stdin")
	v1 := flags.String("v1", "v1", "column of the first vector")
	e1 := flags.String("e1", "e1", "column of the first vector's errors")
	v2 := flags.String("v2", "v2", "column of the second vector")
	e2 := flags.String("e2", "e2", "column of the second vector's errors")
	noErr := flags.Bool("noerr", false, "ignore the errors and sum squared differences")
	if err := flags.Parse(args); err != nil {
		return err
	}

	f, err := e.readFrame(*file)
	if err != nil {
		return err
	}
	var cols [4][]float64
	for i, name := range []string{*v1, *e1, *v2, *e2} {
		if cols[i], err = floatColumn(f, name); err != nil {
			return err
		}
	}
	chi2, err := stats.ChiSquare(cols[0], cols[1], cols[2], cols[3], !*noErr)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "chi2 %.6g\n", chi2)
	return nil
}

func runCorr(e *env, args []string) error {
	flags := e.newFlagSet("corr")
	file := flags.String("file", "-", "CSV `file` to read, - for stdin")
	xcol := flags.String("x", "x", "column of the first variable")
	ycol := flags.String("y", "y", "column of the second variable")
	nrands := flags.Int("nrands", e.cfg.NRands, "number of bootstrap resamples")
	if err := flags.Parse(args); err != nil {
		return err
	}

	x, y, err := e.readXY(*file, *xcol, *ycol)
	if err != nil {
		return err
	}
	res, err := stats.BootstrapPearson(x, y, *nrands, e.rng)
	if err != nil {
		return err
	}
	if res.Resamples < *nrands {
		e.log.Warn("dropped degenerate resamples",
			zap.Int("kept", res.Resamples), zap.Int("nrands", *nrands))
	}
	w := e.stdout
	fmt.Fprintf(w, "N %d  r %.6g  p %.6g  err %.6g\n", res.N, res.R, res.P, res.Err)
	fmt.Fprintf(w, "68%% CI [%.6g, %.6g]\n", res.CI68[0], res.CI68[1])
	fmt.Fprintf(w, "95%% CI [%.6g, %.6g]\n", res.CI95[0], res.CI95[1])
	return nil
}

func runGLM(e *env, args []string) error {
	flags := e.newFlagSet("glm")
	file := flags.String("file", "-", "CSV `file` to read, - for stdin")
	xcol := flags.String("x", "x", "column of the regressor")
	ycol := flags.String("y", "y", "column of the response")
	family := flags.String("family", "poisson", "model family: poisson or binomial")
	plotFile := flags.String("plot", "", "write the data and fitted curve to this image `file`")
	verbose := flags.Bool("v", false, "log the fit summary")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var fam glm.Family
	switch strings.ToLower(*family) {
	case "poisson":
		fam = glm.Poisson()
	case "binomial", "logit":
		fam = glm.Binomial()
	default:
		return fmt.Errorf("unknown family %q: %w", *family, stats.ErrInvalidArgument)
	}

	x, y, err := e.readXY(*file, *xcol, *ycol)
	if err != nil {
		return err
	}

	opts := &glm.Options{Verbose: *verbose, Logger: e.log}
	var p *plot.Plot
	if *plotFile != "" {
		p = plot.New()
		p.Title.Text = fam.Name() + " fit"
		p.X.Label.Text = *xcol
		p.Y.Label.Text = *ycol
		opts.Plot = p
	}

	res, err := glm.Fit(x, y, fam, opts)
	if err != nil {
		return err
	}
	if !res.Converged && !*verbose {
		e.log.Warn("fit did not converge", zap.Int("iterations", res.Iterations))
	}
	fmt.Fprint(e.stdout, res.Summary())

	if p != nil {
		pts := make(plotter.XYs, len(x))
		for i := range pts {
			pts[i].X, pts[i].Y = x[i], y[i]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		p.Add(scatter)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, *plotFile); err != nil {
			return err
		}
		e.log.Info("wrote plot", zap.String("file", *plotFile))
	}
	return nil
}

// readXY reads two numeric columns and drops rows where either is
// missing.
func (e *env) readXY(file, xcol, ycol string) (x, y []float64, err error) {
	f, err := e.readFrame(file)
	if err != nil {
		return nil, nil, err
	}
	if x, err = floatColumn(f, xcol); err != nil {
		return nil, nil, err
	}
	if y, err = floatColumn(f, ycol); err != nil {
		return nil, nil, err
	}
	fx, fy := finitePairs(x, y)
	if dropped := len(x) - len(fx); dropped > 0 {
		e.log.Info("dropped rows with missing values", zap.Int("rows", dropped))
	}
	return fx, fy, nil
}
