// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arnaupujol/stat-tools/stats"
)

func runDescribe(e *env, args []string) error {
	flags := e.newFlagSet("describe")
	jkNum := flags.Int("jk", e.cfg.JKNum, "number of Jack-Knife subsamples")
	nrands := flags.Int("nrands", e.cfg.NRands, "number of bootstrap resamples")
	conf := flags.Float64("confidence", 0.95, "confidence level of the median interval")
	if err := flags.Parse(args); err != nil {
		return err
	}

	s, err := readSample(e.stdin)
	if err != nil {
		return err
	}
	if len(s.Xs) == 0 {
		return fmt.Errorf("no input: %w", stats.ErrSampleSize)
	}
	s.Sort()

	w := e.stdout
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Percentile(float64(p)/100))
	}
	ci, err := stats.NewQuantileCI(len(s.Xs), 0.5, *conf)
	if err != nil {
		return err
	}
	lo, hi, err := ci.Bounds(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "median CI [%.6g, %.6g] (%.3g confidence)\n", lo, hi, ci.Confidence)
	fmt.Fprintln(w)

	// Errors on the mean. Jack-Knife needs at least two groups.
	if k := min(*jkNum, len(s.Xs)); k >= 2 {
		mean, sigma, err := stats.MeanErrJK(s.Xs, k, true, e.rng)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%8s %.6g ± %.6g (%d subsamples)\n", "jk", mean, sigma, k)
	} else {
		e.log.Warn("too few values for Jack-Knife", zap.Int("n", len(s.Xs)))
	}
	boot, err := stats.BootstrapMeanErr(s.Xs, *nrands, e.rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%8s %.6g ± %.6g (%d resamples)\n", "boot", boot.Mean, boot.Err, *nrands)
	return nil
}
