// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/arnaupujol/stat-tools/stats"
	"github.com/arnaupujol/stat-tools/tables"
)

func runCrosstab(e *env, args []string) error {
	flags := e.newFlagSet("crosstab")
	file := flags.String("file", "-", "CSV `file` to read, - for stdin")
	rows := flags.String("rows", "", "column whose values name the rows")
	cols := flags.String("cols", "", "comma-separated columns whose values are counted")
	total := flags.Bool("total", false, "add Total rows and columns")
	nulls := flags.Bool("nulls", false, "count missing values as NaN instead of dropping them")
	if err := flags.Parse(args); err != nil {
		return err
	}
	labels := splitList(*cols)
	if *rows == "" || len(labels) == 0 {
		return fmt.Errorf("crosstab needs -rows and -cols: %w", stats.ErrInvalidArgument)
	}

	f, err := e.readFrame(*file)
	if err != nil {
		return err
	}
	opts := &tables.Options{ShowTotal: *total, KeepNulls: *nulls}
	var t *tables.Table
	if len(labels) == 1 {
		t, err = tables.Labels2D(f, *rows, labels[0], opts)
	} else {
		t, err = tables.LabelsND(f, *rows, labels, opts)
	}
	if err != nil {
		return err
	}
	_, err = t.WriteTo(e.stdout)
	return err
}

func runTimetab(e *env, args []string) error {
	flags := e.newFlagSet("timetab")
	file := flags.String("file", "-", "CSV `file` to read, - for stdin")
	timeCol := flags.String("time", "date", "time column to bin")
	label := flags.String("label", "", "column whose values are counted")
	bins := flags.Int("bins", 5, "number of equal-width time bins")
	meanDates := flags.Bool("mean-dates", false, "name bins by their mean date")
	total := flags.Bool("total", false, "add Total rows and columns")
	nulls := flags.Bool("nulls", false, "count missing labels as NaN instead of dropping them")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *label == "" {
		return fmt.Errorf("timetab needs -label: %w", stats.ErrInvalidArgument)
	}

	f, err := e.readFrame(*file, *timeCol)
	if err != nil {
		return err
	}
	t, err := tables.CountTimeLabel(f, *timeCol, *label, &tables.TimeOptions{
		Bins:        *bins,
		MeanDates:   *meanDates,
		ShowTotal:   *total,
		KeepNulls:   *nulls,
	})
	if err != nil {
		return err
	}
	_, err = t.WriteTo(e.stdout)
	return err
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
