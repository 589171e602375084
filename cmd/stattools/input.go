// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arnaupujol/stat-tools/stats"
	"github.com/arnaupujol/stat-tools/tables"
)

// readSample reads newline-separated numbers. Blank lines are skipped.
func readSample(r io.Reader) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return sample, fmt.Errorf("line %d: %w", line, err)
		}
		sample.Xs = append(sample.Xs, value)
	}
	return sample, scanner.Err()
}

// readFrame reads a CSV file, or stdin for "-".
func (e *env) readFrame(name string, timeCols ...string) (*tables.Frame, error) {
	r, err := e.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return tables.ReadCSV(r, &tables.CSVOptions{TimeColumns: timeCols})
}

// floatColumn parses the named column of f as numbers. Null cells
// are NaN.
func floatColumn(f *tables.Frame, name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.IsTime() {
		return nil, fmt.Errorf("column %q: %w", name, tables.ErrColumnType)
	}
	xs := make([]float64, len(c.Labels))
	for i, s := range c.Labels {
		if !c.Valid[i] {
			xs[i] = math.NaN()
			continue
		}
		if xs[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("column %q, row %d: %w", name, i+1, err)
		}
	}
	return xs, nil
}

// finitePairs returns the pairs (x[i], y[i]) where both are finite.
func finitePairs(x, y []float64) (fx, fy []float64) {
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		fx, fy = append(fx, x[i]), append(fy, y[i])
	}
	return
}
