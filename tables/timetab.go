// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"time"

	"github.com/arnaupujol/stat-tools/stats"
)

const (
	dateLayout  = "2006-01-02"
	defaultBins = 5
)

// TimeOptions controls CountTimeLabel.
type TimeOptions struct {
	// Bins is the number of equal-width bins spanning the range
	// of the time column. It is used when Edges is nil. Zero
	// means 5.
	Bins int

	// Edges are the increasing bin edges. Bin i holds times in
	// [Edges[i], Edges[i+1]); the last bin also holds Edges[len-1].
	Edges []time.Time

	// MeanDates names each row by the mean date of the times in
	// its bin instead of by the bin's edges.
	MeanDates bool

	ShowTotal bool

	// KeepNulls counts null labels under "NaN" instead of dropping
	// their rows.
	KeepNulls bool
}

// CountTimeLabel counts the values of label in each time bin of the
// column timeLabel. Rows are the bins in time order and columns the
// sorted label values.
//
// Rows with a null time are not binned, but with ShowTotal they are
// still counted in the Total row.
func CountTimeLabel(f *Frame, timeLabel, label string, opts *TimeOptions) (*Table, error) {
	if opts == nil {
		opts = &TimeOptions{}
	}
	tc, err := f.Column(timeLabel)
	if err != nil {
		return nil, err
	}
	if !tc.IsTime() {
		return nil, fmt.Errorf("column %q holds labels, want times: %w", timeLabel, ErrColumnType)
	}
	lc, err := f.labels(label)
	if err != nil {
		return nil, err
	}

	keep := func(i int) bool { return opts.KeepNulls || lc.Valid[i] }
	edges, err := binEdges(tc, keep, opts)
	if err != nil {
		return nil, err
	}
	nbins := len(edges) - 1

	// Assign each row to its bin.
	members := make([][]int, nbins)
	for i := 0; i < f.Len(); i++ {
		if !keep(i) || !tc.Valid[i] {
			continue
		}
		if b := findBin(edges, tc.Times[i]); b >= 0 {
			members[b] = append(members[b], i)
		}
	}

	t := newTable()
	totals := make(map[string]int)
	for i := 0; i < f.Len(); i++ {
		if keep(i) {
			totals[cellLabel(lc, i)]++
		}
	}
	t.Cols = sortedKeys(totals)

	for b, rows := range members {
		name := binName(edges, b, tc, rows, opts.MeanDates)
		if t.HasRow(name) {
			name = fmt.Sprintf("%s [%d]", name, b)
		}
		t.addRow(name)
		for _, i := range rows {
			t.add(name, cellLabel(lc, i), 1)
		}
	}

	if opts.ShowTotal {
		t.addTotals()
		n := 0
		for col, c := range totals {
			t.set(Total, col, c)
			n += c
		}
		t.set(Total, Total, n)
	}
	return t, nil
}

// binEdges returns the bin edges for opts, computing equal-width
// bins over the kept, non-null times when no explicit edges are given.
func binEdges(tc *Column, keep func(int) bool, opts *TimeOptions) ([]time.Time, error) {
	if opts.Edges != nil {
		if len(opts.Edges) < 2 {
			return nil, fmt.Errorf("%d edges: %w", len(opts.Edges), ErrInvalidBins)
		}
		for i := 1; i < len(opts.Edges); i++ {
			if !opts.Edges[i].After(opts.Edges[i-1]) {
				return nil, fmt.Errorf("edge %d not after edge %d: %w", i, i-1, ErrInvalidBins)
			}
		}
		return opts.Edges, nil
	}
	bins := opts.Bins
	if bins == 0 {
		bins = defaultBins
	}
	if bins < 1 {
		return nil, fmt.Errorf("%d bins: %w", bins, ErrInvalidBins)
	}

	var lo, hi time.Time
	found := false
	for i, t := range tc.Times {
		if !tc.Valid[i] || !keep(i) {
			continue
		}
		if !found || t.Before(lo) {
			lo = t
		}
		if !found || t.After(hi) {
			hi = t
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("no times to bin: %w", stats.ErrSampleSize)
	}

	span := hi.Sub(lo)
	edges := make([]time.Time, bins+1)
	for i := range edges {
		edges[i] = lo.Add(time.Duration(float64(span) * float64(i) / float64(bins)))
	}
	edges[bins] = hi
	return edges, nil
}

// findBin returns the index of the bin holding t, or -1.
func findBin(edges []time.Time, t time.Time) int {
	last := len(edges) - 1
	if t.Before(edges[0]) || t.After(edges[last]) {
		return -1
	}
	if t.Equal(edges[last]) {
		return last - 1
	}
	for b := 0; b < last; b++ {
		if t.Before(edges[b+1]) {
			return b
		}
	}
	return -1
}

func binName(edges []time.Time, b int, tc *Column, rows []int, meanDates bool) string {
	if !meanDates {
		return edges[b].Format(dateLayout) + " - " + edges[b+1].Format(dateLayout)
	}
	if len(rows) == 0 {
		return "NaT"
	}
	// Average offsets from the bin start to keep precision.
	offs := make([]float64, len(rows))
	for k, i := range rows {
		offs[k] = tc.Times[i].Sub(edges[b]).Seconds()
	}
	mean := edges[b].Add(time.Duration(stats.Mean(offs) * float64(time.Second)))
	return mean.Format(dateLayout)
}
