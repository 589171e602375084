// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"sort"
)

// nullLabel is the label under which null cells are counted when
// nulls are kept.
const nullLabel = "NaN"

// Options controls Labels2D and LabelsND.
type Options struct {
	// ShowTotal adds a Total column with the sum of each row and
	// a Total row with the counts over all rows.
	ShowTotal bool

	// KeepNulls counts null cells under the label "NaN". By
	// default rows in which any of the labels involved is null
	// are dropped.
	KeepNulls bool
}

// Labels2D counts, for each distinct value of label1, the number of
// occurrences of each value of label2. Rows are the label1 values in
// order of first appearance and columns the label2 values in sorted
// order.
func Labels2D(f *Frame, label1, label2 string, opts *Options) (*Table, error) {
	if opts == nil {
		opts = &Options{}
	}
	c1, err := f.labels(label1)
	if err != nil {
		return nil, err
	}
	c2, err := f.labels(label2)
	if err != nil {
		return nil, err
	}

	t := newTable()
	totals := make(map[string]int)
	for i := 0; i < f.Len(); i++ {
		if !opts.KeepNulls && (!c1.Valid[i] || !c2.Valid[i]) {
			continue
		}
		row, col := cellLabel(c1, i), cellLabel(c2, i)
		t.add(row, col, 1)
		totals[col]++
	}
	t.Cols = sortedKeys(totals)

	if opts.ShowTotal {
		t.addTotals()
		for col, n := range totals {
			t.set(Total, col, n)
		}
		t.set(Total, Total, f.countRows(opts, c1, c2))
	}
	return t, nil
}

// LabelsND joins the Labels2D tables of label1 against each of labels
// into one table. Row sets are merged, and a row missing from one
// table counts zero in its columns. With ShowTotal, the Total column
// of each label l is named "Total l". A value that appears in more
// than one label is qualified as "l:value" to keep columns apart.
func LabelsND(f *Frame, label1 string, labels []string, opts *Options) (*Table, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("LabelsND needs at least one label")
	}
	parts := make([]*Table, len(labels))
	uses := make(map[string]int)
	for k, l := range labels {
		t, err := Labels2D(f, label1, l, opts)
		if err != nil {
			return nil, err
		}
		parts[k] = t
		for _, col := range t.Cols {
			if col != Total {
				uses[col]++
			}
		}
	}

	out := newTable()
	for k, l := range labels {
		t := parts[k]
		for _, col := range t.Cols {
			name := col
			switch {
			case col == Total:
				name = Total + " " + l
			case uses[col] > 1:
				name = l + ":" + col
			}
			out.Cols = append(out.Cols, name)
			for _, row := range t.Rows {
				out.set(row, name, t.At(row, col))
			}
		}
		// Rows with no counts in any column still belong in the table.
		for _, row := range t.Rows {
			out.addRow(row)
		}
	}
	if out.HasRow(Total) {
		out.moveRowLast(Total)
	}
	return out, nil
}

// cellLabel returns the label of row i of c, with nulls named "NaN".
func cellLabel(c *Column, i int) string {
	if !c.Valid[i] {
		return nullLabel
	}
	return c.Labels[i]
}

// countRows returns the number of rows counted for the given columns.
func (f *Frame) countRows(opts *Options, cols ...*Column) int {
	if opts.KeepNulls {
		return f.Len()
	}
	n := 0
rows:
	for i := 0; i < f.Len(); i++ {
		for _, c := range cols {
			if !c.Valid[i] {
				continue rows
			}
		}
		n++
	}
	return n
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
