// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Total names the margin row and column added by ShowTotal.
const Total = "Total"

// Table is a table of counts indexed by row and column names.
// Cells that were never set count zero.
type Table struct {
	Rows []string
	Cols []string

	cells map[string]map[string]int
}

func newTable() *Table {
	return &Table{cells: make(map[string]map[string]int)}
}

// At returns the count in row and column col.
func (t *Table) At(row, col string) int {
	return t.cells[row][col]
}

// Row returns the counts of the named row in column order.
func (t *Table) Row(row string) []int {
	out := make([]int, len(t.Cols))
	for j, col := range t.Cols {
		out[j] = t.cells[row][col]
	}
	return out
}

// Col returns the counts of the named column in row order.
func (t *Table) Col(col string) []int {
	out := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = t.cells[row][col]
	}
	return out
}

// HasRow reports whether t has a row with the given name.
func (t *Table) HasRow(row string) bool {
	_, ok := t.cells[row]
	return ok
}

func (t *Table) addRow(row string) {
	if _, ok := t.cells[row]; !ok {
		t.Rows = append(t.Rows, row)
		t.cells[row] = make(map[string]int)
	}
}

func (t *Table) moveRowLast(row string) {
	for i, r := range t.Rows {
		if r == row {
			t.Rows = append(append(t.Rows[:i:i], t.Rows[i+1:]...), row)
			return
		}
	}
}

func (t *Table) set(row, col string, n int) {
	t.addRow(row)
	t.cells[row][col] = n
}

func (t *Table) add(row, col string, n int) {
	t.addRow(row)
	t.cells[row][col] += n
}

// addTotals appends a Total column holding each row's sum.
func (t *Table) addTotals() {
	cols := t.Cols
	for _, row := range t.Rows {
		sum := 0
		for _, col := range cols {
			sum += t.cells[row][col]
		}
		t.cells[row][Total] = sum
	}
	t.Cols = append(t.Cols, Total)
}

// WriteTo writes t to w as aligned text.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Cols, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintf(tw, "%s", row)
		for _, n := range t.Row(row) {
			fmt.Fprintf(tw, "\t%d", n)
		}
		fmt.Fprintf(tw, "\t\n")
	}
	err := tw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
