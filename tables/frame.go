// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables builds frequency tables (cross-tabulations) of
// categorical labels, optionally binned by time.
//
// Data is held in a Frame of named columns. Each cell of a column may
// be null, for example because it was empty in the CSV file the
// Frame was read from.
package tables // import "github.com/arnaupujol/stat-tools/tables"

import (
	"errors"
	"fmt"
	"time"

	"github.com/arnaupujol/stat-tools/stats"
)

var (
	// ErrNoColumn is returned when a named column does not exist.
	ErrNoColumn = errors.New("no such column")

	// ErrColumnType is returned when a column has the wrong kind
	// of values, such as binning a label column by time.
	ErrColumnType = errors.New("wrong column type")

	// ErrInvalidBins is returned for time bins that are neither a
	// positive bin count nor at least two increasing edges.
	ErrInvalidBins = errors.New("invalid time bins")
)

// A Column is a named column of a Frame. Exactly one of Labels and
// Times is set.
type Column struct {
	Name   string
	Labels []string
	Times  []time.Time

	// Valid[i] reports whether cell i is not null.
	Valid []bool
}

// IsTime reports whether c holds time values.
func (c *Column) IsTime() bool { return c.Times != nil }

// Frame is a table of equal-length named columns.
type Frame struct {
	n     int
	names []string
	cols  map[string]*Column
}

// NewFrame returns an empty Frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string]*Column)}
}

// Len returns the number of rows of f.
func (f *Frame) Len() int { return f.n }

// Names returns the column names of f in the order they were added.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Column returns the column with the given name.
func (f *Frame) Column(name string) (*Column, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrNoColumn)
	}
	return c, nil
}

// AddLabels adds a categorical column. valid may be nil, in which
// case no cell is null.
func (f *Frame) AddLabels(name string, labels []string, valid []bool) error {
	return f.add(&Column{Name: name, Labels: labels, Valid: valid}, len(labels))
}

// AddTimes adds a time column. valid may be nil, in which case no
// cell is null.
func (f *Frame) AddTimes(name string, times []time.Time, valid []bool) error {
	if times == nil {
		times = []time.Time{}
	}
	return f.add(&Column{Name: name, Times: times, Valid: valid}, len(times))
}

func (f *Frame) add(c *Column, n int) error {
	if _, ok := f.cols[c.Name]; ok {
		return fmt.Errorf("duplicate column %q", c.Name)
	}
	if len(f.names) > 0 && n != f.n {
		return fmt.Errorf("column %q has %d rows, want %d: %w", c.Name, n, f.n, stats.ErrShapeMismatch)
	}
	if c.Valid == nil {
		c.Valid = make([]bool, n)
		for i := range c.Valid {
			c.Valid[i] = true
		}
	} else if len(c.Valid) != n {
		return fmt.Errorf("column %q has %d null flags for %d rows: %w", c.Name, len(c.Valid), n, stats.ErrShapeMismatch)
	}
	f.n = n
	f.names = append(f.names, c.Name)
	f.cols[c.Name] = c
	return nil
}

// labels returns the named column, which must be categorical.
func (f *Frame) labels(name string) (*Column, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.IsTime() {
		return nil, fmt.Errorf("column %q holds times, want labels: %w", name, ErrColumnType)
	}
	return c, nil
}
