// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// nullValues are the cell values read as null.
var nullValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
}

// timeLayouts are tried in order when parsing time columns.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// TimeColumns names the columns to parse as times. All other
	// columns are read as labels.
	TimeColumns []string
}

// ReadCSV reads a Frame from CSV data with a header row. Cells that
// are empty or hold a conventional missing-value marker such as "NA"
// are null.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = &CSVOptions{}
	}
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading CSV header: %w", io.ErrUnexpectedEOF)
	} else if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	isTime := make(map[string]bool, len(opts.TimeColumns))
	for _, name := range opts.TimeColumns {
		isTime[name] = true
	}

	f := NewFrame()
	for j, name := range header {
		name = strings.TrimSpace(name)
		valid := make([]bool, len(records))
		if isTime[name] {
			times := make([]time.Time, len(records))
			for i, rec := range records {
				cell := strings.TrimSpace(rec[j])
				if nullValues[cell] {
					continue
				}
				t, err := parseTime(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d, column %q: %w", i+2, name, err)
				}
				times[i], valid[i] = t, true
			}
			err = f.AddTimes(name, times, valid)
		} else {
			labels := make([]string, len(records))
			for i, rec := range records {
				cell := strings.TrimSpace(rec[j])
				labels[i], valid[i] = cell, !nullValues[cell]
			}
			err = f.AddLabels(name, labels, valid)
		}
		if err != nil {
			return nil, err
		}
		delete(isTime, name)
	}
	for name := range isTime {
		return nil, fmt.Errorf("time column %q: %w", name, ErrNoColumn)
	}
	return f, nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q: %w", s, err)
}
