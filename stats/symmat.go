// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMean returns the mean of the strictly upper triangle of the
// square matrix m. For a symmetric matrix this is the mean over every
// distinct pair (i, j), i != j, such as the mean off-diagonal value of
// a correlation matrix.
func MatMean(m mat.Matrix) (float64, error) {
	r, c := m.Dims()
	if r != c {
		return nan, fmt.Errorf("%d×%d matrix: %w", r, c, ErrNotSquare)
	}
	if r < 2 {
		return nan, ErrSampleSize
	}

	total := float64(r*r-r) / 2
	mean := 0.0
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			mean += m.At(i, j) / total
		}
	}
	return mean, nil
}

// MatValsOptions controls which entries MatVals returns.
type MatValsOptions struct {
	// Mask selects rows and columns of a symmetric matrix. Entry
	// (i, j) is kept only if both Mask[i] and Mask[j] are set. It
	// must have one element per row.
	Mask []bool

	// Full disables the symmetric treatment: every entry,
	// including the diagonal, is scanned and filtered by
	// EntryMask. Non-square matrices are always scanned this way.
	Full bool

	// EntryMask selects individual entries of a full scan. It must
	// have the same dimensions as the matrix.
	EntryMask [][]bool
}

// MatVals returns the values of the strictly upper triangle of the
// symmetric matrix m in row-major order, skipping the diagonal and
// the repeated lower triangle. A nil opts keeps every such value.
//
// If m is not square, or opts.Full is set, every entry of m is
// returned in row-major order, subject to opts.EntryMask.
func MatVals(m mat.Matrix, opts *MatValsOptions) ([]float64, error) {
	if opts == nil {
		opts = &MatValsOptions{}
	}
	r, c := m.Dims()
	vals := []float64{}

	if r == c && !opts.Full {
		if opts.Mask != nil && len(opts.Mask) != r {
			return nil, fmt.Errorf("mask of %d for %d×%d matrix: %w", len(opts.Mask), r, c, ErrShapeMismatch)
		}
		keep := func(i int) bool { return opts.Mask == nil || opts.Mask[i] }
		for i := 0; i < r; i++ {
			for j := i + 1; j < c; j++ {
				if keep(i) && keep(j) {
					vals = append(vals, m.At(i, j))
				}
			}
		}
		return vals, nil
	}

	if opts.Mask != nil {
		return nil, fmt.Errorf("row mask on full scan of %d×%d matrix: %w", r, c, ErrShapeMismatch)
	}
	if opts.EntryMask != nil {
		if len(opts.EntryMask) != r {
			return nil, fmt.Errorf("entry mask has %d rows, want %d: %w", len(opts.EntryMask), r, ErrShapeMismatch)
		}
		for i, row := range opts.EntryMask {
			if len(row) != c {
				return nil, fmt.Errorf("entry mask row %d has %d columns, want %d: %w", i, len(row), c, ErrShapeMismatch)
			}
		}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if opts.EntryMask == nil || opts.EntryMask[i][j] {
				vals = append(vals, m.At(i, j))
			}
		}
	}
	return vals, nil
}
