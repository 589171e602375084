// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

var (
	// ErrSampleSize is returned when a sample is too small (often
	// empty) for the requested statistic.
	ErrSampleSize = errors.New("sample is too small")

	// ErrShapeMismatch is returned when inputs that must have the
	// same shape do not.
	ErrShapeMismatch = errors.New("inputs have mismatched shapes")

	// ErrNotSquare is returned when a square matrix is required.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrInvalidArgument is returned for out of range parameters,
	// such as a non-positive number of resamples.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSource is returned when a resampling routine is called
	// with a nil random source.
	ErrNoSource = errors.New("nil random source")
)
