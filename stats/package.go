// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats is a grab bag of statistical routines for error and
// covariance analysis: Jack-Knife and Bootstrap error estimates,
// bootstrapped Pearson correlation, chi-square comparisons of two
// measured variables, and value extraction from symmetric matrices.
//
// Routines that need randomness take a caller-owned *rand.Rand.
// Seeding that source is the only way to make them reproducible.
package stats // import "github.com/arnaupujol/stat-tools/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
