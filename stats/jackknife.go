// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// JackKnifeIndices partitions n elements into jkNum near-equal
// Jack-Knife groups and returns the group index in [0, jkNum) of each
// element.
//
// The first jkNum*⌊n/jkNum⌋ elements are split into consecutive
// equal-sized groups. Each of the n mod jkNum leftover elements joins
// a group chosen uniformly at random. If randOrder is true, the
// assignment is then shuffled so groups are random subsets.
//
// jkNum must be in [2, n].
func JackKnifeIndices(n, jkNum int, randOrder bool, rng *rand.Rand) ([]int, error) {
	if jkNum < 2 || jkNum > n {
		return nil, fmt.Errorf("%d Jack-Knife groups for %d elements: %w", jkNum, n, ErrInvalidArgument)
	}
	if rng == nil {
		return nil, ErrNoSource
	}

	size := n / jkNum
	ids := make([]int, n)
	for i := range ids {
		if i < size*jkNum {
			ids[i] = i / size
		} else {
			ids[i] = rng.IntN(jkNum)
		}
	}
	if randOrder {
		rng.Shuffle(n, func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	}
	return ids, nil
}

// JackKnife returns the Jack-Knife error of a statistic from its
// values on the Jack-Knife subsamples.
//
// full holds the statistic on the full sample, one value per bin, and
// jk[i] holds the statistic with subsample i left out. The error of
// bin b is
//
//	sqrt(Σᵢ (n-1)/n · (jk[i][b] - full[b])²)
//
// where n is the number of subsamples.
func JackKnife(full []float64, jk [][]float64) ([]float64, error) {
	if len(jk) == 0 {
		return nil, ErrSampleSize
	}
	for i, row := range jk {
		if len(row) != len(full) {
			return nil, fmt.Errorf("subsample %d has %d bins, want %d: %w", i, len(row), len(full), ErrShapeMismatch)
		}
	}

	n := float64(len(jk))
	errs := make([]float64, len(full))
	for b := range full {
		var ss float64
		for _, row := range jk {
			d := row[b] - full[b]
			ss += (n - 1) / n * d * d
		}
		errs[b] = math.Sqrt(ss)
	}
	return errs, nil
}

// MeanErrJK returns the mean of xs and its Jack-Knife standard error over
// jkNum groups, assigned as by JackKnifeIndices.
func MeanErrJK(xs []float64, jkNum int, randOrder bool, rng *rand.Rand) (mean, stderr float64, err error) {
	ids, err := JackKnifeIndices(len(xs), jkNum, randOrder, rng)
	if err != nil {
		return nan, nan, err
	}

	mean = Mean(xs)

	// Leave-one-group-out means from per-group sums.
	sums := make([]float64, jkNum)
	counts := make([]int, jkNum)
	for i, x := range xs {
		sums[ids[i]] += x
		counts[ids[i]]++
	}
	jk := make([][]float64, jkNum)
	for g := range jk {
		var sum float64
		for h, s := range sums {
			if h != g {
				sum += s
			}
		}
		jk[g] = []float64{sum / float64(len(xs)-counts[g])}
	}

	errs, err := JackKnife([]float64{mean}, jk)
	if err != nil {
		return nan, nan, err
	}
	return mean, errs[0], nil
}
