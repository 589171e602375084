// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// QuantileCI is a distribution-free confidence interval for a
// quantile of the population a sample of size N was drawn from. It
// is bounded by two order statistics of the sample.
type QuantileCI struct {
	Quantile float64
	N        int

	// Confidence is the actual confidence of the interval, which
	// is at least the requested confidence.
	Confidence float64

	// Lo and Hi are 0-based indexes into the sorted sample of the
	// interval's bounds. Lo may be -1 and Hi may be N, in which
	// case that side of the interval is unbounded.
	Lo, Hi int
}

// NewQuantileCI returns the narrowest interval of order statistics
// that holds the q'th quantile with at least the given confidence.
//
// The number of sample values below the quantile follows a binomial
// distribution, so the interval is built by summing its
// probabilities outward from the mode. Ties go to the left.
func NewQuantileCI(n int, q, confidence float64) (QuantileCI, error) {
	if n < 1 {
		return QuantileCI{}, fmt.Errorf("quantile CI of %d values: %w", n, ErrSampleSize)
	}
	if !(q >= 0 && q <= 1) || !(confidence > 0 && confidence <= 1) {
		return QuantileCI{}, fmt.Errorf("quantile %v at confidence %v: %w", q, confidence, ErrInvalidArgument)
	}

	ci := QuantileCI{Quantile: q, N: n}
	if confidence == 1 {
		ci.Confidence, ci.Lo, ci.Hi = 1, -1, n
		return ci, nil
	}

	// k is the number of values below the quantile: k == 0 means
	// it lies below Xs[0], and k == n above Xs[n-1]. [l, r) is the
	// range of k summed so far.
	d := BinomialDist{N: n, P: q}
	mode := int(math.Ceil(float64(n+1)*q) - 1)
	if mode < 0 {
		mode = 0
	}
	l, r := mode, mode+1
	accum := d.PMF(float64(mode))
	lp, rp := d.PMF(float64(l-1)), d.PMF(float64(r))
	for accum < confidence && (lp > 0 || rp > 0) {
		if lp >= rp {
			accum += lp
			l--
			lp = d.PMF(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = d.PMF(float64(r))
		}
	}
	ci.Confidence = math.Min(accum, 1)
	ci.Lo, ci.Hi = l-1, r-1
	return ci, nil
}

// Bounds returns the interval in terms of values of s, which must be
// the unweighted sample of size ci.N the interval was computed for.
// An unbounded side is ±Inf.
func (ci QuantileCI) Bounds(s Sample) (lo, hi float64, err error) {
	if s.Weights != nil {
		return nan, nan, fmt.Errorf("quantile CI of a weighted sample: %w", ErrInvalidArgument)
	}
	if len(s.Xs) != ci.N {
		return nan, nan, fmt.Errorf("quantile CI for %d values applied to %d: %w", ci.N, len(s.Xs), ErrShapeMismatch)
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	lo, hi = -inf, inf
	if ci.Lo >= 0 {
		lo = s.Xs[ci.Lo]
	}
	if ci.Hi < ci.N {
		hi = s.Xs[ci.Hi]
	}
	return lo, hi, nil
}
