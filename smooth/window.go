// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/dsp/window"
)

// Window is a window function weighting the points of a rolling
// window.
type Window int

const (
	// Boxcar weights every point equally. This is a plain moving
	// average.
	Boxcar Window = iota

	// Triang is a triangular window whose end points have
	// non-zero weight, such as .5, 1, .5 for 3 points. Unlike a
	// Bartlett window, every point contributes.
	Triang

	Hann
	Hamming
	Blackman

	// Gaussian is a Gaussian window whose width is set by
	// Options.Sigma, relative to half the window size.
	Gaussian
)

var windowNames = []string{"boxcar", "triang", "hann", "hamming", "blackman", "gaussian"}

func (w Window) String() string {
	if w < 0 || int(w) >= len(windowNames) {
		return fmt.Sprintf("Window(%d)", int(w))
	}
	return windowNames[w]
}

// ParseWindow returns the Window with the given name, as returned by
// Window.String.
func ParseWindow(name string) (Window, error) {
	for i, n := range windowNames {
		if strings.EqualFold(n, name) {
			return Window(i), nil
		}
	}
	return 0, fmt.Errorf("unknown window type %q", name)
}

// weights returns the n weights of window w.
func (w Window) weights(n int, sigma float64) ([]float64, error) {
	seq := ones(n)
	if n == 1 {
		return seq, nil
	}
	switch w {
	case Boxcar:
		return window.Rectangular(seq), nil
	case Triang:
		return triang(seq), nil
	case Hann:
		return window.Hann(seq), nil
	case Hamming:
		return window.Hamming(seq), nil
	case Blackman:
		return window.Blackman(seq), nil
	case Gaussian:
		if sigma == 0 {
			sigma = defaultSigma
		}
		return window.Gaussian{Sigma: sigma}.Transform(seq), nil
	}
	return nil, fmt.Errorf("unknown window type %v", w)
}

const defaultSigma = 0.4

// triang returns the triangular window of len(seq) points with
// non-zero ends, sampled from the interior of a longer Bartlett
// window: 2k/(n+1) rising for odd n, (2k-1)/n for even n.
func triang(seq []float64) []float64 {
	n := len(seq)
	if n%2 == 1 {
		b := window.Triangular(ones(n + 2))
		copy(seq, b[1:n+1])
		return seq
	}
	b := window.Triangular(ones(2*n + 1))
	for k := range seq {
		seq[k] = b[2*k+1]
	}
	return seq
}

func ones(n int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = 1
	}
	return seq
}
