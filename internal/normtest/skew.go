// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A SkewTestResult is the result of D'Agostino's skewness test.
type SkewTestResult struct {
	// N is the size of the sample.
	N int

	// Skewness is the biased sample skewness m3/m2^(3/2).
	Skewness float64

	// Z is the test statistic, which is approximately standard
	// normal under the null hypothesis.
	Z float64

	// P is the two-sided p-value.
	P float64
}

// SkewTest tests the null hypothesis that the skewness of the
// population xs is drawn from is that of a normal distribution.
// It requires at least 8 samples.
//
// This is the transformation of D'Agostino (1970).
func SkewTest(xs []float64) (*SkewTestResult, error) {
	n := float64(len(xs))
	if len(xs) < 8 {
		return nil, fmt.Errorf("%w: skewtest needs >= 8 samples, have %d", ErrSampleSize, len(xs))
	}
	m2, m3, _ := moments(xs)
	if m2 == 0 {
		return nil, ErrZeroVariance
	}
	b2 := m3 / math.Pow(m2, 1.5)

	y := b2 * math.Sqrt(((n+1)*(n+3))/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))
	z := delta * math.Log(y/alpha+math.Sqrt((y/alpha)*(y/alpha)+1))
	p := 2 * stats.StdNormal.CDF(-math.Abs(z))
	return &SkewTestResult{N: len(xs), Skewness: b2, Z: z, P: p}, nil
}
