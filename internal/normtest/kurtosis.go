// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A KurtosisTestResult is the result of the Anscombe-Glynn kurtosis
// test.
type KurtosisTestResult struct {
	// N is the size of the sample.
	N int

	// Kurtosis is the biased Pearson kurtosis m4/m2². It is 3
	// for a normal distribution.
	Kurtosis float64

	// Z is the test statistic.
	Z float64

	// P is the two-sided p-value.
	P float64
}

// KurtosisTest tests the null hypothesis that the kurtosis of the
// population xs is drawn from is that of a normal distribution. It
// requires at least 5 samples; the normal approximation is poor
// below 20.
//
// See Anscombe and Glynn (1983).
func KurtosisTest(xs []float64) (*KurtosisTestResult, error) {
	n := float64(len(xs))
	if len(xs) < 5 {
		return nil, fmt.Errorf("%w: kurtosistest needs >= 5 samples, have %d", ErrSampleSize, len(xs))
	}
	m2, _, m4 := moments(xs)
	if m2 == 0 {
		return nil, ErrZeroVariance
	}
	b2 := m4 / (m2 * m2)

	e := 3 * (n - 1) / (n + 1)
	varb2 := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x := (b2 - e) / math.Sqrt(varb2)
	sqrtbeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt((6*(n+3)*(n+5))/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtbeta1*(2/sqrtbeta1+math.Sqrt(1+4/(sqrtbeta1*sqrtbeta1)))
	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	term2 := nan
	if denom != 0 {
		term2 = math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)
	}
	z := (term1 - term2) / math.Sqrt(2/(9*a))
	p := 2 * stats.StdNormal.CDF(-math.Abs(z))
	return &KurtosisTestResult{N: len(xs), Kurtosis: b2, Z: z, P: p}, nil
}
