// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/stat"
)

// A KSTestResult is the result of a one-sample two-sided
// Kolmogorov-Smirnov test.
type KSTestResult struct {
	// N is the size of the sample.
	N int

	// D is the largest absolute difference between the empirical
	// CDF of the sample and the reference CDF.
	D float64

	// P is the p-value of D.
	P float64
}

// KSExactLimit is the largest sample size for which KSTest uses the
// exact distribution of D. Above this, it uses Kolmogorov's limiting
// distribution.
const KSExactLimit = 10000

// A CDF is a cumulative distribution function.
type CDF interface {
	CDF(x float64) float64
}

// KSTest tests the null hypothesis that xs is drawn from the
// continuous distribution dist against the two-sided alternative.
// xs is not modified.
func KSTest(xs []float64, dist CDF) (*KSTestResult, error) {
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("%w: KS test needs >= 1 sample", ErrSampleSize)
	}
	x := append([]float64(nil), xs...)
	sort.Float64s(x)

	nf := float64(n)
	var d float64
	for i, v := range x {
		f := dist.CDF(v)
		d = math.Max(d, math.Max(float64(i+1)/nf-f, f-float64(i)/nf))
	}

	return &KSTestResult{N: n, D: d, P: ksPValue(n, d)}, nil
}

// ksPValue returns P(D_n >= d).
func ksPValue(n int, d float64) float64 {
	var p float64
	if n <= KSExactLimit {
		p = 1 - kolmogorovCDF(n, d)
	} else {
		p = kolmogorovLimitSF(math.Sqrt(float64(n)) * d)
	}
	return math.Max(0, math.Min(1, p))
}

// KSNormal standardizes xs by its mean and population (divide-by-n)
// standard deviation and tests it against the standard normal
// distribution.
func KSNormal(xs []float64) (*KSTestResult, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: KS normality test needs >= 2 samples, have %d", ErrSampleSize, len(xs))
	}
	mean, sd := stat.PopMeanStdDev(xs, nil)
	if sd == 0 {
		return nil, ErrZeroVariance
	}
	z := vec.Map(func(x float64) float64 { return (x - mean) / sd }, xs)
	return KSTest(z, stats.StdNormal)
}
