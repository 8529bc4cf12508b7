// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A ShapiroWilkResult is the result of a Shapiro-Wilk test.
type ShapiroWilkResult struct {
	// N is the size of the sample.
	N int

	// W is the Shapiro-Wilk statistic, in (0, 1]. Values close to
	// 1 are consistent with normality.
	W float64

	// P is the p-value of W.
	P float64
}

// ShapiroWilkMaxN is the largest sample size for which the
// approximations used by ShapiroWilk have been validated. ShapiroWilk
// rejects larger samples.
const ShapiroWilkMaxN = 5000

// Coefficients of Royston (1995), algorithm AS R94.
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.5440, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// ShapiroWilk performs the Shapiro-Wilk test of the null hypothesis
// that xs is drawn from a normal distribution. It requires at least 3
// and at most ShapiroWilkMaxN samples that are not all equal. xs is
// not modified.
//
// This follows Royston's algorithm AS R94, which computes the
// coefficients and p-value from polynomial approximations.
func ShapiroWilk(xs []float64) (*ShapiroWilkResult, error) {
	n := len(xs)
	if n < 3 {
		return nil, fmt.Errorf("%w: Shapiro-Wilk needs >= 3 samples, have %d", ErrSampleSize, n)
	}
	if n > ShapiroWilkMaxN {
		return nil, fmt.Errorf("%w: Shapiro-Wilk is limited to %d samples, have %d", ErrSampleSize, ShapiroWilkMaxN, n)
	}
	x := append([]float64(nil), xs...)
	sort.Float64s(x)
	rng := x[n-1] - x[0]
	if rng < 1e-19 {
		return nil, ErrZeroRange
	}

	a := swCoefficients(n)

	// Scale by the range to keep the sums well conditioned. W is
	// scale invariant.
	lo := x[0]
	var mean float64
	for i := range x {
		x[i] = (x[i] - lo) / rng
		mean += x[i]
	}
	mean /= float64(n)
	var ssq, num float64
	for _, v := range x {
		ssq += (v - mean) * (v - mean)
	}
	for i := 1; i <= n/2; i++ {
		num += a[i] * (x[n-i] - x[i-1])
	}
	w := num * num / ssq
	if w > 1 {
		w = 1
	}

	if n == 3 {
		// The distribution of W is known exactly for n=3.
		const pi6, stqr = 6 / math.Pi, math.Pi / 3
		w = math.Max(w, 0.75)
		p := pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		return &ShapiroWilkResult{N: n, W: w, P: math.Max(0, math.Min(1, p))}, nil
	}

	y := math.Log(1 - w)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, float64(n))
		if y >= gamma {
			return &ShapiroWilkResult{N: n, W: w, P: 1e-99}, nil
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, float64(n))
		s = math.Exp(poly(swC4, float64(n)))
	} else {
		ln := math.Log(float64(n))
		m = poly(swC5, ln)
		s = math.Exp(poly(swC6, ln))
	}
	p := stats.StdNormal.CDF(-(y - m) / s)
	return &ShapiroWilkResult{N: n, W: w, P: p}, nil
}

// swCoefficients returns the antisymmetric Shapiro-Wilk weights
// a[1..n/2] for a sample of size n. a[0] is unused.
func swCoefficients(n int) []float64 {
	nn2 := n / 2
	a := make([]float64, nn2+1)
	if n == 3 {
		a[1] = math.Sqrt(0.5)
		return a
	}

	an25 := float64(n) + 0.25
	m := make([]float64, nn2+1)
	var summ2 float64
	for i := 1; i <= nn2; i++ {
		m[i] = stats.StdNormal.InvCDF((float64(i) - 0.375) / an25)
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))
	a1 := poly(swC1, rsn) - m[1]/ssumm2

	var i1 int
	var fac float64
	if n > 5 {
		i1 = 3
		a2 := -m[2]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[1]*m[1] - 2*m[2]*m[2]) /
			(1 - 2*a1*a1 - 2*a2*a2))
		a[2] = a2
	} else {
		i1 = 2
		fac = math.Sqrt((summ2 - 2*m[1]*m[1]) / (1 - 2*a1*a1))
	}
	a[1] = a1
	for i := i1; i <= nn2; i++ {
		a[i] = -m[i] / fac
	}
	return a
}
