// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normtest implements tests of the null hypothesis that a
// sample is drawn from a normal distribution.
//
// The tests follow the conventions of
// github.com/aclements/go-moremath/stats: each returns a result
// struct or an error, and moments are computed with the biased
// (divide-by-n) estimators.
package normtest

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrSampleSize   = errors.New("sample is too small")
	ErrZeroVariance = errors.New("sample has zero variance")
	ErrZeroRange    = errors.New("all sample values are equal")
)

var nan = math.NaN()

// moments returns the second, third and fourth central moments of
// xs, normalized by n.
func moments(xs []float64) (m2, m3, m4 float64) {
	return stat.Moment(2, xs, nil), stat.Moment(3, xs, nil), stat.Moment(4, xs, nil)
}

// poly evaluates the polynomial c[0] + c[1]*x + c[2]*x² + ...
func poly(c []float64, x float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
