// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import "github.com/aclements/go-moremath/mathx"

// A NormalTestResult is the result of D'Agostino and Pearson's
// omnibus test.
type NormalTestResult struct {
	// N is the size of the sample.
	N int

	// K2 is the sum of the squared skewness and kurtosis test
	// statistics. It is approximately χ² distributed with 2
	// degrees of freedom under the null hypothesis.
	K2 float64

	// P is the p-value of K2.
	P float64
}

// NormalTest tests the null hypothesis that xs is drawn from a normal
// distribution by combining SkewTest and KurtosisTest. It has the
// sample size requirements of both, so it needs at least 8 samples.
func NormalTest(xs []float64) (*NormalTestResult, error) {
	s, err := SkewTest(xs)
	if err != nil {
		return nil, err
	}
	k, err := KurtosisTest(xs)
	if err != nil {
		return nil, err
	}
	k2 := s.Z*s.Z + k.Z*k.Z
	// The survival function of χ²(2) is Q(1, x/2).
	return &NormalTestResult{N: len(xs), K2: k2, P: mathx.GammaIncComp(1, k2/2)}, nil
}
