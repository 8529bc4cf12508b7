// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttest

import (
	"math"

	mstats "github.com/montanaflynn/stats"
)

// cohenOneSample returns (mean(x) - mu0) / σ(x), where σ is the
// population standard deviation.
func cohenOneSample(x []float64, mu0 float64) (float64, error) {
	m, err := mstats.Mean(x)
	if err != nil {
		return 0, err
	}
	sd, err := mstats.StandardDeviationPopulation(x)
	if err != nil {
		return 0, err
	}
	return (m - mu0) / sd, nil
}

// cohenPooled returns the difference of the means of x1 and x2 over a
// pooled standard deviation. The population variances are weighted by
// sample size, not by degrees of freedom.
func cohenPooled(x1, x2 []float64) (float64, error) {
	m1, err := mstats.Mean(x1)
	if err != nil {
		return 0, err
	}
	m2, err := mstats.Mean(x2)
	if err != nil {
		return 0, err
	}
	v1, err := mstats.PopulationVariance(x1)
	if err != nil {
		return 0, err
	}
	v2, err := mstats.PopulationVariance(x2)
	if err != nil {
		return 0, err
	}
	n1, n2 := float64(len(x1)), float64(len(x2))
	pooled := math.Sqrt((v1*n1 + v2*n2) / (n1 + n2 - 2))
	return (m1 - m2) / pooled, nil
}
