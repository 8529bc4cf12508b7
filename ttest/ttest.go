// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ttest implements Student's t-tests on samples of float64
// values.
//
// Each test first runs the normality battery over the samples it
// relies on. The battery is diagnostic only: its report is attached
// to the Result so the caller can judge whether the t-test's normality
// assumption is plausible, but a failed normality test never stops
// the t-test. Each Result also carries Cohen's d as an effect size.
package ttest

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/hypotest/normality"
)

var (
	// ErrInvalidAlternative is returned for an alternative
	// hypothesis other than TwoSided, Less or Greater.
	ErrInvalidAlternative = errors.New("invalid alternative hypothesis")

	// ErrLengthMismatch is returned by Paired when the two samples
	// have different lengths.
	ErrLengthMismatch = errors.New("samples have different lengths")

	// ErrDegenerateSample is returned when a sample is too small or
	// has zero variance, so the t statistic is undefined.
	ErrDegenerateSample = errors.New("degenerate sample")
)

// A Kind identifies which t-test produced a Result.
type Kind int

const (
	OneSampleKind Kind = iota
	IndependentKind
	PairedKind
)

func (k Kind) String() string {
	switch k {
	case OneSampleKind:
		return "one-sample"
	case IndependentKind:
		return "independent"
	case PairedKind:
		return "paired"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Result is the outcome of a t-test.
type Result struct {
	Kind        Kind
	Alternative Alternative

	// N1 and N2 are the sizes of the input samples. N2 is 0 for a
	// one-sample test. For a paired test both are the number of
	// pairs.
	N1, N2 int

	// T is the t statistic, DoF its degrees of freedom, and P the
	// p-value under Alternative.
	T, DoF, P float64

	// D is Cohen's d, computed with population (divide by n)
	// variances.
	D float64

	// Normality holds the battery report for each diagnosed sample:
	// x for a one-sample test, x1 and x2 for an independent test,
	// and the differences x1-x2 for a paired test.
	Normality []*normality.Report

	// Labels names each entry of Normality.
	Labels []string

	// Warnings lists the normality tests that could not be
	// computed.
	Warnings []error
}

// OneSample performs a one-sample t-test of the null hypothesis that
// the population mean of x equals mu0.
func OneSample(x []float64, mu0 float64, alt Alternative) (*Result, error) {
	loc, err := alt.location()
	if err != nil {
		return nil, err
	}
	if err := checkSize("x", x); err != nil {
		return nil, err
	}

	r := &Result{Kind: OneSampleKind, Alternative: alt}
	if err := r.diagnose("x", x); err != nil {
		return nil, err
	}
	tr, err := stats.OneSampleTTest(stats.Sample{Xs: x}, mu0, loc)
	if err != nil {
		return nil, degenerate(err)
	}
	d, err := cohenOneSample(x, mu0)
	if err != nil {
		return nil, err
	}
	r.setTest(tr, d)
	return r, nil
}

// Independent performs a two-sample Student's t-test of the null
// hypothesis that x1 and x2 come from populations with equal means.
// It assumes the populations have equal variance.
func Independent(x1, x2 []float64, alt Alternative) (*Result, error) {
	loc, err := alt.location()
	if err != nil {
		return nil, err
	}
	if err := checkSize("x1", x1); err != nil {
		return nil, err
	}
	if err := checkSize("x2", x2); err != nil {
		return nil, err
	}

	r := &Result{Kind: IndependentKind, Alternative: alt}
	if err := r.diagnose("x1", x1); err != nil {
		return nil, err
	}
	if err := r.diagnose("x2", x2); err != nil {
		return nil, err
	}
	tr, err := stats.TwoSampleTTest(stats.Sample{Xs: x1}, stats.Sample{Xs: x2}, loc)
	if err != nil {
		return nil, degenerate(err)
	}
	d, err := cohenPooled(x1, x2)
	if err != nil {
		return nil, err
	}
	r.setTest(tr, d)
	return r, nil
}

// Paired performs a paired t-test of the null hypothesis that the
// mean of the differences x1[i]-x2[i] is zero.
func Paired(x1, x2 []float64, alt Alternative) (*Result, error) {
	loc, err := alt.location()
	if err != nil {
		return nil, err
	}
	if len(x1) != len(x2) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(x1), len(x2))
	}
	diff := make([]float64, len(x1))
	for i := range x1 {
		diff[i] = x1[i] - x2[i]
	}
	if err := checkSize("x1-x2", diff); err != nil {
		return nil, err
	}

	r := &Result{Kind: PairedKind, Alternative: alt}
	if err := r.diagnose("x1-x2", diff); err != nil {
		return nil, err
	}
	tr, err := stats.PairedTTest(x1, x2, 0, loc)
	if err != nil {
		return nil, degenerate(err)
	}
	d, err := cohenOneSample(diff, 0)
	if err != nil {
		return nil, err
	}
	r.setTest(tr, d)
	return r, nil
}

func checkSize(label string, xs []float64) error {
	if len(xs) < 2 {
		return fmt.Errorf("%w: %s has %d values, need at least 2", ErrDegenerateSample, label, len(xs))
	}
	return nil
}

// degenerate wraps a go-moremath t-test error.
func degenerate(err error) error {
	if errors.Is(err, stats.ErrSampleSize) || errors.Is(err, stats.ErrZeroVariance) {
		return fmt.Errorf("%w: %w", ErrDegenerateSample, err)
	}
	return err
}

// diagnose runs the normality battery on xs and records its report.
func (r *Result) diagnose(label string, xs []float64) error {
	rep, err := normality.Battery(normality.List(xs))
	if err != nil {
		return err
	}
	r.Normality = append(r.Normality, rep)
	r.Labels = append(r.Labels, label)
	for _, w := range rep.Warnings() {
		r.Warnings = append(r.Warnings, fmt.Errorf("%s: %w", label, w))
	}
	return nil
}

func (r *Result) setTest(tr *stats.TTestResult, d float64) {
	r.N1, r.N2 = tr.N1, tr.N2
	r.T, r.DoF, r.P = tr.T, tr.DoF, tr.P
	r.D = d
}
