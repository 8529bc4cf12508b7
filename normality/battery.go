// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normality assesses whether samples plausibly come from a
// normal distribution.
//
// Battery runs four complementary tests over every column of a
// dataset. None of them is conclusive on its own: the combined
// skewness/kurtosis test and the skewness test need moderately large
// samples, Shapiro-Wilk is the most powerful for small samples, and
// the Kolmogorov-Smirnov test is sensitive to departures near the
// center of the distribution. The report is meant to be read as a
// whole.
//
// A test that cannot be computed for a column, for example because
// the column is too small, does not fail the battery. Its result
// holds NaN values and an error explaining why.
package normality

import (
	"fmt"
	"math"

	"golang.org/x/hypotest/internal/normtest"
)

// A Test identifies one of the tests in the battery.
type Test int

const (
	// CombinedNormality is D'Agostino and Pearson's K² test,
	// which combines skewness and kurtosis.
	CombinedNormality Test = iota

	// ShapiroWilk is the Shapiro-Wilk W test.
	ShapiroWilk

	// KSNormal is the Kolmogorov-Smirnov test of the standardized
	// sample against the standard normal distribution.
	KSNormal

	// Skew is D'Agostino's skewness test.
	Skew

	numTests
)

// Tests lists every test in the battery, in report order.
var Tests = []Test{CombinedNormality, ShapiroWilk, KSNormal, Skew}

var testNames = [...]string{
	CombinedNormality: "combined-normality",
	ShapiroWilk:       "shapiro-wilk",
	KSNormal:          "ks-normal",
	Skew:              "skew",
}

func (t Test) String() string {
	if t < 0 || t >= numTests {
		return fmt.Sprintf("Test(%d)", int(t))
	}
	return testNames[t]
}

// A TestResult is the outcome of one test on one column.
type TestResult struct {
	Test Test

	// Statistic and P are the test statistic and its p-value.
	// They are NaN if Err is non-nil.
	Statistic, P float64

	// Err is non-nil if the test could not be computed for this
	// column.
	Err error
}

// A Column is the battery's result for one sample.
type Column struct {
	// Name identifies the column in the input dataset.
	Name string

	// N is the number of values in the column.
	N int

	// Results has one entry per Test, in the order of Tests.
	Results []TestResult
}

// Result returns the result of test t.
func (c *Column) Result(t Test) TestResult {
	for _, r := range c.Results {
		if r.Test == t {
			return r
		}
	}
	return TestResult{Test: t, Statistic: math.NaN(), P: math.NaN(), Err: fmt.Errorf("no %s result", t)}
}

// Warnings returns an error for each test that could not be computed.
func (c *Column) Warnings() []error {
	var warnings []error
	for _, r := range c.Results {
		if r.Err != nil {
			warnings = append(warnings, fmt.Errorf("column %s: %s: %w", c.Name, r.Test, r.Err))
		}
	}
	return warnings
}

// Rejects returns the tests that reject normality at significance
// level alpha.
func (c *Column) Rejects(alpha float64) []Test {
	var tests []Test
	for _, r := range c.Results {
		if r.Err == nil && r.P < alpha {
			tests = append(tests, r.Test)
		}
	}
	return tests
}

// A Report is the battery's result for a dataset.
type Report struct {
	// Columns are in the order of the input dataset.
	Columns []*Column
}

// Column returns the column named name, or nil if there is none.
func (r *Report) Column(name string) *Column {
	for _, c := range r.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Warnings returns the warnings of all columns.
func (r *Report) Warnings() []error {
	var warnings []error
	for _, c := range r.Columns {
		warnings = append(warnings, c.Warnings()...)
	}
	return warnings
}

// Battery runs every normality test over every column of data.
//
// It returns an error wrapping ErrUnsupportedInput if data is nil or
// cannot be interpreted as numeric columns.
func Battery(data Dataset) (*Report, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrUnsupportedInput)
	}
	samples, err := data.samples()
	if err != nil {
		return nil, err
	}
	r := &Report{Columns: make([]*Column, 0, len(samples))}
	for _, s := range samples {
		r.Columns = append(r.Columns, testColumn(s.name, s.xs))
	}
	return r, nil
}

func testColumn(name string, xs []float64) *Column {
	c := &Column{Name: name, N: len(xs), Results: make([]TestResult, 0, len(Tests))}
	for _, t := range Tests {
		stat, p, err := runTest(t, xs)
		if err != nil {
			stat, p = math.NaN(), math.NaN()
		}
		c.Results = append(c.Results, TestResult{Test: t, Statistic: stat, P: p, Err: err})
	}
	return c
}

func runTest(t Test, xs []float64) (stat, p float64, err error) {
	switch t {
	case CombinedNormality:
		r, err := normtest.NormalTest(xs)
		if err != nil {
			return 0, 0, err
		}
		return r.K2, r.P, nil
	case ShapiroWilk:
		r, err := normtest.ShapiroWilk(xs)
		if err != nil {
			return 0, 0, err
		}
		return r.W, r.P, nil
	case KSNormal:
		r, err := normtest.KSNormal(xs)
		if err != nil {
			return 0, 0, err
		}
		return r.D, r.P, nil
	case Skew:
		r, err := normtest.SkewTest(xs)
		if err != nil {
			return 0, 0, err
		}
		return r.Z, r.P, nil
	}
	panic("unknown test " + t.String())
}
