// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const smallNormality = `============= normal test ===========
============= Column: 0  ===========
Normal  Test, statistic_value: NaN, p_value: NaN
Shapiro Test, statistic_value: 0.9868, p_value: 0.9672
KS      Test, statistic_value: 0.1602, p_value: 0.9970
Skew    Test, statistic_value: NaN, p_value: NaN

`

func TestWriteTextOneSample(t *testing.T) {
	r, err := OneSample(small1, 5.0, TwoSided)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := r.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	want := "============= Assumptions Check ============\n" +
		"sample size: 5\n" +
		smallNormality +
		"==============  t Test Result  =============\n" +
		"t   value: 1.4142\n" +
		"p   value: 0.2302\n" +
		"cohen's d: 0.7071\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTextIndependent(t *testing.T) {
	r, err := Independent(small1, small2, TwoSided)
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := r.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "============= Assumptions Check ============\nsample size, x1:5, x2:5\n") {
		t.Errorf("missing sample size header:\n%s", got)
	}
	if n := strings.Count(got, "============= normal test ==========="); n != 2 {
		t.Errorf("want 2 normality blocks, got %d:\n%s", n, got)
	}
	if !strings.HasSuffix(got, "t   value: 3.0000\np   value: 0.0171\ncohen's d: 1.8974\n\n") {
		t.Errorf("wrong summary:\n%s", got)
	}
}
