// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normality

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

func checkSamples(t *testing.T, d Dataset, want []namedSample) {
	t.Helper()
	got, err := d.samples()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(namedSample{})); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetOf(t *testing.T) {
	var b table.Builder
	b.Add("a", []float64{1, 2, 3}).Add("b", []int{4, 5, 6})
	tab := b.Done()

	check := func(v any, want []namedSample) {
		t.Helper()
		d, err := DatasetOf(v)
		if err != nil {
			t.Fatalf("DatasetOf(%T): %v", v, err)
		}
		checkSamples(t, d, want)
	}

	check(tab, []namedSample{{"a", []float64{1, 2, 3}}, {"b", []float64{4, 5, 6}}})
	check([][]float64{{1, 2}, {3, 4}, {5, 6}}, []namedSample{{"0", []float64{1, 3, 5}}, {"1", []float64{2, 4, 6}}})
	check(mat.NewDense(2, 1, []float64{7, 8}), []namedSample{{"0", []float64{7, 8}}})
	check([]float64{1, 2, 3}, []namedSample{{"0", []float64{1, 2, 3}}})
	check(List{4, 5}, []namedSample{{"0", []float64{4, 5}}})

	for _, v := range []any{
		nil,
		"1 2 3",
		[]int{1, 2, 3},
		map[string][]float64{"a": {1, 2}},
		(*table.Table)(nil),
		(*mat.Dense)(nil),
		[][]float64{{1, 2}, {3}},
		[][]float64{},
	} {
		if _, err := DatasetOf(v); !errors.Is(err, ErrUnsupportedInput) {
			t.Errorf("DatasetOf(%#v): want ErrUnsupportedInput, got %v", v, err)
		}
	}
}

func TestColumnsGrouped(t *testing.T) {
	var b table.Builder
	b.Add("group", []string{"x", "y", "x", "y"}).Add("v", []float64{1, 10, 2, 20})
	g := table.GroupBy(b.Done(), "group")
	checkSamples(t, Columns{g}, []namedSample{
		{"x/v", []float64{1, 2}},
		{"y/v", []float64{10, 20}},
	})
}

func TestColumnValues(t *testing.T) {
	var b table.Builder
	b.Add("f32", []float32{1.5, 2.5}).Add("s", []string{"a", "b"})
	tab := b.Done()

	xs, err := ColumnValues(tab, "f32")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1.5, 2.5}, xs); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := ColumnValues(tab, "s"); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("string column: want ErrUnsupportedInput, got %v", err)
	}
	if _, err := ColumnValues(tab, "missing"); err == nil {
		t.Errorf("missing column: want error")
	}
}
