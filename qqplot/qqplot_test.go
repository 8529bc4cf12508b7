// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qqplot

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestPoints(t *testing.T) {
	pts, err := Points([]float64{3, 1, math.NaN(), 2, math.Inf(1), 5, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 5 {
		t.Fatalf("want 5 points, got %d", len(pts))
	}
	for i, pt := range pts {
		if pt.Y != float64(i+1) {
			t.Errorf("point %d: want y=%d, got %v", i, i+1, pt.Y)
		}
		if i > 0 && pt.X <= pts[i-1].X {
			t.Errorf("quantiles not increasing at %d: %v <= %v", i, pt.X, pts[i-1].X)
		}
		// Plotting positions are symmetric about the median.
		if mirror := pts[len(pts)-1-i].X; math.Abs(pt.X+mirror) > 1e-12 {
			t.Errorf("quantile %d is %v, mirror is %v", i, pt.X, mirror)
		}
	}
	if math.Abs(pts[2].X) > 1e-12 {
		t.Errorf("median quantile: want 0, got %v", pts[2].X)
	}
	// Φ⁻¹((5 - 3/8) / 5.25)
	if want := 1.1797611176118; math.Abs(pts[4].X-want) > 1e-9 {
		t.Errorf("largest quantile: want %v, got %v", want, pts[4].X)
	}

	if _, err := Points([]float64{1, math.NaN()}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	pl, err := New("heights", []float64{148, 154, 158, 160, 161, 162, 166, 170, 182, 195, 236})
	if err != nil {
		t.Fatal(err)
	}
	if pl.Title.Text != "heights" {
		t.Errorf("want title heights, got %q", pl.Title.Text)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, pl); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output is not a PNG image")
	}
}
