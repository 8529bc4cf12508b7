// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qqplot draws normal quantile-quantile plots.
//
// A Q-Q plot places the ordered sample against the quantiles a normal
// distribution would produce at the same plotting positions. A sample
// drawn from a normal distribution falls close to the reference line
// y = mean + sd·x.
package qqplot

import (
	"errors"
	"image/color"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrSampleSize is returned for samples with fewer than two finite
// values.
var ErrSampleSize = errors.New("sample is too small for a Q-Q plot")

// Points returns the points of a normal Q-Q plot of xs. X is the
// theoretical standard normal quantile at Blom's plotting position
// (i - 3/8) / (n + 1/4), and Y is the i'th smallest value of xs.
// Non-finite values are ignored.
func Points(xs []float64) (plotter.XYs, error) {
	ys := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			ys = append(ys, x)
		}
	}
	if len(ys) < 2 {
		return nil, ErrSampleSize
	}
	sort.Float64s(ys)

	n := float64(len(ys))
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		p := (float64(i+1) - 0.375) / (n + 0.25)
		pts[i].X = distuv.UnitNormal.Quantile(p)
		pts[i].Y = y
	}
	return pts, nil
}

// New returns a normal Q-Q plot of xs with a reference line through
// the sample mean with slope equal to the sample standard deviation.
func New(title string, xs []float64) (*plot.Plot, error) {
	pts, err := Points(xs)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		ys[i] = pt.Y
	}
	mean, sd := stat.MeanStdDev(ys, nil)

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "theoretical quantiles"
	pl.Y.Label.Text = "sample quantiles"
	pl.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(2)

	ref := plotter.NewFunction(func(x float64) float64 { return mean + sd*x })
	ref.Color = color.RGBA{R: 0xcc, A: 0xff}
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	ref.XMin, ref.XMax = pts[0].X, pts[len(pts)-1].X

	pl.Add(sc, ref)
	return pl, nil
}

// Size and resolution of PNG plots.
const (
	Width  = 12 * vg.Centimeter
	Height = 12 * vg.Centimeter
	DPI    = 96
)

// WritePNG draws pl as a PNG image of size Width×Height at DPI dots
// per inch and writes it to w.
func WritePNG(w io.Writer, pl *plot.Plot) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(Width, Height),
		vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	_, err := can.WriteTo(w)
	return err
}
