// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/hypotest/normality"
	"golang.org/x/hypotest/qqplot"
	"golang.org/x/hypotest/ttest"
)

// runNormal runs the normality battery over every column of every
// input file.
func runNormal(w, wErr io.Writer, cfg *config) error {
	var reports []*normality.Report
	var buf bytes.Buffer
	for _, file := range cfg.files {
		tab, err := readTable(file)
		if err != nil {
			return err
		}
		rep, err := normality.Battery(normality.Columns{G: tab})
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		reports = append(reports, rep)

		for _, warn := range rep.Warnings() {
			fmt.Fprintf(wErr, "%s: %v\n", file, warn)
		}
		for _, c := range rep.Columns {
			warnRejects(wErr, file+": column "+c.Name, c, cfg.alpha)
		}

		if cfg.qqDir != "" {
			base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			for _, c := range rep.Columns {
				xs, err := normality.ColumnValues(tab, c.Name)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if err := writeQQ(cfg.qqDir, base+"-"+c.Name, xs); err != nil {
					return err
				}
			}
		}

		if !cfg.html {
			if err := rep.WriteText(&buf); err != nil {
				return err
			}
		}
	}
	if cfg.html {
		if err := writeHTML(&buf, normalDoc(cfg.files, reports)); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// runTTest runs the t-test selected by cfg.test.
func runTTest(w, wErr io.Writer, cfg *config) error {
	samples, err := loadSamples(cfg)
	if err != nil {
		return err
	}

	var r *ttest.Result
	var diagnosed [][]float64
	switch cfg.test {
	case "one":
		r, err = ttest.OneSample(samples[0], cfg.mu, cfg.alt)
		diagnosed = samples[:1]
	case "ind":
		r, err = ttest.Independent(samples[0], samples[1], cfg.alt)
		diagnosed = samples
	case "paired":
		r, err = ttest.Paired(samples[0], samples[1], cfg.alt)
		if err == nil {
			diff := make([]float64, len(samples[0]))
			for i := range diff {
				diff[i] = samples[0][i] - samples[1][i]
			}
			diagnosed = [][]float64{diff}
		}
	}
	if err != nil {
		return err
	}

	for _, warn := range r.Warnings {
		fmt.Fprintln(wErr, warn)
	}
	for i, rep := range r.Normality {
		for _, c := range rep.Columns {
			warnRejects(wErr, r.Labels[i], c, cfg.alpha)
		}
	}
	if r.P < cfg.alpha {
		var null string
		switch r.Kind {
		case ttest.OneSampleKind:
			null = fmt.Sprintf("mean = %v", cfg.mu)
		case ttest.IndependentKind:
			null = "equal means"
		case ttest.PairedKind:
			null = "zero mean difference"
		}
		fmt.Fprintf(wErr, "%s t-test rejects %s: p = %.4f < α = %v (%s)\n", r.Kind, null, r.P, cfg.alpha, r.Alternative)
	}

	if cfg.qqDir != "" {
		for i, xs := range diagnosed {
			if err := writeQQ(cfg.qqDir, r.Labels[i], xs); err != nil {
				return err
			}
		}
	}

	var buf bytes.Buffer
	if cfg.html {
		err = writeHTML(&buf, tTestDoc(r))
	} else {
		err = r.WriteText(&buf)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// loadSamples returns the samples a t-test compares: the first column
// of each file, or the first two columns of a single file for the
// two-sample tests.
func loadSamples(cfg *config) ([][]float64, error) {
	want := 2
	if cfg.test == "one" {
		want = 1
	}
	var samples [][]float64
	for _, file := range cfg.files {
		tab, err := readTable(file)
		if err != nil {
			return nil, err
		}
		cols := tab.Columns()
		n := want
		if len(cfg.files) > 1 {
			n = 1
		}
		if len(cols) < n {
			return nil, fmt.Errorf("%s: need %d columns, have %d", file, n, len(cols))
		}
		for _, col := range cols[:n] {
			xs, err := normality.ColumnValues(tab, col)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			samples = append(samples, xs)
		}
	}
	return samples, nil
}

// warnRejects reports each test that rejects normality of c at
// significance level alpha.
func warnRejects(wErr io.Writer, label string, c *normality.Column, alpha float64) {
	for _, t := range c.Rejects(alpha) {
		fmt.Fprintf(wErr, "%s: %s rejects normality: p = %.4f < α = %v\n", label, t, c.Result(t).P, alpha)
	}
}

// writeQQ writes a normal Q-Q plot of xs to dir/name.png.
func writeQQ(dir, name string, xs []float64) error {
	name = strings.ReplaceAll(name, "/", "-")
	pl, err := qqplot.New(name, xs)
	if err != nil {
		return fmt.Errorf("Q-Q plot of %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		return err
	}
	if err := qqplot.WritePNG(f, pl); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
