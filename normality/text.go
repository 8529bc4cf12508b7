// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normality

import (
	"bufio"
	"fmt"
	"io"
)

// Labels used in the text report. They are padded so the statistics
// line up.
var textLabels = [...]string{
	CombinedNormality: "Normal  Test",
	ShapiroWilk:       "Shapiro Test",
	KSNormal:          "KS      Test",
	Skew:              "Skew    Test",
}

// WriteText writes a human-readable block for each column of r to w.
// Statistics and p-values are printed to four decimal places, and
// tests that could not be computed print as NaN.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range r.Columns {
		c.writeText(bw)
	}
	return bw.Flush()
}

func (c *Column) writeText(w io.Writer) {
	fmt.Fprintf(w, "============= normal test ===========\n")
	fmt.Fprintf(w, "============= Column: %s  ===========\n", c.Name)
	for _, r := range c.Results {
		fmt.Fprintf(w, "%s, statistic_value: %.4f, p_value: %.4f\n", textLabels[r.Test], r.Statistic, r.P)
	}
	fmt.Fprintf(w, "\n")
}
