// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttest

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText writes r to w as a human-readable report: the sample
// sizes, the normality blocks of the diagnosed samples, and the t
// statistic, p-value and Cohen's d to four decimal places.
func (r *Result) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "============= Assumptions Check ============\n")
	if r.Kind == IndependentKind {
		fmt.Fprintf(bw, "sample size, x1:%d, x2:%d\n", r.N1, r.N2)
	} else {
		fmt.Fprintf(bw, "sample size: %d\n", r.N1)
	}
	for _, rep := range r.Normality {
		if err := rep.WriteText(bw); err != nil {
			return err
		}
	}
	fmt.Fprintf(bw, "==============  t Test Result  =============\n")
	fmt.Fprintf(bw, "t   value: %.4f\n", r.T)
	fmt.Fprintf(bw, "p   value: %.4f\n", r.P)
	fmt.Fprintf(bw, "cohen's d: %.4f\n", r.D)
	fmt.Fprintf(bw, "\n")
	return bw.Flush()
}
