// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hypotest checks samples for normality and compares their means
// with Student's t-tests.
//
// Usage:
//
//	hypotest [flags] file [file2]
//
// Each input file is a table of numbers separated by white space or
// commas, one row per line. If the first row is not numeric, it names
// the columns; otherwise the columns are named 0, 1, 2, and so on.
// Blank lines and lines starting with # are ignored.
//
// The -test flag selects what to compute:
//
//	normal  run the normality battery over every column of every file
//	one     one-sample t-test of the first column against -mu
//	ind     independent two-sample t-test
//	paired  paired t-test
//
// The two-sample tests compare the first column of each of two files,
// or the first two columns of a single file.
//
// The normality battery consists of D'Agostino and Pearson's combined
// skewness and kurtosis test, the Shapiro-Wilk test, a
// Kolmogorov-Smirnov test against the normal distribution, and
// D'Agostino's skewness test. The t-tests run the battery over the
// samples they assume are normal and print it before the t-test
// result. For example:
//
//	$ hypotest -test one -mu 5 sample.txt
//	============= Assumptions Check ============
//	sample size: 5
//	============= normal test ===========
//	============= Column: 0  ===========
//	Normal  Test, statistic_value: NaN, p_value: NaN
//	Shapiro Test, statistic_value: 0.9868, p_value: 0.9672
//	KS      Test, statistic_value: 0.1602, p_value: 0.9970
//	Skew    Test, statistic_value: NaN, p_value: NaN
//
//	==============  t Test Result  =============
//	t   value: 1.4142
//	p   value: 0.2302
//	cohen's d: 0.7071
//
// Tests that cannot be computed print as NaN, with a warning on
// standard error explaining why. Tests whose p-value is below -alpha
// are also reported on standard error.
//
// The -html flag prints the report as an HTML document instead, and
// -qq writes a normal Q-Q plot of each diagnosed sample as a PNG file
// into the given directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/hypotest/ttest"
)

var exit = os.Exit // replaced during testing

// errUsage reports a command line error. The details have already been
// printed along with the usage message.
var errUsage = errors.New("usage error")

func main() {
	log.SetPrefix("hypotest: ")
	log.SetFlags(0)

	err := hypotest(os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		exit(2)
	default:
		log.Fatal(err)
	}
}

// A config holds the parsed command line.
type config struct {
	test  string
	alt   ttest.Alternative
	mu    float64
	alpha float64
	html  bool
	qqDir string
	files []string
}

func hypotest(w, wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("hypotest", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(wErr, "usage: hypotest [flags] file [file2]\n")
		fmt.Fprintf(wErr, "flags:\n")
		fs.PrintDefaults()
	}
	flagTest := fs.String("test", "normal", "`kind` of test: normal, one, ind, or paired")
	flagAlt := fs.String("alt", "two-sided", "alternative `hypothesis`: two-sided, less, or greater")
	flagMu := fs.Float64("mu", 0, "hypothesized mean `μ0` for the one-sample test")
	flagAlpha := fs.Float64("alpha", 0.05, "report tests with p < `α` on standard error")
	flagHTML := fs.Bool("html", false, "print the report as an HTML document")
	flagQQ := fs.String("qq", "", "write a normal Q-Q plot of each sample into `dir`")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	usagef := func(format string, args ...any) error {
		fmt.Fprintf(wErr, "hypotest: "+format+"\n", args...)
		fs.Usage()
		return errUsage
	}

	cfg := &config{
		test:  *flagTest,
		mu:    *flagMu,
		alpha: *flagAlpha,
		html:  *flagHTML,
		qqDir: *flagQQ,
		files: fs.Args(),
	}
	alt, err := ttest.ParseAlternative(*flagAlt)
	if err != nil {
		return usagef("-alt: %v", err)
	}
	cfg.alt = alt

	switch cfg.test {
	case "normal":
		if len(cfg.files) < 1 {
			return usagef("no input files")
		}
		return runNormal(w, wErr, cfg)
	case "one":
		if len(cfg.files) != 1 {
			return usagef("one-sample test needs one input file")
		}
	case "ind", "paired":
		if len(cfg.files) != 1 && len(cfg.files) != 2 {
			return usagef("two-sample test needs one or two input files")
		}
	default:
		return usagef("unknown test %q", cfg.test)
	}
	return runTTest(w, wErr, cfg)
}
