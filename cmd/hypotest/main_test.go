// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/hypotest/ttest"
)

func TestNormal(t *testing.T) {
	golden(t, "heights", "heights.txt")
}

func TestOneSample(t *testing.T) {
	golden(t, "oneSample", "-test", "one", "-mu", "5", "sample.txt")
}

func TestPaired(t *testing.T) {
	// Two columns of a single file.
	golden(t, "paired", "-test", "paired", "pairs.txt")
}

func TestIndependent(t *testing.T) {
	// First columns of two files.
	golden(t, "indGreater", "-test", "ind", "-alt", "greater", "sample.txt", "after.txt")
}

func TestRejectionMessages(t *testing.T) {
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	check := func(want string, args ...string) {
		t.Helper()
		var out, outErr bytes.Buffer
		if err := hypotest(&out, &outErr, args); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(outErr.String(), want) {
			t.Errorf("hypotest %s: stderr missing %q:\n%s", strings.Join(args, " "), want, outErr.String())
		}
	}
	check("one-sample t-test rejects mean = 4: p = ", "-test", "one", "-mu", "4", "sample.txt")
	check("independent t-test rejects equal means: p = ", "-test", "ind", "pairs.txt")
	check("paired t-test rejects zero mean difference: p = ", "-test", "paired", "pairs.txt")
}

func TestErrors(t *testing.T) {
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	check := func(want error, args ...string) {
		t.Helper()
		var out, outErr bytes.Buffer
		err := hypotest(&out, &outErr, args)
		if !errors.Is(err, want) {
			t.Errorf("hypotest %s: want %v, got %v", strings.Join(args, " "), want, err)
		}
		if out.Len() != 0 {
			t.Errorf("hypotest %s: unexpected output:\n%s", strings.Join(args, " "), out.String())
		}
	}
	check(errUsage)
	check(errUsage, "-test", "anova", "heights.txt")
	check(errUsage, "-alt", "sideways", "heights.txt")
	check(errUsage, "-test", "one", "sample.txt", "after.txt")
	check(errUsage, "-test", "paired", "a.txt", "b.txt", "c.txt")
	check(errUsage, "-nosuchflag", "heights.txt")
	check(ttest.ErrLengthMismatch, "-test", "paired", "heights.txt", "sample.txt")
	check(ttest.ErrDegenerateSample, "-test", "paired", "sample.txt", "sample.txt")
	check(os.ErrNotExist, "missing.txt")

	var out, outErr bytes.Buffer
	err := hypotest(&out, &outErr, []string{"ragged.txt"})
	if err == nil || err.Error() != "ragged.txt:2: have 1 fields, want 2" {
		t.Errorf("want ragged table error, got %v", err)
	}
}

func TestHTML(t *testing.T) {
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var out, outErr bytes.Buffer
	if err := hypotest(&out, &outErr, []string{"-html", "-test", "ind", "pairs.txt"}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"<title>independent t-test (two-sided)</title>",
		"<p>sample size, x1:5, x2:5</p>",
		"<h2>normality of x1</h2>",
		"<h2>normality of x2</h2>",
		"<tr><td>shapiro-wilk<td>0.9868<td>0.9672",
		"<tr><td>t value<td>3.0000",
		"<tr><td>p value<td>0.0171",
		"<td>1.8974\n</table>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML output missing %q:\n%s", want, got)
		}
	}
}

func TestQQ(t *testing.T) {
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	dir := t.TempDir()
	var out, outErr bytes.Buffer
	if err := hypotest(&out, &outErr, []string{"-qq", dir, "heights.txt", "pairs.txt"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"heights-height.png", "pairs-before.png", "pairs-after.png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Error(err)
			continue
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("%s is not a PNG image", name)
		}
	}

	dir = t.TempDir()
	if err := hypotest(&out, &outErr, []string{"-qq", dir, "-test", "paired", "pairs.txt"}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x1-x2.png")); err != nil {
		t.Error(err)
	}
}

func TestWriteQQName(t *testing.T) {
	dir := t.TempDir()
	if err := writeQQ(dir, "x/v", []float64{1, 2, 4, 8}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x-v.png")); err != nil {
		t.Error(err)
	}
}

func TestParseTable(t *testing.T) {
	tab, err := parseTable("in", []byte("# comment\n\n1,2.5 3\n4 5e1,\t6\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cols := tab.Columns(); strings.Join(cols, " ") != "0 1 2" {
		t.Errorf("want columns 0 1 2, got %v", cols)
	}
	if tab.Len() != 2 {
		t.Errorf("want 2 rows, got %d", tab.Len())
	}

	for _, tc := range []struct{ in, err string }{
		{"", "in: no data"},
		{"a b\n", "in: no data"},
		{"a a\n1 2\n", "in:1: duplicate column \"a\""},
		{"a b\n1 2\n3 x\n", "in:3: \"x\" is not a number"},
		{"1 2\n3\n", "in:2: have 1 fields, want 2"},
		{"a b\n1 2 3\n", "in:2: have 3 fields, want 2"},
	} {
		_, err := parseTable("in", []byte(tc.in))
		if err == nil || err.Error() != tc.err {
			t.Errorf("parseTable(%q): want error %q, got %v", tc.in, tc.err, err)
		}
	}
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	// Get the hypotest output.
	var got, gotErr bytes.Buffer
	t.Logf("hypotest %s", strings.Join(args, " "))
	if err := hypotest(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Compare to the golden output.
	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	if !diff(t, want, got) {
		return
	}
	// diff printed the error.

	// Write a "got" file for reference.
	gotPath := name + ".got-" + sub
	if err := os.WriteFile(gotPath, got, 0666); err != nil {
		t.Fatalf("error writing %s: %s", gotPath, err)
	}
}

func diff(t *testing.T, want, got []byte) bool {
	t.Helper()
	if bytes.Equal(want, got) {
		return false
	}

	d := t.TempDir()
	wantPath, gotPath := filepath.Join(d, "want"), filepath.Join(d, "got")
	if err := os.WriteFile(wantPath, want, 0666); err != nil {
		t.Fatalf("error writing %s: %s", wantPath, err)
	}
	if err := os.WriteFile(gotPath, got, 0666); err != nil {
		t.Fatalf("error writing %s: %s", gotPath, err)
	}

	cmd := exec.Command("diff", "-Nu", "want", "got")
	cmd.Dir = d
	data, _ := cmd.CombinedOutput()
	if len(data) > 0 {
		t.Errorf("\n%s", data)
	} else {
		// Most likely, "diff not found" so print the bad
		// output so there is something.
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
	return true
}
