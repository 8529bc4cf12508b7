// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ttest

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// An Alternative is the alternative hypothesis of a t-test, relative
// to the null hypothesis that the mean (or mean difference) equals
// the hypothesized value.
type Alternative int

const (
	// TwoSided is the hypothesis that the mean differs from the
	// hypothesized value.
	TwoSided Alternative = iota

	// Less is the hypothesis that the mean is less than the
	// hypothesized value.
	Less

	// Greater is the hypothesis that the mean is greater than the
	// hypothesized value.
	Greater

	numAlternatives
)

var altNames = [...]string{
	TwoSided: "two-sided",
	Less:     "less",
	Greater:  "greater",
}

func (a Alternative) String() string {
	if !a.valid() {
		return fmt.Sprintf("Alternative(%d)", int(a))
	}
	return altNames[a]
}

func (a Alternative) valid() bool {
	return a >= 0 && a < numAlternatives
}

// ParseAlternative returns the Alternative named s, one of
// "two-sided", "less", or "greater".
func ParseAlternative(s string) (Alternative, error) {
	for a, name := range altNames {
		if s == name {
			return Alternative(a), nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be two-sided, less, or greater", ErrInvalidAlternative, s)
}

// location maps a to the equivalent go-moremath hypothesis.
func (a Alternative) location() (stats.LocationHypothesis, error) {
	switch a {
	case TwoSided:
		return stats.LocationDiffers, nil
	case Less:
		return stats.LocationLess, nil
	case Greater:
		return stats.LocationGreater, nil
	}
	return 0, fmt.Errorf("%w %v", ErrInvalidAlternative, a)
}
