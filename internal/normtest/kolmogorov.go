// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normtest

import "math"

// kolmogorovCDF returns P(D_n < d), where D_n is the two-sided
// Kolmogorov-Smirnov statistic for a sample of size n.
//
// This is the method of Marsaglia, Tsang and Wang, "Evaluating
// Kolmogorov's Distribution" (2003), including their fast
// approximation in the far right tail.
func kolmogorovCDF(n int, d float64) float64 {
	nf := float64(n)
	s := d * d * nf
	if s > 7.24 || (s > 3.76 && n > 99) {
		return 1 - 2*math.Exp(-(2.000071+0.331/math.Sqrt(nf)+1.409/nf)*s)
	}
	if d <= 0 {
		return 0
	}

	k := int(nf*d) + 1
	m := 2*k - 1
	h := float64(k) - nf*d

	hm := newSquare(m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 >= 0 {
				hm.set(i, j, 1)
			}
		}
	}
	for i := 0; i < m; i++ {
		hm.set(i, 0, hm.at(i, 0)-math.Pow(h, float64(i+1)))
		hm.set(m-1, i, hm.at(m-1, i)-math.Pow(h, float64(m-i)))
	}
	if 2*h-1 > 0 {
		hm.set(m-1, 0, hm.at(m-1, 0)+math.Pow(2*h-1, float64(m)))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 > 0 {
				for g := 1; g <= i-j+1; g++ {
					hm.set(i, j, hm.at(i, j)/float64(g))
				}
			}
		}
	}

	q, eq := hm.pow(n)
	p := q.at(k-1, k-1)
	for i := 1; i <= n; i++ {
		p = p * float64(i) / nf
		if p < 1e-140 {
			p *= 1e140
			eq -= 140
		}
	}
	return p * math.Pow(10, float64(eq))
}

// kolmogorovLimitSF returns P(K > x) for Kolmogorov's limiting
// distribution K = lim sqrt(n) D_n.
func kolmogorovLimitSF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x < 0.2 {
		// The alternating series converges too slowly here,
		// and the true value is 1 to double precision.
		return 1
	}
	var sum float64
	for k := 1; k <= 100; k++ {
		kf := float64(k)
		term := math.Exp(-2 * kf * kf * x * x)
		if k%2 == 0 {
			sum -= term
		} else {
			sum += term
		}
		if term < 1e-17 {
			break
		}
	}
	return math.Max(0, math.Min(1, 2*sum))
}

// square is a dense m×m matrix with a decimal exponent, used to keep
// matrix powers from overflowing.
type square struct {
	m int
	v []float64
}

func newSquare(m int) *square {
	return &square{m, make([]float64, m*m)}
}

func (a *square) at(i, j int) float64     { return a.v[i*a.m+j] }
func (a *square) set(i, j int, x float64) { a.v[i*a.m+j] = x }

func (a *square) mul(b *square) *square {
	c := newSquare(a.m)
	for i := 0; i < a.m; i++ {
		for k := 0; k < a.m; k++ {
			aik := a.at(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < a.m; j++ {
				c.v[i*a.m+j] += aik * b.at(k, j)
			}
		}
	}
	return c
}

// pow returns a^n as a matrix and a decimal exponent e such that
// a^n = result * 10^e.
func (a *square) pow(n int) (*square, int) {
	if n == 1 {
		c := newSquare(a.m)
		copy(c.v, a.v)
		return c, 0
	}
	v, ev := a.pow(n / 2)
	b, eb := v.mul(v), 2*ev
	if n%2 == 1 {
		b = a.mul(b)
	}
	if b.at(a.m/2, a.m/2) > 1e140 {
		for i := range b.v {
			b.v[i] *= 1e-140
		}
		eb += 140
	}
	return b, eb
}
