// SPDX-License-Identifier: MIT
// Package quantum - exact membership tests against the open interval (-2, 2).
//
// Purpose:
//   InOpenIntervalTwo decides, without floating point, whether the real value
//   of a canonical quantum integer lies strictly between -2 and 2. The test
//   drives root classification during table construction, so every shape that
//   construction can actually produce must be decided exactly; anything
//   outside the recognized list reports ErrUnsupportedForm rather than guess.

package quantum

import "fmt"

// signSurd reports the sign of u + w*sqrt(d) for d > 0, by integer
// comparison of squares. Returns -1, 0 or +1.
func signSurd(u, w, d int) int {
	switch {
	case w == 0:
		return sign(u)
	case u == 0:
		return sign(w)
	case u > 0 && w > 0:
		return 1
	case u < 0 && w < 0:
		return -1
	case w > 0: // u < 0
		return sign(d*w*w - u*u)
	default: // w < 0, u > 0
		return sign(u*u - d*w*w)
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// quadraticInterval decides -2 < a + b*v < 2 exactly, where v is the value
// of [2] at order q for q in {8, 10, 12}. Those three orders generate
// quadratic rings (Z[sqrt2], Z[phi], Z[sqrt3]), so arbitrary integer a, b
// are decidable by surd sign tests. Order 10 needs the half-integer trick:
// 2*(a + b*phi) = (2a + b) + b*sqrt5.
func quadraticInterval(q, a, b int) bool {
	var u, w, bound int
	switch q {
	case 8:
		u, w, bound = a, b, 2
		return signSurd(u+bound, w, 2) > 0 && signSurd(u-bound, w, 2) < 0
	case 10:
		u, w, bound = 2*a+b, b, 4
		return signSurd(u+bound, w, 5) > 0 && signSurd(u-bound, w, 5) < 0
	case 12:
		u, w, bound = a, b, 2
		return signSurd(u+bound, w, 3) > 0 && signSurd(u-bound, w, 3) < 0
	}
	return false
}

// InOpenIntervalTwo reports whether the value of x lies in the open interval
// (-2, 2).
//
// Decidable shapes, by canonical term multiset:
//   - plain integers: |c| <= 1.
//   - orders 8, 10 and 12: any a*[1] + b*[2], via exact quadratic
//     arithmetic. No other canonical index exists at these orders.
//   - order q >= 14, single term c*[n] with n >= 2: inside only for
//     n == 2 and |c| == 1.
//   - order q >= 14, a*[1] + b*[2] with |b| == 1: after normalizing the
//     sign so b == 1, inside exactly when -3 <= a <= 0.
//   - order q >= 14, a*[1] + b*[3] with |b| == 1: after normalizing so
//     b == 1, inside exactly when -4 <= a <= -1 (the value is a plus
//     2*cos(2*pi/m), which lies in (1, 2) for q = 2m >= 14).
//   - order q >= 14, [j] +- [k] with j >= 2, k - j in {1, 2} and unit
//     coefficients. The gap-2 pairs are the dihedral chain forms:
//     [j+2] - [j] = 2*cos(2*pi*(j+1)/q) lies in (0, 2) for every canonical
//     j. The gap-1 pairs are their images under the fold [q/2 - n] = [n]
//     (at order 14 the chain value [2] - [4] canonicalizes to [2] - [3]);
//     [j+1] - [j] = cos((2j+1)*pi/q)/cos(pi/q) lies in (-1, 1). Opposite
//     signs are therefore always inside, while every sum is at least
//     [2] + [3] >= 2, so matching signs are always outside.
//
// Everything else reports ErrUnsupportedForm. Odd orders and orders below 8
// never arise from canonical arithmetic on bond entries and are rejected the
// same way.
func InOpenIntervalTwo(x Integer) (bool, error) {
	if c, ok := x.Int(); ok {
		return c >= -1 && c <= 1, nil
	}
	q := x.Order()
	if q%2 != 0 || q < 8 {
		return false, fmt.Errorf("%w: order %d", ErrUnsupportedForm, q)
	}
	idx := x.indices()
	if q <= 12 {
		// Canonical indices at these orders are a subset of {1, 2}.
		return quadraticInterval(q, x.coeff(1), x.coeff(2)), nil
	}
	switch len(idx) {
	case 1:
		n := idx[0]
		c := x.coeff(n)
		return n == 2 && (c == 1 || c == -1), nil
	case 2:
		lo, hi := idx[0], idx[1]
		a, b := x.coeff(lo), x.coeff(hi)
		if lo == 1 && (b == 1 || b == -1) {
			if b == -1 {
				a, b = -a, 1
			}
			switch hi {
			case 2:
				return a >= -3 && a <= 0, nil
			case 3:
				return a >= -4 && a <= -1, nil
			}
		}
		if lo >= 2 && hi-lo <= 2 && (a == 1 || a == -1) && (b == 1 || b == -1) {
			return a != b, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrUnsupportedForm, x)
}
