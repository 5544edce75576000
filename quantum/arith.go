// SPDX-License-Identifier: MIT
// Package quantum: addition, subtraction, multiplication, negation.
//
// All binary operations require the operands to share an order, or one of
// them to be a plain integer (which embeds at any order as c·[1]). A plain
// operand never forces collapse the other way: results re-canonicalize and
// collapse to plain whenever only [1] survives.

package quantum

import "fmt"

// commonOrder resolves the order the result lives at.
// Returns ErrMixedCyclotomy when both operands are quantum at distinct orders.
func commonOrder(x, y Integer) (int, error) {
	switch {
	case x.plain():
		return y.Order(), nil
	case y.plain() || x.q == y.q:
		return x.q, nil
	default:
		return 0, fmt.Errorf("orders %d and %d: %w", x.q, y.q, ErrMixedCyclotomy)
	}
}

// termsAt views x as an index→coefficient map at order q (x must be plain
// or already at q).
func (x Integer) termsAt() map[int]int {
	if x.plain() {
		if x.c == 0 {
			return nil
		}
		return map[int]int{1: x.c}
	}
	return x.terms
}

// Neg returns −x.
func (x Integer) Neg() Integer {
	if x.plain() {
		return NewInt(-x.c)
	}
	neg := make(map[int]int, len(x.terms))
	for n, c := range x.terms {
		neg[n] = -c
	}
	return Integer{q: x.q, terms: neg}
}

// Add returns x + y, or ErrMixedCyclotomy for incompatible orders.
func (x Integer) Add(y Integer) (Integer, error) {
	q, err := commonOrder(x, y)
	if err != nil {
		return Integer{}, err
	}
	if q == 1 {
		return NewInt(x.c + y.c), nil
	}
	sum := make(map[int]int)
	for n, c := range x.termsAt() {
		sum[n] += c
	}
	for n, c := range y.termsAt() {
		sum[n] += c
	}
	return build(q, sum), nil
}

// Sub returns x − y, or ErrMixedCyclotomy for incompatible orders.
func (x Integer) Sub(y Integer) (Integer, error) {
	return x.Add(y.Neg())
}

// Mul returns x·y, or ErrMixedCyclotomy for incompatible orders.
// Products of basis elements expand through the quantum product identity
// [n]·[m] = Σ [k] for k = |n−m|+1, |n−m|+3, …, n+m−1.
func (x Integer) Mul(y Integer) (Integer, error) {
	q, err := commonOrder(x, y)
	if err != nil {
		return Integer{}, err
	}
	if q == 1 {
		return NewInt(x.c * y.c), nil
	}
	prod := make(map[int]int)
	for n, a := range x.termsAt() {
		for m, b := range y.termsAt() {
			lo := n - m
			if lo < 0 {
				lo = -lo
			}
			for k := lo + 1; k <= n+m-1; k += 2 {
				prod[k] += a * b
			}
		}
	}
	return build(q, prod), nil
}
