// Package core: the generic descent-based algorithms.
//
// Every function here is defined purely in terms of the Element capability
// set, so it works unchanged for every concrete representation. Termination
// of each loop rests on the exchange property: stripping a descent strictly
// decreases length, and only the identity has none.
package core

import "fmt"

// smallestLeftDescent returns the least s with sₛ·w < w.
// Returns ErrNoDescent for a non-identity element without one (a defective
// representation).
func smallestLeftDescent(w Element) (int, error) {
	rank := w.Parent().Rank()
	for s := 1; s <= rank; s++ {
		ok, err := w.IsLeftDescent(s)
		if err != nil {
			return 0, err
		}
		if ok {
			return s, nil
		}
	}
	return 0, ErrNoDescent
}

// smallestRightDescent returns the least s with w·sₛ < w.
func smallestRightDescent(w Element) (int, error) {
	rank := w.Parent().Rank()
	for s := 1; s <= rank; s++ {
		ok, err := w.IsRightDescent(s)
		if err != nil {
			return 0, err
		}
		if ok {
			return s, nil
		}
	}
	return 0, ErrNoDescent
}

// Length returns the Coxeter length of w: the number of letters in any
// reduced word for w. Costs O(length) descent scans.
func Length(w Element) (int, error) {
	if w == nil {
		return 0, ErrNilElement
	}
	n := 0
	for !w.IsIdentity() {
		s, err := smallestLeftDescent(w)
		if err != nil {
			return 0, err
		}
		if w, err = w.LeftMultiply(s); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// ShortLexWord returns the lexicographically least reduced word for w:
// repeatedly strip the smallest left descent and record it.
func ShortLexWord(w Element) ([]int, error) {
	if w == nil {
		return nil, ErrNilElement
	}
	word := make([]int, 0, 8)
	for !w.IsIdentity() {
		s, err := smallestLeftDescent(w)
		if err != nil {
			return nil, err
		}
		if w, err = w.LeftMultiply(s); err != nil {
			return nil, err
		}
		word = append(word, s)
	}
	return word, nil
}

// InverseShortLexWord returns the reduced word for w whose reverse is the
// ShortLex word of w⁻¹: strip smallest right descents, then reverse.
func InverseShortLexWord(w Element) ([]int, error) {
	if w == nil {
		return nil, ErrNilElement
	}
	word := make([]int, 0, 8)
	for !w.IsIdentity() {
		s, err := smallestRightDescent(w)
		if err != nil {
			return nil, err
		}
		if w, err = w.RightMultiply(s); err != nil {
			return nil, err
		}
		word = append(word, s)
	}
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}
	return word, nil
}

// Mult returns x·y. Strips the smallest left descent s of y and moves it
// across: x·y = (x·s)·(s·y); y's length strictly decreases each step.
func Mult(x, y Element) (Element, error) {
	if x == nil || y == nil {
		return nil, ErrNilElement
	}
	if x.Parent() != y.Parent() {
		return nil, ErrMismatchedParent
	}
	var err error
	for !y.IsIdentity() {
		s, derr := smallestLeftDescent(y)
		if derr != nil {
			return nil, derr
		}
		if x, err = x.RightMultiply(s); err != nil {
			return nil, err
		}
		if y, err = y.LeftMultiply(s); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Inverse returns x⁻¹: strip left descents of x, left-multiplying each into
// an accumulator. If x = l₁⋯lₖ ShortLex then the accumulator ends at lₖ⋯l₁.
func Inverse(x Element) (Element, error) {
	if x == nil {
		return nil, ErrNilElement
	}
	acc := x.Parent().Identity()
	var err error
	for !x.IsIdentity() {
		s, derr := smallestLeftDescent(x)
		if derr != nil {
			return nil, derr
		}
		if acc, err = acc.LeftMultiply(s); err != nil {
			return nil, err
		}
		if x, err = x.LeftMultiply(s); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Power returns xᵉ by binary exponentiation; negative exponents invert
// first, and e = 0 yields the identity.
func Power(x Element, e int) (Element, error) {
	if x == nil {
		return nil, ErrNilElement
	}
	if e == 0 {
		return x.Parent().Identity(), nil
	}
	if e < 0 {
		inv, err := Inverse(x)
		if err != nil {
			return nil, err
		}
		return Power(inv, -e)
	}
	acc := x.Parent().Identity()
	sq := x
	var err error
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			if acc, err = Mult(acc, sq); err != nil {
				return nil, err
			}
		}
		if e > 1 {
			if sq, err = Mult(sq, sq); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

// LongestElement returns the unique longest element of a finite group:
// repeatedly right-multiply by any generator that is not yet a right
// descent. Returns ErrNonFiniteGroup if g is not finite.
func LongestElement(g Group) (Element, error) {
	if g == nil {
		return nil, fmt.Errorf("LongestElement: %w", ErrNilElement)
	}
	if !g.IsFinite() {
		return nil, fmt.Errorf("LongestElement: %w", ErrNonFiniteGroup)
	}
	w := g.Identity()
	rank := g.Rank()
	for {
		advanced := false
		for s := 1; s <= rank; s++ {
			ok, err := w.IsRightDescent(s)
			if err != nil {
				return nil, err
			}
			if !ok {
				if w, err = w.RightMultiply(s); err != nil {
					return nil, err
				}
				advanced = true
				break
			}
		}
		if !advanced {
			return w, nil
		}
	}
}

// Elements enumerates a finite group breadth-first from the identity by
// right multiplication. The result starts with the identity and is closed
// under right multiplication by generators.
// Returns ErrNonFiniteGroup if g is not finite.
func Elements(g Group) ([]Element, error) {
	if g == nil {
		return nil, fmt.Errorf("Elements: %w", ErrNilElement)
	}
	if !g.IsFinite() {
		return nil, fmt.Errorf("Elements: %w", ErrNonFiniteGroup)
	}
	id := g.Identity()
	seen := map[string]bool{"": true}
	order := []Element{id}
	for i := 0; i < len(order); i++ {
		for s := 1; s <= g.Rank(); s++ {
			next, err := order[i].RightMultiply(s)
			if err != nil {
				return nil, err
			}
			word, err := ShortLexWord(next)
			if err != nil {
				return nil, err
			}
			key := wordKey(word)
			if !seen[key] {
				seen[key] = true
				order = append(order, next)
			}
		}
	}
	return order, nil
}

// wordKey packs a generator word into a map key (rank ≤ 255 assumed).
func wordKey(word []int) string {
	b := make([]byte, len(word))
	for i, s := range word {
		b[i] = byte(s)
	}
	return string(b)
}
