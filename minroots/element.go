// SPDX-License-Identifier: MIT
// Package minroots: table-driven element arithmetic.
//
// Purpose:
//   - An element is its ShortLex normal form, stored as an immutable byte
//     string (one generator per byte), so Element is a comparable value and
//     usable as a map key.
//   - Descent tests walk a root through the table alongside the word: the
//     walk hits the current letter's root exactly for a descent, and a
//     NoRoot lookup proves a non-descent early.
//   - Right multiplication rewrites the normal form in one pass: either the
//     walk finds the letter to delete, or the ShortLex-least legal insertion
//     point observed along the walk receives the tracked root's letter.

package minroots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ulthiel/coxeter/core"
)

// Element is a group element in ShortLex normal form. The zero value is not
// usable; obtain elements from a Group.
type Element struct {
	g    *Group
	word string
}

// Parent returns the owning group.
func (e Element) Parent() core.Group { return e.g }

// IsIdentity reports whether e is the identity.
func (e Element) IsIdentity() bool { return len(e.word) == 0 }

// Length returns the Coxeter length of e.
func (e Element) Length() int { return len(e.word) }

// Word returns the ShortLex normal form as 1-based generator indices.
func (e Element) Word() []int {
	out := make([]int, len(e.word))
	for i := 0; i < len(e.word); i++ {
		out[i] = int(e.word[i])
	}
	return out
}

// Equal reports whether e and other are the same element of the same group.
func (e Element) Equal(other core.Element) bool {
	o, ok := other.(Element)
	return ok && o.g == e.g && o.word == e.word
}

func (e Element) checkGenerator(s int) error {
	if s < 1 || s > e.g.Rank() {
		return fmt.Errorf("generator %d, rank %d: %w", s, e.g.Rank(), core.ErrGeneratorRange)
	}
	return nil
}

// IsRightDescent reports whether length(e·sₛ) < length(e).
func (e Element) IsRightDescent(s int) (bool, error) {
	if err := e.checkGenerator(s); err != nil {
		return false, err
	}
	beta := RootID(s)
	for i := len(e.word) - 1; i >= 0; i-- {
		letter := int(e.word[i])
		if RootID(letter) == beta {
			return true, nil
		}
		beta = e.g.table.Reflect(letter, beta)
		if beta == NoRoot {
			return false, nil
		}
	}
	return false, nil
}

// IsLeftDescent reports whether length(sₛ·e) < length(e).
func (e Element) IsLeftDescent(s int) (bool, error) {
	if err := e.checkGenerator(s); err != nil {
		return false, err
	}
	beta := RootID(s)
	for i := 0; i < len(e.word); i++ {
		letter := int(e.word[i])
		if RootID(letter) == beta {
			return true, nil
		}
		beta = e.g.table.Reflect(letter, beta)
		if beta == NoRoot {
			return false, nil
		}
	}
	return false, nil
}

// rightMultiplyWord rewrites a normal form to the normal form of word·sₛ.
//
// Walking the root of sₛ leftward through the word, three things can end
// the scan: the root meets the current letter, which is the exchange
// condition, so that letter is deleted; the root leaves the minimal set,
// which proves no letter to the left can be exchanged or improved upon, so
// the best insertion found so far is final; or the scan runs off the front.
// Whenever the walked root is itself a simple root smaller than the letter
// it is about to pass, inserting it there is a legal rewrite of the same
// element, and the leftmost such point gives the ShortLex least form.
func (g *Group) rightMultiplyWord(word string, s int) string {
	beta := RootID(s)
	bestPos := len(word)
	bestLetter := byte(s)
	for i := len(word) - 1; i >= 0; i-- {
		letter := word[i]
		if RootID(letter) == beta {
			return word[:i] + word[i+1:]
		}
		beta = g.table.Reflect(int(letter), beta)
		if beta == NoRoot {
			break
		}
		if int(beta) <= g.Rank() && byte(beta) < letter {
			bestPos = i
			bestLetter = byte(beta)
		}
	}
	return word[:bestPos] + string(bestLetter) + word[bestPos:]
}

// RightMultiply returns e·sₛ.
func (e Element) RightMultiply(s int) (core.Element, error) {
	if err := e.checkGenerator(s); err != nil {
		return nil, err
	}
	return Element{g: e.g, word: e.g.rightMultiplyWord(e.word, s)}, nil
}

// LeftMultiply returns sₛ·e, rebuilt by right-multiplying sₛ through the
// word. Quadratic in the length; descent-directed callers should prefer
// RightMultiply where they have a choice.
func (e Element) LeftMultiply(s int) (core.Element, error) {
	if err := e.checkGenerator(s); err != nil {
		return nil, err
	}
	w := string([]byte{byte(s)})
	for i := 0; i < len(e.word); i++ {
		w = e.g.rightMultiplyWord(w, int(e.word[i]))
	}
	return Element{g: e.g, word: w}, nil
}

// Mul returns e·other through repeated normal-form rewriting.
func (e Element) Mul(other Element) (Element, error) {
	if other.g != e.g {
		return Element{}, fmt.Errorf("Mul: %w", core.ErrMismatchedParent)
	}
	w := e.word
	for i := 0; i < len(other.word); i++ {
		w = e.g.rightMultiplyWord(w, int(other.word[i]))
	}
	return Element{g: e.g, word: w}, nil
}

// Inverse returns e⁻¹, the product of the reversed word.
func (e Element) Inverse() Element {
	var w string
	for i := len(e.word) - 1; i >= 0; i-- {
		w = e.g.rightMultiplyWord(w, int(e.word[i]))
	}
	return Element{g: e.g, word: w}
}

// Pow returns eᵏ by binary exponentiation; negative k inverts first.
func (e Element) Pow(k int) Element {
	base := e
	if k < 0 {
		base = e.Inverse()
		k = -k
	}
	acc := Element{g: e.g}
	for k > 0 {
		if k&1 == 1 {
			acc, _ = acc.Mul(base)
		}
		base, _ = base.Mul(base)
		k >>= 1
	}
	return acc
}

// String renders the normal form as dot-separated generator indices, or
// "e" for the identity.
func (e Element) String() string {
	if len(e.word) == 0 {
		return "e"
	}
	var sb strings.Builder
	for i := 0; i < len(e.word); i++ {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(e.word[i])))
	}
	return sb.String()
}
