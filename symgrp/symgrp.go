// Package symgrp: the permutation-backed group and element types.

package symgrp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ulthiel/coxeter/core"
)

// ErrDegree is returned by New for a degree outside [1, 255].
var ErrDegree = errors.New("symgrp: degree out of range")

// Group is the symmetric group Sₙ with the n−1 adjacent transpositions as
// Coxeter generators. Construct via New; the value is immutable.
type Group struct {
	n int
}

// New returns Sₙ for 1 ≤ n ≤ 255 (one-line notation stores one value per
// byte). S₁ is the trivial group of rank 0.
func New(n int) (*Group, error) {
	if n < 1 || n > 255 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrDegree)
	}
	return &Group{n: n}, nil
}

// Degree returns n, the number of points Sₙ acts on.
func (g *Group) Degree() int { return g.n }

// Rank returns the number of Coxeter generators, n−1.
func (g *Group) Rank() int { return g.n - 1 }

// CoxeterMatrix returns the type A matrix: 3 on the superdiagonal, 2 for
// non-adjacent pairs.
func (g *Group) CoxeterMatrix() [][]int {
	rank := g.Rank()
	m := make([][]int, rank)
	for i := range m {
		m[i] = make([]int, rank)
		for j := range m[i] {
			switch {
			case i == j:
				m[i][j] = 1
			case i-j == 1 || j-i == 1:
				m[i][j] = 3
			default:
				m[i][j] = 2
			}
		}
	}
	return m
}

// Generators returns the adjacent transpositions (1 2), (2 3), …
func (g *Group) Generators() []core.Element {
	gens := make([]core.Element, g.Rank())
	for i := range gens {
		e := g.identity()
		e = e.swapPositions(i + 1)
		gens[i] = e
	}
	return gens
}

// Identity returns the identity permutation.
func (g *Group) Identity() core.Element { return g.identity() }

// IsFinite always reports true.
func (g *Group) IsFinite() bool { return true }

func (g *Group) identity() Element {
	oneline := make([]byte, g.n)
	for i := range oneline {
		oneline[i] = byte(i + 1)
	}
	return Element{g: g, oneline: string(oneline)}
}

// FromOneline returns the element with the given one-line notation
// w(1), …, w(n), validating that it is a permutation of 1..n.
func (g *Group) FromOneline(images []int) (Element, error) {
	if len(images) != g.n {
		return Element{}, fmt.Errorf("FromOneline: got %d images for degree %d", len(images), g.n)
	}
	seen := make([]bool, g.n)
	oneline := make([]byte, g.n)
	for i, v := range images {
		if v < 1 || v > g.n || seen[v-1] {
			return Element{}, fmt.Errorf("FromOneline: images %v are not a permutation of 1..%d", images, g.n)
		}
		seen[v-1] = true
		oneline[i] = byte(v)
	}
	return Element{g: g, oneline: string(oneline)}, nil
}

// Element is a permutation in one-line notation. The zero value is not
// usable; obtain elements from a Group.
type Element struct {
	g       *Group
	oneline string
}

// Parent returns the owning group.
func (e Element) Parent() core.Group { return e.g }

// IsIdentity reports whether e fixes every point.
func (e Element) IsIdentity() bool {
	for i := 0; i < len(e.oneline); i++ {
		if e.oneline[i] != byte(i+1) {
			return false
		}
	}
	return true
}

// Equal reports whether e and other are the same permutation of the same
// group.
func (e Element) Equal(other core.Element) bool {
	o, ok := other.(Element)
	return ok && o.g == e.g && o.oneline == e.oneline
}

// Oneline returns the one-line notation w(1), …, w(n).
func (e Element) Oneline() []int {
	out := make([]int, len(e.oneline))
	for i := 0; i < len(e.oneline); i++ {
		out[i] = int(e.oneline[i])
	}
	return out
}

func (e Element) checkGenerator(s int) error {
	if s < 1 || s > e.g.Rank() {
		return fmt.Errorf("generator %d, rank %d: %w", s, e.g.Rank(), core.ErrGeneratorRange)
	}
	return nil
}

// IsRightDescent reports whether w(s) > w(s+1).
func (e Element) IsRightDescent(s int) (bool, error) {
	if err := e.checkGenerator(s); err != nil {
		return false, err
	}
	return e.oneline[s-1] > e.oneline[s], nil
}

// IsLeftDescent reports whether s appears after s+1 in the one-line
// notation, i.e. w⁻¹(s) > w⁻¹(s+1).
func (e Element) IsLeftDescent(s int) (bool, error) {
	if err := e.checkGenerator(s); err != nil {
		return false, err
	}
	for i := 0; i < len(e.oneline); i++ {
		switch e.oneline[i] {
		case byte(s):
			return false, nil
		case byte(s + 1):
			return true, nil
		}
	}
	return false, nil
}

// RightMultiply returns w·sₛ, which swaps positions s and s+1.
func (e Element) RightMultiply(s int) (core.Element, error) {
	if err := e.checkGenerator(s); err != nil {
		return nil, err
	}
	return e.swapPositions(s), nil
}

// LeftMultiply returns sₛ·w, which swaps the values s and s+1.
func (e Element) LeftMultiply(s int) (core.Element, error) {
	if err := e.checkGenerator(s); err != nil {
		return nil, err
	}
	oneline := []byte(e.oneline)
	for i, v := range oneline {
		switch v {
		case byte(s):
			oneline[i] = byte(s + 1)
		case byte(s + 1):
			oneline[i] = byte(s)
		}
	}
	return Element{g: e.g, oneline: string(oneline)}, nil
}

func (e Element) swapPositions(s int) Element {
	oneline := []byte(e.oneline)
	oneline[s-1], oneline[s] = oneline[s], oneline[s-1]
	return Element{g: e.g, oneline: string(oneline)}
}

// String renders the one-line notation, e.g. "[2 1 3]".
func (e Element) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(e.oneline); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(e.oneline[i])))
	}
	sb.WriteByte(']')
	return sb.String()
}
