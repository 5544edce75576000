// SPDX-License-Identifier: MIT

package minroots_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulthiel/coxeter/core"
	"github.com/ulthiel/coxeter/matrix"
	"github.com/ulthiel/coxeter/minroots"
)

func elementsOf(t *testing.T, g *minroots.Group) []minroots.Element {
	t.Helper()
	all, err := core.Elements(g)
	require.NoError(t, err)
	out := make([]minroots.Element, len(all))
	for i, e := range all {
		out[i] = e.(minroots.Element)
	}
	return out
}

func TestElement_GeneratorInvolution(t *testing.T) {
	m, err := matrix.TypeB(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	for s := 1; s <= g.Rank(); s++ {
		gen, err := g.Generator(s)
		require.NoError(t, err)
		sq, err := gen.RightMultiply(s)
		require.NoError(t, err)
		require.True(t, sq.IsIdentity())
	}
}

func TestElement_BraidRelations(t *testing.T) {
	m, err := matrix.TypeB(2)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	s1, err := g.Generator(1)
	require.NoError(t, err)
	s2, err := g.Generator(2)
	require.NoError(t, err)
	s1s2, err := s1.Mul(s2)
	require.NoError(t, err)

	// (s₁s₂) has order 4 in B₂.
	require.True(t, s1s2.Pow(4).IsIdentity())
	require.False(t, s1s2.Pow(2).IsIdentity())
	require.True(t, s1s2.Pow(-1).Equal(s1s2.Inverse()))
}

// The stored word must be the ShortLex normal form the generic algorithm
// recomputes from descents alone.
func TestElement_NormalFormAgreesWithGeneric(t *testing.T) {
	m, err := matrix.TypeB(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	for _, e := range elementsOf(t, g) {
		word, err := core.ShortLexWord(e)
		require.NoError(t, err)
		require.Equal(t, e.Word(), word, "element %s", e)
	}
}

func TestElement_DescentLengthConsistency(t *testing.T) {
	m, err := matrix.TypeB(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	for _, e := range elementsOf(t, g) {
		for s := 1; s <= g.Rank(); s++ {
			left, err := e.IsLeftDescent(s)
			require.NoError(t, err)
			se, err := e.LeftMultiply(s)
			require.NoError(t, err)
			require.Equal(t, left, se.(minroots.Element).Length() < e.Length(),
				"left descent %d of %s", s, e)

			right, err := e.IsRightDescent(s)
			require.NoError(t, err)
			es, err := e.RightMultiply(s)
			require.NoError(t, err)
			require.Equal(t, right, es.(minroots.Element).Length() < e.Length(),
				"right descent %d of %s", s, e)
		}
	}
}

func TestElement_MulMatchesGeneric(t *testing.T) {
	m, err := matrix.TypeA(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	all := elementsOf(t, g)
	for _, x := range all {
		for _, y := range all {
			fast, err := x.Mul(y)
			require.NoError(t, err)
			slow, err := core.Mult(x, y)
			require.NoError(t, err)
			require.True(t, fast.Equal(slow), "%s * %s", x, y)
		}
	}
}

func TestElement_InverseLaws(t *testing.T) {
	m, err := matrix.TypeB(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	for _, e := range elementsOf(t, g) {
		inv := e.Inverse()
		prod, err := e.Mul(inv)
		require.NoError(t, err)
		require.True(t, prod.IsIdentity(), "element %s", e)

		slow, err := core.Inverse(e)
		require.NoError(t, err)
		require.True(t, inv.Equal(slow), "element %s", e)

		// InverseShortLexWord yields a reduced word for e whose reversal
		// is the ShortLex normal form of e⁻¹.
		word, err := core.InverseShortLexWord(e)
		require.NoError(t, err)
		for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
			word[i], word[j] = word[j], word[i]
		}
		require.Equal(t, inv.Word(), word, "element %s", e)
	}
}

func TestElement_Errors(t *testing.T) {
	mA, err := matrix.TypeA(2)
	require.NoError(t, err)
	g1, err := minroots.NewGroup(mA)
	require.NoError(t, err)
	g2, err := minroots.NewGroup(mA)
	require.NoError(t, err)

	e := g1.Identity().(minroots.Element)
	_, err = e.RightMultiply(0)
	require.ErrorIs(t, err, core.ErrGeneratorRange)
	_, err = e.LeftMultiply(3)
	require.ErrorIs(t, err, core.ErrGeneratorRange)
	_, err = e.IsRightDescent(-1)
	require.ErrorIs(t, err, core.ErrGeneratorRange)

	// Same matrix, distinct group values: never interchangeable.
	other := g2.Identity().(minroots.Element)
	_, err = e.Mul(other)
	require.ErrorIs(t, err, core.ErrMismatchedParent)
	require.False(t, e.Equal(other))
}

func TestElement_MapKey(t *testing.T) {
	m, err := matrix.TypeA(3)
	require.NoError(t, err)
	g, err := minroots.NewGroup(m)
	require.NoError(t, err)

	seen := make(map[minroots.Element]bool)
	for _, e := range elementsOf(t, g) {
		require.False(t, seen[e], "duplicate %s", e)
		seen[e] = true
	}
	require.Len(t, seen, 24)
}
