// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulthiel/coxeter/matrix"
)

func TestCatalog_CoxeterShapes(t *testing.T) {
	a4, err := matrix.TypeA(4)
	require.NoError(t, err)
	require.Equal(t, 4, a4.Rank())
	require.Equal(t, 3, a4.Order(2, 3))
	require.Equal(t, 2, a4.Order(1, 3))

	b3, err := matrix.TypeB(3)
	require.NoError(t, err)
	require.Equal(t, 3, b3.Order(1, 2))
	require.Equal(t, 4, b3.Order(2, 3))

	d5, err := matrix.TypeD(5)
	require.NoError(t, err)
	require.Equal(t, 3, d5.Order(3, 4))
	require.Equal(t, 3, d5.Order(3, 5))
	require.Equal(t, 2, d5.Order(4, 5))

	e8, err := matrix.TypeE(8)
	require.NoError(t, err)
	require.Equal(t, 3, e8.Order(1, 3))
	require.Equal(t, 3, e8.Order(2, 4))
	require.Equal(t, 2, e8.Order(1, 2))
	require.Equal(t, 3, e8.Order(7, 8))

	h3, err := matrix.TypeH(3)
	require.NoError(t, err)
	require.Equal(t, 5, h3.Order(1, 2))
	require.Equal(t, 3, h3.Order(2, 3))

	i7, err := matrix.TypeI(7)
	require.NoError(t, err)
	require.Equal(t, 7, i7.Order(1, 2))

	iInf, err := matrix.TypeI(0)
	require.NoError(t, err)
	require.Equal(t, 0, iInf.Order(1, 2))
}

func TestCatalog_AllValid(t *testing.T) {
	coxeters := []*matrix.Coxeter{matrix.TypeF4(), matrix.TypeG2()}
	for n := 1; n <= 8; n++ {
		if m, err := matrix.TypeA(n); err == nil {
			coxeters = append(coxeters, m)
		}
		if m, err := matrix.TypeB(n); err == nil {
			coxeters = append(coxeters, m)
		}
		if m, err := matrix.TypeD(n); err == nil {
			coxeters = append(coxeters, m)
		}
		if m, err := matrix.TypeE(n); err == nil {
			coxeters = append(coxeters, m)
		}
		if m, err := matrix.TypeH(n); err == nil {
			coxeters = append(coxeters, m)
		}
	}
	for _, m := range coxeters {
		require.True(t, matrix.IsCoxeter(m.Entries()))
	}

	gcms := []*matrix.GCM{matrix.CartanF4(), matrix.CartanG2()}
	for n := 1; n <= 8; n++ {
		if g, err := matrix.CartanA(n); err == nil {
			gcms = append(gcms, g)
		}
		if g, err := matrix.CartanB(n); err == nil {
			gcms = append(gcms, g)
		}
		if g, err := matrix.CartanC(n); err == nil {
			gcms = append(gcms, g)
		}
		if g, err := matrix.CartanD(n); err == nil {
			gcms = append(gcms, g)
		}
		if g, err := matrix.CartanE(n); err == nil {
			gcms = append(gcms, g)
		}
		if g, err := matrix.CartanAffineA(n); err == nil {
			gcms = append(gcms, g)
		}
	}
	for _, g := range gcms {
		require.True(t, matrix.IsGCM(g.Entries()))
	}
}

func TestCatalog_RankErrors(t *testing.T) {
	_, err := matrix.TypeA(0)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.TypeB(1)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.TypeD(3)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.TypeE(9)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.TypeH(5)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.TypeI(2)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.CartanB(1)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
	_, err = matrix.CartanAffineA(0)
	require.ErrorIs(t, err, matrix.ErrCatalogRank)
}

func TestCartanBC_Transpose(t *testing.T) {
	b, err := matrix.CartanB(5)
	require.NoError(t, err)
	c, err := matrix.CartanC(5)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			require.Equal(t, b.Cartan(i, j), c.Cartan(j, i))
		}
	}
	// Bₙ has the short root at the end: ⟨αₙ₋₁, αₙ^⟩ = −2.
	require.Equal(t, -2, b.Cartan(5, 4))
	require.Equal(t, -1, b.Cartan(4, 5))
}
