// SPDX-License-Identifier: MIT
// Package matrix: GCM → Coxeter conversion.
//
// The conversion is one-way and total on validated GCMs: the bond order
// between i and j depends only on the product a(i,j)·a(j,i) through the
// fixed crystallographic lookup. Products ≥ 4 yield an infinite bond.

package matrix

// bondOrder maps a(i,j)·a(j,i) to the order of sᵢsⱼ.
func bondOrder(product int) int {
	switch product {
	case 0:
		return 2
	case 1:
		return 3
	case 2:
		return 4
	case 3:
		return 6
	default:
		return 0 // infinite
	}
}

// CoxeterMatrix returns the Coxeter matrix determined by g.
// Conversion cannot fail on a validated GCM, so no error is returned;
// ToCoxeter is the fallible entry point for raw entry grids.
func (g *GCM) CoxeterMatrix() *Coxeter {
	n := g.Rank()
	m := make([][]int, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		m[i][i] = 1
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			m[i][j] = bondOrder(g.a[i][j] * g.a[j][i])
		}
	}
	return &Coxeter{m: m}
}

// ToCoxeter validates entries as a GCM and converts in one step.
// Returns ErrNotGCM if the entries fail the GCM predicate.
func ToCoxeter(entries [][]int) (*Coxeter, error) {
	g, err := NewGCM(entries)
	if err != nil {
		return nil, err
	}
	return g.CoxeterMatrix(), nil
}
