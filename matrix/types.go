// SPDX-License-Identifier: MIT
// Package matrix: the two immutable matrix types.
//
// Purpose:
//   - Coxeter and GCM own a private, fully validated entry grid.
//   - Accessors are 1-based to match generator numbering module-wide.
//   - Entries() always hands out a defensive copy; the grid itself is never
//     aliased outside the package, which is what makes sharing safe.

package matrix

// Coxeter is a validated, immutable Coxeter matrix.
// The zero value is not usable; construct via NewCoxeter or the catalog.
type Coxeter struct {
	m [][]int
}

// NewCoxeter validates entries and returns an immutable Coxeter matrix.
// Returns ErrNotCoxeter (wrapped with position context) on any violation.
func NewCoxeter(entries [][]int) (*Coxeter, error) {
	if err := validateCoxeter(entries); err != nil {
		return nil, err
	}
	return &Coxeter{m: cloneGrid(entries)}, nil
}

// Rank returns the number of generators n (the matrix is n×n).
func (c *Coxeter) Rank() int { return len(c.m) }

// Order returns m(i,j), the order of sᵢsⱼ, for 1-based generator indices.
// 0 encodes an infinite bond. Out-of-range indices are a programmer error
// and panic; callers at the public boundary validate indices first.
func (c *Coxeter) Order(i, j int) int { return c.m[i-1][j-1] }

// Entries returns a defensive copy of the full entry grid (0-based).
func (c *Coxeter) Entries() [][]int { return cloneGrid(c.m) }

// GCM is a validated, immutable generalized Cartan matrix.
// The zero value is not usable; construct via NewGCM or the catalog.
type GCM struct {
	a [][]int
}

// NewGCM validates entries and returns an immutable GCM.
// Returns ErrNotGCM (wrapped with position context) on any violation.
func NewGCM(entries [][]int) (*GCM, error) {
	if err := validateGCM(entries); err != nil {
		return nil, err
	}
	return &GCM{a: cloneGrid(entries)}, nil
}

// Rank returns the number of simple roots n (the matrix is n×n).
func (g *GCM) Rank() int { return len(g.a) }

// Cartan returns a(i,j) = ⟨αⱼ, αᵢ^⟩ for 1-based indices.
// Out-of-range indices are a programmer error and panic.
func (g *GCM) Cartan(i, j int) int { return g.a[i-1][j-1] }

// Entries returns a defensive copy of the full entry grid (0-based).
func (g *GCM) Entries() [][]int { return cloneGrid(g.a) }

// cloneGrid deep-copies a rectangular int grid.
func cloneGrid(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = make([]int, len(row))
		copy(dst[i], row)
	}
	return dst
}
