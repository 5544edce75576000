// SPDX-License-Identifier: MIT
// Package matrix: catalog of the classified families.
//
// Purpose:
//   - Deterministic constructors for the finite families A–I and the
//     crystallographic Cartan variants, in Bourbaki numbering.
//   - These are the canonical fixtures for tests, examples and callers that
//     want a named group rather than a hand-written matrix.
//
// Determinism: same rank in ⇒ identical matrix out; no global state.

package matrix

import "fmt"

// coxeterBase returns an n×n grid with 1 on the diagonal and 2 elsewhere
// (the matrix of n pairwise commuting involutions).
func coxeterBase(n int) [][]int {
	m := make([][]int, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			m[i][j] = 2
		}
		m[i][i] = 1
	}
	return m
}

// cartanBase returns an n×n grid with 2 on the diagonal and 0 elsewhere.
func cartanBase(n int) [][]int {
	a := make([][]int, n)
	for i := 0; i < n; i++ {
		a[i] = make([]int, n)
		a[i][i] = 2
	}
	return a
}

// setBond records a bond of the given order symmetrically (1-based nodes).
func setBond(m [][]int, i, j, order int) {
	m[i-1][j-1] = order
	m[j-1][i-1] = order
}

// TypeA returns the Coxeter matrix of type Aₙ (n ≥ 1): a simple chain.
func TypeA(n int) (*Coxeter, error) {
	if n < 1 {
		return nil, fmt.Errorf("TypeA(%d): %w", n, ErrCatalogRank)
	}
	m := coxeterBase(n)
	for i := 1; i < n; i++ {
		setBond(m, i, i+1, 3)
	}
	return &Coxeter{m: m}, nil
}

// TypeB returns the Coxeter matrix of type Bₙ = Cₙ (n ≥ 2): a chain with a
// final bond of order 4.
func TypeB(n int) (*Coxeter, error) {
	if n < 2 {
		return nil, fmt.Errorf("TypeB(%d): %w", n, ErrCatalogRank)
	}
	m := coxeterBase(n)
	for i := 1; i < n-1; i++ {
		setBond(m, i, i+1, 3)
	}
	setBond(m, n-1, n, 4)
	return &Coxeter{m: m}, nil
}

// TypeD returns the Coxeter matrix of type Dₙ (n ≥ 4): a chain forking at
// node n−2 into the two terminal nodes n−1 and n.
func TypeD(n int) (*Coxeter, error) {
	if n < 4 {
		return nil, fmt.Errorf("TypeD(%d): %w", n, ErrCatalogRank)
	}
	m := coxeterBase(n)
	for i := 1; i < n-1; i++ {
		setBond(m, i, i+1, 3)
	}
	setBond(m, n-2, n, 3)
	m[n-2][n-1] = 2 // undo the chain bond between the two fork tips
	m[n-1][n-2] = 2
	return &Coxeter{m: m}, nil
}

// TypeE returns the Coxeter matrix of type Eₙ for n ∈ {6,7,8}, Bourbaki
// numbering: chain 1–3–4–5–…–n with node 2 attached to node 4.
func TypeE(n int) (*Coxeter, error) {
	if n < 6 || n > 8 {
		return nil, fmt.Errorf("TypeE(%d): %w", n, ErrCatalogRank)
	}
	m := coxeterBase(n)
	setBond(m, 1, 3, 3)
	setBond(m, 2, 4, 3)
	for i := 3; i < n; i++ {
		setBond(m, i, i+1, 3)
	}
	return &Coxeter{m: m}, nil
}

// TypeF4 returns the Coxeter matrix of type F₄: bonds 3, 4, 3.
func TypeF4() *Coxeter {
	m := coxeterBase(4)
	setBond(m, 1, 2, 3)
	setBond(m, 2, 3, 4)
	setBond(m, 3, 4, 3)
	return &Coxeter{m: m}
}

// TypeG2 returns the Coxeter matrix of type G₂: a single bond of order 6.
func TypeG2() *Coxeter {
	m := coxeterBase(2)
	setBond(m, 1, 2, 6)
	return &Coxeter{m: m}
}

// TypeH returns the Coxeter matrix of type Hₙ for n ∈ {2,3,4}: a chain whose
// first bond has order 5. These are non-crystallographic: only the general
// table builder accepts them.
func TypeH(n int) (*Coxeter, error) {
	if n < 2 || n > 4 {
		return nil, fmt.Errorf("TypeH(%d): %w", n, ErrCatalogRank)
	}
	m := coxeterBase(n)
	setBond(m, 1, 2, 5)
	for i := 2; i < n; i++ {
		setBond(m, i, i+1, 3)
	}
	return &Coxeter{m: m}, nil
}

// TypeI returns the dihedral Coxeter matrix I₂(order): two generators whose
// product has the given order (≥ 3, or 0 for the infinite dihedral group).
func TypeI(order int) (*Coxeter, error) {
	if order != 0 && order < 3 {
		return nil, fmt.Errorf("TypeI(%d): %w", order, ErrCatalogRank)
	}
	m := coxeterBase(2)
	setBond(m, 1, 2, order)
	return &Coxeter{m: m}, nil
}

// CartanA returns the GCM of type Aₙ (n ≥ 1).
func CartanA(n int) (*GCM, error) {
	if n < 1 {
		return nil, fmt.Errorf("CartanA(%d): %w", n, ErrCatalogRank)
	}
	a := cartanBase(n)
	for i := 0; i < n-1; i++ {
		a[i][i+1] = -1
		a[i+1][i] = -1
	}
	return &GCM{a: a}, nil
}

// CartanB returns the GCM of type Bₙ (n ≥ 2): αₙ is the short root.
func CartanB(n int) (*GCM, error) {
	if n < 2 {
		return nil, fmt.Errorf("CartanB(%d): %w", n, ErrCatalogRank)
	}
	a := cartanBase(n)
	for i := 0; i < n-1; i++ {
		a[i][i+1] = -1
		a[i+1][i] = -1
	}
	a[n-1][n-2] = -2
	return &GCM{a: a}, nil
}

// CartanC returns the GCM of type Cₙ (n ≥ 2), the transpose of CartanB.
func CartanC(n int) (*GCM, error) {
	b, err := CartanB(n)
	if err != nil {
		return nil, fmt.Errorf("CartanC(%d): %w", n, ErrCatalogRank)
	}
	a := cloneGrid(b.a)
	a[n-2][n-1], a[n-1][n-2] = a[n-1][n-2], a[n-2][n-1]
	return &GCM{a: a}, nil
}

// CartanD returns the GCM of type Dₙ (n ≥ 4).
func CartanD(n int) (*GCM, error) {
	if n < 4 {
		return nil, fmt.Errorf("CartanD(%d): %w", n, ErrCatalogRank)
	}
	a := cartanBase(n)
	for i := 0; i < n-2; i++ {
		a[i][i+1] = -1
		a[i+1][i] = -1
	}
	a[n-3][n-1] = -1
	a[n-1][n-3] = -1
	return &GCM{a: a}, nil
}

// CartanE returns the GCM of type Eₙ for n ∈ {6,7,8}, Bourbaki numbering.
func CartanE(n int) (*GCM, error) {
	if n < 6 || n > 8 {
		return nil, fmt.Errorf("CartanE(%d): %w", n, ErrCatalogRank)
	}
	a := cartanBase(n)
	link := func(i, j int) { a[i-1][j-1], a[j-1][i-1] = -1, -1 }
	link(1, 3)
	link(2, 4)
	for i := 3; i < n; i++ {
		link(i, i+1)
	}
	return &GCM{a: a}, nil
}

// CartanF4 returns the GCM of type F₄.
func CartanF4() *GCM {
	a := cartanBase(4)
	a[0][1], a[1][0] = -1, -1
	a[1][2], a[2][1] = -1, -2
	a[2][3], a[3][2] = -1, -1
	return &GCM{a: a}
}

// CartanG2 returns the GCM of type G₂.
func CartanG2() *GCM {
	a := cartanBase(2)
	a[0][1], a[1][0] = -1, -3
	return &GCM{a: a}
}

// CartanAffineA returns the GCM of affine type Ãₙ (n ≥ 1): rank n+1.
// Ã₁ is the order-2 matrix with off-diagonal entries −2; for n ≥ 2 the
// diagram is an (n+1)-cycle with all bonds simple.
func CartanAffineA(n int) (*GCM, error) {
	if n < 1 {
		return nil, fmt.Errorf("CartanAffineA(%d): %w", n, ErrCatalogRank)
	}
	if n == 1 {
		return &GCM{a: [][]int{{2, -2}, {-2, 2}}}, nil
	}
	a := cartanBase(n + 1)
	for i := 0; i <= n; i++ {
		j := (i + 1) % (n + 1)
		a[i][j] = -1
		a[j][i] = -1
	}
	return &GCM{a: a}, nil
}
