// SPDX-License-Identifier: MIT
// Package matrix provides the two immutable matrix types every Coxeter-group
// construction starts from, their validity predicates, the one-way conversion
// between them, and a catalog of the classified families.
//
// A Coxeter matrix m is a symmetric integer matrix with m(i,i) = 1 and
// m(i,j) ∈ {0} ∪ {2,3,4,…} off the diagonal; m(i,j) is the order of the
// product of the generators sᵢsⱼ, and 0 encodes an infinite bond.
//
// A generalized Cartan matrix (GCM) a has a(i,i) = 2, a(i,j) ≤ 0 off the
// diagonal, and a symmetric zero pattern. A GCM determines a Coxeter matrix:
// the product a(i,j)·a(j,i) maps through the fixed lookup 0→2, 1→3, 2→4,
// 3→6, anything larger→0 (infinite).
//
// Both types are validated once at construction and immutable afterwards, so
// they may be shared freely across groups and goroutines. Generator indices
// are 1-based throughout, matching the element and root numbering used by
// the rest of the module.
//
// The catalog constructors (TypeA … TypeI, CartanA … CartanG2, and the
// affine variants) build the standard families deterministically and are the
// intended fixtures for tests and examples.
package matrix
