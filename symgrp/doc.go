// Package symgrp represents the symmetric group Sₙ as the Coxeter group of
// type A with the adjacent transpositions as generators, backed by plain
// one-line permutation bookkeeping rather than a reflection table.
//
// An element stores the one-line notation w(1), …, w(n) as an immutable
// byte string, so elements are comparable values. Descents and adjacent
// multiplications are O(1) array reads and swaps: sₛ is a right descent of
// w exactly when w(s) > w(s+1), and a left descent exactly when s appears
// to the right of s+1 in the one-line notation.
//
// The package exists alongside the table-backed groups as an independent
// implementation of the same element contract; the generic algorithms in
// package core run unchanged against either, which makes Sₙ a convenient
// cross-check for the table machinery.
package symgrp
