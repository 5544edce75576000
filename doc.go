// Package coxeter is a library for exact symbolic computation in Coxeter
// groups — finitely presented groups generated by involutions with
// braid-type relations, the combinatorial backbone of Lie theory.
//
// 🚀 What is coxeter?
//
//	A deterministic, exact-arithmetic library that brings together:
//		• Matrix layer: Coxeter matrices & generalized Cartan matrices, validated and immutable
//		• Quantum integers: exact arithmetic with 2cos(π/m) coefficients at a fixed cyclotomy
//		• Minimal roots: the Brink–Howlett reflection table, built from a GCM or any Coxeter matrix
//		• Automaton groups: multiplication, inversion and descents in O(word length)
//		• Generic layer: length, ShortLex normal form, powers and the longest element,
//		  written once against a small capability interface
//		• Permutations: the symmetric group as a second concrete representation
//
// ✨ Why choose coxeter?
//
//   - Exact – no floating point anywhere; every comparison is decidable or fails fast
//   - Immutable – groups and elements are read-only values, safe to share across goroutines
//   - Pure Go – no cgo, no hidden deps
//   - Polymorphic – every representation satisfies the same core interfaces
//
// Under the hood, everything is organized under five subpackages:
//
//	core/     — Group/Element interfaces & generic descent-based algorithms
//	matrix/   — Coxeter matrix & GCM types, predicates, conversion, type catalog
//	minroots/ — reflection-table builders and the automaton-backed group
//	quantum/  — quantum-integer arithmetic and the (−2,2) interval test
//	symgrp/   — permutation-backed symmetric group
//
// Quick example, the symmetry group of a triangle (type A2):
//
//	m, _ := matrix.TypeA(2)
//	W, _ := minroots.NewGroup(m)
//	gens := W.Generators()
//	w, _ := core.Mult(gens[0], gens[1]) // s1·s2, a rotation of order 3
//	e, _ := core.Power(w, 3)            // back to the identity
//
// Dive into the per-package docs for the table construction details and the
// exactness guarantees of the quantum-integer layer.
//
//	go get github.com/ulthiel/coxeter
package coxeter
