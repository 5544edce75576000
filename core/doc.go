// Package core defines the fixed-capability Group and Element interfaces
// every concrete Coxeter-group representation implements, and the generic
// descent-based algorithms written once against them.
//
// A concrete representation only has to supply four primitive operations on
// elements — left/right descent test and left/right multiplication by a
// simple generator — plus identity and parent lookup. Everything else
// (length, ShortLex and InverseShortLex normal forms, multiplication,
// inversion, powers, the longest element, breadth-first enumeration) is
// derived here and shared by every representation: the automaton-backed
// minroots.Group, the permutation-backed symgrp.Group, and any future one.
//
// The derivations rely on two facts about Coxeter groups: every non-identity
// element has at least one left and one right descent, and multiplying a
// descent away strictly decreases length. Each generic loop therefore
// terminates after exactly length(w) primitive calls.
//
// Elements are immutable values. Generator indices are 1-based; passing an
// index outside [1, rank] surfaces ErrGeneratorRange, and combining elements
// of different parent groups surfaces ErrMismatchedParent.
package core
