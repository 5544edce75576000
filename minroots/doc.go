// SPDX-License-Identifier: MIT

// Package minroots builds minimal-root reflection tables and the
// table-backed Coxeter groups that multiply through them.
//
// The minimal (elementary) roots of a Coxeter group form a finite set for
// every Coxeter matrix, and the action of the generators on that set,
// recorded as a table with a sentinel for images that leave the set, is a
// complete multiplication automaton for the group: descent tests, normal
// forms and products all reduce to table walks. Construction is exact
// throughout, integer arithmetic for crystallographic input and quantum
// integers (package quantum) for the general case.
//
// Two builders produce the same kind of Table:
//
//   - BuildGCM consumes a generalized Cartan matrix and tracks integer
//     root/coroot coordinate vectors.
//   - BuildCoxeter consumes an arbitrary Coxeter matrix and tracks
//     quantum-integer coordinates over the unit-normalized simple basis.
//
// On a crystallographic matrix the two agree up to root numbering.
//
// NewGroup and NewGroupGCM wrap a freshly built table as a core.Group whose
// elements are ShortLex normal forms; finiteness of the group falls out of
// the table (the zero count equals the rank exactly for finite groups), so
// IsFinite costs nothing after construction.
//
//	m, _ := matrix.TypeA(2)
//	g, _ := minroots.NewGroup(m)
//	all, _ := core.Elements(g) // 6 elements
//
// Construction cost is bounded by the number of minimal roots; callers that
// want a hard resource ceiling pass WithMaxRoots and handle ErrTableLimit.
package minroots
