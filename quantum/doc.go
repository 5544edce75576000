// SPDX-License-Identifier: MIT
// Package quantum implements exact arithmetic on quantum integers at a fixed
// root-of-unity order, the restricted number system the general reflection-
// table builder uses to represent irrational root coefficients.
//
// The quantum integer [n] at order q is (zⁿ − z⁻ⁿ)/(z − z⁻¹) for z a
// primitive q-th root of unity; a value of this package is a finite integer
// combination Σ cᵢ·[nᵢ] at a single order q. Three symmetries reduce every
// index into a canonical range:
//
//	[n+q] = [n]            (periodicity)
//	[q−n] = −[n]           (reflection, so [q/2] = 0)
//	[q/2−n] = [n]          (q even: reflection about q/4)
//
// One exceptional index is rational: [3] at order 12 equals 2 exactly and
// folds into the plain slot during reduction (by Niven's theorem no other
// canonical index has a rational value).
//
// After reduction, equal indices fold, zero coefficients drop, and a value
// whose only surviving index is 1 collapses to a plain integer (order 1).
// Structural equality of the canonical form therefore coincides with
// equality of the denoted algebraic value on the orders this module
// constructs (order 1 and even orders 2m from bonds of order m).
//
// Arithmetic across two distinct orders > 1 is a programming error in the
// caller's case analysis, surfaced as ErrMixedCyclotomy; likewise the
// open-interval test InOpenIntervalTwo decides membership in (−2, 2) only
// for the closed list of canonical shapes the table builder can produce and
// surfaces anything else as ErrUnsupportedForm. Both sentinels indicate a
// defect, not a recoverable input condition.
//
// Values are immutable: every operation returns a fresh Integer, and values
// may be copied, compared with Equal, and used in map keys via String.
package quantum
