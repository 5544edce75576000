// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...) for row/column context) and tests MUST check
// them via errors.Is. No constructor panics on user input.

package matrix

import "errors"

var (
	// ErrNotCoxeter is returned when the entries fail the Coxeter-matrix
	// predicate: square, symmetric, diagonal 1, off-diagonal 0 or ≥ 2.
	ErrNotCoxeter = errors.New("matrix: not a Coxeter matrix")

	// ErrNotGCM is returned when the entries fail the generalized-Cartan
	// predicate: square, diagonal 2, off-diagonal ≤ 0, symmetric zero pattern.
	ErrNotGCM = errors.New("matrix: not a generalized Cartan matrix")

	// ErrCatalogRank is returned by a catalog constructor when the requested
	// rank lies outside the family's defined range (e.g. TypeE with n = 5).
	ErrCatalogRank = errors.New("matrix: rank outside catalog family range")
)
