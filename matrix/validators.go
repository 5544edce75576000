// SPDX-License-Identifier: MIT
// Package matrix: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the two shape predicates.
//   - Keep constructors minimal by delegating all checks here.
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// IsCoxeter reports whether entries form a valid Coxeter matrix:
// square, symmetric, diagonal all 1, off-diagonal entries 0 or ≥ 2.
// Complexity: O(n²).
func IsCoxeter(entries [][]int) bool { return validateCoxeter(entries) == nil }

// IsGCM reports whether entries form a valid generalized Cartan matrix:
// square, diagonal all 2, off-diagonal ≤ 0, zero pattern symmetric.
// Complexity: O(n²).
func IsGCM(entries [][]int) bool { return validateGCM(entries) == nil }

// validateCoxeter returns nil or ErrNotCoxeter wrapped with the first
// offending position. The check sequence is fixed: shape → diagonal →
// range → symmetry, so error messages are deterministic.
func validateCoxeter(entries [][]int) error {
	n := len(entries)
	if n == 0 {
		return fmt.Errorf("empty: %w", ErrNotCoxeter)
	}
	for i, row := range entries {
		if len(row) != n {
			return fmt.Errorf("row %d has length %d, want %d: %w", i+1, len(row), n, ErrNotCoxeter)
		}
	}
	for i := 0; i < n; i++ {
		if entries[i][i] != 1 {
			return fmt.Errorf("diagonal entry (%d,%d) = %d, want 1: %w", i+1, i+1, entries[i][i], ErrNotCoxeter)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if v := entries[i][j]; v == 1 || v < 0 {
				return fmt.Errorf("entry (%d,%d) = %d, want 0 or ≥ 2: %w", i+1, j+1, v, ErrNotCoxeter)
			}
			if entries[i][j] != entries[j][i] {
				return fmt.Errorf("entries (%d,%d) and (%d,%d) differ: %w", i+1, j+1, j+1, i+1, ErrNotCoxeter)
			}
		}
	}
	return nil
}

// validateGCM returns nil or ErrNotGCM wrapped with the first offending
// position. Check sequence: shape → diagonal → sign → zero pattern.
func validateGCM(entries [][]int) error {
	n := len(entries)
	if n == 0 {
		return fmt.Errorf("empty: %w", ErrNotGCM)
	}
	for i, row := range entries {
		if len(row) != n {
			return fmt.Errorf("row %d has length %d, want %d: %w", i+1, len(row), n, ErrNotGCM)
		}
	}
	for i := 0; i < n; i++ {
		if entries[i][i] != 2 {
			return fmt.Errorf("diagonal entry (%d,%d) = %d, want 2: %w", i+1, i+1, entries[i][i], ErrNotGCM)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if entries[i][j] > 0 {
				return fmt.Errorf("entry (%d,%d) = %d, want ≤ 0: %w", i+1, j+1, entries[i][j], ErrNotGCM)
			}
			if (entries[i][j] == 0) != (entries[j][i] == 0) {
				return fmt.Errorf("zero pattern asymmetric at (%d,%d): %w", i+1, j+1, ErrNotGCM)
			}
		}
	}
	return nil
}
