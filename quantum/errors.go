// SPDX-License-Identifier: MIT
// Package quantum: sentinel error set.

package quantum

import "errors"

var (
	// ErrOrder is returned when a constructor receives an order q < 1.
	ErrOrder = errors.New("quantum: order must be ≥ 1")

	// ErrMixedCyclotomy is returned when arithmetic combines two values at
	// distinct orders > 1. The table builder's case analysis guarantees this
	// cannot happen for valid inputs; treat it as an assertion failure.
	ErrMixedCyclotomy = errors.New("quantum: mixed cyclotomy orders")

	// ErrUnsupportedForm is returned by InOpenIntervalTwo for a canonical
	// shape outside the closed list the table builder can produce. This is a
	// deliberate completeness boundary, not a general decision procedure;
	// treat it as an assertion failure.
	ErrUnsupportedForm = errors.New("quantum: unsupported form for interval test")
)
