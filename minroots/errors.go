// SPDX-License-Identifier: MIT
// Package minroots: sentinel error set.

package minroots

import "errors"

var (
	// ErrNilMatrix is returned when a builder or constructor receives a nil
	// matrix.
	ErrNilMatrix = errors.New("minroots: nil matrix")

	// ErrTableLimit is returned when construction would exceed the root
	// limit configured via WithMaxRoots.
	ErrTableLimit = errors.New("minroots: minimal root limit exceeded")

	// ErrRankLimit is returned by the group constructors for ranks above
	// 255; element words store one generator per byte.
	ErrRankLimit = errors.New("minroots: rank exceeds 255")
)
