// Package core: interfaces and sentinel errors.
//
// This file declares the Group and Element capability interfaces and the
// sentinel errors shared by all representations.
//
// Errors:
//
//	ErrGeneratorRange   - generator index outside [1, rank].
//	ErrMismatchedParent - operation combined elements of different groups.
//	ErrNonFiniteGroup   - finite-only query on an infinite group.
//	ErrNilElement       - nil element passed to a generic algorithm.
//	ErrNoDescent        - internal invariant violation: a non-identity
//	                      element reported no descent. Indicates a defective
//	                      representation, never user error.
package core

import "errors"

// Sentinel errors for generic group operations.
var (
	// ErrGeneratorRange indicates a generator index outside [1, rank].
	ErrGeneratorRange = errors.New("core: generator index out of range")

	// ErrMismatchedParent indicates an operation combining elements that
	// belong to different groups.
	ErrMismatchedParent = errors.New("core: elements have different parent groups")

	// ErrNonFiniteGroup indicates a query that is only defined for finite
	// groups (longest element, enumeration) on an infinite group.
	ErrNonFiniteGroup = errors.New("core: group is not finite")

	// ErrNilElement indicates a nil Element was passed to a generic algorithm.
	ErrNilElement = errors.New("core: element is nil")

	// ErrNoDescent indicates a non-identity element without a descent, which
	// is impossible in a Coxeter group: the concrete representation is broken.
	ErrNoDescent = errors.New("core: non-identity element has no descent")
)

// Group is the group-level capability set. Implementations must be
// immutable after construction so Group values can be shared freely.
type Group interface {
	// Rank returns the number of simple generators.
	Rank() int

	// CoxeterMatrix returns a defensive copy of the group's Coxeter matrix.
	CoxeterMatrix() [][]int

	// Generators returns the rank simple generators, index i holding sᵢ₊₁.
	Generators() []Element

	// Identity returns the identity element.
	Identity() Element

	// IsFinite reports whether the group has finite order.
	IsFinite() bool
}

// Element is the element-level capability set: the four primitives the
// generic algorithms are written against. Implementations must be immutable
// values; every multiplication returns a fresh Element.
//
// Generator indices are 1-based. Implementations return ErrGeneratorRange
// for s outside [1, rank].
type Element interface {
	// Parent returns the group this element belongs to. Two elements may be
	// combined iff their Parent values are identical.
	Parent() Group

	// IsIdentity reports whether the element is the identity.
	IsIdentity() bool

	// Equal reports whether the two elements are the same group element.
	// Elements of different parent groups are never equal.
	Equal(other Element) bool

	// IsLeftDescent reports whether length(sₛ·w) < length(w).
	IsLeftDescent(s int) (bool, error)

	// IsRightDescent reports whether length(w·sₛ) < length(w).
	IsRightDescent(s int) (bool, error)

	// LeftMultiply returns sₛ·w.
	LeftMultiply(s int) (Element, error)

	// RightMultiply returns w·sₛ.
	RightMultiply(s int) (Element, error)
}
