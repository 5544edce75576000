// SPDX-License-Identifier: MIT
// Package minroots: the table-backed group.

package minroots

import (
	"fmt"

	"github.com/ulthiel/coxeter/core"
	"github.com/ulthiel/coxeter/matrix"
)

// Group is a Coxeter group whose elements multiply through the minimal-root
// reflection table. It implements core.Group; construct via NewGroup or
// NewGroupGCM and share freely, the value is immutable.
type Group struct {
	coxeter [][]int
	table   *Table
	finite  bool
}

// NewGroup builds the reflection table of m and wraps it as a group.
func NewGroup(m *matrix.Coxeter, opts ...Option) (*Group, error) {
	if m == nil {
		return nil, fmt.Errorf("NewGroup: %w", ErrNilMatrix)
	}
	if m.Rank() > 255 {
		return nil, fmt.Errorf("NewGroup: rank %d: %w", m.Rank(), ErrRankLimit)
	}
	tab, err := BuildCoxeter(m, opts...)
	if err != nil {
		return nil, err
	}
	return &Group{coxeter: m.Entries(), table: tab, finite: tab.Finite()}, nil
}

// NewGroupGCM builds the reflection table of the Weyl group of g and wraps
// it as a group. The group's Coxeter matrix is the one g converts to.
func NewGroupGCM(g *matrix.GCM, opts ...Option) (*Group, error) {
	if g == nil {
		return nil, fmt.Errorf("NewGroupGCM: %w", ErrNilMatrix)
	}
	if g.Rank() > 255 {
		return nil, fmt.Errorf("NewGroupGCM: rank %d: %w", g.Rank(), ErrRankLimit)
	}
	tab, err := BuildGCM(g, opts...)
	if err != nil {
		return nil, err
	}
	return &Group{coxeter: g.CoxeterMatrix().Entries(), table: tab, finite: tab.Finite()}, nil
}

// Rank returns the number of generators.
func (g *Group) Rank() int { return len(g.coxeter) }

// CoxeterMatrix returns a defensive copy of the group's Coxeter matrix.
func (g *Group) CoxeterMatrix() [][]int {
	out := make([][]int, len(g.coxeter))
	for i, row := range g.coxeter {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Generators returns the simple generators s₁..sₙ.
func (g *Group) Generators() []core.Element {
	gens := make([]core.Element, g.Rank())
	for i := range gens {
		gens[i] = Element{g: g, word: string([]byte{byte(i + 1)})}
	}
	return gens
}

// Identity returns the identity element.
func (g *Group) Identity() core.Element { return Element{g: g} }

// IsFinite reports whether the group is finite, decided at construction
// from the table's zero count.
func (g *Group) IsFinite() bool { return g.finite }

// Table returns the group's minimal-root reflection table.
func (g *Group) Table() *Table { return g.table }

// Generator returns sₛ for a 1-based index.
func (g *Group) Generator(s int) (Element, error) {
	if s < 1 || s > g.Rank() {
		return Element{}, fmt.Errorf("Generator(%d): rank %d: %w", s, g.Rank(), core.ErrGeneratorRange)
	}
	return Element{g: g, word: string([]byte{byte(s)})}, nil
}
