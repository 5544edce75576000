// SPDX-License-Identifier: MIT
// Package minroots: reflection table construction from an arbitrary Coxeter
// matrix.
//
// Purpose:
//   - Root coordinates are quantum integers over the unit-normalized simple
//     basis; the pairing of root r with generator s is p = 2rₛ + Σ C(s,t)·rₜ
//     where C is the quantum Cartan form of the matrix (C(s,t) = −[2] at
//     order 2m for a bond of order m, −2 for an infinite bond).
//   - s(r) is minimal exactly when p lies in the open interval (−2, 2);
//     then s(r) differs from r only at coordinate s, by −p. A pairing at or
//     below −2 locks the pair (s, r) permanently: the lock is recorded on
//     the root and inherited by every deeper root reached from it.
//   - Generators outside the support short-circuit: no bond into the
//     support fixes the root, two or more bonds (or one bond whose product
//     provably reaches −2) lock it, and only the single-bond case needs the
//     interval test.

package minroots

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ulthiel/coxeter/matrix"
	"github.com/ulthiel/coxeter/quantum"
)

type genRoot struct {
	coeffs []quantum.Integer
	locked []bool
}

type generalBuilder struct {
	m      *matrix.Coxeter
	cartan [][]quantum.Integer
	b      *tableBuilder
	roots  []*genRoot
	index  map[string]RootID
	limit  int
}

// BuildCoxeter constructs the minimal-root reflection table of the Coxeter
// group of m. Processing is breadth-first from the simple roots, so root
// numbering is deterministic. For a crystallographic matrix the table
// coincides with BuildGCM's up to this numbering.
func BuildCoxeter(m *matrix.Coxeter, opts ...Option) (*Table, error) {
	if m == nil {
		return nil, fmt.Errorf("BuildCoxeter: %w", ErrNilMatrix)
	}
	o := applyOptions(opts)
	n := m.Rank()
	if o.MaxRoots > 0 && n > o.MaxRoots {
		return nil, fmt.Errorf("BuildCoxeter: rank %d: %w", n, ErrTableLimit)
	}

	gb := &generalBuilder{
		m:      m,
		cartan: quantumCartan(m),
		b:      newTableBuilder(n),
		roots:  make([]*genRoot, 0, 2*n),
		index:  make(map[string]RootID, 2*n),
		limit:  o.MaxRoots,
	}
	for i := 0; i < n; i++ {
		coeffs := make([]quantum.Integer, n)
		coeffs[i] = quantum.NewInt(1)
		r := &genRoot{coeffs: coeffs, locked: make([]bool, n)}
		gb.roots = append(gb.roots, r)
		gb.index[coeffKey(coeffs)] = RootID(i + 1)
	}

	for i := 0; i < len(gb.roots); i++ {
		id := RootID(i + 1)
		r := gb.roots[i]
		for s := 1; s <= n; s++ {
			if gb.b.at(s, id) != undecided {
				continue
			}
			if r.locked[s-1] {
				gb.b.lockEntry(s, id)
				continue
			}
			minimal, p, err := gb.classify(r, s)
			if err != nil {
				return nil, fmt.Errorf("BuildCoxeter: root %d, generator %d: %w", id, s, err)
			}
			if !minimal {
				r.locked[s-1] = true
				gb.b.lockEntry(s, id)
				continue
			}
			if err := gb.reflect(id, s, p); err != nil {
				return nil, err
			}
		}
	}
	return gb.b.finish(), nil
}

// quantumCartan precomputes the pairing form C(s,t) for the off-diagonal
// bonds: 0 for commuting generators, −2 for an infinite bond, and −[2] at
// order 2m otherwise (which collapses to the plain −1 for m = 3).
func quantumCartan(m *matrix.Coxeter) [][]quantum.Integer {
	n := m.Rank()
	c := make([][]quantum.Integer, n)
	for s := 1; s <= n; s++ {
		c[s-1] = make([]quantum.Integer, n)
		for t := 1; t <= n; t++ {
			switch order := m.Order(s, t); {
			case s == t:
				c[s-1][t-1] = quantum.NewInt(2)
			case order == 0:
				c[s-1][t-1] = quantum.NewInt(-2)
			case order == 2:
				c[s-1][t-1] = quantum.NewInt(0)
			default:
				// New cannot fail for orders ≥ 4.
				v, _ := quantum.New(2*order, quantum.Term{Index: 2, Coeff: -1})
				c[s-1][t-1] = v
			}
		}
	}
	return c
}

// classify decides the fate of generator s on root r: (true, p) to reflect
// with pairing p, (false, _) to lock. Errors indicate a defect in the case
// analysis, not a property of the input.
func (gb *generalBuilder) classify(r *genRoot, s int) (bool, quantum.Integer, error) {
	var zero quantum.Integer
	n := gb.b.rank

	if r.coeffs[s-1].IsZero() {
		// s outside the support: collect the bonds tying it to the support.
		link := -1
		for t := 1; t <= n; t++ {
			if t == s || r.coeffs[t-1].IsZero() || gb.m.Order(s, t) == 2 {
				continue
			}
			if link >= 0 {
				// Two bonds contribute at most −1 each, so p ≤ −2.
				return false, zero, nil
			}
			link = t
		}
		if link < 0 {
			return true, quantum.NewInt(0), nil
		}
		p, err := gb.cartan[s-1][link-1].Mul(r.coeffs[link-1])
		if errors.Is(err, quantum.ErrMixedCyclotomy) {
			// Both factors exceed √2 in magnitude, so p ≤ −2.
			return false, zero, nil
		}
		if err != nil {
			return false, zero, err
		}
		in, err := quantum.InOpenIntervalTwo(p)
		if err != nil {
			return false, zero, err
		}
		return in, p, nil
	}

	// s inside the support: accumulate p = 2rₛ + Σ C(s,t)·rₜ term by term.
	// A mixed-cyclotomy failure means bonds of two different high orders
	// meet the support at s; each such contribution has magnitude at least
	// √2, so the pairing cannot stay above −2 and the pair locks.
	p, err := r.coeffs[s-1].Mul(quantum.NewInt(2))
	if err != nil {
		return false, zero, err
	}
	for t := 1; t <= n; t++ {
		if t == s || r.coeffs[t-1].IsZero() || gb.m.Order(s, t) == 2 {
			continue
		}
		term, err := gb.cartan[s-1][t-1].Mul(r.coeffs[t-1])
		if errors.Is(err, quantum.ErrMixedCyclotomy) {
			return false, zero, nil
		}
		if err != nil {
			return false, zero, err
		}
		if p, err = p.Add(term); err != nil {
			if errors.Is(err, quantum.ErrMixedCyclotomy) {
				return false, zero, nil
			}
			return false, zero, err
		}
	}
	in, err := quantum.InOpenIntervalTwo(p)
	if err != nil {
		return false, zero, err
	}
	return in, p, nil
}

// reflect installs s(id) and registers the image root when it is new.
// Locks travel with depth: a fresh image inherits the parent's lock set,
// and reflecting onto an existing deeper root unions the parent's locks
// into it. Discovery order keeps depth nondecreasing, so a strictly deeper
// union target has not been expanded yet: its lock set is complete before
// any root reflects from it.
func (gb *generalBuilder) reflect(id RootID, s int, p quantum.Integer) error {
	r := gb.roots[id-1]
	cs, err := r.coeffs[s-1].Sub(p)
	if err != nil {
		return fmt.Errorf("BuildCoxeter: root %d, generator %d: %w", id, s, err)
	}
	next := make([]quantum.Integer, len(r.coeffs))
	copy(next, r.coeffs)
	next[s-1] = cs

	key := coeffKey(next)
	j, ok := gb.index[key]
	if !ok {
		if gb.limit > 0 && len(gb.roots) >= gb.limit {
			return fmt.Errorf("BuildCoxeter: %w (limit %d)", ErrTableLimit, gb.limit)
		}
		locked := append([]bool(nil), r.locked...)
		gb.roots = append(gb.roots, &genRoot{coeffs: next, locked: locked})
		j = gb.b.addRoot(gb.b.depth[id-1] + 1)
		gb.index[key] = j
	} else if gb.b.depth[j-1] > gb.b.depth[id-1] {
		target := gb.roots[j-1]
		for t, l := range r.locked {
			if l {
				target.locked[t] = true
			}
		}
	}
	gb.b.set(s, id, j)
	return nil
}

// coeffKey renders a coordinate vector as a deterministic map key.
func coeffKey(coeffs []quantum.Integer) string {
	var sb strings.Builder
	for i, c := range coeffs {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
