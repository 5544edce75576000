// SPDX-License-Identifier: MIT
// Package minroots: reflection table construction from a generalized Cartan
// matrix.
//
// Purpose:
//   - Roots carry exact integer coordinate vectors over the simple basis,
//     with a coroot vector maintained alongside, so the whole build runs in
//     integer arithmetic with no interval tests.
//   - A root r fails to reflect to a minimal root by s exactly when
//     ⟨r, αₛ^⟩ · ⟨αₛ, r^⟩ ≥ 4; otherwise s(r) changes only the s
//     coordinate of root and coroot.

package minroots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ulthiel/coxeter/matrix"
)

// BuildGCM constructs the minimal-root reflection table of the Weyl group
// of g. Processing is breadth-first from the simple roots, so root
// numbering is deterministic.
func BuildGCM(g *matrix.GCM, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, fmt.Errorf("BuildGCM: %w", ErrNilMatrix)
	}
	o := applyOptions(opts)
	n := g.Rank()
	if o.MaxRoots > 0 && n > o.MaxRoots {
		return nil, fmt.Errorf("BuildGCM: rank %d: %w", n, ErrTableLimit)
	}

	b := newTableBuilder(n)
	roots := make([][]int, 0, 2*n)
	coroots := make([][]int, 0, 2*n)
	index := make(map[string]RootID, 2*n)
	for i := 0; i < n; i++ {
		v := make([]int, n)
		v[i] = 1
		roots = append(roots, v)
		coroots = append(coroots, append([]int(nil), v...))
		index[vecKey(v)] = RootID(i + 1)
	}

	for i := 0; i < len(roots); i++ {
		id := RootID(i + 1)
		for s := 1; s <= n; s++ {
			if b.at(s, id) != undecided {
				continue
			}
			pairing, copairing := 0, 0
			for t := 1; t <= n; t++ {
				pairing += g.Cartan(s, t) * roots[i][t-1]
				copairing += g.Cartan(t, s) * coroots[i][t-1]
			}
			if pairing*copairing >= 4 {
				b.lockEntry(s, id)
				continue
			}
			nr := reflectVec(roots[i], s, pairing)
			key := vecKey(nr)
			j, ok := index[key]
			if !ok {
				if o.MaxRoots > 0 && len(roots) >= o.MaxRoots {
					return nil, fmt.Errorf("BuildGCM: %w (limit %d)", ErrTableLimit, o.MaxRoots)
				}
				roots = append(roots, nr)
				coroots = append(coroots, reflectVec(coroots[i], s, copairing))
				j = b.addRoot(b.depth[i] + 1)
				index[key] = j
			}
			b.set(s, id, j)
		}
	}
	return b.finish(), nil
}

// reflectVec returns v with coordinate s reduced by the pairing value.
func reflectVec(v []int, s, pairing int) []int {
	out := append([]int(nil), v...)
	out[s-1] -= pairing
	return out
}

// vecKey renders an integer vector as a deterministic map key.
func vecKey(v []int) string {
	var sb strings.Builder
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}
