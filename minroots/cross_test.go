// SPDX-License-Identifier: MIT

package minroots_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/ulthiel/coxeter/matrix"
	"github.com/ulthiel/coxeter/minroots"
)

// Both builders process roots breadth-first with ascending generators, so on
// a crystallographic matrix they must produce byte-identical tables, not
// merely isomorphic ones.
func TestCrossBuilder_TableEquality(t *testing.T) {
	type pair struct {
		name string
		gcm  *matrix.GCM
		cox  *matrix.Coxeter
	}
	var pairs []pair
	add := func(name string, gcm *matrix.GCM, gcmErr error, cox *matrix.Coxeter, coxErr error) {
		require.NoError(t, gcmErr, name)
		require.NoError(t, coxErr, name)
		pairs = append(pairs, pair{name: name, gcm: gcm, cox: cox})
	}

	for n := 1; n <= 8; n++ {
		g, gErr := matrix.CartanA(n)
		m, mErr := matrix.TypeA(n)
		add(fmt.Sprintf("A%d", n), g, gErr, m, mErr)
	}
	for n := 2; n <= 8; n++ {
		g, gErr := matrix.CartanB(n)
		m, mErr := matrix.TypeB(n)
		add(fmt.Sprintf("B%d", n), g, gErr, m, mErr)
		c, cErr := matrix.CartanC(n)
		add(fmt.Sprintf("C%d", n), c, cErr, m, mErr)
	}
	for n := 4; n <= 8; n++ {
		g, gErr := matrix.CartanD(n)
		m, mErr := matrix.TypeD(n)
		add(fmt.Sprintf("D%d", n), g, gErr, m, mErr)
	}
	for n := 6; n <= 8; n++ {
		g, gErr := matrix.CartanE(n)
		m, mErr := matrix.TypeE(n)
		add(fmt.Sprintf("E%d", n), g, gErr, m, mErr)
	}
	add("F4", matrix.CartanF4(), nil, matrix.TypeF4(), nil)
	add("G2", matrix.CartanG2(), nil, matrix.TypeG2(), nil)

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			fromGCM, err := minroots.BuildGCM(p.gcm)
			require.NoError(t, err)
			fromCox, err := minroots.BuildCoxeter(p.cox)
			require.NoError(t, err)
			if diff := cmp.Diff(fromGCM.Entries(), fromCox.Entries()); diff != "" {
				t.Fatalf("tables differ (-gcm +coxeter):\n%s", diff)
			}
		})
	}
}

// B and C are dual: transposing the Cartan matrix swaps roots and coroots
// but leaves the reflection table untouched.
func TestCrossBuilder_BCDuality(t *testing.T) {
	b8, err := matrix.CartanB(8)
	require.NoError(t, err)
	c8, err := matrix.CartanC(8)
	require.NoError(t, err)

	fromB, err := minroots.BuildGCM(b8)
	require.NoError(t, err)
	fromC, err := minroots.BuildGCM(c8)
	require.NoError(t, err)

	require.Equal(t, 64, fromB.Size())
	if diff := cmp.Diff(fromB.Entries(), fromC.Entries()); diff != "" {
		t.Fatalf("B8 and C8 tables differ:\n%s", diff)
	}
}
