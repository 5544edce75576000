package symgrp_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ulthiel/coxeter/core"
	"github.com/ulthiel/coxeter/matrix"
	"github.com/ulthiel/coxeter/minroots"
	"github.com/ulthiel/coxeter/symgrp"
)

func TestNew_DegreeBounds(t *testing.T) {
	if _, err := symgrp.New(0); !errors.Is(err, symgrp.ErrDegree) {
		t.Fatalf("New(0) error = %v, want ErrDegree", err)
	}
	if _, err := symgrp.New(256); !errors.Is(err, symgrp.ErrDegree) {
		t.Fatalf("New(256) error = %v, want ErrDegree", err)
	}
	g, err := symgrp.New(1)
	if err != nil {
		t.Fatalf("New(1): %v", err)
	}
	if g.Rank() != 0 {
		t.Fatalf("Rank of S1 = %d, want 0", g.Rank())
	}
	if !g.Identity().IsIdentity() {
		t.Fatal("identity of S1 is not the identity")
	}
}

func TestCoxeterMatrix_TypeA(t *testing.T) {
	g, err := symgrp.New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want, err := matrix.TypeA(3)
	if err != nil {
		t.Fatalf("TypeA: %v", err)
	}
	if !reflect.DeepEqual(g.CoxeterMatrix(), want.Entries()) {
		t.Fatalf("CoxeterMatrix = %v, want %v", g.CoxeterMatrix(), want.Entries())
	}
}

func TestFromOneline(t *testing.T) {
	g, err := symgrp.New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e, err := g.FromOneline([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("FromOneline: %v", err)
	}
	if got := e.Oneline(); !reflect.DeepEqual(got, []int{2, 3, 1}) {
		t.Fatalf("Oneline = %v", got)
	}

	for _, bad := range [][]int{{1, 2}, {1, 1, 2}, {0, 1, 2}, {1, 2, 4}} {
		if _, err := g.FromOneline(bad); err == nil {
			t.Errorf("FromOneline(%v) succeeded, want error", bad)
		}
	}
}

func TestDescents_Definition(t *testing.T) {
	g, err := symgrp.New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// w = [2 3 1]: w(1)=2 < w(2)=3, w(2)=3 > w(3)=1.
	w, err := g.FromOneline([]int{2, 3, 1})
	if err != nil {
		t.Fatalf("FromOneline: %v", err)
	}
	if d, _ := w.IsRightDescent(1); d {
		t.Error("s1 must not be a right descent of [2 3 1]")
	}
	if d, _ := w.IsRightDescent(2); !d {
		t.Error("s2 must be a right descent of [2 3 1]")
	}
	// w⁻¹ = [3 1 2]: 1 appears after 2, 2 before 3.
	if d, _ := w.IsLeftDescent(1); !d {
		t.Error("s1 must be a left descent of [2 3 1]")
	}
	if d, _ := w.IsLeftDescent(2); d {
		t.Error("s2 must not be a left descent of [2 3 1]")
	}
}

func TestMultiply_Semantics(t *testing.T) {
	g, err := symgrp.New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w, err := g.FromOneline([]int{3, 1, 4, 2})
	if err != nil {
		t.Fatalf("FromOneline: %v", err)
	}

	// Right multiplication swaps positions.
	ws, err := w.RightMultiply(2)
	if err != nil {
		t.Fatalf("RightMultiply: %v", err)
	}
	if got := ws.(symgrp.Element).Oneline(); !reflect.DeepEqual(got, []int{3, 4, 1, 2}) {
		t.Fatalf("w*s2 = %v, want [3 4 1 2]", got)
	}

	// Left multiplication swaps values.
	sw, err := w.LeftMultiply(2)
	if err != nil {
		t.Fatalf("LeftMultiply: %v", err)
	}
	if got := sw.(symgrp.Element).Oneline(); !reflect.DeepEqual(got, []int{2, 1, 4, 3}) {
		t.Fatalf("s2*w = %v, want [2 1 4 3]", got)
	}

	if _, err := w.RightMultiply(4); !errors.Is(err, core.ErrGeneratorRange) {
		t.Fatalf("error = %v, want ErrGeneratorRange", err)
	}
}

// The permutation representation and the reflection-table representation
// of the same Coxeter matrix must agree on everything the generic
// algorithms can observe.
func TestCrossRepresentation_S4(t *testing.T) {
	perm, err := symgrp.New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, err := matrix.TypeA(3)
	if err != nil {
		t.Fatalf("TypeA: %v", err)
	}
	tab, err := minroots.NewGroup(m)
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}

	permAll, err := core.Elements(perm)
	if err != nil {
		t.Fatalf("Elements(perm): %v", err)
	}
	tabAll, err := core.Elements(tab)
	if err != nil {
		t.Fatalf("Elements(table): %v", err)
	}
	if len(permAll) != len(tabAll) {
		t.Fatalf("orders differ: %d vs %d", len(permAll), len(tabAll))
	}

	// Both enumerations are breadth-first over the same abstract group, so
	// they pair up elementwise with identical ShortLex words and lengths.
	for i := range permAll {
		pw, err := core.ShortLexWord(permAll[i])
		if err != nil {
			t.Fatalf("ShortLexWord(perm): %v", err)
		}
		tw, err := core.ShortLexWord(tabAll[i])
		if err != nil {
			t.Fatalf("ShortLexWord(table): %v", err)
		}
		if !reflect.DeepEqual(pw, tw) {
			t.Fatalf("element %d: words %v vs %v", i, pw, tw)
		}
	}
}
