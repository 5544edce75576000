// SPDX-License-Identifier: MIT
// Package minroots: the reflection table type shared by both builders.
//
// Purpose:
//   - Table records, for every generator s and minimal root r, the image
//     s(r): another minimal root, or NoRoot when the image leaves the
//     minimal set (including the seeded diagonal s(αₛ) = −αₛ).
//   - Roots and generators are numbered from 1; the first rank roots are
//     the simple roots in generator order, later roots appear in discovery
//     order, so a table is a deterministic function of its matrix.

package minroots

// RootID names a minimal root. Valid identifiers run from 1 to Size();
// identifiers 1..rank are the simple roots.
type RootID int

// NoRoot is the sentinel for a reflection that leaves the minimal set.
const NoRoot RootID = 0

// undecided marks a table slot construction has not classified yet.
// It never escapes a builder.
const undecided RootID = -1

// Table is an immutable minimal-root reflection table.
type Table struct {
	rank  int
	refl  [][]RootID // refl[s-1][r-1] = s(r)
	depth []int      // depth[r-1], simple roots at depth 1
	zeros int
}

// Rank returns the number of generators.
func (t *Table) Rank() int { return t.rank }

// Size returns the number of minimal roots.
func (t *Table) Size() int { return len(t.depth) }

// Reflect returns s(r), or NoRoot when the image is not minimal.
// Out-of-range arguments are a programmer error and panic.
func (t *Table) Reflect(s int, r RootID) RootID { return t.refl[s-1][r-1] }

// Depth returns the depth of root r: 1 for simple roots, parent depth plus
// one for every root first reached from it.
func (t *Table) Depth(r RootID) int { return t.depth[r-1] }

// ZeroCount returns the number of NoRoot entries. The count is at least
// rank (one per diagonal slot) and equals rank exactly when the group is
// finite.
func (t *Table) ZeroCount() int { return t.zeros }

// Finite reports whether the table's group is finite, decided by the
// zero count.
func (t *Table) Finite() bool { return t.zeros == t.rank }

// Entries returns a defensive copy of the full table, rows indexed by
// generator and columns by root (both 0-based in the copy).
func (t *Table) Entries() [][]RootID {
	out := make([][]RootID, len(t.refl))
	for i, row := range t.refl {
		out[i] = make([]RootID, len(row))
		copy(out[i], row)
	}
	return out
}

// tableBuilder accumulates reflection rows while a build discovers roots.
type tableBuilder struct {
	rank  int
	refl  [][]RootID
	depth []int
}

// newTableBuilder seeds the rank simple roots with their diagonal NoRoot
// entries (s(αₛ) = −αₛ is never minimal).
func newTableBuilder(rank int) *tableBuilder {
	b := &tableBuilder{
		rank:  rank,
		refl:  make([][]RootID, rank),
		depth: make([]int, rank),
	}
	for s := 0; s < rank; s++ {
		b.refl[s] = make([]RootID, rank)
		for r := 0; r < rank; r++ {
			b.refl[s][r] = undecided
		}
		b.refl[s][s] = NoRoot
		b.depth[s] = 1
	}
	return b
}

// addRoot registers a new root at the given depth and returns its id.
func (b *tableBuilder) addRoot(depth int) RootID {
	for s := range b.refl {
		b.refl[s] = append(b.refl[s], undecided)
	}
	b.depth = append(b.depth, depth)
	return RootID(len(b.depth))
}

func (b *tableBuilder) at(s int, r RootID) RootID { return b.refl[s-1][r-1] }

// set installs s(i) = j and its mirror s(j) = i.
func (b *tableBuilder) set(s int, i, j RootID) {
	b.refl[s-1][i-1] = j
	b.refl[s-1][j-1] = i
}

func (b *tableBuilder) lockEntry(s int, r RootID) { b.refl[s-1][r-1] = NoRoot }

// finish freezes the builder into a Table and counts zero entries.
func (b *tableBuilder) finish() *Table {
	zeros := 0
	for _, row := range b.refl {
		for _, e := range row {
			if e == NoRoot {
				zeros++
			}
		}
	}
	return &Table{rank: b.rank, refl: b.refl, depth: b.depth, zeros: zeros}
}
