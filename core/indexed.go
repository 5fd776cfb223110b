// SPDX-License-Identifier: MIT
//
// File: indexed.go
// Role: Dense integer-labeled graph over vertices 0..N-1 with bitset adjacency rows.
// Policy:
//   - Undirected and simple: row i has bit j set iff row j has bit i set; bit i of row i is never set.
//   - Indexed is the representation consumed by clique counting and by the external
//     counting engine, both of which require contiguous integer vertex IDs.
// Concurrency:
//   - Not synchronized. Build once, then share read-only.

package core

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Indexed is a simple undirected graph over the dense vertex range 0..N-1.
type Indexed struct {
	n     int
	m     int
	rows  []*bitset.BitSet
	empty *bitset.BitSet // shared all-zero row returned for out-of-range lookups
}

// NewIndexed returns an edgeless graph with n vertices (n ≥ 0).
// Complexity: O(n²/64) words of storage.
func NewIndexed(n int) (*Indexed, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewIndexed(%d): %w", n, ErrIndexOutOfRange)
	}
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(n))
	}

	return &Indexed{n: n, rows: rows, empty: bitset.New(uint(n))}, nil
}

// IndexedFromRows adopts precomputed adjacency rows without copying them.
//
// Implementation:
//   - Stage 1: check every row has length ≥ len(rows) bits and no diagonal bit.
//   - Stage 2: check symmetry bit by bit while counting edges once (i < j).
//
// Errors:
//   - ErrLoopNotAllowed if some row i contains i.
//   - ErrAsymmetricAdjacency if i∈row(j) but j∉row(i), or a row is nil/short.
//
// Complexity:
//   - Time O(N + total set bits), Space O(1) extra.
func IndexedFromRows(rows []*bitset.BitSet) (*Indexed, error) {
	n := len(rows)
	m := 0
	for i, row := range rows {
		if row == nil || row.Len() < uint(n) {
			return nil, fmt.Errorf("IndexedFromRows: row %d: %w", i, ErrAsymmetricAdjacency)
		}
		if row.Test(uint(i)) {
			return nil, fmt.Errorf("IndexedFromRows: row %d: %w", i, ErrLoopNotAllowed)
		}
	}
	for i, row := range rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if j >= uint(n) || !rows[j].Test(uint(i)) {
				return nil, fmt.Errorf("IndexedFromRows: %d~%d: %w", i, j, ErrAsymmetricAdjacency)
			}
			if uint(i) < j {
				m++
			}
		}
	}

	return &Indexed{n: n, m: m, rows: rows, empty: bitset.New(uint(n))}, nil
}

// VertexCount returns N.
func (x *Indexed) VertexCount() int { return x.n }

// EdgeCount returns the number of undirected edges.
func (x *Indexed) EdgeCount() int { return x.m }

// AddEdge inserts {i, j}.
//
// Errors:
//   - ErrIndexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
func (x *Indexed) AddEdge(i, j int) error {
	if i < 0 || i >= x.n || j < 0 || j >= x.n {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrLoopNotAllowed)
	}
	if x.rows[i].Test(uint(j)) {
		return fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrMultiEdgeNotAllowed)
	}
	x.rows[i].Set(uint(j))
	x.rows[j].Set(uint(i))
	x.m++

	return nil
}

// HasEdge reports whether {i, j} is an edge; out-of-range indices yield false.
func (x *Indexed) HasEdge(i, j int) bool {
	if i < 0 || i >= x.n || j < 0 || j >= x.n {
		return false
	}

	return x.rows[i].Test(uint(j))
}

// Neighbors returns the adjacency row of i. The returned set is owned by the
// graph and must not be mutated; Clone it before set algebra that writes.
// Out-of-range indices yield an empty set.
func (x *Indexed) Neighbors(i int) *bitset.BitSet {
	if i < 0 || i >= x.n {
		return x.empty
	}

	return x.rows[i]
}

// Degree returns the number of neighbors of i (0 when out of range).
func (x *Indexed) Degree(i int) int {
	return int(x.Neighbors(i).Count())
}

// Edges lists every edge once as (i, j) with i < j, ordered by i then j.
// Complexity: O(N + E).
func (x *Indexed) Edges() [][2]int {
	out := make([][2]int, 0, x.m)
	for i, row := range x.rows {
		for j, ok := row.NextSet(uint(i) + 1); ok; j, ok = row.NextSet(j + 1) {
			out = append(out, [2]int{i, int(j)})
		}
	}

	return out
}
