// SPDX-License-Identifier: MIT
//
// File: relabel.go
// Role: Map a string-labeled Graph onto the dense 0..N-1 range.
// Determinism:
//   - Dense index i is the position of the vertex in g.Vertices() (lexicographic order).

package core

import "fmt"

// Relabel converts g into an Indexed graph and returns the label of each dense index.
//
// Implementation:
//   - Stage 1: snapshot the sorted vertex list and build label → index.
//   - Stage 2: insert every edge of g using the dense indices.
//
// Behavior highlights:
//   - Edges are preserved exactly: {u,v} ∈ E(g) ⇔ {idx(u), idx(v)} ∈ E(result).
//   - An empty graph yields an Indexed with N = 0; admission checks belong to callers.
//
// Errors:
//   - ErrNilGraph.
//
// Complexity:
//   - Time O(V log V + E), Space O(V² / 64) for the bitset rows.
func Relabel(g *Graph) (*Indexed, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	x, err := NewIndexed(len(labels))
	if err != nil {
		return nil, nil, err
	}
	for _, e := range g.Edges() {
		u, uok := index[e.From]
		v, vok := index[e.To]
		if !uok || !vok {
			// A vertex was added concurrently between the two snapshots.
			return nil, nil, fmt.Errorf("Relabel: edge %s-%s: %w", e.From, e.To, ErrVertexNotFound)
		}
		if err = x.AddEdge(u, v); err != nil {
			return nil, nil, fmt.Errorf("Relabel: %w", err)
		}
	}

	return x, labels, nil
}
