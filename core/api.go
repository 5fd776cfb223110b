// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: admission validation, stats snapshot, cloning.
// Policy:
//   - No algorithms here; every function is a snapshot or a copy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxDegree   int
	// Density is 2E / (V(V-1)); 0 for graphs with fewer than two vertices.
	Density float64
}

// Validate checks the admission preconditions shared by product construction
// and clique counting: the graph must be non-nil and have at least one vertex.
// Simplicity (no loops, no parallel edges) is guaranteed by AddEdge.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(1).
func Validate(g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}

// Stats produces a read-only snapshot of vertex/edge counts and degree figures.
//
// Implementation:
//   - Stage 1: Snapshot the vertex count under muVert.
//   - Stage 2: Scan adjacency once under muEdgeAdj for edge count and max degree.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	for _, nbrs := range g.adjacency {
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
	}
	g.muEdgeAdj.RUnlock()

	if n := stats.VertexCount; n > 1 {
		stats.Density = float64(2*stats.EdgeCount) / float64(n*(n-1))
	}

	return &stats
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithVertexCapacity(len(g.vertices)))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for u, nbrs := range g.adjacency {
		row := make(map[string]struct{}, len(nbrs))
		for v := range nbrs {
			row[v] = struct{}{}
		}
		clone.adjacency[u] = row
	}
	clone.edgeCount = g.edgeCount

	return clone
}
