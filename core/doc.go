// SPDX-License-Identifier: MIT

// Package core provides the two graph representations used across cliquekernel.
//
// Graph is a thread-safe, simple, undirected graph keyed by string vertex IDs.
// It is the input type of the kernel: callers build one Graph per data point.
//
//   - Undirected only; AddEdge(u,v) also links v→u.
//   - Unweighted; there is no weight parameter.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Indexed is a dense graph over 0..N-1 with one bitset adjacency row per vertex.
// Products, clique enumeration and the external counting engine all work on
// Indexed, because they need contiguous integer vertex IDs and fast row
// intersection. Relabel converts a Graph into an Indexed graph using the sorted
// vertex order.
//
// Core methods:
//
//	// Graph
//	AddVertex(id string) error            // O(1)
//	AddEdge(from, to string) error        // O(1)
//	RemoveEdge(from, to string) error     // O(1)
//	HasVertex / HasEdge                   // O(1)
//	Vertices() []string                   // O(V log V), sorted
//	Edges() []Edge                        // O(E log E), sorted, From < To
//	NeighborIDs(id string) ([]string, error)
//	Stats() *GraphStats, Clone() *Graph
//
//	// Indexed
//	NewIndexed(n), IndexedFromRows(rows)
//	AddEdge(i, j), HasEdge(i, j), Neighbors(i), Degree(i), Edges()
//
//	// Admission
//	Validate(g) error                     // ErrNilGraph / ErrEmptyGraph
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	x, labels, _ := core.Relabel(g) // labels = [A B C]; x.HasEdge(0, 1) == true
package core
