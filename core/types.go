// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors, the NewGraph constructor.
// Policy:
//   - Graphs are simple: undirected, unweighted, no self-loops, no parallel edges.
//   - Violations are rejected at insertion time, so every stored Graph is valid input
//     for product construction and clique counting.
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards adjacency and the edge counter.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph or *Indexed was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates a graph without any vertex where at least one is required.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrIndexOutOfRange indicates a dense vertex index outside 0..N-1.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrAsymmetricAdjacency indicates dense adjacency rows that do not describe an undirected graph.
	ErrAsymmetricAdjacency = errors.New("core: adjacency is not symmetric")
)

// Edge is an undirected edge between two distinct vertices.
// Edges returned by Graph are normalized so that From < To (lexicographically).
type Edge struct {
	From string
	To   string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the vertex catalog for n vertices.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[string]struct{}, n)
			g.adjacency = make(map[string]map[string]struct{}, n)
		}
	}
}

// Graph is a thread-safe simple undirected graph keyed by string vertex IDs.
//
// adjacency[u][v] exists iff adjacency[v][u] exists iff {u,v} is an edge.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
