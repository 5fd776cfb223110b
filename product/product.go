// SPDX-License-Identifier: MIT
//
// File: product.go
// Role: Modular product construction over bitset adjacency rows.
// Determinism:
//   - Dense indices follow the lexicographic vertex order of both inputs.
// Concurrency:
//   - Build only reads its inputs (through core's lock-protected accessors);
//     the returned Product is immutable and safe to share.

package product

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/cliquekernel/core"
)

// ErrEmptyGraph is returned when either operand is nil or has no vertices.
var ErrEmptyGraph = errors.New("product: operand graph is nil or empty")

// Pair is the identity of one product vertex: U from the first graph, V from the second.
type Pair struct {
	U, V string
}

// String renders the pair as "(u,v)".
func (p Pair) String() string { return "(" + p.U + "," + p.V + ")" }

// Product is the modular product of two graphs on dense vertex IDs.
type Product struct {
	x      *core.Indexed
	labelG []string
	labelH []string
	posG   map[string]int
	posH   map[string]int
}

// operand is one relabeled input graph.
type operand struct {
	x      *core.Indexed
	labels []string
}

func prepare(which string, g *core.Graph) (operand, error) {
	if err := core.Validate(g); err != nil {
		return operand{}, fmt.Errorf("product: %s: %w: %w", which, ErrEmptyGraph, err)
	}
	x, labels, err := core.Relabel(g)
	if err != nil {
		return operand{}, fmt.Errorf("product: %s: %w", which, err)
	}

	return operand{x: x, labels: labels}, nil
}

// Build constructs the modular product of g and h.
//
// Implementation:
//   - Stage 1: validate and relabel both operands onto dense ranges.
//   - Stage 2: precompute each vertex's non-neighbor row (complement minus itself).
//   - Stage 3: for every anchor (i, j) set row(i·nH+j) to
//     adjG(i)⊗adjH(j) ∪ nonG(i)⊗nonH(j), where A⊗B = {a·nH+b : a∈A, b∈B}.
//
// Behavior highlights:
//   - The union never contains the anchor itself nor any pair sharing a
//     coordinate with it, so the result is simple and symmetric by construction.
//
// Errors:
//   - ErrEmptyGraph (joined with the core sentinel) for nil/empty operands.
//
// Complexity:
//   - Time O(N · (Σ row products)) ≤ O(|V(G)|²·|V(H)|²), Space O(N²/64), N = |V(G)|·|V(H)|.
func Build(g, h *core.Graph) (*Product, error) {
	og, err := prepare("G", g)
	if err != nil {
		return nil, err
	}
	oh, err := prepare("H", h)
	if err != nil {
		return nil, err
	}

	nG, nH := og.x.VertexCount(), oh.x.VertexCount()
	n := nG * nH
	nonG := nonNeighborRows(og.x)
	nonH := nonNeighborRows(oh.x)

	rows := make([]*bitset.BitSet, n)
	for i := 0; i < nG; i++ {
		for j := 0; j < nH; j++ {
			row := bitset.New(uint(n))
			tensorInto(row, og.x.Neighbors(i), oh.x.Neighbors(j), nH)
			tensorInto(row, nonG[i], nonH[j], nH)
			rows[i*nH+j] = row
		}
	}

	x, err := core.IndexedFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}

	return newProduct(x, og.labels, oh.labels), nil
}

// BuildNaive constructs the same product by testing the adjacency predicate on
// every unordered pair of product vertices. It is the reference for Build.
// Complexity: O(N²) predicate checks.
func BuildNaive(g, h *core.Graph) (*Product, error) {
	og, err := prepare("G", g)
	if err != nil {
		return nil, err
	}
	oh, err := prepare("H", h)
	if err != nil {
		return nil, err
	}

	nH := oh.x.VertexCount()
	n := og.x.VertexCount() * nH
	x, err := core.NewIndexed(n)
	if err != nil {
		return nil, err
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if adjacentIdx(og.x, oh.x, a/nH, a%nH, b/nH, b%nH) {
				if err = x.AddEdge(a, b); err != nil {
					return nil, fmt.Errorf("product: %w", err)
				}
			}
		}
	}

	return newProduct(x, og.labels, oh.labels), nil
}

// Adjacent reports whether pairs a and b are adjacent in the modular product of g and h.
func Adjacent(g, h *core.Graph, a, b Pair) bool {
	if a.U == b.U || a.V == b.V {
		return false
	}

	return g.HasEdge(a.U, b.U) == h.HasEdge(a.V, b.V)
}

func adjacentIdx(g, h *core.Indexed, u, v, u2, v2 int) bool {
	if u == u2 || v == v2 {
		return false
	}

	return g.HasEdge(u, u2) == h.HasEdge(v, v2)
}

// nonNeighborRows returns, per vertex, the set of other vertices not adjacent to it.
func nonNeighborRows(x *core.Indexed) []*bitset.BitSet {
	n := x.VertexCount()
	out := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		non := x.Neighbors(i).Clone()
		non.InPlaceUnion(bitset.New(uint(n))) // normalize length to n before complementing
		non = non.Complement()
		non.Clear(uint(i))
		out[i] = non
	}

	return out
}

// tensorInto sets a·nH+b in dst for every a ∈ left, b ∈ right.
func tensorInto(dst, left, right *bitset.BitSet, nH int) {
	for a, ok := left.NextSet(0); ok; a, ok = left.NextSet(a + 1) {
		base := a * uint(nH)
		for b, ok2 := right.NextSet(0); ok2; b, ok2 = right.NextSet(b + 1) {
			dst.Set(base + b)
		}
	}
}

func newProduct(x *core.Indexed, labelG, labelH []string) *Product {
	p := &Product{
		x:      x,
		labelG: labelG,
		labelH: labelH,
		posG:   make(map[string]int, len(labelG)),
		posH:   make(map[string]int, len(labelH)),
	}
	for i, id := range labelG {
		p.posG[id] = i
	}
	for j, id := range labelH {
		p.posH[id] = j
	}

	return p
}

// Indexed returns the dense product graph. The result is shared; do not mutate it.
func (p *Product) Indexed() *core.Indexed { return p.x }

// VertexCount returns |V(G)|·|V(H)|.
func (p *Product) VertexCount() int { return p.x.VertexCount() }

// EdgeCount returns the number of product edges.
func (p *Product) EdgeCount() int { return p.x.EdgeCount() }

// Pair returns the (u, v) identity of dense index i.
func (p *Product) Pair(i int) (Pair, error) {
	if i < 0 || i >= p.x.VertexCount() {
		return Pair{}, fmt.Errorf("product: Pair(%d): %w", i, core.ErrIndexOutOfRange)
	}
	nH := len(p.labelH)

	return Pair{U: p.labelG[i/nH], V: p.labelH[i%nH]}, nil
}

// Index returns the dense index of (u, v), or core.ErrVertexNotFound.
func (p *Product) Index(u, v string) (int, error) {
	i, ok := p.posG[u]
	if !ok {
		return 0, fmt.Errorf("product: Index(%s,%s): %w", u, v, core.ErrVertexNotFound)
	}
	j, ok := p.posH[v]
	if !ok {
		return 0, fmt.Errorf("product: Index(%s,%s): %w", u, v, core.ErrVertexNotFound)
	}

	return i*len(p.labelH) + j, nil
}

// Graph renders the product as a labeled core.Graph with vertex IDs "(u,v)".
// Complexity: O(N + E) insertions.
func (p *Product) Graph() (*core.Graph, error) {
	n := p.x.VertexCount()
	g := core.NewGraph(core.WithVertexCapacity(n))
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		pair, _ := p.Pair(i)
		ids[i] = pair.String()
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("product: Graph: %w", err)
		}
	}
	for _, e := range p.x.Edges() {
		if err := g.AddEdge(ids[e[0]], ids[e[1]]); err != nil {
			return nil, fmt.Errorf("product: Graph: %w", err)
		}
	}

	return g, nil
}
