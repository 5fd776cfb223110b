// SPDX-License-Identifier: MIT

// Package product builds the modular product of two simple undirected graphs.
//
// The modular product G ◇ H has one vertex per pair (u, v), u ∈ V(G), v ∈ V(H).
// Distinct pairs (u,v) and (u',v') are adjacent iff u≠u', v≠v' and either
// both u~u' and v~v', or both u≁u' and v≁v'. Cliques of G ◇ H correspond to
// common induced subgraphs of G and H, which is what makes their count a graph
// similarity.
//
// The product is returned on the dense range 0..|V(G)|·|V(H)|-1, ready for
// clique counting. Dense index = i·|V(H)| + j, where i and j are the positions
// of u and v in lexicographic vertex order. Pair/Index map between the two
// views and Graph renders a labeled core.Graph with IDs "(u,v)".
package product
