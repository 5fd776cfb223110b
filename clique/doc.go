// SPDX-License-Identifier: MIT

// Package clique counts the cliques of a dense graph by size.
//
// A clique is any non-empty vertex set whose members are pairwise adjacent;
// every single vertex and every edge is one, not only maximal cliques.
//
// Counters:
//   - Exact: exhaustive ordered extension over bitset rows.
//   - Approximate: sampling estimates from the external DPColor engine for
//     sizes ≥ 3, exact |V| and |E| for sizes 1 and 2.
//   - Auto: Exact up to a vertex threshold (default 50), Approximate beyond.
//
// All counters reject nil or vertex-free graphs with ErrInvalidGraph before
// doing any work, and return a fresh Histogram per call.
package clique
