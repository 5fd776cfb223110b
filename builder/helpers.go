// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// helpers.go — shared vertex/edge emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquekernel/core"
)

// addVertices inserts idFn(0..n-1) into g and returns the IDs in index order.
// Complexity: O(n).
func addVertices(g *core.Graph, method string, n int, idFn func(int) string) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts {u, v} and wraps failures with the method tag.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
