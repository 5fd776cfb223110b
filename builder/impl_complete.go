// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// impl_complete.go — dense constructors: Complete(n), CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; emits each unordered pair {i,j}, i<j, in lexicographic index order.
//   • CompleteBipartite: n1, n2 ≥ 1; left IDs "<L><i>", right IDs "<R><j>".
//
// Complexity:
//   • Complete: O(n) vertices + O(n²) edges.
//   • CompleteBipartite: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cliquekernel/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2} using the configured side prefixes.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addVertices(g, methodCompleteBipartite, n1, func(i int) string {
			return cfg.leftPrefix + strconv.Itoa(i)
		})
		if err != nil {
			return err
		}
		right, err := addVertices(g, methodCompleteBipartite, n2, func(j int) string {
			return cfg.rightPrefix + strconv.Itoa(j)
		})
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
