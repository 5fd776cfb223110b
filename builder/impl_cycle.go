// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// impl_cycle.go — sparse ring-like constructors: Empty, Path, Cycle, Star.
//
// Contract:
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order by increasing index.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquekernel/core"
)

const (
	methodEmpty = "Empty"
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"

	minEmptyNodes = 1
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2

	// StarCenterID is the fixed ID of the hub vertex produced by Star.
	StarCenterID = "Center"
)

// Empty returns a Constructor adding n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		_, err := addVertices(g, methodEmpty, n, cfg.idFn)

		return err
	}
}

// Path returns a Constructor building the simple path P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the simple cycle C_n: i-(i+1)%n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		// For i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor building a star: the hub (StarCenterID) joined to n-1 leaves idFn(0..n-2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := cfg.centerID
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, center, err)
		}
		leaves, err := addVertices(g, methodStar, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
