// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquekernel/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors, and MUST emit vertices and edges in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Constructors share one ID scheme, so composing two of them merges vertices
// with equal IDs; use Disjoint to place topologies side by side.
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose parameters are known valid;
// it panics on error.
func MustBuild(cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// =============================================================================
// Topology factories (implemented in impl_*.go)
// =============================================================================
//
//	Empty(n)            n isolated vertices (n ≥ 1)
//	Path(n)             P_n (n ≥ 2)
//	Cycle(n)            C_n (n ≥ 3)
//	Star(n)             center "Center" + n-1 leaves (n ≥ 2)
//	Complete(n)         K_n (n ≥ 1)
//	CompleteBipartite(a, b)
//	RandomSparse(n, p)  Erdős–Rényi G(n, p); requires WithSeed/WithRand for 0<p<1
//	Edges(pairs...)     explicit edge list
//	Disjoint(prefix, c) run c with every vertex ID prefixed, yielding a disjoint copy
