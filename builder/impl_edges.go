// SPDX-License-Identifier: MIT
// Package: cliquekernel/builder
//
// impl_edges.go — explicit edge lists and disjoint composition.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquekernel/core"
)

const (
	methodEdges    = "Edges"
	methodDisjoint = "Disjoint"
)

// Edges returns a Constructor inserting each pair as an undirected edge, in order.
// Pair entries are literal vertex IDs; the ID scheme is not applied.
func Edges(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(g, methodEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Disjoint runs inner with every generated vertex ID prefixed by prefix, so that
// composing Disjoint("a", C) and Disjoint("b", C) yields two vertex-disjoint copies.
// Generated IDs, bipartite prefixes and the Star hub are all prefixed; literal
// IDs passed to Edges are not.
func Disjoint(prefix string, inner Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if inner == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodDisjoint, ErrConstructFailed)
		}
		base := cfg.idFn
		scoped := cfg
		scoped.idFn = func(i int) string { return prefix + base(i) }
		scoped.leftPrefix = prefix + cfg.leftPrefix
		scoped.rightPrefix = prefix + cfg.rightPrefix
		scoped.centerID = prefix + cfg.centerID

		return inner(g, scoped)
	}
}
