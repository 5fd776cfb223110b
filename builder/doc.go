// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options graph generators
// for core.Graph: fixtures for tests, examples and benchmarks of the product,
// clique counting and kernel packages.
//
// Components:
//
//   - BuildGraph(bopts, cons...): one orchestrator applying Constructors in order.
//   - Constructors: Empty, Path, Cycle, Star, Complete, CompleteBipartite,
//     RandomSparse, Edges, Disjoint.
//   - Options: WithIDScheme, WithSymbolIDs, WithPaddedIDs, WithSeed, WithRand,
//     WithPartitionPrefix.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Invalid parameters surface as sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed);
//     only option constructors panic, on nil arguments.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		builder.Disjoint("a", builder.Cycle(3)),
//		builder.Disjoint("b", builder.Cycle(3)),
//	)
//	// g: two vertex-disjoint triangles, IDs a0..a2 and b0..b2.
package builder
