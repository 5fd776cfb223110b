// SPDX-License-Identifier: MIT

// Package cliquekernel compares graphs by counting the cliques of their
// modular product.
//
// Two graphs G and H are combined into G◇H, whose vertices are pairs (u, v)
// and whose edges join pairs that agree on adjacency in both graphs. The
// kernel value k(G, H) is the number of cliques in G◇H: every common induced
// subgraph of G and H shows up as one clique.
//
// Everything is organized under these subpackages:
//
//	core/      — string-keyed Graph plus the dense bitset Indexed form
//	builder/   — deterministic constructors (path, cycle, star, complete, random)
//	product/   — modular product construction and (u, v) ↔ index mapping
//	clique/    — exact and engine-backed clique counting, Histogram, Auto
//	dpcolor/   — client for the external DPColor sampling engine
//	kernel/    — Gram and cross kernel matrices, Fit/Transform, workers
//	embed/     — fixed-length clique-size feature vectors
//	matrix/    — Dense results, mirroring and normalization
//	config/    — TOML/YAML configuration with validation
//	logging/   — zap logger construction
//	metrics/   — Prometheus collectors and OpenTelemetry spans
//
// Quick start:
//
//	graphs := []*core.Graph{
//		builder.MustBuild(builder.Complete(3)),
//		builder.MustBuild(builder.Path(3)),
//	}
//	k, err := kernel.New(clique.NewExact(), kernel.WithNormalize()).
//		ComputeSelf(ctx, graphs)
//
// See examples/ for a runnable program.
package cliquekernel
