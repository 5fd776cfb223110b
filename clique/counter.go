// SPDX-License-Identifier: MIT
// Package: cliquekernel/clique
//
// counter.go — Counter contract, sentinels and admission checks.

package clique

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquekernel/core"
)

var (
	// ErrInvalidGraph is returned for nil or vertex-free graphs, before any counting work.
	ErrInvalidGraph = errors.New("clique: graph is nil or empty")

	// ErrInvalidK is returned for clique sizes below 1.
	ErrInvalidK = errors.New("clique: clique size must be >= 1")
)

// Counter counts cliques of a dense graph.
// Implementations must be safe for concurrent use on distinct or shared
// read-only graphs.
type Counter interface {
	// CountBySize returns the number of cliques of every size ≥ 1.
	CountBySize(ctx context.Context, g *core.Indexed) (Histogram, error)
	// CountK returns the number of cliques of exactly k vertices.
	CountK(ctx context.Context, g *core.Indexed, k int) (int64, error)
}

// Strategy names used by FromConfig and metrics labels.
const (
	StrategyExact       = "exact"
	StrategyApproximate = "approximate"
	StrategyAuto        = "auto"
)

func admit(g *core.Indexed) error {
	if g == nil || g.VertexCount() == 0 {
		return ErrInvalidGraph
	}

	return nil
}

func admitK(g *core.Indexed, k int) error {
	if err := admit(g); err != nil {
		return err
	}
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrInvalidK)
	}

	return nil
}
