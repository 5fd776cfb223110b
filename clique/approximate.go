// SPDX-License-Identifier: MIT
// Package: cliquekernel/clique
//
// approximate.go — counting through the external sampling engine.

package clique

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/dpcolor"
	"github.com/katalvlaran/cliquekernel/metrics"
)

// Engine is the external k-clique estimator used by Approximate.
// *dpcolor.Client implements it.
type Engine interface {
	CountBySize(ctx context.Context, g *core.Indexed, jobID string) (map[int]int64, error)
	CountK(ctx context.Context, g *core.Indexed, k int, jobID string) (int64, error)
}

var _ Engine = (*dpcolor.Client)(nil)

// Approximate delegates sizes ≥ 3 to an Engine and answers sizes 1 and 2 directly.
// The engine job id is taken from the context (dpcolor.WithJobID); when absent
// the engine generates one.
type Approximate struct {
	engine      Engine
	log         *zap.Logger
	skipTrivial bool
}

var _ Counter = (*Approximate)(nil)

// NewApproximate returns an engine-backed counter.
func NewApproximate(engine Engine, opts ...Option) *Approximate {
	o := newOptions(opts)

	return &Approximate{engine: engine, log: o.log, skipTrivial: o.skipTrivial}
}

// CountBySize returns the engine's estimates for k = 3.. (up to and including
// the first zero), merged with the exact counts for sizes 1 (|V|) and 2 (|E|,
// when non-zero) unless WithoutTrivialSizes was given.
// Graphs with fewer than 3 vertices never reach the engine.
func (a *Approximate) CountBySize(ctx context.Context, g *core.Indexed) (Histogram, error) {
	if err := admit(g); err != nil {
		return nil, err
	}
	start := time.Now()
	h := make(Histogram)
	if g.VertexCount() >= 3 {
		est, err := a.engine.CountBySize(ctx, g, dpcolor.JobIDFromContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("clique: approximate: %w", err)
		}
		for k, c := range est {
			h[k] = c
		}
	}
	if !a.skipTrivial {
		h[1] = int64(g.VertexCount())
		if m := g.EdgeCount(); m > 0 {
			h[2] = int64(m)
		}
	}
	metrics.CountingDuration.WithLabelValues(StrategyApproximate).Observe(time.Since(start).Seconds())
	a.log.Debug("approximate count done",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("sizes", len(h)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return h, nil
}

// CountK answers k = 1, 2 directly and k > |V| with 0; other sizes run one engine query.
func (a *Approximate) CountK(ctx context.Context, g *core.Indexed, k int) (int64, error) {
	if err := admitK(g, k); err != nil {
		return 0, err
	}
	switch {
	case k == 1:
		return int64(g.VertexCount()), nil
	case k == 2:
		return int64(g.EdgeCount()), nil
	case k > g.VertexCount():
		return 0, nil
	}
	start := time.Now()
	c, err := a.engine.CountK(ctx, g, k, dpcolor.JobIDFromContext(ctx))
	metrics.CountingDuration.WithLabelValues(StrategyApproximate).Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, fmt.Errorf("clique: approximate k=%d: %w", k, err)
	}

	return c, nil
}
