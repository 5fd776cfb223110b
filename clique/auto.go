// SPDX-License-Identifier: MIT
// Package: cliquekernel/clique
//
// auto.go — size-based strategy selection and construction from configuration.

package clique

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/config"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/dpcolor"
)

// Auto counts exactly when |V| ≤ threshold and approximately otherwise.
type Auto struct {
	exact     Counter
	approx    Counter
	threshold int
}

var _ Counter = (*Auto)(nil)

// NewAuto combines two counters. WithThreshold sets the cutoff (default 50).
func NewAuto(exact, approx Counter, opts ...Option) *Auto {
	o := newOptions(opts)

	return &Auto{exact: exact, approx: approx, threshold: o.threshold}
}

func (a *Auto) pick(g *core.Indexed) Counter {
	if g != nil && g.VertexCount() > a.threshold {
		return a.approx
	}

	return a.exact
}

// CountBySize dispatches on the vertex count of g.
func (a *Auto) CountBySize(ctx context.Context, g *core.Indexed) (Histogram, error) {
	return a.pick(g).CountBySize(ctx, g)
}

// CountK dispatches on the vertex count of g.
func (a *Auto) CountK(ctx context.Context, g *core.Indexed, k int) (int64, error) {
	return a.pick(g).CountK(ctx, g, k)
}

// FromConfig builds the counter selected by cfg.Counting.Mode.
func FromConfig(cfg *config.Config, log *zap.Logger) (Counter, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := []Option{WithLogger(log), WithThreshold(cfg.Counting.Threshold)}
	if cfg.Counting.SkipTrivialSizes {
		opts = append(opts, WithoutTrivialSizes())
	}
	approx := func() Counter {
		return NewApproximate(dpcolor.New(cfg.DPColor(), dpcolor.WithLogger(log)), opts...)
	}

	switch cfg.Counting.Mode {
	case config.ModeExact:
		return NewExact(opts...), nil
	case config.ModeApproximate:
		return approx(), nil
	case config.ModeAuto:
		return NewAuto(NewExact(opts...), approx(), opts...), nil
	default:
		return nil, fmt.Errorf("clique: mode %q: %w", cfg.Counting.Mode, config.ErrInvalidConfig)
	}
}
