// SPDX-License-Identifier: MIT
// Package: cliquekernel/kernel
//
// options.go — Engine options and construction from configuration.

package kernel

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/clique"
	"github.com/katalvlaran/cliquekernel/config"
	"github.com/katalvlaran/cliquekernel/logging"
)

// Option configures an Engine.
type Option func(*Engine)

// WithCliqueSize makes a pair's value the number of k-cliques of its product
// instead of the total over all sizes. k ≤ 0 restores the total.
func WithCliqueSize(k int) Option {
	return func(e *Engine) {
		if k < 0 {
			k = 0
		}
		e.cliqueSize = k
	}
}

// WithNormalize divides each value by sqrt(K(a,a)·K(b,b)).
func WithNormalize() Option {
	return func(e *Engine) { e.normalize = true }
}

// WithWorkers sets the number of pairs evaluated concurrently; values < 1 mean 1.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = logging.OrNop(l) }
}

// FromConfig builds the counter and the engine described by cfg.
func FromConfig(cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	counter, err := clique.FromConfig(cfg, log)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithCliqueSize(cfg.Kernel.CliqueSize),
		WithWorkers(cfg.Kernel.Workers),
		WithLogger(log),
	}
	if cfg.Kernel.Normalize {
		opts = append(opts, WithNormalize())
	}

	return New(counter, opts...), nil
}
