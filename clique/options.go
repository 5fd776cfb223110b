// SPDX-License-Identifier: MIT
// Package: cliquekernel/clique
//
// options.go — functional options shared by the counters.

package clique

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/logging"
)

// DefaultThreshold is the largest vertex count Auto counts exactly.
const DefaultThreshold = 50

type options struct {
	log         *zap.Logger
	skipTrivial bool
	threshold   int
}

// Option configures a counter. Options irrelevant to a counter are ignored.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop(), threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = logging.OrNop(l) }
}

// WithoutTrivialSizes makes Approximate report only the engine's sizes (≥ 3),
// leaving out sizes 1 (vertices) and 2 (edges).
func WithoutTrivialSizes() Option {
	return func(o *options) { o.skipTrivial = true }
}

// WithThreshold sets the Auto cutoff; values < 1 keep the default.
func WithThreshold(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.threshold = n
		}
	}
}
