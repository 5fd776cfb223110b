// SPDX-License-Identifier: MIT

// Package embed turns clique-size histograms into fixed-length feature vectors.
//
// Layout of an Embedding of length size:
//   - index k (1 ≤ k ≤ size-1): number of cliques with exactly k vertices;
//   - index 0: overflow bucket, all cliques with more than size-1 vertices.
//
// The entries always sum to the histogram total. Overflow is reported through
// a warning log and a counter, never as an error.
package embed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/clique"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/logging"
	"github.com/katalvlaran/cliquekernel/matrix"
	"github.com/katalvlaran/cliquekernel/metrics"
)

var (
	// ErrInvalidSize is returned for embedding sizes below 1.
	ErrInvalidSize = errors.New("embed: size must be >= 1")

	// ErrInvalidGraph is returned by Graphs for a nil or empty graph; the
	// message carries the offending index.
	ErrInvalidGraph = errors.New("embed: invalid graph")
)

// Embedding is a fixed-length clique feature vector; see the package doc for the layout.
type Embedding []float64

// Option configures Embed and Graphs.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used for overflow warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = logging.OrNop(l) }
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Embed maps h onto a vector of length size.
//
// Implementation:
//   - Stage 1: validate size (ErrInvalidSize).
//   - Stage 2: route each size k to index k when k ≤ size-1, else to index 0.
//   - Stage 3: warn once (and count) when the overflow bucket is non-zero.
//
// Complexity: O(|h| + size).
func Embed(h clique.Histogram, size int, opts ...Option) (Embedding, error) {
	if size < 1 {
		return nil, fmt.Errorf("Embed(size=%d): %w", size, ErrInvalidSize)
	}
	o := newOptions(opts)

	out := make(Embedding, size)
	for k, c := range h {
		if k > size-1 || k < 1 {
			out[0] += float64(c)
			continue
		}
		out[k] += float64(c)
	}
	if out[0] > 0 {
		metrics.EmbeddingOverflowTotal.Add(out[0])
		o.log.Warn("clique sizes exceed embedding size; folded into overflow bucket",
			zap.Int("size", size),
			zap.Int("max_clique_size", h.MaxSize()),
			zap.Float64("overflow", out[0]),
		)
	}

	return out, nil
}

// Graphs counts the cliques of each graph with counter and stacks their
// embeddings as the rows of a len(graphs)×size matrix.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidGraph (with index), counter errors (with index).
func Graphs(ctx context.Context, counter clique.Counter, graphs []*core.Graph, size int, opts ...Option) (*matrix.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("Graphs(size=%d): %w", size, ErrInvalidSize)
	}
	if len(graphs) == 0 {
		return nil, fmt.Errorf("Graphs: no graphs: %w", matrix.ErrInvalidDimensions)
	}
	for i, g := range graphs {
		if err := core.Validate(g); err != nil {
			return nil, fmt.Errorf("%w: graph %d: %w", ErrInvalidGraph, i, err)
		}
	}

	out, err := matrix.NewDense(len(graphs), size)
	if err != nil {
		return nil, err
	}
	for i, g := range graphs {
		x, _, err := core.Relabel(g)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", i, err)
		}
		h, err := counter.CountBySize(ctx, x)
		if err != nil {
			return nil, fmt.Errorf("graph %d: %w", i, err)
		}
		row, err := Embed(h, size, opts...)
		if err != nil {
			return nil, err
		}
		for j, v := range row {
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
