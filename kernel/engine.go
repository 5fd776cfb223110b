// SPDX-License-Identifier: MIT

// Package kernel computes clique-count graph kernel matrices.
//
// The kernel value of two graphs is the number of cliques (of all sizes, or of
// one fixed size) in their modular product. ComputeSelf fills a symmetric
// Gram matrix from its upper triangle; ComputeCross fills a full
// targets×basis grid. Fit/Transform split the two for train/predict use,
// caching the basis self-kernels.
//
// Pairs are independent units of work run on a bounded errgroup; each cell is
// written by exactly one pair, and mirroring/normalization happen after all
// pairs finish. The first failing pair cancels the rest.
package kernel

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/cliquekernel/clique"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/dpcolor"
	"github.com/katalvlaran/cliquekernel/matrix"
	"github.com/katalvlaran/cliquekernel/metrics"
	"github.com/katalvlaran/cliquekernel/product"
)

var (
	// ErrInvalidGraph reports an input graph that fails admission; the message
	// names the collection and index. It also matches clique.ErrInvalidGraph.
	ErrInvalidGraph = errors.New("kernel: invalid input graph")

	// ErrNoGraphs is returned for an empty input collection.
	ErrNoGraphs = errors.New("kernel: no input graphs")

	// ErrNotFitted is returned by Transform before a successful Fit.
	ErrNotFitted = errors.New("kernel: engine is not fitted")
)

// Engine evaluates kernel matrices with a clique.Counter.
// It is safe for concurrent use; Fit replaces the fitted basis atomically.
// Only the fitted basis self-kernels are kept between calls (keyed by graph
// pointer), so a fitted basis must not be mutated while the Engine holds it.
type Engine struct {
	counter    clique.Counter
	cliqueSize int
	normalize  bool
	workers    int
	log        *zap.Logger

	// fitted basis self-kernels, keyed by graph pointer
	selfMu    sync.RWMutex
	selfCache map[*core.Graph]float64
	selfGroup singleflight.Group

	fitMu sync.RWMutex
	fit   *fitted
}

type fitted struct {
	basis []*core.Graph
	diag  []float64
}

// New returns an Engine using counter for every product graph.
func New(counter clique.Counter, opts ...Option) *Engine {
	e := &Engine{
		counter:   counter,
		workers:   1,
		log:       zap.NewNop(),
		selfCache: make(map[*core.Graph]float64),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// validate checks every graph before any pair is evaluated.
func validate(kind string, graphs []*core.Graph) error {
	if len(graphs) == 0 {
		return fmt.Errorf("%s: %w", kind, ErrNoGraphs)
	}
	for i, g := range graphs {
		if err := core.Validate(g); err != nil {
			return fmt.Errorf("%w: %s[%d]: %w: %w", ErrInvalidGraph, kind, i, clique.ErrInvalidGraph, err)
		}
	}

	return nil
}

// pairValue counts the cliques of a ◇ b under job id jobID.
//
// Implementation:
//   - Stage 1: build the modular product on dense IDs.
//   - Stage 2: CountK(cliqueSize) or the CountBySize total.
//
// Complexity: product build O(|V(a)|²·|V(b)|²) plus the counter's cost.
func (e *Engine) pairValue(ctx context.Context, a, b *core.Graph, jobID string) (v float64, err error) {
	defer func() { metrics.KernelPairsTotal.WithLabelValues(metrics.Outcome(err)).Inc() }()

	p, err := product.Build(a, b)
	if err != nil {
		return 0, err
	}
	ctx = dpcolor.WithJobID(ctx, jobID)
	if e.cliqueSize > 0 {
		c, cerr := e.counter.CountK(ctx, p.Indexed(), e.cliqueSize)
		if cerr != nil {
			return 0, cerr
		}

		return float64(c), nil
	}
	h, err := e.counter.CountBySize(ctx, p.Indexed())
	if err != nil {
		return 0, err
	}

	return float64(h.Total()), nil
}

// cell is one scheduled evaluation.
type cell struct {
	row, col int
	a, b     *core.Graph
}

// fill evaluates cells on a bounded errgroup, writing each result into out.
// The first error cancels outstanding work and is returned with the cell coordinates.
func (e *Engine) fill(ctx context.Context, runID string, cells []cell, out *matrix.Dense) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, c := range cells {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobID := runID + "-" + strconv.Itoa(c.row) + "-" + strconv.Itoa(c.col)
			v, err := e.pairValue(gctx, c.a, c.b, jobID)
			if err != nil {
				return fmt.Errorf("kernel: pair (%d,%d): %w", c.row, c.col, err)
			}

			return out.Set(c.row, c.col, v)
		})
	}

	return g.Wait()
}

// ComputeSelf returns the n×n matrix K[i,j] = k(graphs[i], graphs[j]).
//
// Implementation:
//   - Stage 1: validate all graphs (ErrInvalidGraph with index).
//   - Stage 2: evaluate the n(n+1)/2 upper-triangle pairs, diagonal included.
//   - Stage 3: mirror the strict upper triangle into the lower one.
//   - Stage 4: optionally normalize by the diagonal.
//
// Complexity: n(n+1)/2 pair evaluations.
func (e *Engine) ComputeSelf(ctx context.Context, graphs []*core.Graph) (out *matrix.Dense, err error) {
	if err = validate("graphs", graphs); err != nil {
		return nil, err
	}
	n := len(graphs)
	ctx, span := metrics.StartSpan(ctx, "kernel.ComputeSelf", attribute.Int("graphs", n))
	defer func() { metrics.EndSpan(span, err) }()

	raw, diag, err := e.computeSelfRaw(ctx, graphs)
	if err != nil {
		return nil, err
	}
	if e.normalize {
		return matrix.NormalizeCross(raw, diag, diag)
	}

	return raw, nil
}

func (e *Engine) computeSelfRaw(ctx context.Context, graphs []*core.Graph) (*matrix.Dense, []float64, error) {
	n := len(graphs)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	cells := make([]cell, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cells = append(cells, cell{row: i, col: j, a: graphs[i], b: graphs[j]})
		}
	}

	start := time.Now()
	if err = e.fill(ctx, uuid.NewString(), cells, out); err != nil {
		return nil, nil, err
	}
	if err = matrix.MirrorUpper(out); err != nil {
		return nil, nil, err
	}
	diag, err := matrix.Diagonal(out)
	if err != nil {
		return nil, nil, err
	}
	e.log.Info("kernel self matrix computed",
		zap.Int("graphs", n),
		zap.Int("pairs", len(cells)),
		zap.Int("workers", e.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, diag, nil
}

// ComputeCross returns the |targets|×|basis| grid K[i,j] = k(targets[i], basis[j]).
// With normalization, self-kernels of both sides are computed (once per graph).
func (e *Engine) ComputeCross(ctx context.Context, targets, basis []*core.Graph) (out *matrix.Dense, err error) {
	if err = validate("targets", targets); err != nil {
		return nil, err
	}
	if err = validate("basis", basis); err != nil {
		return nil, err
	}
	ctx, span := metrics.StartSpan(ctx, "kernel.ComputeCross",
		attribute.Int("targets", len(targets)), attribute.Int("basis", len(basis)))
	defer func() { metrics.EndSpan(span, err) }()

	raw, err := e.computeCrossRaw(ctx, targets, basis)
	if err != nil {
		return nil, err
	}
	if !e.normalize {
		return raw, nil
	}
	rowDiag, err := e.selfValues(ctx, targets)
	if err != nil {
		return nil, err
	}
	colDiag, err := e.selfValues(ctx, basis)
	if err != nil {
		return nil, err
	}

	return matrix.NormalizeCross(raw, rowDiag, colDiag)
}

func (e *Engine) computeCrossRaw(ctx context.Context, targets, basis []*core.Graph) (*matrix.Dense, error) {
	out, err := matrix.NewDense(len(targets), len(basis))
	if err != nil {
		return nil, err
	}
	cells := make([]cell, 0, len(targets)*len(basis))
	for i, t := range targets {
		for j, b := range basis {
			cells = append(cells, cell{row: i, col: j, a: t, b: b})
		}
	}
	start := time.Now()
	if err = e.fill(ctx, uuid.NewString(), cells, out); err != nil {
		return nil, err
	}
	e.log.Info("kernel cross matrix computed",
		zap.Int("targets", len(targets)),
		zap.Int("basis", len(basis)),
		zap.Int("workers", e.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// Fit computes and returns the self matrix of basis (normalized if configured)
// and keeps basis and its self-kernels for Transform.
func (e *Engine) Fit(ctx context.Context, basis []*core.Graph) (*matrix.Dense, error) {
	if err := validate("basis", basis); err != nil {
		return nil, err
	}
	raw, diag, err := e.computeSelfRaw(ctx, basis)
	if err != nil {
		return nil, err
	}

	e.fitMu.Lock()
	e.fit = &fitted{basis: append([]*core.Graph(nil), basis...), diag: diag}
	e.fitMu.Unlock()
	if e.normalize {
		e.remember(basis, diag)
	}

	if e.normalize {
		return matrix.NormalizeCross(raw, diag, diag)
	}

	return raw, nil
}

// Transform returns the cross matrix of targets against the fitted basis,
// reusing the cached basis self-kernels for normalization.
func (e *Engine) Transform(ctx context.Context, targets []*core.Graph) (*matrix.Dense, error) {
	e.fitMu.RLock()
	fit := e.fit
	e.fitMu.RUnlock()
	if fit == nil {
		return nil, ErrNotFitted
	}
	if err := validate("targets", targets); err != nil {
		return nil, err
	}

	raw, err := e.computeCrossRaw(ctx, targets, fit.basis)
	if err != nil {
		return nil, err
	}
	if !e.normalize {
		return raw, nil
	}
	rowDiag, err := e.selfValues(ctx, targets)
	if err != nil {
		return nil, err
	}

	return matrix.NormalizeCross(raw, rowDiag, fit.diag)
}

// remember replaces the self-kernel memo with the diagonal of a fitted basis.
func (e *Engine) remember(graphs []*core.Graph, diag []float64) {
	cache := make(map[*core.Graph]float64, len(graphs))
	for i, g := range graphs {
		cache[g] = diag[i]
	}
	e.selfMu.Lock()
	e.selfCache = cache
	e.selfMu.Unlock()
}

// selfValues returns k(g, g) for every graph. Repeated pointers are evaluated
// once per call and concurrent callers share in-flight evaluations; results
// outside the fitted basis are not retained.
func (e *Engine) selfValues(ctx context.Context, graphs []*core.Graph) ([]float64, error) {
	slots := make(map[*core.Graph][]int, len(graphs))
	distinct := make([]*core.Graph, 0, len(graphs))
	for i, g := range graphs {
		if _, ok := slots[g]; !ok {
			distinct = append(distinct, g)
		}
		slots[g] = append(slots[g], i)
	}

	out := make([]float64, len(graphs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	runID := uuid.NewString()
	for n, graph := range distinct {
		n, graph, idx := n, graph, slots[graph]
		eg.Go(func() error {
			v, err := e.selfValue(gctx, graph, runID+"-s"+strconv.Itoa(n))
			if err != nil {
				return fmt.Errorf("kernel: self (%d): %w", idx[0], err)
			}
			for _, i := range idx {
				out[i] = v
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Engine) selfValue(ctx context.Context, g *core.Graph, jobID string) (float64, error) {
	e.selfMu.RLock()
	v, ok := e.selfCache[g]
	e.selfMu.RUnlock()
	if ok {
		return v, nil
	}

	key := fmt.Sprintf("%p", g)
	res, err, _ := e.selfGroup.Do(key, func() (interface{}, error) {
		return e.pairValue(ctx, g, g, jobID)
	})
	if err != nil {
		return 0, err
	}

	return res.(float64), nil
}
