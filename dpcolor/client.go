// SPDX-License-Identifier: MIT
// Package: cliquekernel/dpcolor
//
// client.go — public entry points: job admission, histogram sweep, single-k query.

package dpcolor

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/logging"
	"github.com/katalvlaran/cliquekernel/metrics"
)

var jobIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Client runs engine jobs. It is safe for concurrent use; concurrent jobs
// must use distinct ids.
type Client struct {
	cfg Config
	log *zap.Logger

	mu     sync.Mutex
	active map[string]struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = logging.OrNop(l)
	}
}

// New returns a Client for cfg with zero fields defaulted.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg.withDefaults(),
		log:    zap.NewNop(),
		active: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

func (c *Client) acquire(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.active[id]; busy {
		return fmt.Errorf("job %q: %w", id, ErrJobInUse)
	}
	c.active[id] = struct{}{}

	return nil
}

func (c *Client) release(id string) {
	c.mu.Lock()
	delete(c.active, id)
	c.mu.Unlock()
}

// OpenJob admits x under jobID and prepares the engine index for it.
// An empty jobID is replaced by a fresh UUID. On error nothing is left on disk
// (cleanup failures are joined into the returned error).
//
// Implementation:
//   - Stage 1: validate graph and id, check tools, reserve the id.
//   - Stage 2: write files (Idle → FilesWritten).
//   - Stage 3: build the index (FilesWritten → Indexed).
//
// Errors:
//   - ErrEmptyGraph, ErrInvalidJobID, ErrJobInUse, ErrToolMissing, ErrToolFailed, ErrIO.
func (c *Client) OpenJob(ctx context.Context, x *core.Indexed, jobID string) (*Job, error) {
	if x == nil || x.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if jobID == "" {
		jobID = uuid.NewString()
	}
	if !jobIDPattern.MatchString(jobID) {
		return nil, fmt.Errorf("job %q: %w", jobID, ErrInvalidJobID)
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	if err := c.acquire(jobID); err != nil {
		return nil, err
	}
	metrics.ActiveEngineJobs.Inc()

	job := &Job{
		client: c,
		id:     jobID,
		n:      x.VertexCount(),
		paths:  newJobPaths(c.cfg.DataDir, jobID),
		state:  StateIdle,
		start:  time.Now(),
	}
	if err := job.writeFiles(x); err != nil {
		return nil, job.abort(err)
	}
	if err := job.buildIndex(ctx); err != nil {
		return nil, job.abort(err)
	}

	return job, nil
}

// CountBySize estimates the number of k-cliques for k = 3..n, stopping after
// the first zero estimate; that zero entry is kept. The job directory is
// removed before return on every path.
//
// Complexity: one index build plus at most n-2 sampler runs.
func (c *Client) CountBySize(ctx context.Context, x *core.Indexed, jobID string) (hist map[int]int64, err error) {
	ctx, span := metrics.StartSpan(ctx, "dpcolor.CountBySize", attribute.String("job", jobID))
	defer func() { metrics.EndSpan(span, err) }()

	job, err := c.OpenJob(ctx, x, jobID)
	if err != nil {
		return nil, err
	}
	defer job.closeInto(&err)

	hist = make(map[int]int64)
	for k := 3; k <= job.n; k++ {
		count, qerr := job.Count(ctx, k)
		if qerr != nil {
			return nil, qerr
		}
		hist[k] = count
		if count == 0 {
			break
		}
	}
	c.log.Debug("dpcolor sweep done",
		zap.String("job", job.id),
		zap.Int("vertices", job.n),
		zap.Int("sizes", len(hist)),
	)

	return hist, nil
}

// CountK estimates the number of k-cliques (k ≥ 3) with a single sampler run.
func (c *Client) CountK(ctx context.Context, x *core.Indexed, k int, jobID string) (count int64, err error) {
	if k < 3 {
		return 0, fmt.Errorf("CountK(k=%d): %w", k, ErrInvalidK)
	}
	ctx, span := metrics.StartSpan(ctx, "dpcolor.CountK",
		attribute.String("job", jobID), attribute.Int("k", k))
	defer func() { metrics.EndSpan(span, err) }()

	job, err := c.OpenJob(ctx, x, jobID)
	if err != nil {
		return 0, err
	}
	defer job.closeInto(&err)

	count, err = job.Count(ctx, k)
	if err != nil {
		return 0, err
	}

	return count, nil
}

type jobIDKey struct{}

// WithJobID returns a context carrying the job id to use for engine work done
// on behalf of ctx.
func WithJobID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, jobIDKey{}, id)
}

// JobIDFromContext returns the id stored by WithJobID, or "".
func JobIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(jobIDKey{}).(string)

	return id
}
