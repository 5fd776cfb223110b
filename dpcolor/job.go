// SPDX-License-Identifier: MIT
// Package: cliquekernel/dpcolor
//
// job.go — one working directory and its lifecycle:
//
//	Idle → FilesWritten → Indexed → Queried(k)… → CleanedUp
//
// Any state may move to CleanedUp. A Job is used by one goroutine at a time.

package dpcolor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/metrics"
)

// State is the lifecycle position of a Job.
type State int

const (
	StateIdle State = iota
	StateFilesWritten
	StateIndexed
	StateQueried
	StateCleanedUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFilesWritten:
		return "files-written"
	case StateIndexed:
		return "indexed"
	case StateQueried:
		return "queried"
	case StateCleanedUp:
		return "cleaned-up"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// removeAll deletes a job directory; replaced in tests.
var removeAll = os.RemoveAll

// jobPaths are the files of one job directory.
type jobPaths struct {
	folder     string // with trailing separator, as the sampler expects
	data       string
	s          string
	tmpEdge    string
	tmpIdx     string
	tmpEdgeDeg string
	tmpIdxDeg  string
	edge       string
	idx        string
}

func newJobPaths(dataDir, id string) jobPaths {
	dir := filepath.Join(dataDir, "d"+id)

	return jobPaths{
		folder:     dir + string(os.PathSeparator),
		data:       filepath.Join(dir, "d"+id+".txt"),
		s:          filepath.Join(dir, "s.txt"),
		tmpEdge:    filepath.Join(dir, "tmpedge.bin"),
		tmpIdx:     filepath.Join(dir, "tmpidx.bin"),
		tmpEdgeDeg: filepath.Join(dir, "tmpedge.bindeg.bin"),
		tmpIdxDeg:  filepath.Join(dir, "tmpidx.bindeg.bin"),
		edge:       filepath.Join(dir, "edge.bin"),
		idx:        filepath.Join(dir, "idx.bin"),
	}
}

// Job is an open engine working directory for one graph.
type Job struct {
	client *Client
	id     string
	n      int
	paths  jobPaths
	state  State
	lastK  int
	start  time.Time
}

// ID returns the job id.
func (j *Job) ID() string { return j.id }

// Dir returns the job working directory.
func (j *Job) Dir() string { return filepath.Dir(j.paths.data) }

// State returns the current lifecycle state.
func (j *Job) State() State { return j.state }

// VertexCount returns the number of vertices of the indexed graph.
func (j *Job) VertexCount() int { return j.n }

// writeFiles materializes the edge list and the size file.
//
// Implementation:
//   - Stage 1: create the job directory.
//   - Stage 2: write "n m" then one "u v" line per edge (u < v, ascending).
//   - Stage 3: write s.txt containing n.
func (j *Job) writeFiles(x *core.Indexed) error {
	if err := os.MkdirAll(j.Dir(), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", ErrIO, j.Dir(), err)
	}
	if err := writeEdgeList(j.paths.data, x); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, j.paths.data, err)
	}
	if err := os.WriteFile(j.paths.s, []byte(strconv.Itoa(x.VertexCount())), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, j.paths.s, err)
	}
	j.state = StateFilesWritten

	return nil
}

func writeEdgeList(path string, x *core.Indexed) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = fmt.Fprintf(w, "%d %d\n", x.VertexCount(), x.EdgeCount()); err != nil {
		return err
	}
	for _, e := range x.Edges() {
		if _, err = fmt.Fprintf(w, "%d %d\n", e[0], e[1]); err != nil {
			return err
		}
	}

	return w.Flush()
}

// buildIndex runs makeCSR and changeToD, then renames the degree-ordered outputs.
func (j *Job) buildIndex(ctx context.Context) error {
	cfg := j.client.cfg
	if _, err := j.client.run(ctx, cfg.MakeCSR, j.paths.data, j.paths.tmpEdge, j.paths.tmpIdx); err != nil {
		return err
	}
	if _, err := j.client.run(ctx, cfg.ChangeToD,
		"-edge", j.paths.tmpEdge, "-idx", j.paths.tmpIdx, "-v", strconv.Itoa(j.n)); err != nil {
		return err
	}
	if err := os.Rename(j.paths.tmpEdgeDeg, j.paths.edge); err != nil {
		return fmt.Errorf("%w: rename edge index: %w", ErrIO, err)
	}
	if err := os.Rename(j.paths.tmpIdxDeg, j.paths.idx); err != nil {
		return fmt.Errorf("%w: rename offset index: %w", ErrIO, err)
	}
	j.state = StateIndexed

	return nil
}

// Count runs the sampler for cliques of size k (k ≥ 3) and returns the estimate.
// Successive queries on one job must use strictly increasing k.
//
// Errors:
//   - ErrInvalidK (k < 3, or k not above the last queried size),
//     ErrJobClosed, ErrToolFailed, ErrToolMissing, ErrProtocolParse.
func (j *Job) Count(ctx context.Context, k int) (int64, error) {
	if k < 3 {
		return 0, fmt.Errorf("Count(k=%d): %w", k, ErrInvalidK)
	}
	if j.state == StateCleanedUp {
		return 0, fmt.Errorf("Count(k=%d): job %s: %w", k, j.id, ErrJobClosed)
	}
	if j.state == StateQueried && k <= j.lastK {
		return 0, fmt.Errorf("Count(k=%d): last queried k=%d: %w", k, j.lastK, ErrInvalidK)
	}
	cfg := j.client.cfg
	out, err := j.client.run(ctx, cfg.Run,
		"-f", j.paths.folder, "-k", strconv.Itoa(k), "-N", strconv.Itoa(cfg.Samples), "-cccpath")
	if err != nil {
		return 0, err
	}
	count, err := ParseCount(out)
	if err != nil {
		return 0, fmt.Errorf("%s -k %d: %w", cfg.Run, k, err)
	}
	j.state = StateQueried
	j.lastK = k

	return count, nil
}

// Close removes the job directory and releases the job id. It is idempotent.
//
// Errors:
//   - ErrIO when the directory cannot be removed (the id is released regardless).
func (j *Job) Close() error {
	if j.state == StateCleanedUp {
		return nil
	}
	err := removeAll(j.Dir())
	j.state = StateCleanedUp
	j.client.release(j.id)
	metrics.ActiveEngineJobs.Dec()
	metrics.EngineJobDuration.Observe(time.Since(j.start).Seconds())
	if err != nil {
		j.client.log.Warn("dpcolor job cleanup failed", zap.String("job", j.id), zap.Error(err))
		return fmt.Errorf("%w: cleanup %s: %w", ErrIO, j.Dir(), err)
	}

	return nil
}

// closeInto closes j and joins any cleanup failure into *errp.
func (j *Job) closeInto(errp *error) {
	if cerr := j.Close(); cerr != nil {
		*errp = errors.Join(*errp, cerr)
	}
}

// abort closes j after a failed step and returns err joined with any cleanup failure.
func (j *Job) abort(err error) error {
	j.closeInto(&err)

	return err
}
