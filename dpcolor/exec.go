// SPDX-License-Identifier: MIT
// Package: cliquekernel/dpcolor
//
// exec.go — single tool invocation: timeout, output capture, error classification.

package dpcolor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cliquekernel/metrics"
)

// stderrTail bounds how much tool stderr is quoted in ErrToolFailed messages.
const stderrTail = 512

// run executes BinDir/tool with args and returns its stdout.
//
// Implementation:
//   - Stage 1: derive a per-invocation deadline from Config.Timeout.
//   - Stage 2: run with separate stdout/stderr buffers.
//   - Stage 3: classify failures (missing binary, non-zero exit, cancellation).
//
// Errors:
//   - ErrToolMissing: the executable could not be started (not found / not permitted).
//   - ErrToolFailed: non-zero exit, signal, or ctx/timeout expiry (ctx error joined).
func (c *Client) run(ctx context.Context, tool string, args ...string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	path := c.cfg.toolPath(tool)
	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	err = classify(ctx, tool, err, stderr.String())

	metrics.EngineInvocationsTotal.WithLabelValues(tool, metrics.Outcome(err)).Inc()
	c.log.Debug("dpcolor tool finished",
		zap.String("tool", tool),
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		return "", err
	}

	return stdout.String(), nil
}

func classify(ctx context.Context, tool string, err error, stderr string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w: %w", tool, ErrToolMissing, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w: %w", tool, ErrToolFailed, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s: %w: exit code %d: %s", tool, ErrToolFailed, exitErr.ExitCode(), tail(stderr))
	}

	return fmt.Errorf("%s: %w: %w", tool, ErrToolFailed, err)
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		s = "..." + s[len(s)-stderrTail:]
	}

	return s
}

// Check verifies that every engine tool exists and is an executable regular file.
// It is called before any job files are written.
func (c *Client) Check() error {
	var errs []error
	for _, tool := range c.cfg.tools() {
		path := c.cfg.toolPath(tool)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w: %w", path, ErrToolMissing, err))
		case info.IsDir() || info.Mode().Perm()&0o111 == 0:
			errs = append(errs, fmt.Errorf("%s: %w: not an executable file", path, ErrToolMissing))
		}
	}

	return errors.Join(errs...)
}
