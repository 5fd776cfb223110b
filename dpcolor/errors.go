// SPDX-License-Identifier: MIT
// Package dpcolor: sentinel error set. Callers match with errors.Is; process
// failures carry the tool name, exit code and a stderr tail in the wrapping text.

package dpcolor

import "errors"

var (
	// ErrToolMissing is returned when an engine executable is absent or not executable.
	ErrToolMissing = errors.New("dpcolor: engine tool missing")

	// ErrToolFailed is returned when an engine executable exits non-zero,
	// is killed, or outlives its context.
	ErrToolFailed = errors.New("dpcolor: engine tool failed")

	// ErrProtocolParse is returned when the sampler output has no parsable count field.
	ErrProtocolParse = errors.New("dpcolor: cannot parse engine output")

	// ErrIO is returned when the job directory cannot be written, renamed or removed.
	ErrIO = errors.New("dpcolor: job file i/o failed")

	// ErrJobInUse is returned when a job id is already held by an open job.
	ErrJobInUse = errors.New("dpcolor: job id already in use")

	// ErrInvalidJobID is returned for ids outside [A-Za-z0-9_-].
	ErrInvalidJobID = errors.New("dpcolor: invalid job id")

	// ErrInvalidK is returned for clique sizes the engine does not count (k < 3).
	ErrInvalidK = errors.New("dpcolor: clique size must be >= 3")

	// ErrEmptyGraph is returned for nil or vertex-free inputs.
	ErrEmptyGraph = errors.New("dpcolor: graph is nil or empty")

	// ErrJobClosed is returned when a closed job is queried.
	ErrJobClosed = errors.New("dpcolor: job is closed")
)
