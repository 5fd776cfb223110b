// SPDX-License-Identifier: MIT

// Package metrics holds the process-wide prometheus collectors and the otel
// tracer shared by the counting, engine, embedding and kernel packages.
// Collectors register on the default registry; expose them with promhttp in
// the embedding application.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics definitions
var (
	CountingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cliquekernel_counting_seconds",
		Help:    "Time spent counting cliques of one graph.",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	EngineInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliquekernel_engine_invocations_total",
		Help: "Total number of external counting engine invocations.",
	}, []string{"tool", "outcome"})

	EngineJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cliquekernel_engine_job_seconds",
		Help:    "Wall time of one external counting job, files to cleanup.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})

	ActiveEngineJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cliquekernel_engine_active_jobs",
		Help: "Current number of external counting jobs holding a working directory.",
	})

	KernelPairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliquekernel_kernel_pairs_total",
		Help: "Total number of kernel pair evaluations.",
	}, []string{"outcome"})

	EmbeddingOverflowTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliquekernel_embedding_overflow_total",
		Help: "Total number of cliques folded into the embedding overflow bucket.",
	})
)

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}

	return OutcomeOK
}

const tracerName = "github.com/katalvlaran/cliquekernel"

// StartSpan starts a span on the global tracer provider.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err (if any) on span and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
