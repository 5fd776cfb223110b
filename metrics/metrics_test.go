// SPDX-License-Identifier: MIT
package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliquekernel/metrics"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("boom")))
}

func TestCollectorsIncrement(t *testing.T) {
	before := testutil.ToFloat64(metrics.EmbeddingOverflowTotal)
	metrics.EmbeddingOverflowTotal.Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.EmbeddingOverflowTotal))

	c := metrics.EngineInvocationsTotal.WithLabelValues("run", metrics.OutcomeOK)
	before = testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestSpanHelpers(t *testing.T) {
	ctx, span := metrics.StartSpan(context.Background(), "test")
	assert.NotNil(t, ctx)
	metrics.EndSpan(span, errors.New("recorded"))
}
