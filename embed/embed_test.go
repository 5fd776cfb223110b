// SPDX-License-Identifier: MIT
package embed_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cliquekernel/builder"
	"github.com/katalvlaran/cliquekernel/clique"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/embed"
	"github.com/katalvlaran/cliquekernel/metrics"
)

func TestEmbed_Layout(t *testing.T) {
	got, err := embed.Embed(clique.Histogram{1: 5, 2: 3, 7: 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, embed.Embedding{2, 5, 3, 0, 0}, got)
}

func TestEmbed_BoundaryAndSum(t *testing.T) {
	h := clique.Histogram{1: 4, 2: 6, 3: 4, 4: 1}

	got, err := embed.Embed(h, 4)
	require.NoError(t, err)
	assert.Equal(t, embed.Embedding{1, 4, 6, 4}, got, "size 4 keeps up to 3, overflows 4")

	got, err = embed.Embed(h, 5)
	require.NoError(t, err)
	assert.Equal(t, embed.Embedding{0, 4, 6, 4, 1}, got)

	got, err = embed.Embed(h, 1)
	require.NoError(t, err)
	assert.Equal(t, embed.Embedding{15}, got, "size 1 is all overflow")

	for size := 1; size <= 6; size++ {
		e, err := embed.Embed(h, size)
		require.NoError(t, err)
		var sum float64
		for _, v := range e {
			sum += v
		}
		assert.EqualValues(t, h.Total(), sum)
	}
}

func TestEmbed_Idempotent(t *testing.T) {
	h := clique.Histogram{1: 3, 2: 2, 3: 1}
	a, err := embed.Embed(h, 3)
	require.NoError(t, err)
	b, err := embed.Embed(h, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, clique.Histogram{1: 3, 2: 2, 3: 1}, h, "input untouched")
}

func TestEmbed_InvalidSize(t *testing.T) {
	_, err := embed.Embed(clique.Histogram{1: 1}, 0)
	assert.ErrorIs(t, err, embed.ErrInvalidSize)
}

func TestEmbed_OverflowWarns(t *testing.T) {
	obsCore, logs := observer.New(zap.WarnLevel)
	before := testutil.ToFloat64(metrics.EmbeddingOverflowTotal)

	_, err := embed.Embed(clique.Histogram{1: 5, 9: 3}, 3, embed.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.EqualValues(t, 3, entry.ContextMap()["size"])
	assert.EqualValues(t, 9, entry.ContextMap()["max_clique_size"])
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.EmbeddingOverflowTotal), before+3)

	_, err = embed.Embed(clique.Histogram{1: 5}, 3, embed.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len(), "no overflow, no warning")
}

func TestGraphs(t *testing.T) {
	graphs := []*core.Graph{
		builder.MustBuild(builder.Complete(3)),
		builder.MustBuild(builder.Path(3)),
	}
	m, err := embed.Graphs(context.Background(), clique.NewExact(), graphs, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	row0, _ := m.Row(0)
	assert.Equal(t, []float64{1, 3, 3}, row0)
	row1, _ := m.Row(1)
	assert.Equal(t, []float64{0, 3, 2}, row1)

	_, err = embed.Graphs(context.Background(), clique.NewExact(), []*core.Graph{graphs[0], core.NewGraph()}, 3)
	assert.ErrorIs(t, err, embed.ErrInvalidGraph)
	assert.ErrorContains(t, err, "graph 1")

	_, err = embed.Graphs(context.Background(), clique.NewExact(), graphs, 0)
	assert.ErrorIs(t, err, embed.ErrInvalidSize)
}
