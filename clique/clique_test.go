// SPDX-License-Identifier: MIT
package clique_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquekernel/builder"
	"github.com/katalvlaran/cliquekernel/clique"
	"github.com/katalvlaran/cliquekernel/config"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/dpcolor"
	"github.com/katalvlaran/cliquekernel/dpcolor/dpcolortest"
	"github.com/katalvlaran/cliquekernel/product"
)

func TestMain(m *testing.M) {
	dpcolortest.RunIfTool()
	os.Exit(m.Run())
}

func indexed(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Indexed {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	x, _, err := core.Relabel(g)
	require.NoError(t, err)

	return x
}

func binomial(n, k int) int64 {
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}

	return r
}

func TestExact_CompleteGraphs(t *testing.T) {
	ctx := context.Background()
	ex := clique.NewExact()
	for n := 1; n <= 8; n++ {
		h, err := ex.CountBySize(ctx, indexed(t, nil, builder.Complete(n)))
		require.NoError(t, err)
		require.Len(t, h, n)
		for k := 1; k <= n; k++ {
			assert.Equal(t, binomial(n, k), h.Count(k), "K%d size %d", n, k)
			c, err := ex.CountK(ctx, indexed(t, nil, builder.Complete(n)), k)
			require.NoError(t, err)
			assert.Equal(t, binomial(n, k), c)
		}
		assert.Equal(t, int64(1)<<n-1, h.Total())
	}
}

func TestExact_EdgeCases(t *testing.T) {
	ctx := context.Background()
	ex := clique.NewExact()

	h, err := ex.CountBySize(ctx, indexed(t, nil, builder.Empty(4)))
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{1: 4}, h)

	h, err = ex.CountBySize(ctx, indexed(t, nil, builder.Empty(1)))
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{1: 1}, h)

	h, err = ex.CountBySize(ctx, indexed(t, nil, builder.Cycle(5)))
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{1: 5, 2: 5}, h)

	c, err := ex.CountK(ctx, indexed(t, nil, builder.Cycle(5)), 9)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestExact_ModularProductOfTriangles(t *testing.T) {
	tri := builder.MustBuild(builder.Complete(3))
	p, err := product.Build(tri, tri)
	require.NoError(t, err)

	h, err := clique.NewExact().CountBySize(context.Background(), p.Indexed())
	require.NoError(t, err)
	// Triangles of K3◇K3 are the 3! bijections between the two vertex sets.
	assert.Equal(t, clique.Histogram{1: 9, 2: 18, 3: 6}, h)
	assert.EqualValues(t, 33, h.Total())
}

func TestExact_MatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	ex := clique.NewExact()
	for seed := int64(1); seed <= 8; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			x := indexed(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.55))
			h, err := ex.CountBySize(ctx, x)
			require.NoError(t, err)
			for k := 1; k <= 12; k++ {
				want := dpcolortest.CountCliques(x.VertexCount(), x.Edges(), k)
				assert.Equal(t, want, h.Count(k), "size %d", k)
				got, err := ex.CountK(ctx, x, k)
				require.NoError(t, err)
				assert.Equal(t, want, got, "CountK(%d)", k)
			}
		})
	}
}

func TestExact_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// K20 has ~10^6 cliques, far past the first cancellation check.
	_, err := clique.NewExact().CountBySize(ctx, indexed(t, nil, builder.Complete(20)))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = clique.NewExact().CountK(ctx, indexed(t, nil, builder.Complete(20)), 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdmission(t *testing.T) {
	ctx := context.Background()
	empty, err := core.NewIndexed(0)
	require.NoError(t, err)

	eng := dpcolortest.Install(t, dpcolortest.ModeOK)
	counters := map[string]clique.Counter{
		"exact":       clique.NewExact(),
		"approximate": clique.NewApproximate(dpcolor.New(eng.Config())),
	}
	for name, c := range counters {
		t.Run(name, func(t *testing.T) {
			_, err := c.CountBySize(ctx, nil)
			assert.ErrorIs(t, err, clique.ErrInvalidGraph)
			_, err = c.CountBySize(ctx, empty)
			assert.ErrorIs(t, err, clique.ErrInvalidGraph)
			_, err = c.CountK(ctx, indexed(t, nil, builder.Complete(3)), 0)
			assert.ErrorIs(t, err, clique.ErrInvalidK)
		})
	}
	assert.Empty(t, eng.Calls(t), "no engine invocation for invalid input")
}

func TestApproximate_MatchesExact(t *testing.T) {
	ctx := context.Background()
	eng := dpcolortest.Install(t, dpcolortest.ModeOK)
	approx := clique.NewApproximate(dpcolor.New(eng.Config()))
	ex := clique.NewExact()

	for _, cons := range []builder.Constructor{
		builder.Complete(5),
		builder.Cycle(6),
		builder.CompleteBipartite(2, 3),
	} {
		x := indexed(t, nil, cons)
		want, err := ex.CountBySize(ctx, x)
		require.NoError(t, err)
		got, err := approx.CountBySize(ctx, x)
		require.NoError(t, err)

		// The engine reports the terminating zero size; drop it before comparing.
		for k, c := range got {
			if c == 0 {
				delete(got, k)
			}
		}
		assert.Equal(t, want, got)
	}
	assert.Empty(t, eng.Leftovers(t))
}

func TestApproximate_TrivialSizes(t *testing.T) {
	ctx := context.Background()
	eng := dpcolortest.Install(t, dpcolortest.ModeOK)
	x := indexed(t, nil, builder.Complete(4))

	h, err := clique.NewApproximate(dpcolor.New(eng.Config())).CountBySize(ctx, x)
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{1: 4, 2: 6, 3: 4, 4: 1}, h)

	h, err = clique.NewApproximate(dpcolor.New(eng.Config()), clique.WithoutTrivialSizes()).CountBySize(ctx, x)
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{3: 4, 4: 1}, h)

	// Fewer than three vertices: answered without the engine.
	before := len(eng.Calls(t))
	h, err = clique.NewApproximate(dpcolor.New(eng.Config())).CountBySize(ctx, indexed(t, nil, builder.Path(2)))
	require.NoError(t, err)
	assert.Equal(t, clique.Histogram{1: 2, 2: 1}, h)
	assert.Len(t, eng.Calls(t), before)
}

func TestApproximate_CountKAndJobID(t *testing.T) {
	eng := dpcolortest.Install(t, dpcolortest.ModeOK)
	approx := clique.NewApproximate(dpcolor.New(eng.Config()))
	x := indexed(t, nil, builder.Complete(5))
	ctx := dpcolor.WithJobID(context.Background(), "pair-0-1")

	for k, want := range map[int]int64{1: 5, 2: 10, 3: 10, 6: 0} {
		got, err := approx.CountK(ctx, x, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)
	}
	calls := eng.Calls(t)
	require.Len(t, calls, 3, "only k=3 reaches the engine")
	assert.Contains(t, calls[0], "dpair-0-1.txt")
}

func TestApproximate_EngineFailure(t *testing.T) {
	eng := dpcolortest.Install(t, dpcolortest.ModeFailRun)
	approx := clique.NewApproximate(dpcolor.New(eng.Config()))

	_, err := approx.CountBySize(context.Background(), indexed(t, nil, builder.Complete(4)))
	assert.ErrorIs(t, err, dpcolor.ErrToolFailed)
	assert.Empty(t, eng.Leftovers(t))
}

// stubCounter records which graphs it was asked about.
type stubCounter struct {
	name  string
	calls int
}

func (s *stubCounter) CountBySize(context.Context, *core.Indexed) (clique.Histogram, error) {
	s.calls++
	return clique.Histogram{0: 0}, nil
}

func (s *stubCounter) CountK(context.Context, *core.Indexed, int) (int64, error) {
	s.calls++
	return 0, nil
}

func TestAuto_Threshold(t *testing.T) {
	ctx := context.Background()
	small, large := &stubCounter{name: "exact"}, &stubCounter{name: "approx"}
	auto := clique.NewAuto(small, large, clique.WithThreshold(4))

	_, _ = auto.CountBySize(ctx, indexed(t, nil, builder.Complete(4)))
	assert.Equal(t, 1, small.calls)
	_, _ = auto.CountK(ctx, indexed(t, nil, builder.Complete(5)), 3)
	assert.Equal(t, 1, large.calls)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	c, err := clique.FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &clique.Auto{}, c)

	cfg.Counting.Mode = config.ModeExact
	c, err = clique.FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &clique.Exact{}, c)

	cfg.Counting.Mode = config.ModeApproximate
	c, err = clique.FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &clique.Approximate{}, c)

	cfg.Counting.Mode = "psychic"
	_, err = clique.FromConfig(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestHistogram(t *testing.T) {
	h := clique.Histogram{3: 2, 1: 5, 2: 4}
	assert.Equal(t, []int{1, 2, 3}, h.Sizes())
	assert.EqualValues(t, 11, h.Total())
	assert.Equal(t, 3, h.MaxSize())
	assert.Zero(t, h.Count(7))

	cp := h.Clone()
	cp.Merge(clique.Histogram{3: 1, 4: 1})
	assert.EqualValues(t, 2, h.Count(3), "clone is independent")
	assert.EqualValues(t, 3, cp.Count(3))
	assert.Equal(t, 4, cp.MaxSize())
}
