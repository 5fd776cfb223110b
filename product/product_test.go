// SPDX-License-Identifier: MIT
package product_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquekernel/builder"
	"github.com/katalvlaran/cliquekernel/core"
	"github.com/katalvlaran/cliquekernel/product"
)

func TestBuild_SingleEdgeSquared(t *testing.T) {
	g := builder.MustBuild(builder.Edges([2]string{"a", "b"}))
	h := builder.MustBuild(builder.Edges([2]string{"x", "y"}))

	p, err := product.Build(g, h)
	require.NoError(t, err)
	assert.Equal(t, 4, p.VertexCount())
	assert.Equal(t, 2, p.EdgeCount())

	ax, err := p.Index("a", "x")
	require.NoError(t, err)
	by, err := p.Index("b", "y")
	require.NoError(t, err)
	ay, _ := p.Index("a", "y")
	assert.True(t, p.Indexed().HasEdge(ax, by))
	assert.False(t, p.Indexed().HasEdge(ax, ay), "shared first coordinate")
}

func TestBuild_EdgelessOperands(t *testing.T) {
	g := builder.MustBuild(builder.Empty(2))
	h := builder.MustBuild(builder.Empty(2))

	p, err := product.Build(g, h)
	require.NoError(t, err)
	// Non-adjacency on both sides also connects pairs.
	assert.Equal(t, 2, p.EdgeCount())
}

func TestBuild_TriangleSquared(t *testing.T) {
	tri := builder.MustBuild(builder.Complete(3))
	p, err := product.Build(tri, tri)
	require.NoError(t, err)
	assert.Equal(t, 9, p.VertexCount())
	assert.Equal(t, 18, p.EdgeCount())
	for i := 0; i < 9; i++ {
		assert.Equal(t, 4, p.Indexed().Degree(i))
	}
}

func TestBuild_MatchesNaive(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(5, 0.5))
			require.NoError(t, err)
			h, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed + 100)}, builder.RandomSparse(4, 0.4))
			require.NoError(t, err)

			fast, err := product.Build(g, h)
			require.NoError(t, err)
			slow, err := product.BuildNaive(g, h)
			require.NoError(t, err)

			assert.Equal(t, 20, fast.VertexCount())
			assert.Equal(t, slow.Indexed().Edges(), fast.Indexed().Edges())
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	g := builder.MustBuild(builder.Path(4))
	h := builder.MustBuild(builder.Star(3))
	p, err := product.Build(g, h)
	require.NoError(t, err)

	x := p.Indexed()
	n := x.VertexCount()
	assert.Equal(t, g.VertexCount()*h.VertexCount(), n)
	for a := 0; a < n; a++ {
		assert.False(t, x.HasEdge(a, a), "no self-loops")
		pa, err := p.Pair(a)
		require.NoError(t, err)
		for b := a + 1; b < n; b++ {
			pb, _ := p.Pair(b)
			assert.Equal(t, x.HasEdge(a, b), x.HasEdge(b, a), "symmetry")
			assert.Equal(t, product.Adjacent(g, h, pa, pb), x.HasEdge(a, b), "%v~%v", pa, pb)
		}
	}
}

func TestPairIndexRoundTrip(t *testing.T) {
	g := builder.MustBuild(builder.Edges([2]string{"b", "a"}), builder.Empty(1))
	h := builder.MustBuild(builder.Path(2))
	p, err := product.Build(g, h)
	require.NoError(t, err)

	for i := 0; i < p.VertexCount(); i++ {
		pair, err := p.Pair(i)
		require.NoError(t, err)
		j, err := p.Index(pair.U, pair.V)
		require.NoError(t, err)
		assert.Equal(t, i, j)
	}
	first, _ := p.Pair(0)
	assert.Equal(t, product.Pair{U: "0", V: "0"}, first)

	_, err = p.Pair(p.VertexCount())
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = p.Index("zz", "0")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestProductGraph(t *testing.T) {
	g := builder.MustBuild(builder.Edges([2]string{"a", "b"}))
	p, err := product.Build(g, g)
	require.NoError(t, err)

	lg, err := p.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, lg.VertexCount())
	assert.True(t, lg.HasEdge("(a,a)", "(b,b)"))
	assert.True(t, lg.HasEdge("(a,b)", "(b,a)"))
}

func TestBuild_Errors(t *testing.T) {
	g := builder.MustBuild(builder.Complete(2))

	_, err := product.Build(nil, g)
	assert.ErrorIs(t, err, product.ErrEmptyGraph)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = product.Build(g, core.NewGraph())
	assert.ErrorIs(t, err, product.ErrEmptyGraph)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = product.BuildNaive(core.NewGraph(), g)
	assert.ErrorIs(t, err, product.ErrEmptyGraph)
}
