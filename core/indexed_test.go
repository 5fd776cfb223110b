// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquekernel/core"
)

func TestIndexed_AddEdge(t *testing.T) {
	x, err := core.NewIndexed(4)
	require.NoError(t, err)

	require.NoError(t, x.AddEdge(0, 1))
	require.NoError(t, x.AddEdge(3, 1))
	assert.ErrorIs(t, x.AddEdge(1, 0), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, x.AddEdge(2, 2), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, x.AddEdge(0, 4), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, x.AddEdge(-1, 0), core.ErrIndexOutOfRange)

	assert.Equal(t, 4, x.VertexCount())
	assert.Equal(t, 2, x.EdgeCount())
	assert.True(t, x.HasEdge(1, 3))
	assert.False(t, x.HasEdge(0, 3))
	assert.False(t, x.HasEdge(0, 9))
	assert.Equal(t, 2, x.Degree(1))
	assert.Equal(t, 0, x.Degree(42))
	assert.Equal(t, [][2]int{{0, 1}, {1, 3}}, x.Edges())

	_, err = core.NewIndexed(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestIndexedFromRows(t *testing.T) {
	mk := func(n uint, bits ...uint) *bitset.BitSet {
		b := bitset.New(n)
		for _, i := range bits {
			b.Set(i)
		}
		return b
	}

	x, err := core.IndexedFromRows([]*bitset.BitSet{mk(3, 1, 2), mk(3, 0), mk(3, 0)})
	require.NoError(t, err)
	assert.Equal(t, 2, x.EdgeCount())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, x.Edges())

	_, err = core.IndexedFromRows([]*bitset.BitSet{mk(2, 1), mk(2)})
	assert.ErrorIs(t, err, core.ErrAsymmetricAdjacency)

	_, err = core.IndexedFromRows([]*bitset.BitSet{mk(2, 0), mk(2)})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = core.IndexedFromRows([]*bitset.BitSet{mk(2), nil})
	assert.ErrorIs(t, err, core.ErrAsymmetricAdjacency)
}

func TestRelabel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddVertex("d"))

	x, labels, err := core.Relabel(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, labels)
	assert.Equal(t, g.VertexCount(), x.VertexCount())
	assert.Equal(t, g.EdgeCount(), x.EdgeCount())
	for _, e := range x.Edges() {
		assert.True(t, g.HasEdge(labels[e[0]], labels[e[1]]), "edge %v must map back", e)
	}
	assert.Equal(t, 0, x.Degree(3))

	_, _, err = core.Relabel(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
