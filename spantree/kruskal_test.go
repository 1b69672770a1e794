package spantree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/spantree"
)

func TestKruskal_Errors(t *testing.T) {
	_, err := spantree.Kruskal(nil)
	assert.ErrorIs(t, err, spantree.ErrGraphNil)

	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "")
	_, _ = g.AddEdge("C", "D", "")
	_, err = spantree.Kruskal(g)
	assert.ErrorIs(t, err, spantree.ErrDisconnected)
}

func TestKruskal_Trivial(t *testing.T) {
	tree, err := spantree.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, tree)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	tree, err = spantree.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestKruskal_CycleDropsLastEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", "ab")
	_, _ = g.AddEdge("B", "C", "bc")
	_, _ = g.AddEdge("C", "A", "ca")

	tree, err := spantree.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "ab", tree[0].Name)
	assert.Equal(t, "bc", tree[1].Name)
}

func TestKruskal_LoopsAndParallel(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "A", "loop")
	_, _ = g.AddEdge("A", "B", "first")
	_, _ = g.AddEdge("B", "A", "second")

	tree, err := spantree.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "first", tree[0].Name)
}

func TestKruskal_GridSpans(t *testing.T) {
	g := core.NewGraph()
	const n = 6
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _ = g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r, c+1), "")
			}
			if r+1 < n {
				_, _ = g.AddEdge(fmt.Sprintf("%d,%d", r, c), fmt.Sprintf("%d,%d", r+1, c), "")
			}
		}
	}

	tree, err := spantree.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, n*n-1)

	// The selected edges alone must connect every vertex.
	tg := core.NewGraph()
	for _, v := range g.Vertices() {
		require.NoError(t, tg.AddVertex(v))
	}
	for _, e := range tree {
		_, err := tg.AddEdge(e.From, e.To, e.Name)
		require.NoError(t, err)
	}
	again, err := spantree.Kruskal(tg)
	require.NoError(t, err)
	assert.Len(t, again, n*n-1)
}
