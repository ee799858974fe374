package rank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsched/graph"
	"github.com/katalvlaran/graphsched/rank"
)

func vertexNames(vs []*graph.Vertex, names map[*graph.Vertex]string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = names[v]
	}

	return out
}

// TestRank_Scenario2 builds spec.md §8 scenario 2: two disjoint cycles
// and a plain chain.
func TestRank_Scenario2(t *testing.T) {
	g := graph.New()
	names := make(map[*graph.Vertex]string)
	v := make(map[string]*graph.Vertex)
	for _, n := range []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7"} {
		vv := g.NewVertex()
		v[n] = vv
		names[vv] = n
	}
	edges := [][2]string{
		{"v1", "v2"}, {"v2", "v3"}, {"v3", "v1"},
		{"v4", "v5"}, {"v5", "v4"},
		{"v6", "v7"},
	}
	for _, e := range edges {
		g.NewEdge(v[e[0]], v[e[1]], 1)
	}

	ranks, loops, err := rank.Rank(g, nil)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), ranks.Get(v["v1"]))
	assert.Equal(t, uint32(2), ranks.Get(v["v2"]))
	assert.Equal(t, uint32(3), ranks.Get(v["v3"]))
	assert.Equal(t, uint32(1), ranks.Get(v["v4"]))
	assert.Equal(t, uint32(2), ranks.Get(v["v5"]))
	assert.Equal(t, uint32(1), ranks.Get(v["v6"]))
	assert.Equal(t, uint32(2), ranks.Get(v["v7"]))

	require.True(t, loops.Has(v["v1"]))
	assert.Equal(t, []string{"v1", "v2", "v3", "v1"}, vertexNames(loops.Get(v["v1"]), names))

	require.True(t, loops.Has(v["v4"]))
	assert.Equal(t, []string{"v4", "v5", "v4"}, vertexNames(loops.Get(v["v4"]), names))

	assert.False(t, loops.Has(v["v6"]))
}

func TestRank_SelfLoop(t *testing.T) {
	g := graph.New()
	v := g.NewVertex()
	g.NewEdge(v, v, 1)

	ranks, loops, err := rank.Rank(g, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), ranks.Get(v))
	require.True(t, loops.Has(v))
	assert.Equal(t, []*graph.Vertex{v, v}, loops.Get(v))
}

func TestRank_AcyclicChainIsMinimal(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	c := g.NewVertex()
	g.NewEdge(a, b, 1)
	g.NewEdge(b, c, 1)

	ranks, loops, err := rank.Rank(g, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), ranks.Get(a))
	assert.Equal(t, uint32(2), ranks.Get(b))
	assert.Equal(t, uint32(3), ranks.Get(c))
	assert.False(t, loops.Has(a))
	assert.False(t, loops.Has(b))
	assert.False(t, loops.Has(c))
}

func TestRank_NilGraph(t *testing.T) {
	_, _, err := rank.Rank(nil, nil)
	assert.ErrorIs(t, err, rank.ErrNilGraph)
}

func TestRank_CanceledContext(t *testing.T) {
	g := graph.New()
	g.NewVertex()
	g.NewVertex()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := rank.Rank(g, nil, rank.WithContext(ctx))
	assert.ErrorIs(t, err, rank.ErrCanceled)
}

func TestReportLoops_NoCycle(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	g.NewEdge(a, b, 1)

	assert.Nil(t, rank.ReportLoops(a, nil))
}
