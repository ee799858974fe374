package scc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsched/graph"
	"github.com/katalvlaran/graphsched/scc"
)

// buildScenario1 builds the seed graph from spec.md §8 scenario 1:
// i -> a -> b -> {g1,g2,g3}; g1 -> a; g3 -> g2; g2 -> g3; g1,g2,g3 -> q.
func buildScenario1(t *testing.T) (g *graph.Graph, v map[string]*graph.Vertex) {
	t.Helper()
	g = graph.New()
	v = make(map[string]*graph.Vertex)
	for _, name := range []string{"i", "a", "b", "g1", "g2", "g3", "q"} {
		v[name] = g.NewVertex()
	}
	edges := [][2]string{
		{"i", "a"}, {"a", "b"},
		{"b", "g1"}, {"b", "g2"}, {"b", "g3"},
		{"g1", "a"}, {"g3", "g2"}, {"g2", "g3"},
		{"g1", "q"}, {"g2", "q"}, {"g3", "q"},
	}
	for _, e := range edges {
		g.NewEdge(v[e[0]], v[e[1]], 2)
	}

	return g, v
}

func TestStrongly_Scenario1(t *testing.T) {
	g, v := buildScenario1(t)
	color, err := scc.Strongly(g, nil)
	require.NoError(t, err)

	assert.NotEqual(t, color.Get(v["i"]), color.Get(v["a"]))
	assert.NotEqual(t, color.Get(v["a"]), color.Get(v["g2"]))
	assert.NotEqual(t, color.Get(v["g2"]), color.Get(v["q"]))
	assert.Equal(t, color.Get(v["a"]), color.Get(v["b"]))
	assert.Equal(t, color.Get(v["a"]), color.Get(v["g1"]))
	assert.Equal(t, color.Get(v["g2"]), color.Get(v["g3"]))
	assert.NotEqual(t, uint32(0), color.Get(v["a"]))
	assert.NotEqual(t, uint32(0), color.Get(v["g2"]))
}

func TestStrongly_SingletonCollapse(t *testing.T) {
	g := graph.New()
	v1 := g.NewVertex()
	v2 := g.NewVertex()

	color, err := scc.Strongly(g, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), color.Get(v1))
	assert.Equal(t, uint32(0), color.Get(v2))
}

func TestStrongly_SelfLoop(t *testing.T) {
	g := graph.New()
	v := g.NewVertex()
	g.NewEdge(v, v, 1)

	color, err := scc.Strongly(g, nil)
	require.NoError(t, err)
	assert.NotEqual(t, uint32(0), color.Get(v))
}

func TestStrongly_NilGraph(t *testing.T) {
	_, err := scc.Strongly(nil, nil)
	assert.ErrorIs(t, err, scc.ErrNilGraph)
}

func TestStrongly_CanceledContext(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	g.NewEdge(a, b, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scc.Strongly(g, nil, scc.WithContext(ctx))
	assert.ErrorIs(t, err, scc.ErrCanceled)
}

func TestStrongly_RespectsPredicate(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	e1 := g.NewEdge(a, b, 1)
	g.NewEdge(b, a, 1)

	// Predicate excludes e1, breaking the only cycle.
	pred := func(e *graph.Edge) bool { return e != e1 }
	color, err := scc.Strongly(g, pred)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), color.Get(a))
	assert.Equal(t, uint32(0), color.Get(b))
}
