package place_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsched/breakgraph"
	"github.com/katalvlaran/graphsched/graph"
	"github.com/katalvlaran/graphsched/place"
)

func bgOf(g *graph.Graph) *breakgraph.BreakGraph {
	return &breakgraph.BreakGraph{
		Graph:     g,
		ToBreak:   graph.NewVertexMap[*graph.Vertex](),
		OrigEdges: graph.NewEdgeMap[[]*graph.Edge](),
	}
}

func TestPlace_CommitsAcyclicEdge(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	e := g.NewEdge(a, b, 5)

	bg := bgOf(g)
	origin := graph.New()
	rank := graph.NewVertexMap[uint32]()

	require.NoError(t, place.Place(bg, origin, rank))

	assert.False(t, g.Cutable(e))
	assert.Equal(t, uint32(1), rank.Get(b))
}

func TestPlace_CutsEdgeThatClosesACycle(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	ab := g.NewEdge(a, b, 5)
	ba := g.NewEdge(b, a, 5)

	origin := graph.New()
	originAB := origin.NewVertex()
	originBA := origin.NewVertex()
	originEdgeAB := origin.NewEdge(originAB, originBA, 5)
	originEdgeBA := origin.NewEdge(originBA, originAB, 5)

	bg := bgOf(g)
	bg.AddOrigEdges(ab, originEdgeAB)
	bg.AddOrigEdges(ba, originEdgeBA)

	rank := graph.NewVertexMap[uint32]()

	require.NoError(t, place.Place(bg, origin, rank))

	assert.False(t, g.Cutable(ab))
	assert.Equal(t, 1, a.OutDegree())
	assert.Equal(t, 0, b.OutDegree())
	assert.True(t, origin.IsCut(originEdgeBA))
	assert.False(t, origin.IsCut(originEdgeAB))
}

func TestPlace_CanceledContext(t *testing.T) {
	g := graph.New()
	a := g.NewVertex()
	b := g.NewVertex()
	g.NewEdge(a, b, 5)

	bg := bgOf(g)
	origin := graph.New()
	rank := graph.NewVertexMap[uint32]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := place.Place(bg, origin, rank, place.WithContext(ctx))
	assert.ErrorIs(t, err, place.ErrCanceled)
}

func TestPlace_NilInputs(t *testing.T) {
	g := graph.New()
	bg := bgOf(g)
	rank := graph.NewVertexMap[uint32]()

	assert.ErrorIs(t, place.Place(nil, graph.New(), rank), place.ErrNilBreakGraph)
	assert.ErrorIs(t, place.Place(bg, nil, rank), place.ErrNilGraph)
	assert.ErrorIs(t, place.Place(bg, graph.New(), nil), place.ErrNilRank)
}
