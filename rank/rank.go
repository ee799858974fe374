package rank

import (
	"context"

	"github.com/katalvlaran/graphsched/graph"
)

// visitState mirrors the origin source's tri-value visited marker.
const (
	unvisited uint8 = 0
	onPath    uint8 = 1
	settled   uint8 = 2
)

type state struct {
	pred     graph.EdgeFunc
	adder    uint32
	rank     *graph.VertexMap[uint32]
	visited  *graph.VertexMap[uint8]
	loops    *graph.VertexMap[[]*graph.Vertex]
	ctx      context.Context
	canceled bool
}

// Rank computes a 1-indexed longest-path rank for every vertex of g
// reachable along edges satisfying pred (a nil pred is graph.AlwaysTrue),
// incrementing the rank by adder (default 1, see WithAdder) per edge.
//
// The returned VertexMap records, for every vertex where a back edge was
// encountered mid-recursion, the witnessing cycle trace produced by
// ReportLoops seeded at that vertex.
func Rank(g *graph.Graph, pred graph.EdgeFunc, opts ...Option) (*graph.VertexMap[uint32], *graph.VertexMap[[]*graph.Vertex], error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if pred == nil {
		pred = graph.AlwaysTrue
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &state{
		pred:    pred,
		adder:   cfg.adder,
		rank:    graph.NewVertexMap[uint32](),
		visited: graph.NewVertexMap[uint8](),
		loops:   graph.NewVertexMap[[]*graph.Vertex](),
		ctx:     cfg.ctx,
	}

	for _, v := range g.Vertices() {
		if st.visited.Get(v) == unvisited {
			st.visit(v, 1)
		}
		if st.canceled {
			return nil, nil, ErrCanceled
		}
	}

	return st.rank, st.loops, nil
}

// visit is rank::vertexIterate: assign v the greater of its current rank
// and currentRank, recurse into followed successors at currentRank+adder,
// and record a loop trace the first time a back edge into an on-path
// vertex is found.
//
// Checked at entry against st.ctx so that cancellation installed via
// WithContext is observed at every recursive call, not just between
// top-level vertices.
func (st *state) visit(v *graph.Vertex, currentRank uint32) {
	select {
	case <-st.ctx.Done():
		st.canceled = true
		return
	default:
	}

	if st.visited.Get(v) == onPath {
		if !st.loops.Has(v) {
			st.loops.Set(v, ReportLoops(v, st.pred))
		}
		return
	}
	if st.rank.Get(v) >= currentRank {
		return
	}

	st.visited.Set(v, onPath)
	st.rank.Set(v, currentRank)

	for _, e := range v.Out() {
		if !graph.Follow(e, st.pred) {
			continue
		}
		st.visit(e.To(), currentRank+st.adder)
	}

	st.visited.Set(v, settled)
}
