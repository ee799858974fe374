package scc

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphsched/graph"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to Strongly.
var ErrNilGraph = errors.New("scc: graph is nil")

// state carries the Tarjan bookkeeping that in the origin source is
// threaded through scc::vertexIterate as by-reference parameters.
type state struct {
	pred      graph.EdgeFunc
	dfs       uint32
	user      *graph.VertexMap[uint32] // DFS number; 0 = unvisited
	color     *graph.VertexMap[uint32] // output component id; 0 = unassigned
	callTrace []*graph.Vertex
	ctx       context.Context
	canceled  bool
}

// Strongly colors every vertex of g with a strongly-connected-component
// id. A nil pred is treated as graph.AlwaysTrue. Component id 0 means
// "not part of a non-trivial SCC"; any other value groups vertices by
// component (ids are otherwise opaque).
//
// Determinism: the result depends only on vertex iteration order, edge
// iteration order, and pred.
//
// Complexity: O(V + E).
func Strongly(g *graph.Graph, pred graph.EdgeFunc, opts ...Option) (*graph.VertexMap[uint32], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		pred = graph.AlwaysTrue
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &state{
		pred:  pred,
		user:  graph.NewVertexMap[uint32](),
		color: graph.NewVertexMap[uint32](),
		ctx:   cfg.ctx,
	}

	for _, v := range g.Vertices() {
		if st.user.Get(v) == 0 {
			st.dfs++
			st.visit(v)
		}
		if st.canceled {
			return nil, ErrCanceled
		}
	}

	// Singleton collapse: a vertex whose followed edges never land on a
	// vertex of the same color (itself included, via a self-loop) doesn't
	// need a component id.
	for _, v := range g.Vertices() {
		onecolor := true
		for _, e := range v.Out() {
			if graph.Follow(e, st.pred) && st.color.Get(v) == st.color.Get(e.To()) {
				onecolor = false
				break
			}
		}
		if onecolor {
			st.color.Set(v, 0)
		}
	}

	return st.color, nil
}

// visit is scc::vertexIterate: assign v the next DFS number, recurse into
// unvisited followed successors, and on return either root a new
// component (popping everything in callTrace with a user number at least
// thisDfs) or push v onto callTrace for an ancestor to claim later.
//
// Checked at entry against st.ctx so that cancellation installed via
// WithContext is observed at every recursive call, not just between
// top-level vertices.
func (st *state) visit(v *graph.Vertex) {
	select {
	case <-st.ctx.Done():
		st.canceled = true
		return
	default:
	}

	thisDfs := st.dfs
	st.user.Set(v, thisDfs)
	st.color.Set(v, 0)

	for _, e := range v.Out() {
		if !graph.Follow(e, st.pred) {
			continue
		}
		to := e.To()
		if st.user.Get(to) == 0 {
			st.dfs++
			st.visit(to)
		}
		if st.color.Get(to) == 0 {
			if u := st.user.Get(to); u < st.user.Get(v) {
				st.user.Set(v, u)
			}
		}
	}

	if st.user.Get(v) == thisDfs {
		st.color.Set(v, thisDfs)
		for len(st.callTrace) > 0 {
			popped := st.callTrace[len(st.callTrace)-1]
			if st.user.Get(popped) >= thisDfs {
				st.callTrace = st.callTrace[:len(st.callTrace)-1]
				st.color.Set(popped, thisDfs)
			} else {
				break
			}
		}
	} else {
		st.callTrace = append(st.callTrace, v)
	}
}
