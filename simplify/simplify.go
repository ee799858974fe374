package simplify

import (
	"container/list"

	"github.com/katalvlaran/graphsched/breakgraph"
	"github.com/katalvlaran/graphsched/graph"
)

type state struct {
	bg       *breakgraph.BreakGraph
	origin   *graph.Graph
	allowCut bool
	reporter Reporter
	deleted  *graph.VertexMap[bool]
	queued   *graph.VertexMap[bool]
	queue    *list.List // of *graph.Vertex
}

// Run drains a work list seeded with every vertex of bg, applying the
// four structural reduction rules (and, when allowCut, the two cut
// rules) to each popped vertex until the list is empty. Rules that
// remove or alter edges push the affected neighbors back onto the list.
//
// origin is the graph the break graph was built from; cut rules mark
// cuts there via bg's OrigEdges bookkeeping. A nil reporter is treated
// as NoopReporter.
func Run(bg *breakgraph.BreakGraph, origin *graph.Graph, allowCut bool, reporter Reporter) {
	if reporter == nil {
		reporter = NoopReporter{}
	}

	st := &state{
		bg:       bg,
		origin:   origin,
		allowCut: allowCut,
		reporter: reporter,
		deleted:  graph.NewVertexMap[bool](),
		queued:   graph.NewVertexMap[bool](),
		queue:    list.New(),
	}

	for _, v := range bg.Graph.Vertices() {
		st.push(v)
	}

	for st.queue.Len() > 0 {
		front := st.queue.Front()
		v := front.Value.(*graph.Vertex)
		st.queue.Remove(front)
		st.queued.Set(v, false)

		if st.deleted.Get(v) {
			continue
		}
		st.simplifyNone(v)
		if st.deleted.Get(v) {
			continue
		}
		st.simplifyOne(v)
		if st.deleted.Get(v) {
			continue
		}
		st.simplifyOut(v)
		if st.deleted.Get(v) {
			continue
		}
		st.simplifyDup(v)

		if !allowCut || st.deleted.Get(v) {
			continue
		}
		st.cutBasic(v)
		if st.deleted.Get(v) {
			continue
		}
		st.cutBackward(v)
	}

	if allowCut {
		// place does not consume this work list; priming it here is
		// benign but keeps parity with the driver's documented contract.
		for _, v := range bg.Graph.Vertices() {
			st.push(v)
		}
	}
}

func (st *state) push(v *graph.Vertex) {
	if st.deleted.Get(v) || st.queued.Get(v) {
		return
	}
	st.queued.Set(v, true)
	st.queue.PushBack(v)
}

func collectEndpoints(v *graph.Vertex) []*graph.Vertex {
	out := make([]*graph.Vertex, 0, v.InDegree()+v.OutDegree())
	for _, e := range v.Out() {
		out = append(out, e.To())
	}
	for _, e := range v.In() {
		out = append(out, e.From())
	}

	return out
}
