package rank

import "github.com/katalvlaran/graphsched/graph"

// ReportLoops runs a DFS from seed along edges satisfying pred (a nil
// pred is graph.AlwaysTrue) and returns the trace of the first cycle
// found: a vertex sequence starting at seed and ending at the repeated
// vertex. Returns nil if seed's reachable subgraph is acyclic.
func ReportLoops(seed *graph.Vertex, pred graph.EdgeFunc) []*graph.Vertex {
	if pred == nil {
		pred = graph.AlwaysTrue
	}

	st := &loopState{
		pred:  pred,
		state: graph.NewVertexMap[uint8](),
	}

	if st.visit(seed) {
		return st.trace
	}

	return nil
}

type loopState struct {
	pred  graph.EdgeFunc
	state *graph.VertexMap[uint8] // 0 unseen, 1 on stack, 2 processed
	trace []*graph.Vertex
}

func (st *loopState) visit(v *graph.Vertex) bool {
	switch st.state.Get(v) {
	case onPath:
		st.trace = append(st.trace, v)
		return true
	case settled:
		return false
	}

	st.state.Set(v, onPath)
	st.trace = append(st.trace, v)

	for _, e := range v.Out() {
		if !graph.Follow(e, st.pred) {
			continue
		}
		if st.visit(e.To()) {
			return true
		}
	}

	st.state.Set(v, settled)
	st.trace = st.trace[:len(st.trace)-1]

	return false
}
