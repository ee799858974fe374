package place

import (
	"context"
	"sort"

	"github.com/katalvlaran/graphsched/breakgraph"
	"github.com/katalvlaran/graphsched/graph"
)

type state struct {
	bg         *breakgraph.BreakGraph
	origin     *graph.Graph
	rank       *graph.VertexMap[uint32]
	user       *graph.VertexMap[uint32]
	storedRank *graph.VertexMap[uint32]
	onWorkList *graph.VertexMap[bool]
	workList   []*graph.Vertex
	placeStep  uint32
	ctx        context.Context
	canceled   bool
}

// Place greedily pins bg's cutable edges as mandatory in descending-
// weight order (stable for ties), rolling back and cutting any pin that
// closes a cycle among the already-mandatory edges. rank is the map
// produced by an earlier rank.Rank(bg.Graph, nonCutablePredicate) call;
// Place mutates it in place, and the mutated map reflects the graph's
// final placement-derived rank.
func Place(bg *breakgraph.BreakGraph, origin *graph.Graph, rank *graph.VertexMap[uint32], opts ...Option) error {
	if bg == nil {
		return ErrNilBreakGraph
	}
	if origin == nil {
		return ErrNilGraph
	}
	if rank == nil {
		return ErrNilRank
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &state{
		bg:         bg,
		origin:     origin,
		rank:       rank,
		user:       graph.NewVertexMap[uint32](),
		storedRank: graph.NewVertexMap[uint32](),
		onWorkList: graph.NewVertexMap[bool](),
		placeStep:  10,
		ctx:        cfg.ctx,
	}

	edges := collectCutableEdges(bg.Graph)
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight > edges[j].Weight })

	for _, e := range edges {
		st.placeTryEdge(e)
		if st.canceled {
			return ErrCanceled
		}
	}

	return nil
}

func collectCutableEdges(g *graph.Graph) []*graph.Edge {
	var out []*graph.Edge
	for _, v := range g.Vertices() {
		for _, e := range v.Out() {
			if e.Cutable && e.Weight != 0 {
				out = append(out, e)
			}
		}
	}

	return out
}

// placeTryEdge tentatively pins e as mandatory and re-ranks downstream
// of e.to via placeIterate. A committed pin keeps the new ranks; a
// rejected one cuts e and restores every rank placeIterate touched.
func (st *state) placeTryEdge(e *graph.Edge) {
	st.placeStep++
	st.bg.Graph.SetCutable(e, false)

	// The downstream re-rank starts one above e.From()'s committed rank.
	start := st.rank.Get(e.From()) + 1

	loop := st.placeIterate(e.To(), start)

	if st.canceled {
		// Aborting the trial, not rejecting it: restore e to cutable and
		// discard the ranks placeIterate touched before cancellation hit.
		st.bg.Graph.SetCutable(e, true)
		st.revert()

		return
	}

	if loop {
		st.bg.Graph.SetCutable(e, true)
		st.bg.CutOrigEdges(st.origin, e)
		st.bg.Graph.RemoveEdge(e)
		st.bg.OrigEdges.Delete(e)
		st.revert()

		return
	}

	st.commit()
}

// placeIterate is placeIterate: it recurses only along non-cutable,
// nonzero-weight edges (the edges place has already committed to), so
// the only way it can close a cycle is back through the edge
// placeTryEdge just tentatively pinned.
//
// Checked at entry against st.ctx so that cancellation installed via
// WithContext is observed at every recursive call. A cancellation is not
// a loop: placeTryEdge checks st.canceled separately and Place aborts
// its trial-edge loop without cutting the in-flight edge.
func (st *state) placeIterate(v *graph.Vertex, currentRank uint32) bool {
	select {
	case <-st.ctx.Done():
		st.canceled = true
		return false
	default:
	}

	if st.rank.Get(v) >= currentRank {
		return false
	}
	if st.user.Get(v) == st.placeStep {
		return true
	}

	st.user.Set(v, st.placeStep)
	if !st.onWorkList.Get(v) {
		st.storedRank.Set(v, st.rank.Get(v))
		st.workList = append(st.workList, v)
		st.onWorkList.Set(v, true)
	}
	st.rank.Set(v, currentRank)

	loop := false
	for _, e := range v.Out() {
		if e.Weight == 0 || e.Cutable {
			continue
		}
		if st.placeIterate(e.To(), currentRank+1) {
			loop = true
			break
		}
	}

	st.user.Set(v, 0)

	return loop
}

func (st *state) commit() {
	for _, v := range st.workList {
		st.onWorkList.Set(v, false)
	}
	st.workList = st.workList[:0]
}

func (st *state) revert() {
	for _, v := range st.workList {
		st.rank.Set(v, st.storedRank.Get(v))
		st.onWorkList.Set(v, false)
	}
	st.workList = st.workList[:0]
}
