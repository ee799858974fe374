package simplify

import "github.com/katalvlaran/graphsched/graph"

// simplifyNone deletes v and its incident edges if it has no inputs or
// no outputs: such a vertex cannot lie on a cycle.
func (st *state) simplifyNone(v *graph.Vertex) {
	if v.InDegree() != 0 && v.OutDegree() != 0 {
		return
	}

	neighbors := collectEndpoints(v)
	st.bg.Graph.Remove(v)
	st.deleted.Set(v, true)
	for _, n := range neighbors {
		st.push(n)
	}
}

// simplifyOne bypasses a degree-(1,1) vertex that is not its own
// neighbor, splicing its sole in- and out-edge into one direct edge
// templated on whichever of the two has the lower weight (ties broken
// toward the cutable one).
func (st *state) simplifyOne(v *graph.Vertex) {
	if v.InDegree() != 1 || v.OutDegree() != 1 {
		return
	}
	inEdge := v.In()[0]
	outEdge := v.Out()[0]
	if inEdge.From() == v || outEdge.To() == v {
		return
	}

	template, other := inEdge, outEdge
	if outEdge.Weight < inEdge.Weight || (outEdge.Weight == inEdge.Weight && outEdge.Cutable && !inEdge.Cutable) {
		template, other = outEdge, inEdge
	}

	spliced := st.bg.Graph.NewEdge(inEdge.From(), outEdge.To(), template.Weight)
	st.bg.Graph.SetCutable(spliced, template.Cutable)
	st.bg.SpliceOrigEdges(spliced, template)
	st.bg.OrigEdges.Delete(other)

	neighbors := []*graph.Vertex{inEdge.From(), outEdge.To()}
	st.bg.Graph.RemoveEdge(inEdge)
	st.bg.Graph.RemoveEdge(outEdge)
	st.deleted.Set(v, true)
	for _, n := range neighbors {
		st.push(n)
	}
}

// simplifyOut reroutes every incoming edge of v directly to v's sole,
// mandatory out-target, removes v's edges and marks v deleted (v itself
// stays in the graph, isolated), since the out-edge already imposes the
// ordering constraint the reroutes would duplicate. A self-loop among
// the inputs means that constraint cannot be honored without cutting
// something; simplifyOut marks that self-loop cutable, reports it, and
// otherwise leaves v in place for a cut rule (or the caller) to resolve.
func (st *state) simplifyOut(v *graph.Vertex) {
	if v.OutDegree() != 1 {
		return
	}
	outEdge := v.Out()[0]
	if outEdge.Cutable {
		return
	}

	inEdges := v.In()
	for _, inEdge := range inEdges {
		if inEdge.From() == v {
			st.bg.Graph.SetCutable(inEdge, true)
			_ = st.reporter.MandatoryCycle(st.origin, []*graph.Vertex{v, v})

			return
		}
	}

	neighbors := make([]*graph.Vertex, 0, len(inEdges)+1)
	for _, inEdge := range inEdges {
		rerouted := st.bg.Graph.NewEdge(inEdge.From(), outEdge.To(), inEdge.Weight)
		st.bg.Graph.SetCutable(rerouted, inEdge.Cutable)
		st.bg.SpliceOrigEdges(rerouted, inEdge)
		st.bg.Graph.RemoveEdge(inEdge)
		neighbors = append(neighbors, inEdge.From())
	}

	neighbors = append(neighbors, outEdge.To())
	st.bg.Graph.RemoveEdge(outEdge)
	st.deleted.Set(v, true)
	for _, n := range neighbors {
		st.push(n)
	}
}

// simplifyDup collapses parallel outgoing edges of v that share a
// destination: a non-cutable edge dominates any cutable ones to the
// same destination; two cutable edges combine their weight and
// OrigEdges; two non-cutable edges collapse to one.
func (st *state) simplifyDup(v *graph.Vertex) {
	byDest := make(map[*graph.Vertex][]*graph.Edge)
	order := make([]*graph.Vertex, 0)
	for _, e := range v.Out() {
		if _, seen := byDest[e.To()]; !seen {
			order = append(order, e.To())
		}
		byDest[e.To()] = append(byDest[e.To()], e)
	}

	for _, dest := range order {
		edges := byDest[dest]
		if len(edges) < 2 {
			continue
		}
		st.mergeParallel(edges)
		st.push(v)
		st.push(dest)
	}
}

func (st *state) mergeParallel(edges []*graph.Edge) {
	var nonCutable, cutable []*graph.Edge
	for _, e := range edges {
		if e.Cutable {
			cutable = append(cutable, e)
		} else {
			nonCutable = append(nonCutable, e)
		}
	}

	if len(nonCutable) > 0 {
		for _, e := range append(nonCutable[1:], cutable...) {
			st.bg.OrigEdges.Delete(e)
			st.bg.Graph.RemoveEdge(e)
		}

		return
	}

	keep := cutable[0]
	for _, e := range cutable[1:] {
		keep.Weight += e.Weight
		st.bg.SpliceOrigEdges(keep, e)
		st.bg.Graph.RemoveEdge(e)
	}
}

// cutBasic cuts and removes a cutable self-loop on v, if one exists.
func (st *state) cutBasic(v *graph.Vertex) {
	for _, e := range v.Out() {
		if e.To() == v && e.Cutable {
			st.bg.CutOrigEdges(st.origin, e)
			st.bg.Graph.RemoveEdge(e)
			st.bg.OrigEdges.Delete(e)
			st.push(v)

			return
		}
	}
}

// cutBackward cuts every cutable outgoing edge of v whose destination
// also has a non-cutable edge pointing back into v, since such a pair
// can only be part of a cycle.
func (st *state) cutBackward(v *graph.Vertex) {
	sources := make(map[*graph.Vertex]bool)
	for _, e := range v.In() {
		if !e.Cutable {
			sources[e.From()] = true
		}
	}
	if len(sources) == 0 {
		return
	}

	for _, e := range v.Out() {
		if e.Cutable && sources[e.To()] {
			st.bg.CutOrigEdges(st.origin, e)
			st.bg.Graph.RemoveEdge(e)
			st.bg.OrigEdges.Delete(e)
			st.push(v)
			st.push(e.To())
		}
	}
}
