package breakgraph

import "github.com/katalvlaran/graphsched/graph"

// Build allocates a break-graph vertex for every origin vertex with a
// non-zero color, then a break-graph edge for every followed origin edge
// between two such vertices, carrying the origin edge's weight and
// cutable flag and registering the origin edge on the new break edge's
// OrigEdges list. Parallel edges are preserved; the simplify package's
// simplifyDup rule handles deduplication.
func Build(origin *graph.Graph, color *graph.VertexMap[uint32], pred graph.EdgeFunc) (*BreakGraph, error) {
	if origin == nil {
		return nil, ErrNilGraph
	}
	if color == nil {
		return nil, ErrNilColoring
	}
	if pred == nil {
		pred = graph.AlwaysTrue
	}

	bg := &BreakGraph{
		Graph:     graph.New(),
		ToBreak:   graph.NewVertexMap[*graph.Vertex](),
		OrigEdges: graph.NewEdgeMap[[]*graph.Edge](),
	}

	for _, v := range origin.Vertices() {
		if color.Get(v) != 0 {
			bg.ToBreak.Set(v, bg.Graph.NewVertex())
		}
	}

	for _, v := range origin.Vertices() {
		if color.Get(v) == 0 {
			continue
		}
		for _, e := range v.Out() {
			if !graph.Follow(e, pred) {
				continue
			}
			if color.Get(e.To()) == 0 {
				continue
			}
			from := bg.ToBreak.Get(v)
			to := bg.ToBreak.Get(e.To())
			be := bg.Graph.NewEdge(from, to, e.Weight)
			bg.Graph.SetCutable(be, e.Cutable)
			bg.AddOrigEdges(be, e)
		}
	}

	return bg, nil
}
