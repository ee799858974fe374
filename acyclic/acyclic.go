package acyclic

import (
	"github.com/katalvlaran/graphsched/breakgraph"
	"github.com/katalvlaran/graphsched/graph"
	"github.com/katalvlaran/graphsched/place"
	"github.com/katalvlaran/graphsched/rank"
	"github.com/katalvlaran/graphsched/scc"
	"github.com/katalvlaran/graphsched/simplify"
)

func nonCutable(e *graph.Edge) bool { return !e.Cutable }

// Break converts origin into a rankable DAG by selectively cutting
// cutable back edges. It mutates origin only through Graph.MarkCut; it
// never removes origin vertices or edges. A nil pred is treated as
// graph.AlwaysTrue. A nil reporter discards simplify's mandatory-cycle
// diagnostics.
func Break(origin *graph.Graph, pred graph.EdgeFunc, reporter simplify.Reporter) (*Stats, error) {
	if origin == nil {
		return nil, ErrNilGraph
	}
	if pred == nil {
		pred = graph.AlwaysTrue
	}

	color, err := scc.Strongly(origin, pred)
	if err != nil {
		return nil, err
	}

	bg, err := breakgraph.Build(origin, color, pred)
	if err != nil {
		return nil, err
	}

	simplify.Run(bg, origin, false, reporter)
	simplify.Run(bg, origin, true, reporter)

	preRank, _, err := rank.Rank(bg.Graph, nonCutable)
	if err != nil {
		return nil, err
	}

	if err := place.Place(bg, origin, preRank); err != nil {
		return nil, err
	}

	finalRank, finalLoops, err := rank.Rank(bg.Graph, nonCutable)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Color:      color,
		BreakGraph: bg,
		Rank:       finalRank,
		Loops:      finalLoops,
		CutEdges:   countCut(origin),
	}, nil
}

func countCut(g *graph.Graph) int {
	n := 0
	for _, v := range g.Vertices() {
		for _, e := range v.Out() {
			if g.IsCut(e) {
				n++
			}
		}
	}

	return n
}
