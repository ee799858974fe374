package acyclic

import (
	"errors"

	"github.com/katalvlaran/graphsched/breakgraph"
	"github.com/katalvlaran/graphsched/graph"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to Break.
var ErrNilGraph = errors.New("acyclic: graph is nil")

// Stats is a read-only summary of one Break run, useful for diagnostics
// and for asserting the documented invariants in tests.
type Stats struct {
	// Color is the SCC coloring of the origin graph.
	Color *graph.VertexMap[uint32]

	// BreakGraph is the reduced, simplified, placed working graph.
	BreakGraph *breakgraph.BreakGraph

	// Rank is the break graph's final, verification-pass rank.
	Rank *graph.VertexMap[uint32]

	// Loops records any loop traces the final verification rank pass
	// found. A correct Break run leaves this empty.
	Loops *graph.VertexMap[[]*graph.Vertex]

	// CutEdges is the number of origin-graph edges marked cut by this run.
	CutEdges int
}

// Loopy reports whether the verification pass found any residual cycle.
// A true result indicates a defect in the pipeline, not a valid outcome.
func (s *Stats) Loopy() bool {
	for _, v := range s.BreakGraph.Graph.Vertices() {
		if s.Loops.Has(v) {
			return true
		}
	}

	return false
}
